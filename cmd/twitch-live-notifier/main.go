package main

import (
	"context"
	"net/http"
	"os"
	"time"

	fetchClient "twitch_live_notifier/internal/client/fetch-client"
	fileClient "twitch_live_notifier/internal/client/file"
	telegramClient "twitch_live_notifier/internal/client/telegram-client"
	twitchClient "twitch_live_notifier/internal/client/twitch-client"
	twitchOauthClient "twitch_live_notifier/internal/client/twitch-oauth-client"
	"twitch_live_notifier/internal/middleware"

	statusHandler "twitch_live_notifier/internal/handlers/status"

	configService "twitch_live_notifier/internal/service/config"
	notificationService "twitch_live_notifier/internal/service/notification"
	twitchTokenService "twitch_live_notifier/internal/service/twitch_token"

	dbRepository "twitch_live_notifier/db/repository"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

const (
	defaultConfigFile = "./config.yaml"
	defaultStateFile  = "./channel_states.json"
	defaultDebugAddr  = "localhost:8084"

	tokenRefreshInterval = time.Hour
)

func main() {
	ctx := context.Background()

	err := godotenv.Load()
	if err != nil {
		logrus.Fatal("Error loading .env file")
	}

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = defaultConfigFile
	}

	cfgService, err := configService.NewService(configFile)
	if err != nil {
		logrus.Fatalf("cannot load config %s: %v", configFile, err)
	}

	opts := cfgService.Options()

	// the channel-state store: Postgres when DB_CONN is set, flat JSON
	// file otherwise
	var stateRepo notificationService.StateRepository
	if dbConn := os.Getenv("DB_CONN"); dbConn != "" {
		db, err := sqlx.Connect("postgres", dbConn)
		if err != nil {
			logrus.Fatalf("cannot connect to db: %v", err)
		}

		err = db.Ping()
		if err != nil {
			logrus.Fatalf("cannot ping db: %v", err)
		}

		stateRepo = dbRepository.NewDBRepository(db)
	} else {
		stateFile := os.Getenv("STATE_FILE")
		if stateFile == "" {
			stateFile = defaultStateFile
		}
		stateRepo = fileClient.NewStateFileClient(stateFile)
	}

	var (
		fClient     = fetchClient.NewFetchClient()
		oauthClient = twitchOauthClient.NewTwitchOauthClient()
	)

	tts := twitchTokenService.NewTwitchTokenService(oauthClient)
	go tts.SyncBg(ctx, tokenRefreshInterval)

	twClient := twitchClient.NewTwitchClient(fClient, tts)

	telegaClient, err := telegramClient.NewTelegramClient(opts.TelegramChatID)
	if err != nil {
		logrus.Fatalf("cannot init telegram client: %v", err)
	}

	sns := notificationService.NewStreamNotificationService(stateRepo, twClient, telegaClient, cfgService)
	go sns.SyncBg(ctx, opts.PollInterval)

	stHandler := statusHandler.NewStatusHandler(stateRepo)

	debugRouter := mux.NewRouter()

	debugRouter.HandleFunc("/health", stHandler.GetHealth).Methods("GET").Schemes("HTTP")
	debugRouter.HandleFunc("/channels", stHandler.GetChannelStates).Methods("GET").Schemes("HTTP")

	handler := middleware.ConfigureCORS(debugRouter)

	debugAddr := os.Getenv("DEBUG_ADDR")
	if debugAddr == "" {
		debugAddr = defaultDebugAddr
	}

	logrus.Info("server start...")

	srv := &http.Server{
		Handler:      handler,
		Addr:         debugAddr,
		WriteTimeout: 5 * time.Second,
		ReadTimeout:  5 * time.Second,
	}

	logrus.Fatal(srv.ListenAndServe())
}
