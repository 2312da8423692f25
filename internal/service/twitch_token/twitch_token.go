package twitch_token

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"twitch_live_notifier/internal/models"
)

const twitchTokenRefreshBGSync = "twitchTokenRefresh_BGSync"

// oauthClient performs the client-credentials exchange.
type oauthClient interface {
	TwitchOAuthGetToken(ctx context.Context) (*models.TwitchOauthGetTokenResponse, error)
}

// TwitchTokenService owns the app access token. Refresh failures are never
// fatal: readers keep seeing the last known-good token.
type TwitchTokenService struct {
	twitchOauthClient oauthClient

	mu    sync.RWMutex
	token string
}

func NewTwitchTokenService(twitchOauthClient oauthClient) *TwitchTokenService {
	service := &TwitchTokenService{
		twitchOauthClient: twitchOauthClient,
	}

	// startup refresh; a failure here leaves the token empty, downstream
	// calls will fail with 401 and be skipped until the next refresh
	ctx := context.Background()
	if err := service.Sync(ctx); err != nil {
		logrus.Errorf("could not obtain initial twitch token: %v", err)
	}

	return service
}

// CurrentToken returns a snapshot of the token; it may be empty or stale.
func (tts *TwitchTokenService) CurrentToken(ctx context.Context) string {
	tts.mu.RLock()
	defer tts.mu.RUnlock()

	return tts.token
}

// Sync exchanges client credentials for a fresh token and atomically
// replaces the current one. On failure the previous token is retained.
func (tts *TwitchTokenService) Sync(ctx context.Context) error {

	tokenInfo, err := tts.twitchOauthClient.TwitchOAuthGetToken(ctx)
	if err != nil {
		return errors.Wrap(err, "TwitchOAuthGetToken")
	}

	if tokenInfo == nil {
		return errors.Wrap(errors.New("empty client resp"), "TwitchOAuthGetToken")
	}

	tts.mu.Lock()
	tts.token = tokenInfo.AccessToken
	tts.mu.Unlock()

	return nil
}

func (tts *TwitchTokenService) SyncBg(ctx context.Context, updateInterval time.Duration) {
	ticker := time.NewTicker(updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("stoping bg %s process", twitchTokenRefreshBGSync)
			return
		case <-ticker.C:
			logrus.Infof("started bg %s process", twitchTokenRefreshBGSync)
			err := tts.Sync(ctx)
			if err != nil {
				logrus.Infof("could not refresh twitch token, keeping previous one: %v", err)
				continue
			}
			logrus.Info("twitch token refresh was complited")
		}
	}
}
