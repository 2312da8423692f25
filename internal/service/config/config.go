package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"twitch_live_notifier/internal/models"
)

const (
	DefaultPollInterval      = time.Minute * 10
	DefaultMaxEditsPerStream = 2
)

// Options is one consistent snapshot of the notifier configuration. A tick
// always works against a single snapshot even if the file changes mid-tick.
type Options struct {
	PollInterval      time.Duration
	MaxEditsPerStream uint32
	OwnerIdentity     string
	TelegramChatID    int64
	Channels          []models.ChannelConfig
}

type Service struct {
	viper *viper.Viper

	mu       sync.RWMutex
	snapshot Options
}

// NewService reads the config file and starts watching it for changes, the
// way the original setup re-read its config on every pass.
func NewService(configFile string) (*Service, error) {

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetDefault("pollInterval", DefaultPollInterval)
	v.SetDefault("maxEditsPerStream", DefaultMaxEditsPerStream)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "ReadInConfig")
	}

	service := &Service{
		viper: v,
	}

	if err := service.reload(); err != nil {
		return nil, errors.Wrap(err, "reload")
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infof("config file changed: %s", e.Name)
		if err := service.reload(); err != nil {
			logrus.Errorf("could not reload config, keeping previous one: %v", err)
		}
	})
	v.WatchConfig()

	return service, nil
}

func (s *Service) reload() error {

	var channels []models.ChannelConfig
	if err := s.viper.UnmarshalKey("channels", &channels); err != nil {
		return errors.Wrap(err, "UnmarshalKey channels")
	}

	snapshot := Options{
		PollInterval:      s.viper.GetDuration("pollInterval"),
		MaxEditsPerStream: s.viper.GetUint32("maxEditsPerStream"),
		OwnerIdentity:     s.viper.GetString("ownerIdentity"),
		TelegramChatID:    s.viper.GetInt64("telegramChatId"),
		Channels:          channels,
	}

	if snapshot.PollInterval <= 0 {
		snapshot.PollInterval = DefaultPollInterval
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	return nil
}

// Options returns the current snapshot.
func (s *Service) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}
