package notification

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"twitch_live_notifier/internal/models"
	configService "twitch_live_notifier/internal/service/config"
)

const streamNotificationBGSync = "streamNotification_BGSync"

// StateRepository is the single persistence boundary: the full set is loaded
// at the start of a tick and written back at the end. Both the file and the
// Postgres backend implement it.
type StateRepository interface {
	LoadStates(ctx context.Context) ([]models.ChannelState, error)
	SaveStates(ctx context.Context, states []models.ChannelState) error
}

// streamProvider fetches live status and channel metadata.
type streamProvider interface {
	GetActiveStreamInfoByUser(ctx context.Context, userLogin string) (*models.Streams, error)
	SearchChannelInfoByName(ctx context.Context, channelName string) (*models.ChannelInfo, error)
}

// notificationSink creates and edits the single notification message that
// represents a live session.
type notificationSink interface {
	SendStreamCard(ctx context.Context, card models.StreamCard) (messageID int, err error)
	EditStreamCard(ctx context.Context, messageID int, card models.StreamCard) error
}

type configProvider interface {
	Options() configService.Options
}

type StreamNotificationService struct {
	stateRepo     StateRepository
	twitchClient  streamProvider
	sink          notificationSink
	configService configProvider
}

func NewStreamNotificationService(
	stateRepo StateRepository,
	twitchClient streamProvider,
	sink notificationSink,
	configService configProvider,
) *StreamNotificationService {
	return &StreamNotificationService{
		stateRepo:     stateRepo,
		twitchClient:  twitchClient,
		sink:          sink,
		configService: configService,
	}
}

func (sns *StreamNotificationService) SyncBg(ctx context.Context, syncInterval time.Duration) {
	ticker := time.NewTicker(syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("stoping bg %s process", streamNotificationBGSync)
			return
		case <-ticker.C:
			logrus.Infof("started bg %s process", streamNotificationBGSync)
			err := sns.Sync(ctx)
			if err != nil {
				logrus.Errorf("stream notification tick aborted: %v", err)
				continue
			}
			logrus.Info("stream notification check was complited")
		}
	}
}
