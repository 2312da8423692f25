package notification

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"twitch_live_notifier/internal/models"
	configService "twitch_live_notifier/internal/service/config"
	formater "twitch_live_notifier/internal/utils/formater"
)

// Sync runs one reconciliation tick: load the persisted state set, process
// every configured channel concurrently, then persist the full set behind a
// join barrier. Per-channel failures are isolated and only logged; a
// persistence failure aborts the tick without a partial save.
func (sns *StreamNotificationService) Sync(ctx context.Context) error {

	opts := sns.configService.Options()

	states, err := sns.stateRepo.LoadStates(ctx)
	if err != nil {
		return errors.Wrap(err, "LoadStates")
	}

	stateByChannel := make(map[string]models.ChannelState, len(states))
	for _, state := range states {
		stateByChannel[formater.ToLower(state.ChannelName)] = state
	}

	watched := make([]models.ChannelConfig, 0, len(opts.Channels))
	for _, channel := range opts.Channels {
		// a channel entry without a name is not an error, just skipped
		if channel.ChannelName == "" {
			continue
		}
		watched = append(watched, channel)
	}

	// every worker owns exactly one result slot, so the only
	// synchronization needed is the join before the batch save
	results := make([]models.ChannelState, len(watched))

	wg := new(sync.WaitGroup)
	for i, channel := range watched {
		prior, ok := stateByChannel[formater.ToLower(channel.ChannelName)]
		if !ok {
			prior = models.ChannelState{ChannelName: formater.ToLower(channel.ChannelName)}
		}

		wg.Add(1)
		go func(i int, channel models.ChannelConfig, prior models.ChannelState) {
			defer wg.Done()
			results[i] = sns.reconcileChannel(ctx, opts, channel, prior)
		}(i, channel, prior)
	}
	wg.Wait()

	err = sns.stateRepo.SaveStates(ctx, results)
	if err != nil {
		return errors.Wrap(err, "SaveStates")
	}

	return nil
}

// reconcileChannel applies the per-channel decision algorithm and returns the
// next persisted state. Any skip returns the prior state untouched.
func (sns *StreamNotificationService) reconcileChannel(
	ctx context.Context,
	opts configService.Options,
	channel models.ChannelConfig,
	prior models.ChannelState,
) models.ChannelState {

	streams, err := sns.twitchClient.GetActiveStreamInfoByUser(ctx, channel.ChannelName)
	if err != nil {
		logSkip(channel.ChannelName, "stream status", err)
		return prior
	}

	// an empty list means offline; a channel going offline is never an
	// explicit event, the notification simply stops being edited
	if streams == nil || len(streams.StreamInfo) == 0 {
		return prior
	}

	stream := streams.StreamInfo[0]

	channelInfo, err := sns.twitchClient.SearchChannelInfoByName(ctx, channel.ChannelName)
	if err != nil {
		logSkip(channel.ChannelName, "channel metadata", err)
		return prior
	}
	if channelInfo == nil {
		logrus.Infof("channel %s: metadata unavailable, skipping tick", channel.ChannelName)
		return prior
	}

	card := buildStreamCard(stream, channelInfo, channel, opts.OwnerIdentity)

	if prior.LiveStreamID == stream.StreamId {
		// continuing session: edit in place under the cap, keeping the
		// last successfully rendered preview once the cap is reached
		if prior.EditCount >= opts.MaxEditsPerStream {
			return prior
		}

		err := sns.sink.EditStreamCard(ctx, prior.NotificationMessageID, card)
		if err != nil {
			if errors.Is(err, models.ErrMessageNotFound) {
				logrus.Errorf("channel %s: notification message %d is gone, keeping state until a new session", channel.ChannelName, prior.NotificationMessageID)
			} else {
				logrus.Errorf("channel %s: could not edit notification: %v", channel.ChannelName, err)
			}
			return prior
		}

		prior.EditCount++
		return prior
	}

	// new session, including supersession of a previous stream id
	messageID, err := sns.sink.SendStreamCard(ctx, card)
	if err != nil {
		logrus.Errorf("channel %s: could not send notification: %v", channel.ChannelName, err)
		return prior
	}

	return models.ChannelState{
		ChannelName:           formater.ToLower(channel.ChannelName),
		LiveStreamID:          stream.StreamId,
		NotificationMessageID: messageID,
		EditCount:             0,
	}
}

func buildStreamCard(
	stream models.Stream,
	channelInfo *models.ChannelInfo,
	channel models.ChannelConfig,
	ownerIdentity string,
) models.StreamCard {

	twitchLink := fmt.Sprintf("%s/%s", models.TwitchWWWSchemeHost, stream.UserLogin)

	fields := []models.StreamCardField{
		{Name: "Playing:", Value: stream.GameName, Inline: true},
		{Name: "Viewers:", Value: strconv.FormatUint(stream.ViewerCount, 10), Inline: true},
		{Name: "Live for:", Value: formater.CreateStreamDuration(stream.StartedAt), Inline: true},
	}

	if channel.CommunityInvite != "" {
		fields = append(fields, models.StreamCardField{Name: "Community:", Value: channel.CommunityInvite})
	} else {
		fields = append(fields, models.StreamCardField{Name: models.BlankField, Value: models.BlankField})
	}

	var footer string
	if ownerIdentity != "" && formater.SameChannel(stream.UserLogin, ownerIdentity) {
		footer = "Let us fail again!"
	}

	return models.StreamCard{
		Announcement: fmt.Sprintf("Hey @everyone, %s is now live on %s Go check it out!", stream.UserName, twitchLink),
		Title:        stream.Title,
		URL:          twitchLink,
		Color:        models.StreamCardColor,
		AuthorName:   stream.UserName,
		AuthorIcon:   channelInfo.ThumbnailUrl,
		AuthorURL:    twitchLink,
		Fields:       fields,
		Footer:       footer,
		ImageURL:     formater.CreatePreviewURL(stream.UserLogin),
		ThumbnailURL: channelInfo.ThumbnailUrl,
	}
}

func logSkip(channelName, operation string, err error) {

	var httpErr *models.HTTPError
	if errors.As(err, &httpErr) && httpErr.Unauthorized() {
		logrus.Errorf("channel %s: %s fetch unauthorized (credential problem), skipping tick: %v", channelName, operation, err)
		return
	}

	logrus.Errorf("channel %s: could not fetch %s, skipping tick: %v", channelName, operation, err)
}
