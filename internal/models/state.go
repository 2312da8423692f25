package models

// ChannelConfig is the user-declared watch entry, immutable within a tick.
type ChannelConfig struct {
	ChannelName     string `json:"channelName" mapstructure:"channelName"`
	CommunityInvite string `json:"communityInvite" mapstructure:"communityInvite"`
}

// ChannelState is the persisted per-channel record.
// NotificationMessageID is set iff LiveStreamID is set; EditCount resets to 0
// whenever LiveStreamID changes.
type ChannelState struct {
	ChannelName           string `json:"channelName" db:"channel_name"`
	LiveStreamID          string `json:"liveStreamId,omitempty" db:"live_stream_id"`
	NotificationMessageID int    `json:"notificationMessageId,omitempty" db:"notification_message_id"`
	EditCount             uint32 `json:"editCount" db:"edit_count"`
}

// IsLive reports whether the record currently tracks a live session.
func (cs ChannelState) IsLive() bool {
	return cs.LiveStreamID != ""
}
