package models

import "time"

type ChannelSearchResponse struct {
	Data []ChannelInfo `json:"data"`
}

type ChannelInfo struct {
	BroadcasterLang  string    `json:"broadcaster_language"` // Channel language
	BroadcasterLogin string    `json:"broadcaster_login"`    // Channel login name
	DisplayName      string    `json:"display_name"`         // Channel display name
	GameId           string    `json:"game_id"`              // ID of the game being played
	GameName         string    `json:"game_name"`            // Name of the game being played
	ChannelId        string    `json:"id"`                   // Channel ID
	IsLive           bool      `json:"is_live"`              // Whether the channel is currently broadcasting
	ThumbnailUrl     string    `json:"thumbnail_url"`        // URL of the channel's profile thumbnail
	Title            string    `json:"title"`                // Title of the last or current broadcast
	StartedAt        time.Time `json:"started_at"`           // Zero when the channel is not live
}
