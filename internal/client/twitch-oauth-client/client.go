package twitch_oauth_client

import (
	"time"

	"twitch_live_notifier/internal/models"
)

const oauthTimeout = time.Second * 10

type TwitchOauthClient struct {
	oauthSchemeHost string
}

func NewTwitchOauthClient() *TwitchOauthClient {
	return &TwitchOauthClient{
		oauthSchemeHost: models.TwitchOauthSchemeHost,
	}
}

// NewTwitchOauthClientWithHost is used by tests to point the client at a fake
// auth endpoint.
func NewTwitchOauthClientWithHost(oauthSchemeHost string) *TwitchOauthClient {
	return &TwitchOauthClient{
		oauthSchemeHost: oauthSchemeHost,
	}
}
