package twitch_client

import (
	"context"
	"os"

	fetchClient "twitch_live_notifier/internal/client/fetch-client"
	"twitch_live_notifier/internal/models"
)

// tokenProvider exposes the current app access token, owned by the
// credential lease service.
type tokenProvider interface {
	CurrentToken(ctx context.Context) string
}

type TwitchClient struct {
	fetchClient        *fetchClient.FetchClient
	twitchTokenService tokenProvider
	apiSchemeHost      string
}

func NewTwitchClient(fetchClient *fetchClient.FetchClient, twitchTokenService tokenProvider) *TwitchClient {
	return &TwitchClient{
		fetchClient:        fetchClient,
		twitchTokenService: twitchTokenService,
		apiSchemeHost:      models.TwitchAPISchemeHost,
	}
}

// NewTwitchClientWithHost is used by tests to point the client at a fake API.
func NewTwitchClientWithHost(fetchClient *fetchClient.FetchClient, twitchTokenService tokenProvider, apiSchemeHost string) *TwitchClient {
	return &TwitchClient{
		fetchClient:        fetchClient,
		twitchTokenService: twitchTokenService,
		apiSchemeHost:      apiSchemeHost,
	}
}

func clientID() string {
	return os.Getenv("TWITCH_CLIENT_ID")
}
