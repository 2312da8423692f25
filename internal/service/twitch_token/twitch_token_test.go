package twitch_token

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitch_live_notifier/internal/models"
)

type fakeOauthClient struct {
	token string
	err   error
	calls int
}

func (f *fakeOauthClient) TwitchOAuthGetToken(ctx context.Context) (*models.TwitchOauthGetTokenResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.TwitchOauthGetTokenResponse{
		AccessToken: f.token,
		ExpiresIn:   3600,
		TokenType:   "bearer",
	}, nil
}

func TestInitialSyncSetsToken(t *testing.T) {
	client := &fakeOauthClient{token: "token-1"}

	tts := NewTwitchTokenService(client)

	assert.Equal(t, "token-1", tts.CurrentToken(context.Background()))
	assert.Equal(t, 1, client.calls)
}

func TestSyncReplacesToken(t *testing.T) {
	client := &fakeOauthClient{token: "token-1"}
	tts := NewTwitchTokenService(client)

	client.token = "token-2"
	require.NoError(t, tts.Sync(context.Background()))

	assert.Equal(t, "token-2", tts.CurrentToken(context.Background()))
}

func TestSyncFailureKeepsPreviousToken(t *testing.T) {
	client := &fakeOauthClient{token: "token-1"}
	tts := NewTwitchTokenService(client)

	client.err = errors.New("auth endpoint down")
	err := tts.Sync(context.Background())
	require.Error(t, err)

	// stale token stays current until the next scheduled refresh
	assert.Equal(t, "token-1", tts.CurrentToken(context.Background()))
}

func TestStartupFailureLeavesEmptyToken(t *testing.T) {
	client := &fakeOauthClient{err: errors.New("misconfigured credentials")}

	tts := NewTwitchTokenService(client)

	assert.Equal(t, "", tts.CurrentToken(context.Background()))
}
