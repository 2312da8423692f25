package twitch_oauth_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwitchOAuthGetToken(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")
	t.Setenv("TWITCH_SECRET", "test-secret")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/oauth2/token", r.URL.Path)
		assert.Equal(t, "test-client-id", r.URL.Query().Get("client_id"))
		assert.Equal(t, "test-secret", r.URL.Query().Get("client_secret"))
		assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))

		w.Write([]byte(`{"access_token":"fresh-token","expires_in":5011271,"token_type":"bearer"}`))
	}))
	defer server.Close()

	twc := NewTwitchOauthClientWithHost(server.URL)

	tokenInfo, err := twc.TwitchOAuthGetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", tokenInfo.AccessToken)
	assert.Equal(t, int32(5011271), tokenInfo.ExpiresIn)
}

func TestTwitchOAuthGetTokenFailureNotRetried(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")
	t.Setenv("TWITCH_SECRET", "bad-secret")

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status":403,"message":"invalid client secret"}`))
	}))
	defer server.Close()

	twc := NewTwitchOauthClientWithHost(server.URL)

	_, err := twc.TwitchOAuthGetToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, 1, calls)
}

func TestTwitchOAuthGetTokenEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	twc := NewTwitchOauthClientWithHost(server.URL)

	_, err := twc.TwitchOAuthGetToken(context.Background())
	require.Error(t, err)
}
