package twitch_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fetchClient "twitch_live_notifier/internal/client/fetch-client"
)

type staticTokenProvider string

func (s staticTokenProvider) CurrentToken(ctx context.Context) string {
	return string(s)
}

func TestGetActiveStreamInfoByUser(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/helix/streams", r.URL.Path)
		assert.Equal(t, "somechannel", r.URL.Query().Get("user_login"))
		assert.Equal(t, "test-client-id", r.Header.Get("Client-Id"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Write([]byte(`{
			"data": [{
				"id": "555",
				"user_id": "42",
				"user_login": "somechannel",
				"user_name": "SomeChannel",
				"game_name": "Tetris",
				"type": "live",
				"title": "Test",
				"viewer_count": 10,
				"started_at": "2024-05-01T12:00:00Z"
			}],
			"pagination": {}
		}`))
	}))
	defer server.Close()

	twc := NewTwitchClientWithHost(fetchClient.NewFetchClient(), staticTokenProvider("test-token"), server.URL)

	streams, err := twc.GetActiveStreamInfoByUser(context.Background(), "somechannel")
	require.NoError(t, err)
	require.Len(t, streams.StreamInfo, 1)

	stream := streams.StreamInfo[0]
	assert.Equal(t, "555", stream.StreamId)
	assert.Equal(t, "Tetris", stream.GameName)
	assert.Equal(t, uint64(10), stream.ViewerCount)
}

func TestGetActiveStreamInfoByUserOffline(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [], "pagination": {}}`))
	}))
	defer server.Close()

	twc := NewTwitchClientWithHost(fetchClient.NewFetchClient(), staticTokenProvider("test-token"), server.URL)

	streams, err := twc.GetActiveStreamInfoByUser(context.Background(), "somechannel")
	require.NoError(t, err)
	assert.Empty(t, streams.StreamInfo)
}

func TestSearchChannelInfoByNameExactMatch(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/helix/search/channels", r.URL.Path)
		assert.Equal(t, "foo", r.URL.Query().Get("query"))

		// search returns fuzzy matches; only the exact login may be picked
		w.Write([]byte(`{
			"data": [
				{"broadcaster_login": "foobar", "display_name": "FooBar", "thumbnail_url": "https://cdn.example/foobar.png"},
				{"broadcaster_login": "FOO", "display_name": "Foo", "thumbnail_url": "https://cdn.example/foo.png"}
			]
		}`))
	}))
	defer server.Close()

	twc := NewTwitchClientWithHost(fetchClient.NewFetchClient(), staticTokenProvider("test-token"), server.URL)

	channelInfo, err := twc.SearchChannelInfoByName(context.Background(), "foo")
	require.NoError(t, err)
	require.NotNil(t, channelInfo)
	assert.Equal(t, "FOO", channelInfo.BroadcasterLogin)
	assert.Equal(t, "https://cdn.example/foo.png", channelInfo.ThumbnailUrl)
}

func TestSearchChannelInfoByNameNoMatch(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"broadcaster_login": "foobar"}]}`))
	}))
	defer server.Close()

	twc := NewTwitchClientWithHost(fetchClient.NewFetchClient(), staticTokenProvider("test-token"), server.URL)

	channelInfo, err := twc.SearchChannelInfoByName(context.Background(), "foo")
	require.NoError(t, err)
	assert.Nil(t, channelInfo)
}
