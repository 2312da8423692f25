package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitch_live_notifier/internal/models"
)

func TestLoadStatesMissingFileIsEmpty(t *testing.T) {
	fc := NewStateFileClient(filepath.Join(t.TempDir(), "channel_states.json"))

	states, err := fc.LoadStates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel_states.json")
	fc := NewStateFileClient(path)

	ctx := context.Background()
	in := []models.ChannelState{
		{ChannelName: "foo", LiveStreamID: "555", NotificationMessageID: 12, EditCount: 1},
		{ChannelName: "bar"},
	}
	require.NoError(t, fc.SaveStates(ctx, in))

	out, err := fc.LoadStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveOverwritesFullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel_states.json")
	fc := NewStateFileClient(path)

	ctx := context.Background()
	require.NoError(t, fc.SaveStates(ctx, []models.ChannelState{
		{ChannelName: "foo", LiveStreamID: "555", NotificationMessageID: 12, EditCount: 1},
		{ChannelName: "bar", LiveStreamID: "7", NotificationMessageID: 3, EditCount: 0},
	}))
	require.NoError(t, fc.SaveStates(ctx, []models.ChannelState{
		{ChannelName: "foo", LiveStreamID: "556", NotificationMessageID: 13, EditCount: 0},
	}))

	out, err := fc.LoadStates(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "556", out[0].LiveStreamID)
}

func TestStateFileIsHumanInspectable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel_states.json")
	fc := NewStateFileClient(path)

	require.NoError(t, fc.SaveStates(context.Background(), []models.ChannelState{
		{ChannelName: "foo", LiveStreamID: "555", NotificationMessageID: 12, EditCount: 1},
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\"channelName\": \"foo\"")
	assert.Contains(t, string(raw), "\"liveStreamId\": \"555\"")
}

func TestLoadStatesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel_states.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fc := NewStateFileClient(path)

	_, err := fc.LoadStates(context.Background())
	require.Error(t, err)

	var persistErr *models.PersistenceError
	assert.ErrorAs(t, err, &persistErr)
}
