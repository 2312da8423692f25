package file

import (
	"context"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"twitch_live_notifier/internal/models"
)

// stateDocument is the on-disk shape: one record per tracked channel,
// human-inspectable.
type stateDocument struct {
	Channels []models.ChannelState `json:"channels"`
}

// StateFileClient persists the full channel-state set in a single JSON file.
// Single-process ownership is assumed; there is no cross-process locking.
type StateFileClient struct {
	path string
}

func NewStateFileClient(path string) *StateFileClient {
	return &StateFileClient{
		path: path,
	}
}

func (fc *StateFileClient) LoadStates(ctx context.Context) ([]models.ChannelState, error) {

	data, err := os.ReadFile(fc.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.ChannelState{}, nil
		}
		return nil, &models.PersistenceError{Op: "load", Err: err}
	}

	var doc stateDocument
	if err := jsoniter.Unmarshal(data, &doc); err != nil {
		return nil, &models.PersistenceError{Op: "load", Err: err}
	}

	return doc.Channels, nil
}

func (fc *StateFileClient) SaveStates(ctx context.Context, states []models.ChannelState) error {

	data, err := jsoniter.MarshalIndent(stateDocument{Channels: states}, "", "  ")
	if err != nil {
		return &models.PersistenceError{Op: "save", Err: err}
	}

	// temp file + rename so a crash mid-write never truncates the store
	tmp, err := os.CreateTemp(filepath.Dir(fc.path), ".channel_states_*")
	if err != nil {
		return &models.PersistenceError{Op: "save", Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &models.PersistenceError{Op: "save", Err: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &models.PersistenceError{Op: "save", Err: err}
	}

	if err := os.Rename(tmp.Name(), fc.path); err != nil {
		os.Remove(tmp.Name())
		return &models.PersistenceError{Op: "save", Err: err}
	}

	return nil
}
