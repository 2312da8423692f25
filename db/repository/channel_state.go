package repository

import (
	"context"

	"github.com/pkg/errors"

	"twitch_live_notifier/internal/models"
)

// LoadStates reads the full channel-state set.
func (dbr *DBRepository) LoadStates(ctx context.Context) (states []models.ChannelState, err error) {

	query := `
		select
			cs.channel_name,
			cs.live_stream_id,
			cs.notification_message_id,
			cs.edit_count
		from channel_states cs
		order by cs.channel_name;
	`

	states = []models.ChannelState{}
	err = dbr.db.SelectContext(ctx, &states, query)
	if err != nil {
		return nil, &models.PersistenceError{Op: "load", Err: errors.Wrap(err, "SelectContext")}
	}

	return
}

// SaveStates replaces the full channel-state set in one transaction,
// mirroring the read-modify-write cycle of the file backend.
func (dbr *DBRepository) SaveStates(ctx context.Context, states []models.ChannelState) error {

	tx, err := dbr.BeginTransaction(ctx)
	if err != nil {
		return &models.PersistenceError{Op: "save", Err: errors.Wrap(err, "BeginTransaction")}
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `delete from channel_states;`); err != nil {
		return &models.PersistenceError{Op: "save", Err: errors.Wrap(err, "ExecContext delete")}
	}

	query := `
		insert into channel_states (channel_name, live_stream_id, notification_message_id, edit_count)
			values ($1, $2, $3, $4);
	`

	for _, state := range states {
		if _, err := tx.ExecContext(ctx, query,
			state.ChannelName, state.LiveStreamID, state.NotificationMessageID, state.EditCount); err != nil {
			return &models.PersistenceError{Op: "save", Err: errors.Wrap(err, "ExecContext insert")}
		}
	}

	if err := tx.Commit(); err != nil {
		return &models.PersistenceError{Op: "save", Err: errors.Wrap(err, "Commit")}
	}

	return nil
}
