package status_handler

import (
	"context"

	"twitch_live_notifier/internal/models"
)

type stateRepository interface {
	LoadStates(ctx context.Context) ([]models.ChannelState, error)
}

type StatusHandler struct {
	stateRepo stateRepository
}

func NewStatusHandler(stateRepo stateRepository) *StatusHandler {
	return &StatusHandler{
		stateRepo: stateRepo,
	}
}
