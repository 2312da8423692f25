package status_handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"twitch_live_notifier/internal/middleware"
)

func (sh *StatusHandler) GetHealth(w http.ResponseWriter, r *http.Request) {

	middleware.WriteSuccessData(w, r, map[string]string{"status": "ok"})
}

// GetChannelStates exposes the persisted per-channel records, read-only.
func (sh *StatusHandler) GetChannelStates(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	states, err := sh.stateRepo.LoadStates(ctx)
	if err != nil {
		logrus.Error(err)
		middleware.WriteErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteSuccessData(w, r, states)
}
