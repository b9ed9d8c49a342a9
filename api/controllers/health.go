package controllers

import (
	"net/http"

	"github.com/apexmotors/dealerdesk-backend/api/responses"
	"github.com/apexmotors/dealerdesk-backend/pkg/config"
	"github.com/apexmotors/dealerdesk-backend/pkg/db"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-DealerDesk-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, pinger db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-DealerDesk-Env", cfg.App.Env)
		if pinger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database client unavailable"))
			return
		}
		if err := pinger.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "database unreachable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
