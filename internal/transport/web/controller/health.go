package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/jbeshir/question-survey/internal/domain"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports liveness, and database reachability when DB is set.
type Health struct {
	DB Pinger
}

func (c Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if c.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		defer cancel()

		if err := c.DB.PingContext(pingCtx); err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "health check failed", "error", err)

			writeJSON(ctx, w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
	}

	writeJSON(ctx, w, http.StatusOK, HealthResponse{Status: "ok"})
}
