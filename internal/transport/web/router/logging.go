package router

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jbeshir/question-survey/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// newLoggingMiddleware attaches a request-scoped logger to the context, tagged
// with a request ID that is also echoed back in the response headers.
func newLoggingMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			logger := base.With(
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
			)
			ctx := domain.ContextWithLogger(r.Context(), logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
