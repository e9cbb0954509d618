package middleware

import (
	"log/slog"
	"net/http"

	"github.com/hearthealth/heart-health-api/internal/api/shared"
	"github.com/hearthealth/heart-health-api/internal/platform/logger"
)

// Trace assigns each request a trace ID and a logger carrying it, so every
// log line and error body produced downstream can be correlated. Apply it
// before any middleware that may log or reject.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithContext(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
