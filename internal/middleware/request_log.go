package middleware

import (
	"net/http"
	"time"

	"pharmacy-fulfillment/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog registra una línea por request con status y duración.
// Va después de chimw.RequestID y de AuthContext para incluir request_id y actor_id,
// y antes de chimw.Recoverer para que un panic quede registrado con status 500.
func RequestLog(l logger.Logger) func(http.Handler) http.Handler {
	if l == nil {
		l = logger.Nop()
	}
	l = l.With(logger.Fields{"component": "http"})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := logger.Fields{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if claims, ok := GetClaims(r.Context()); ok {
				fields["actor_id"] = claims.UserID
			}

			switch {
			case status >= 500:
				l.Error("request", fields)
			case status >= 400:
				l.Warn("request", fields)
			default:
				l.Info("request", fields)
			}
		})
	}
}
