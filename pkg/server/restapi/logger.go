package restapi

import (
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

// statusWriter remembers the status code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Logger wraps an api handler with structured request logging.
func Logger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		inner.ServeHTTP(sw, r)

		slog.Info("request handled",
			"handler", name,
			"method", r.Method,
			"path", r.RequestURI,
			"status", sw.status,
			"duration", time.Since(start).String(),
		)
	})
}
