package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// MetricsGuard protects the Prometheus scrape endpoint with HTTP basic auth.
// A guard built without credentials lets every request through.
type MetricsGuard struct {
	username []byte
	password []byte
	logger   *slog.Logger
}

// NewMetricsGuard returns a guard for the given credentials.
func NewMetricsGuard(username, password string, logger *slog.Logger) *MetricsGuard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MetricsGuard{
		username: []byte(username),
		password: []byte(password),
		logger:   logger,
	}
}

// Enabled reports whether credentials are required.
func (g *MetricsGuard) Enabled() bool {
	return len(g.username) > 0 || len(g.password) > 0
}

func (g *MetricsGuard) Handler(next http.Handler) http.Handler {
	if !g.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		// Compare both fields even when the first mismatches
		userOK := subtle.ConstantTimeCompare([]byte(user), g.username) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), g.password) == 1
		if !ok || !userOK || !passOK {
			g.logger.Warn("metrics scrape rejected",
				"ip", getClientIP(r),
				"request_id", RequestID(r.Context()),
			)
			w.Header().Set("WWW-Authenticate", `Basic realm="pageroute metrics"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
