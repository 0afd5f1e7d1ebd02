package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// Metrics Guard Tests
// =============================================================================

func scrapeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pageroute_http_requests_total 1"))
	})
}

func TestMetricsGuard_AllowsValidCredentials(t *testing.T) {
	wrapped := NewMetricsGuard("scraper", "s3cret", nil).Handler(scrapeHandler())

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.SetBasicAuth("scraper", "s3cret")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "pageroute_http_requests_total 1" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestMetricsGuard_RejectsBadCredentials(t *testing.T) {
	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
	}{
		{"no credentials", "", "", false},
		{"wrong password", "scraper", "nope", true},
		{"wrong username", "admin", "s3cret", true},
		{"empty credentials", "", "", true},
	}

	wrapped := NewMetricsGuard("scraper", "s3cret", nil).Handler(scrapeHandler())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/metrics", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rec.Code)
			}
			if got := rec.Header().Get("WWW-Authenticate"); got != `Basic realm="pageroute metrics"` {
				t.Errorf("unexpected WWW-Authenticate header %q", got)
			}
		})
	}
}

func TestMetricsGuard_DisabledWithoutCredentials(t *testing.T) {
	guard := NewMetricsGuard("", "", nil)
	if guard.Enabled() {
		t.Fatal("expected guard to be disabled")
	}

	rec := httptest.NewRecorder()
	guard.Handler(scrapeHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}
