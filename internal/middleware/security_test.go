package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecurityHeaders_Production(t *testing.T) {
	cfg := DefaultSecurityHeadersConfig(false)
	handler := SecurityHeaders(cfg)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	headers := rec.Header()
	if headers.Get("Content-Security-Policy") == "" {
		t.Error("Content-Security-Policy not set")
	}
	if headers.Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", headers.Get("X-Content-Type-Options"))
	}
	if headers.Get("X-Frame-Options") != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options = %q", headers.Get("X-Frame-Options"))
	}

	hsts := headers.Get("Strict-Transport-Security")
	if !strings.Contains(hsts, "max-age=31536000") || !strings.Contains(hsts, "includeSubDomains") {
		t.Errorf("Strict-Transport-Security = %q", hsts)
	}
}

func TestSecurityHeaders_DevelopmentSkipsHSTS(t *testing.T) {
	cfg := DefaultSecurityHeadersConfig(true)
	handler := SecurityHeaders(cfg)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if hsts := rec.Header().Get("Strict-Transport-Security"); hsts != "" {
		t.Errorf("HSTS should be disabled in development, got %q", hsts)
	}
}

func TestBuildCSP_Ordering(t *testing.T) {
	csp := buildCSP(map[string]string{
		"form-action": "'self'",
		"default-src": "'self'",
		"object-src":  "'none'",
	})

	want := "default-src 'self'; object-src 'none'; form-action 'self'"
	if csp != want {
		t.Errorf("buildCSP = %q, want %q", csp, want)
	}
}
