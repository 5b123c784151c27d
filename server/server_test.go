package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotbray.GO/api/apitest"
	_ "hotbray.GO/api/health"
)

func TestNew_AppliesModulesAndMiddleware(t *testing.T) {
	e := New(apitest.NewDeps(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow-origin = %q", got)
	}
	if rec.Header().Get("X-Request-Duration-ms") == "" {
		t.Error("missing X-Request-Duration-ms header")
	}

	rec = apitest.Do(e, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "hotbray_http_requests_total") {
		t.Errorf("metrics status = %d", rec.Code)
	}
}
