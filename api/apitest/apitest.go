// Package apitest wires route modules onto a throwaway echo instance backed
// by an in-memory database.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"hotbray.GO/api"
	"hotbray.GO/config"
	"hotbray.GO/model/testdb"
)

// NewDeps returns default config plus a fresh migrated database.
func NewDeps(t testing.TB) *api.Deps {
	t.Helper()
	return &api.Deps{DB: testdb.Open(t), Config: config.Default()}
}

// Serve registers each module on the root group.
func Serve(deps *api.Deps, modules ...api.ModuleFunc) *echo.Echo {
	e := echo.New()
	root := e.Group("")
	for _, m := range modules {
		m(root, deps)
	}
	return e
}

// Do performs a request. A non-nil body is sent as JSON.
func Do(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// JSON decodes the recorder body into a generic map.
func JSON(t testing.TB, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return m
}

// Expect fails the test when the status differs.
func Expect(t testing.TB, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body=%s", rec.Code, status, rec.Body.String())
	}
}

