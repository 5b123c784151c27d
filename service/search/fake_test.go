package search

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/require"
)

// fakeES is a minimal Elasticsearch stand-in. Handlers are keyed by
// "METHOD /path"; every request is recorded.
type fakeES struct {
	mu       sync.Mutex
	routes   map[string]func(body []byte) (int, string)
	requests []recorded
}

type recorded struct {
	Route string
	Body  []byte
}

func newFakeES(t *testing.T) (*fakeES, *elasticsearch.Client) {
	t.Helper()
	f := &fakeES{routes: map[string]func([]byte) (int, string){}}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return f, es
}

func (f *fakeES) on(route string, h func(body []byte) (int, string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[route] = h
}

func (f *fakeES) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	route := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, recorded{Route: route, Body: body})
	h := f.routes[route]
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if h == nil {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no route"}`))
		return
	}
	status, resp := h(body)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp))
}

func (f *fakeES) calls(route string) []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recorded
	for _, r := range f.requests {
		if r.Route == route {
			out = append(out, r)
		}
	}
	return out
}

func decodeBody(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func ndjsonLines(raw []byte) []string {
	return strings.Split(strings.TrimSpace(string(raw)), "\n")
}
