package search

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"

	"hotbray.GO/api"
	"hotbray.GO/api/apitest"
	"hotbray.GO/config"
	searchService "hotbray.GO/service/search"
)

func fakeIndex(t *testing.T, status int, body string) *searchService.Gateway {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	if err != nil {
		t.Fatal(err)
	}
	return searchService.NewGateway(es, "products", nil, 0)
}

func TestSearch_EmptyQueryWithoutIndex(t *testing.T) {
	e := apitest.Serve(&api.Deps{Config: config.Default()}, RegisterSearchRoutes)

	rec := apitest.Do(e, http.MethodGet, "/search?q=%20", nil)
	apitest.Expect(t, rec, http.StatusOK)
	if hits := apitest.JSON(t, rec)["hits"].([]interface{}); len(hits) != 0 {
		t.Errorf("hits = %v", hits)
	}

	rec = apitest.Do(e, http.MethodGet, "/search/suggest", nil)
	apitest.Expect(t, rec, http.StatusOK)
}

func TestSearch_Hits(t *testing.T) {
	gw := fakeIndex(t, 200, `{"took":3,"hits":{"total":{"value":1},"hits":[{"_source":{"id":9,"name":"Brake pad","part_number":"BP-9","price":40}}]}}`)
	e := apitest.Serve(&api.Deps{Config: config.Default(), Search: gw}, RegisterSearchRoutes)

	rec := apitest.Do(e, http.MethodGet, "/search?q=breaks&limit=5", nil)
	apitest.Expect(t, rec, http.StatusOK)
	body := apitest.JSON(t, rec)
	if body["estimatedTotalHits"].(float64) != 1 || body["limit"].(float64) != 5 {
		t.Errorf("body = %v", body)
	}
	hit := body["hits"].([]interface{})[0].(map[string]interface{})
	if hit["part_number"] != "BP-9" {
		t.Errorf("hit = %v", hit)
	}

	rec = apitest.Do(e, http.MethodGet, "/search/suggest?q=brak", nil)
	apitest.Expect(t, rec, http.StatusOK)
	s := apitest.JSON(t, rec)["suggestions"].([]interface{})
	if len(s) != 1 || s[0].(map[string]interface{})["name"] != "Brake pad" {
		t.Errorf("suggestions = %v", s)
	}
}

func TestSearch_Errors(t *testing.T) {
	gw := fakeIndex(t, 500, `{"error":"boom"}`)
	e := apitest.Serve(&api.Deps{Config: config.Default(), Search: gw}, RegisterSearchRoutes)

	rec := apitest.Do(e, http.MethodGet, "/search?q=oil", nil)
	apitest.Expect(t, rec, http.StatusInternalServerError)
	if msg := apitest.JSON(t, rec)["error"]; msg != "Search error" {
		t.Errorf("error = %v", msg)
	}

	rec = apitest.Do(e, http.MethodGet, "/search?q=oil&filters=colour:red", nil)
	apitest.Expect(t, rec, http.StatusBadRequest)

	rec = apitest.Do(e, http.MethodGet, "/search/suggest?q=oil", nil)
	apitest.Expect(t, rec, http.StatusInternalServerError)
	if msg := apitest.JSON(t, rec)["error"]; msg != "Suggest error" {
		t.Errorf("error = %v", msg)
	}
}
