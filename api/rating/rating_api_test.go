package rating

import (
	"net/http"
	"testing"

	"hotbray.GO/api/apitest"
)

func TestRatings_AddAndList(t *testing.T) {
	e := apitest.Serve(apitest.NewDeps(t), RegisterRatingRoutes)

	rec := apitest.Do(e, http.MethodPost, "/ratings/add", map[string]interface{}{
		"userId": "u-9", "productId": "3", "rating": 5, "review": "Fits perfectly",
	})
	apitest.Expect(t, rec, http.StatusOK)
	body := apitest.JSON(t, rec)
	if body["message"] != "Rating submitted successfully" {
		t.Errorf("message = %v", body["message"])
	}
	data := body["data"].(map[string]interface{})
	if data["id"].(float64) == 0 || data["product_id"].(float64) != 3 {
		t.Errorf("data = %v", data)
	}

	rec = apitest.Do(e, http.MethodGet, "/ratings/3", nil)
	apitest.Expect(t, rec, http.StatusOK)
	if rec.Body.String() == "null\n" {
		t.Fatal("want array, got null")
	}
	rec = apitest.Do(e, http.MethodGet, "/ratings/4", nil)
	apitest.Expect(t, rec, http.StatusOK)
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("empty list body = %q", got)
	}
}

func TestRatings_MissingFields(t *testing.T) {
	e := apitest.Serve(apitest.NewDeps(t), RegisterRatingRoutes)

	for _, body := range []map[string]interface{}{
		{"userId": "u", "productId": 1, "rating": 4},
		{"productId": 1, "rating": 4, "review": "ok"},
		{"userId": "u", "productId": 1, "rating": 0, "review": "ok"},
		{"userId": "u", "productId": "abc", "rating": 4, "review": "ok"},
	} {
		rec := apitest.Do(e, http.MethodPost, "/ratings/add", body)
		apitest.Expect(t, rec, http.StatusBadRequest)
	}
	apitest.Expect(t, apitest.Do(e, http.MethodGet, "/ratings/x", nil), http.StatusBadRequest)
}
