package rating

import (
	"context"
	"testing"

	ratingEntity "hotbray.GO/model/entity/rating"
	"hotbray.GO/model/testdb"
)

func TestCreateAndListByProduct(t *testing.T) {
	repo := NewRatingRepository(testdb.Open(t))
	ctx := context.Background()
	for _, rt := range []*ratingEntity.Rating{
		{UserID: "u1", ProductID: 7, Rating: 5, Review: "great"},
		{UserID: "u2", ProductID: 7, Rating: 3, Review: "ok"},
		{UserID: "u1", ProductID: 8, Rating: 1, Review: "bad"},
	} {
		if err := repo.Create(ctx, rt); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if rt.ID == 0 {
			t.Fatal("ID not assigned")
		}
	}
	rows, err := repo.ListByProduct(ctx, 7)
	if err != nil {
		t.Fatalf("ListByProduct: %v", err)
	}
	if len(rows) != 2 || rows[0].Review != "great" {
		t.Errorf("rows = %+v", rows)
	}
	none, err := repo.ListByProduct(ctx, 99)
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("unknown product = %v, %v; want empty non-nil slice", none, err)
	}
}
