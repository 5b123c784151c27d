package product

import (
	"context"
	"errors"
	"testing"

	productEntity "hotbray.GO/model/entity/product"
	"hotbray.GO/model/testdb"
)

func seed(t *testing.T) *ProductRepository {
	db := testdb.Open(t)
	testdb.SeedProducts(t, db,
		&productEntity.Product{PartNumber: "abc-100", Name: "Brake pad", Price: testdb.Price(12.5)},
		&productEntity.Product{PartNumber: "XYZ-200", Name: "Wiper blade"},
		&productEntity.Product{PartNumber: "NEW-300", Name: "Battery"},
	)
	testdb.SeedObsolete(t, db, "OLD-300", "NEW-300")
	testdb.SeedObsolete(t, db, "DEAD-1", "GONE-1")
	return NewProductRepository(db)
}

func TestFindByPartNumber_CaseInsensitive(t *testing.T) {
	repo := seed(t)
	p, err := repo.FindByPartNumber(context.Background(), "ABC-100")
	if err != nil {
		t.Fatalf("FindByPartNumber: %v", err)
	}
	if p.Name != "Brake pad" {
		t.Errorf("Name = %q", p.Name)
	}
	if _, err := repo.FindByPartNumber(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing part err = %v, want ErrNotFound", err)
	}
}

func TestFindByPartNumbers_KeyedUpper(t *testing.T) {
	repo := seed(t)
	got, err := repo.FindByPartNumbers(context.Background(), []string{"ABC-100", "XYZ-200", "MISSING"})
	if err != nil {
		t.Fatalf("FindByPartNumbers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got["ABC-100"] == nil || got["ABC-100"].PartNumber != "abc-100" {
		t.Errorf("ABC-100 = %+v", got["ABC-100"])
	}
	empty, err := repo.FindByPartNumbers(context.Background(), nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("empty input = %v, %v", empty, err)
	}
}

func TestFindObsoleteAlternative(t *testing.T) {
	repo := seed(t)
	alt, err := repo.FindObsoleteAlternative(context.Background(), "OLD-300")
	if err != nil {
		t.Fatalf("FindObsoleteAlternative: %v", err)
	}
	if alt.PartNumber != "NEW-300" {
		t.Errorf("alternative = %q, want NEW-300", alt.PartNumber)
	}
	// mapping to a product that no longer exists resolves to nothing
	if _, err := repo.FindObsoleteAlternative(context.Background(), "DEAD-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("dangling mapping err = %v, want ErrNotFound", err)
	}
}

func TestInBatches(t *testing.T) {
	repo := seed(t)
	var seen, calls int
	err := repo.InBatches(context.Background(), 2, func(batch []productEntity.Product) error {
		calls++
		seen += len(batch)
		return nil
	})
	if err != nil {
		t.Fatalf("InBatches: %v", err)
	}
	if seen != 3 || calls != 2 {
		t.Errorf("seen=%d calls=%d, want 3 and 2", seen, calls)
	}
}
