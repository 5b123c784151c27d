// Package testdb opens a migrated in-memory SQLite database for tests.
package testdb

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	entity "hotbray.GO/model/entity"
	productEntity "hotbray.GO/model/entity/product"
)

var seq int64

// Open returns a fresh database private to t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, atomic.AddInt64(&seq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(entity.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// Price is a pointer helper for fixture prices.
func Price(v float64) *float64 { return &v }

// Str is a pointer helper for optional strings.
func Str(s string) *string { return &s }

// SeedProducts inserts products and fails the test on error.
func SeedProducts(t testing.TB, db *gorm.DB, products ...*productEntity.Product) {
	t.Helper()
	for _, p := range products {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed product %s: %v", p.PartNumber, err)
		}
	}
}

// SeedObsolete inserts an obsolete mapping.
func SeedObsolete(t testing.TB, db *gorm.DB, original, alternative string) {
	t.Helper()
	m := &productEntity.ObsoleteMap{OriginalPart: original, AlternativePart: alternative}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed obsolete %s: %v", original, err)
	}
}
