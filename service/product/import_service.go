// Package product loads the parts catalog from CSV exports into the products
// and obsolete_map tables.
package product

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	productEntity "hotbray.GO/model/entity/product"
	productRepo "hotbray.GO/model/repository/product"
	"hotbray.GO/service/fastorder"
)

// ImportOptions configures a catalog import run.
type ImportOptions struct {
	BatchSize int
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows   int
	Created     int
	Updated     int
	Skipped     int
	Obsolete    int
	Warnings    []string
	ProcessTime time.Duration
	DBTime      time.Duration
	TotalTime   time.Duration
}

// columnAliases maps accepted header spellings to the products column.
var columnAliases = map[string]string{
	"part_number":             "part_number",
	"partnumber":              "part_number",
	"part":                    "part_number",
	"sku":                     "part_number",
	"name":                    "name",
	"price":                   "price",
	"image":                   "image",
	"description":             "description",
	"category":                "category",
	"brand":                   "brand",
	"is_obsolete":             "is_obsolete",
	"obsolete":                "is_obsolete",
	"alternative_part_number": "alternative_part_number",
	"alternative":             "alternative_part_number",
}

// ImportProducts reads CSV data from r and upserts products keyed by
// normalized part number. Rows flagged obsolete with an alternative also
// get an obsolete_map entry when the alternative is in the catalog.
func ImportProducts(ctx context.Context, db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	startTotal := time.Now()
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	result := &ImportResult{}
	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		col, ok := columnAliases[key]
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("column %q: unknown, skipping", h))
			continue
		}
		if _, dup := colIndex[col]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf("column %q: duplicate of %s, skipping", h, col))
			continue
		}
		colIndex[col] = i
	}
	if _, ok := colIndex["part_number"]; !ok {
		return nil, fmt.Errorf("CSV must contain a 'part_number' column")
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}
	result.TotalRows = len(rows)

	startProcess := time.Now()
	parsed := collectRows(rows, colIndex, result)

	existing, err := lookupParts(ctx, db, parsed.order, opts.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("load existing products: %w", err)
	}
	result.ProcessTime = time.Since(startProcess)

	startDB := time.Now()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, updated, err := flushProducts(tx, parsed, existing, opts.BatchSize)
		if err != nil {
			return err
		}
		result.Created, result.Updated = created, updated
		n, err := flushObsolete(tx, parsed.obsolete, result)
		result.Obsolete = n
		return err
	})
	if err != nil {
		return nil, err
	}
	result.DBTime = time.Since(startDB)
	result.TotalTime = time.Since(startTotal)
	return result, nil
}

// lookupParts batch-queries existing products and returns them keyed by normalized part.
func lookupParts(ctx context.Context, db *gorm.DB, parts []string, batchSize int) (map[string]*productEntity.Product, error) {
	repo := productRepo.NewProductRepository(db)
	out := make(map[string]*productEntity.Product, len(parts))
	for i := 0; i < len(parts); i += batchSize {
		end := i + batchSize
		if end > len(parts) {
			end = len(parts)
		}
		chunk, err := repo.FindByPartNumbers(ctx, parts[i:end])
		if err != nil {
			return nil, err
		}
		for k, v := range chunk {
			out[k] = v
		}
	}
	return out, nil
}

// flushProducts inserts new parts in batches and updates known ones in place.
func flushProducts(tx *gorm.DB, parsed *catalogRows, existing map[string]*productEntity.Product, batchSize int) (created, updated int, err error) {
	var fresh []productEntity.Product
	for _, key := range parsed.order {
		p := parsed.byPart[key]
		cur, ok := existing[key]
		if !ok {
			fresh = append(fresh, *p)
			continue
		}
		p.ID = cur.ID
		if err := tx.Model(&productEntity.Product{ID: cur.ID}).Select("*").Omit("id").Updates(p).Error; err != nil {
			return created, updated, fmt.Errorf("update %s: %w", p.PartNumber, err)
		}
		updated++
	}
	if len(fresh) > 0 {
		if err := tx.Session(&gorm.Session{CreateBatchSize: batchSize}).Create(&fresh).Error; err != nil {
			return created, updated, fmt.Errorf("insert products: %w", err)
		}
	}
	return len(fresh), updated, nil
}

func normalizeKey(part string) string { return fastorder.Normalize(part) }
