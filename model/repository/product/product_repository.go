package product

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	productEntity "hotbray.GO/model/entity/product"
)

// ErrNotFound is returned when no product (or no live alternative) matches.
var ErrNotFound = errors.New("product not found")

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByPartNumber returns the product whose upper-cased part_number equals part.
// part must already be normalized.
func (r *ProductRepository) FindByPartNumber(ctx context.Context, part string) (*productEntity.Product, error) {
	var p productEntity.Product
	res := r.db.WithContext(ctx).Where("UPPER(part_number) = ?", part).Limit(1).Find(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &p, nil
}

// FindByPartNumbers fetches all normalized parts with a single IN query.
// The result is keyed by upper-cased part number; missing parts are absent.
func (r *ProductRepository) FindByPartNumbers(ctx context.Context, parts []string) (map[string]*productEntity.Product, error) {
	out := make(map[string]*productEntity.Product, len(parts))
	if len(parts) == 0 {
		return out, nil
	}
	var rows []productEntity.Product
	if err := r.db.WithContext(ctx).Where("UPPER(part_number) IN ?", parts).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[strings.ToUpper(rows[i].PartNumber)] = &rows[i]
	}
	return out, nil
}

// FindObsoleteAlternative follows obsolete_map from the normalized original part
// to its replacement. A mapping whose alternative is not a live product is
// treated as not found.
func (r *ProductRepository) FindObsoleteAlternative(ctx context.Context, part string) (*productEntity.Product, error) {
	const query = `
		SELECT a.*
		FROM obsolete_map o
		JOIN products a ON UPPER(a.part_number) = UPPER(o.alternative_part)
		WHERE UPPER(o.original_part) = ?
		LIMIT 1`
	var rows []productEntity.Product
	if err := r.db.WithContext(ctx).Raw(query, part).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*productEntity.Product, error) {
	var p productEntity.Product
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &p, nil
}

// FindByIDs returns products keyed by id.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*productEntity.Product, error) {
	out := make(map[uint]*productEntity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []productEntity.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = &rows[i]
	}
	return out, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]productEntity.Product, error) {
	var rows []productEntity.Product
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// InBatches walks the catalog ordered by id, batchSize rows at a time.
func (r *ProductRepository) InBatches(ctx context.Context, batchSize int, fn func([]productEntity.Product) error) error {
	var rows []productEntity.Product
	return r.db.WithContext(ctx).Order("id").FindInBatches(&rows, batchSize, func(tx *gorm.DB, batch int) error {
		chunk := make([]productEntity.Product, len(rows))
		copy(chunk, rows)
		return fn(chunk)
	}).Error
}
