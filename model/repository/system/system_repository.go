package system

import (
	"context"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

// Now returns the database clock, proving a round trip works.
func (r *SystemRepository) Now(ctx context.Context) (string, error) {
	var now string
	err := r.db.WithContext(ctx).Raw("SELECT CURRENT_TIMESTAMP").Row().Scan(&now)
	return now, err
}
