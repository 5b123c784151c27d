package contact

import (
	"context"

	"gorm.io/gorm"

	contactEntity "hotbray.GO/model/entity/contact"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, m *contactEntity.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}
