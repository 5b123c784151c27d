package rating

import (
	"context"

	"gorm.io/gorm"

	ratingEntity "hotbray.GO/model/entity/rating"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(ctx context.Context, rt *ratingEntity.Rating) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

// ListByProduct returns every rating for productID, oldest first.
func (r *RatingRepository) ListByProduct(ctx context.Context, productID uint) ([]ratingEntity.Rating, error) {
	rows := make([]ratingEntity.Rating, 0)
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&rows).Error
	return rows, err
}
