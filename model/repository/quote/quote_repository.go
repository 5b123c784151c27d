package quote

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	quoteEntity "hotbray.GO/model/entity/quote"
)

var ErrNotFound = errors.New("quote not found")

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// CreateWithItems inserts q and its items atomically. On any failure the
// transaction is rolled back and nothing is persisted.
func (r *QuoteRepository) CreateWithItems(ctx context.Context, q *quoteEntity.Quote, items []quoteEntity.QuoteItem) (err error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
	}()

	q.Items = nil
	if err = tx.Omit("Items").Create(q).Error; err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	for i := range items {
		items[i].QuoteID = q.ID
		if err = tx.Create(&items[i]).Error; err != nil {
			return fmt.Errorf("insert quote item %d: %w", i, err)
		}
	}
	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListByUser returns the newest quotes for userID with their item counts.
func (r *QuoteRepository) ListByUser(ctx context.Context, userID string, limit int) ([]quoteEntity.Summary, error) {
	rows := make([]quoteEntity.Summary, 0)
	err := r.db.WithContext(ctx).
		Table("quotes AS q").
		Select(`q.id, q.quote_number, q.token, q.name, q.user_email, q.created_at,
			(SELECT COUNT(*) FROM quote_items i WHERE i.quote_id = q.id) AS item_count`).
		Where("q.user_id = ?", userID).
		Order("q.created_at DESC, q.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *QuoteRepository) FindByToken(ctx context.Context, token string) (*quoteEntity.Quote, error) {
	return r.findOne(ctx, "token = ?", token)
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uint) (*quoteEntity.Quote, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *QuoteRepository) findOne(ctx context.Context, where string, arg interface{}) (*quoteEntity.Quote, error) {
	var q quoteEntity.Quote
	res := r.db.WithContext(ctx).Where(where, arg).Limit(1).Find(&q)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &q, nil
}

// Items returns the snapshot rows of a quote in insertion order.
func (r *QuoteRepository) Items(ctx context.Context, quoteID uint) ([]quoteEntity.QuoteItem, error) {
	items := make([]quoteEntity.QuoteItem, 0)
	err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).Order("id").Find(&items).Error
	return items, err
}

// Delete removes the quote and its items in one transaction.
func (r *QuoteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&quoteEntity.Quote{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		if err := tx.Where("quote_id = ?", id).Delete(&quoteEntity.QuoteItem{}).Error; err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&quoteEntity.Quote{}).Error; err != nil {
			return fmt.Errorf("delete quote: %w", err)
		}
		return nil
	})
}
