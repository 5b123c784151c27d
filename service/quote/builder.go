package quote

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"gorm.io/gorm"

	"hotbray.GO/core/apperror"
	"hotbray.GO/core/metrics"
	productEntity "hotbray.GO/model/entity/product"
	quoteEntity "hotbray.GO/model/entity/quote"
	quoteRepo "hotbray.GO/model/repository/quote"
)

// maxAttempts bounds retries when generated identifiers collide.
const maxAttempts = 3

type QuoteStore interface {
	CreateWithItems(ctx context.Context, q *quoteEntity.Quote, items []quoteEntity.QuoteItem) error
	ListByUser(ctx context.Context, userID string, limit int) ([]quoteEntity.Summary, error)
	FindByToken(ctx context.Context, token string) (*quoteEntity.Quote, error)
	FindByID(ctx context.Context, id uint) (*quoteEntity.Quote, error)
	Items(ctx context.Context, quoteID uint) ([]quoteEntity.QuoteItem, error)
	Delete(ctx context.Context, id uint) error
}

type ProductLookup interface {
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*productEntity.Product, error)
}

type Options struct {
	ZeroAsDefault bool
	ListCap       int
	// PublicBase prefixes the token in the shareable link.
	PublicBase string
	Now        func() time.Time
	Rand       io.Reader
}

type Builder struct {
	quotes   QuoteStore
	products ProductLookup
	opts     Options
}

func NewBuilder(quotes QuoteStore, products ProductLookup, opts Options) *Builder {
	if opts.ListCap <= 0 {
		opts.ListCap = 200
	}
	if opts.PublicBase == "" {
		opts.PublicBase = "/quotes/"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Builder{quotes: quotes, products: products, opts: opts}
}

type CreateInput struct {
	UserID    *string
	UserEmail *string
	Name      *string
	Note      *string
	Items     []interface{}
}

type Created struct {
	Quote      *quoteEntity.Quote
	Items      []quoteEntity.QuoteItem
	PublicLink string
}

// Create persists the quote and all its item snapshots in one transaction.
func (b *Builder) Create(ctx context.Context, in CreateInput) (*Created, error) {
	items, err := parseItems(in.Items, b.opts.ZeroAsDefault)
	if err != nil {
		return nil, err
	}
	if err := b.fillSnapshots(ctx, items); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		q, err := b.newQuote(in)
		if err != nil {
			return nil, apperror.Dependency("generate quote identifiers", err)
		}
		rows := make([]quoteEntity.QuoteItem, len(items))
		copy(rows, items)

		err = b.quotes.CreateWithItems(ctx, q, rows)
		if err == nil {
			metrics.QuotesCreated.Inc()
			return &Created{Quote: q, Items: rows, PublicLink: b.opts.PublicBase + q.Token}, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt == maxAttempts {
			return nil, apperror.Transaction("create quote", err)
		}
		log.Printf("quotes: identifier collision on attempt %d, retrying", attempt)
	}
}

func (b *Builder) newQuote(in CreateInput) (*quoteEntity.Quote, error) {
	now := b.opts.Now()
	number, err := NewQuoteNumber(now, b.opts.Rand)
	if err != nil {
		return nil, err
	}
	token, err := NewToken(b.opts.Rand)
	if err != nil {
		return nil, err
	}
	return &quoteEntity.Quote{
		QuoteNumber: number,
		Token:       token,
		UserID:      nonEmpty(in.UserID),
		UserEmail:   nonEmpty(in.UserEmail),
		Name:        nonEmpty(in.Name),
		Note:        nonEmpty(in.Note),
		CreatedAt:   now,
	}, nil
}

// fillSnapshots copies name and price from the live product for rows that
// reference a product but did not carry those values.
func (b *Builder) fillSnapshots(ctx context.Context, items []quoteEntity.QuoteItem) error {
	var ids []uint
	for _, it := range items {
		if it.ProductID != nil && (it.Name == nil || it.Price == nil) {
			ids = append(ids, *it.ProductID)
		}
	}
	if len(ids) == 0 || b.products == nil {
		return nil
	}
	byID, err := b.products.FindByIDs(ctx, ids)
	if err != nil {
		return apperror.Dependency("load products for quote", err)
	}
	for i := range items {
		if items[i].ProductID == nil {
			continue
		}
		p, ok := byID[*items[i].ProductID]
		if !ok {
			continue
		}
		if items[i].Name == nil {
			name := p.Name
			items[i].Name = &name
		}
		if items[i].Price == nil && p.Price != nil {
			price := *p.Price
			items[i].Price = &price
		}
	}
	return nil
}

// ListByUser returns the user's newest quotes, capped by ListCap.
func (b *Builder) ListByUser(ctx context.Context, userID string) ([]quoteEntity.Summary, error) {
	if userID == "" {
		return nil, apperror.Validation("user id required")
	}
	rows, err := b.quotes.ListByUser(ctx, userID, b.opts.ListCap)
	if err != nil {
		return nil, apperror.Dependency("list quotes", err)
	}
	return rows, nil
}

// View loads a quote and its items by public token.
func (b *Builder) View(ctx context.Context, token string) (*quoteEntity.Quote, []quoteEntity.QuoteItem, error) {
	q, err := b.quotes.FindByToken(ctx, token)
	if err != nil {
		return nil, nil, notFoundOr(err, "find quote by token")
	}
	items, err := b.quotes.Items(ctx, q.ID)
	if err != nil {
		return nil, nil, apperror.Dependency("load quote items", err)
	}
	return q, items, nil
}

// CartItem is a quote row shaped for the storefront cart.
type CartItem struct {
	ID         *uint   `json:"id"`
	PartNumber string  `json:"part_number"`
	Name       *string `json:"name"`
	Price      float64 `json:"price"`
	Qty        int     `json:"qty"`
	MappedTo   *string `json:"mapped_to"`
}

// ConvertToCart re-reads the snapshots of a quote identified by token or
// id (token wins when both are given). Missing prices become 0.
func (b *Builder) ConvertToCart(ctx context.Context, token string, quoteID *uint) ([]CartItem, error) {
	var (
		q   *quoteEntity.Quote
		err error
	)
	switch {
	case token != "":
		q, err = b.quotes.FindByToken(ctx, token)
	case quoteID != nil && *quoteID != 0:
		q, err = b.quotes.FindByID(ctx, *quoteID)
	default:
		return nil, apperror.Validation("token or quote_id required")
	}
	if err != nil {
		return nil, notFoundOr(err, "find quote")
	}
	rows, err := b.quotes.Items(ctx, q.ID)
	if err != nil {
		return nil, apperror.Dependency("load quote items", err)
	}
	cart := make([]CartItem, 0, len(rows))
	for _, r := range rows {
		ci := CartItem{ID: r.ProductID, PartNumber: r.PartNumber, Name: r.Name, Qty: r.Qty, MappedTo: r.MappedTo}
		if r.Price != nil {
			ci.Price = *r.Price
		}
		cart = append(cart, ci)
	}
	return cart, nil
}

func (b *Builder) Delete(ctx context.Context, id uint) error {
	if err := b.quotes.Delete(ctx, id); err != nil {
		return notFoundOr(err, "delete quote")
	}
	return nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, quoteRepo.ErrNotFound) {
		return apperror.NotFound("Quote not found")
	}
	return apperror.Dependency(op, err)
}
