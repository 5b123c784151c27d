package fastorder

import (
	"context"
	"errors"
	"log"

	"hotbray.GO/core/apperror"
	"hotbray.GO/core/metrics"
	productEntity "hotbray.GO/model/entity/product"
	productRepo "hotbray.GO/model/repository/product"
)

const (
	MessageNotFound   = "Not found"
	MessageObsolete   = "Obsolete: using alternative part"
	ReasonNotFound    = "not found"
	ReasonMissingPart = "missing part number"
)

// ProductFinder is the catalog access the resolvers need.
type ProductFinder interface {
	FindByPartNumber(ctx context.Context, part string) (*productEntity.Product, error)
	FindByPartNumbers(ctx context.Context, parts []string) (map[string]*productEntity.Product, error)
	FindObsoleteAlternative(ctx context.Context, part string) (*productEntity.Product, error)
}

type Outcome string

const (
	OutcomeExact        Outcome = "exact"
	OutcomeSubstituted  Outcome = "substituted"
	OutcomeKeptObsolete Outcome = "kept_obsolete"
	OutcomeNotFound     Outcome = "not_found"
)

// Resolution is the result of resolving one normalized part number.
// Product is nil when nothing matched.
type Resolution struct {
	PartNumber string
	Product    *productEntity.Product
	IsObsolete bool
	// Alternative is the part number that was substituted in.
	Alternative *string
	MappedFrom  *string
	// AlternativeErr is set when a flagged product's alternative could not be
	// loaded and the original product was kept.
	AlternativeErr error
	Outcome        Outcome
}

func (r Resolution) Found() bool { return r.Product != nil }

// Item is the response shape shared by single and bulk lookups.
type Item struct {
	PartNumber string                 `json:"part_number"`
	Qty        int                    `json:"qty"`
	Product    *productEntity.Product `json:"product"`
	IsObsolete bool                   `json:"is_obsolete"`
	MappedTo   *string                `json:"mapped_to"`
	MappedFrom *string                `json:"mapped_from,omitempty"`
	Message    *string                `json:"message"`
}

func (r Resolution) Item(qty int) Item {
	it := Item{PartNumber: r.PartNumber, Qty: qty, Product: r.Product}
	switch {
	case !r.Found():
		msg := MessageNotFound
		it.Message = &msg
	case r.IsObsolete:
		msg := MessageObsolete
		it.IsObsolete = true
		it.MappedTo = r.Alternative
		it.MappedFrom = r.MappedFrom
		it.Message = &msg
	}
	return it
}

type Resolver struct {
	products ProductFinder
}

func NewResolver(products ProductFinder) *Resolver {
	return &Resolver{products: products}
}

// Resolve finds the product for a raw part number: exact match first, then
// the obsolete map. Not found is a normal Resolution, not an error.
func (r *Resolver) Resolve(ctx context.Context, raw string) (Resolution, error) {
	part := Normalize(raw)
	if part == "" {
		return Resolution{}, apperror.Validation("Part number is required.")
	}
	p, err := r.products.FindByPartNumber(ctx, part)
	if err != nil && !errors.Is(err, productRepo.ErrNotFound) {
		return Resolution{PartNumber: part}, apperror.Dependency("find product", err)
	}
	var res Resolution
	if p != nil {
		res = r.fromMatch(ctx, part, p)
	} else if res, err = r.fromObsoleteMap(ctx, part); err != nil {
		return res, err
	}
	record(res)
	return res, nil
}

// fromMatch handles an exact match. A product flagged obsolete with an
// alternative is swapped for that alternative when it can be loaded.
func (r *Resolver) fromMatch(ctx context.Context, part string, p *productEntity.Product) Resolution {
	if !p.IsObsolete || p.AlternativePartNumber == nil || Normalize(*p.AlternativePartNumber) == "" {
		return Resolution{PartNumber: part, Product: p, Outcome: OutcomeExact}
	}
	alt, err := r.products.FindByPartNumber(ctx, Normalize(*p.AlternativePartNumber))
	return substitute(part, p, altLookup{product: alt, err: err})
}

// altLookup is the outcome of loading a flagged product's alternative.
type altLookup struct {
	product *productEntity.Product
	err     error
}

func substitute(part string, original *productEntity.Product, alt altLookup) Resolution {
	if alt.err != nil || alt.product == nil {
		err := alt.err
		if err == nil {
			err = productRepo.ErrNotFound
		}
		if !errors.Is(err, productRepo.ErrNotFound) {
			log.Printf("fastorder: alternative lookup for %s failed, keeping original: %v", part, err)
		}
		return Resolution{PartNumber: part, Product: original, AlternativeErr: err, Outcome: OutcomeKeptObsolete}
	}
	from := original.PartNumber
	to := alt.product.PartNumber
	return Resolution{
		PartNumber:  part,
		Product:     alt.product,
		IsObsolete:  true,
		Alternative: &to,
		MappedFrom:  &from,
		Outcome:     OutcomeSubstituted,
	}
}

func (r *Resolver) fromObsoleteMap(ctx context.Context, part string) (Resolution, error) {
	alt, err := r.products.FindObsoleteAlternative(ctx, part)
	switch {
	case errors.Is(err, productRepo.ErrNotFound):
		return Resolution{PartNumber: part, Outcome: OutcomeNotFound}, nil
	case err != nil:
		return Resolution{PartNumber: part}, apperror.Dependency("find obsolete mapping", err)
	}
	from := part
	to := alt.PartNumber
	return Resolution{
		PartNumber:  part,
		Product:     alt,
		IsObsolete:  true,
		Alternative: &to,
		MappedFrom:  &from,
		Outcome:     OutcomeSubstituted,
	}, nil
}

func record(res Resolution) {
	metrics.PartResolutions.WithLabelValues(string(res.Outcome)).Inc()
}
