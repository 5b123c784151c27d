package quote

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"hotbray.GO/core/apperror"
	quoteEntity "hotbray.GO/model/entity/quote"
	"hotbray.GO/service/fastorder"
)

// ItemInput is one cart row sent by the storefront. Values arrive loosely
// typed ("12.50" prices, numeric names), so decoding is weak.
type ItemInput struct {
	PartNumber interface{} `mapstructure:"part_number"`
	Part       interface{} `mapstructure:"part"`
	Qty        interface{} `mapstructure:"qty"`
	ProductID  *uint       `mapstructure:"product_id"`
	Name       *string     `mapstructure:"name"`
	Price      *float64    `mapstructure:"price"`
	MappedTo   *string     `mapstructure:"mapped_to"`
}

func decodeItem(raw interface{}) (ItemInput, error) {
	var in ItemInput
	m, ok := raw.(map[string]interface{})
	if !ok {
		return in, fmt.Errorf("item must be an object")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &in,
	})
	if err != nil {
		return in, err
	}
	if err := dec.Decode(m); err != nil {
		return in, err
	}
	return in, nil
}

// toSnapshot converts the input into the row persisted with the quote.
func (in ItemInput) toSnapshot(zeroAsDefault bool) quoteEntity.QuoteItem {
	part := fastorder.NormalizeAny(in.PartNumber)
	if part == "" {
		part = fastorder.NormalizeAny(in.Part)
	}
	return quoteEntity.QuoteItem{
		ProductID:  nonZero(in.ProductID),
		PartNumber: part,
		Name:       nonEmpty(in.Name),
		Price:      in.Price,
		Qty:        fastorder.ParseQty(in.Qty, zeroAsDefault),
		MappedTo:   nonEmpty(in.MappedTo),
	}
}

func parseItems(raw []interface{}, zeroAsDefault bool) ([]quoteEntity.QuoteItem, error) {
	if len(raw) == 0 {
		return nil, apperror.Validation("items array required")
	}
	items := make([]quoteEntity.QuoteItem, 0, len(raw))
	for i, r := range raw {
		in, err := decodeItem(r)
		if err != nil {
			return nil, apperror.Validation(fmt.Sprintf("invalid item at index %d", i))
		}
		item := in.toSnapshot(zeroAsDefault)
		if item.PartNumber == "" {
			return nil, apperror.Validation(fmt.Sprintf("item %d: part number required", i))
		}
		items = append(items, item)
	}
	return items, nil
}

func nonZero(p *uint) *uint {
	if p == nil || *p == 0 {
		return nil
	}
	return p
}

func nonEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}
