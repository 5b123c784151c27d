package fastorder

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"hotbray.GO/core/apperror"
)

const DefaultBulkCap = 100

// Line is one requested row of a bulk order as sent by the client.
// part is accepted as an alias of part_number.
type Line struct {
	PartNumber interface{} `mapstructure:"part_number"`
	Part       interface{} `mapstructure:"part"`
	Qty        interface{} `mapstructure:"qty"`
}

// DecodeLine reads a loosely typed JSON object into a Line. Anything that is
// not an object decodes to an empty Line.
func DecodeLine(v interface{}) Line {
	var l Line
	m, ok := v.(map[string]interface{})
	if !ok {
		return l
	}
	if err := mapstructure.Decode(m, &l); err != nil {
		return Line{}
	}
	return l
}

func (l Line) part() string {
	if p := NormalizeAny(l.PartNumber); p != "" {
		return p
	}
	return NormalizeAny(l.Part)
}

type InvalidRow struct {
	PartNumber string `json:"part_number"`
	Qty        int    `json:"qty"`
	Reason     string `json:"reason"`
}

type BulkResult struct {
	Processed      []Item       `json:"processed"`
	InvalidRows    []InvalidRow `json:"invalidRows"`
	TotalInput     int          `json:"totalInput"`
	TotalProcessed int          `json:"totalProcessed"`
}

type BulkOptions struct {
	// Cap truncates the input list; excess rows are dropped silently.
	Cap           int
	ZeroAsDefault bool
}

type BulkResolver struct {
	resolver *Resolver
	opts     BulkOptions
}

func NewBulkResolver(resolver *Resolver, opts BulkOptions) *BulkResolver {
	if opts.Cap <= 0 {
		opts.Cap = DefaultBulkCap
	}
	return &BulkResolver{resolver: resolver, opts: opts}
}

type merged struct {
	part string
	qty  int
}

// ResolveBulk caps, normalizes and de-duplicates the rows (summing qty per
// part number), fetches all distinct parts with one query, then applies
// obsolete substitution per entry. Output keeps first-occurrence order.
func (b *BulkResolver) ResolveBulk(ctx context.Context, rows []interface{}) (*BulkResult, error) {
	result := &BulkResult{
		Processed:   make([]Item, 0),
		InvalidRows: make([]InvalidRow, 0),
		TotalInput:  len(rows),
	}
	if len(rows) > b.opts.Cap {
		rows = rows[:b.opts.Cap]
	}

	var order []*merged
	byPart := make(map[string]*merged, len(rows))
	for _, raw := range rows {
		line := DecodeLine(raw)
		qty := ParseQty(line.Qty, b.opts.ZeroAsDefault)
		part := line.part()
		if part == "" {
			result.InvalidRows = append(result.InvalidRows, InvalidRow{Qty: qty, Reason: ReasonMissingPart})
			continue
		}
		if m, ok := byPart[part]; ok {
			m.qty += qty
			continue
		}
		m := &merged{part: part, qty: qty}
		byPart[part] = m
		order = append(order, m)
	}
	if len(order) == 0 {
		return nil, apperror.Validation("No valid part numbers provided.")
	}

	parts := make([]string, len(order))
	for i, m := range order {
		parts[i] = m.part
	}
	found, err := b.resolver.products.FindByPartNumbers(ctx, parts)
	if err != nil {
		return nil, apperror.Dependency("batch find products", err)
	}

	// Substitution below costs one extra query per obsolete entry.
	for _, m := range order {
		var res Resolution
		if p, ok := found[m.part]; ok {
			res = b.resolver.fromMatch(ctx, m.part, p)
		} else if res, err = b.resolver.fromObsoleteMap(ctx, m.part); err != nil {
			return nil, err
		}
		record(res)
		result.Processed = append(result.Processed, res.Item(m.qty))
		if !res.Found() {
			result.InvalidRows = append(result.InvalidRows, InvalidRow{PartNumber: m.part, Qty: m.qty, Reason: ReasonNotFound})
		}
	}
	result.TotalProcessed = len(result.Processed)
	return result, nil
}
