package fastorder

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotbray.GO/core/apperror"
)

func line(part interface{}, qty interface{}) interface{} {
	return map[string]interface{}{"part_number": part, "qty": qty}
}

func TestResolveBulk_MergesDuplicates(t *testing.T) {
	b := NewBulkResolver(NewResolver(catalog(t)), BulkOptions{ZeroAsDefault: true})
	res, err := b.ResolveBulk(context.Background(), []interface{}{line("A1", float64(2)), line("a1", float64(3))})
	require.NoError(t, err)
	require.Len(t, res.Processed, 1)
	assert.Equal(t, "A1", res.Processed[0].PartNumber)
	assert.Equal(t, 5, res.Processed[0].Qty)
	assert.Equal(t, 2, res.TotalInput)
	assert.Equal(t, 1, res.TotalProcessed)
	assert.Empty(t, res.InvalidRows)
}

func TestResolveBulk_SingleBatchQueryAndOrder(t *testing.T) {
	f := catalog(t)
	b := NewBulkResolver(NewResolver(f), BulkOptions{ZeroAsDefault: true})
	rows := []interface{}{
		line("zzz", nil),
		line("old-1", "4"),
		line("A1", float64(1)),
		map[string]interface{}{"part": "flag-1"},
		line("ZZZ", float64(2)),
	}
	res, err := b.ResolveBulk(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, f.batchCalls)

	got := make([]string, len(res.Processed))
	for i, it := range res.Processed {
		got[i] = it.PartNumber
	}
	assert.Equal(t, []string{"ZZZ", "OLD-1", "A1", "FLAG-1"}, got)

	assert.Nil(t, res.Processed[0].Product)
	assert.Equal(t, 3, res.Processed[0].Qty)
	assert.Equal(t, "NEW-1", *res.Processed[1].MappedTo)
	assert.Equal(t, "WIPER-2", res.Processed[3].Product.PartNumber)

	require.Len(t, res.InvalidRows, 1)
	assert.Equal(t, InvalidRow{PartNumber: "ZZZ", Qty: 3, Reason: ReasonNotFound}, res.InvalidRows[0])
	// obsolete map consulted only for the two rows without an exact match
	assert.Equal(t, 2, f.obsoleteCalls)
}

func TestResolveBulk_CapsInput(t *testing.T) {
	b := NewBulkResolver(NewResolver(catalog(t)), BulkOptions{ZeroAsDefault: true})
	rows := make([]interface{}, 150)
	for i := range rows {
		rows[i] = line(fmt.Sprintf("P-%03d", i), float64(1))
	}
	res, err := b.ResolveBulk(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 150, res.TotalInput)
	assert.Equal(t, 100, res.TotalProcessed)
	assert.Len(t, res.InvalidRows, 100)
}

func TestResolveBulk_NoParseablePartsIsValidationError(t *testing.T) {
	b := NewBulkResolver(NewResolver(catalog(t)), BulkOptions{ZeroAsDefault: true})
	for _, rows := range [][]interface{}{
		{},
		{line("  ", float64(1)), line(nil, nil), "not-an-object"},
	} {
		_, err := b.ResolveBulk(context.Background(), rows)
		assert.True(t, apperror.Is(err, apperror.KindValidation), "rows=%v err=%v", rows, err)
	}
}

func TestResolveBulk_AllUnresolvedIsSuccess(t *testing.T) {
	b := NewBulkResolver(NewResolver(catalog(t)), BulkOptions{ZeroAsDefault: true})
	res, err := b.ResolveBulk(context.Background(), []interface{}{line("nope-1", nil), line("nope-2", nil)})
	require.NoError(t, err)
	assert.Len(t, res.Processed, 2)
	assert.Len(t, res.InvalidRows, 2)
}

func TestResolveBulk_ZeroQtyOption(t *testing.T) {
	keep := NewBulkResolver(NewResolver(catalog(t)), BulkOptions{ZeroAsDefault: false})
	res, err := keep.ResolveBulk(context.Background(), []interface{}{line("A1", float64(0))})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Processed[0].Qty)

	collapse := NewBulkResolver(NewResolver(catalog(t)), BulkOptions{ZeroAsDefault: true})
	res, err = collapse.ResolveBulk(context.Background(), []interface{}{line("A1", float64(0))})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed[0].Qty)
}
