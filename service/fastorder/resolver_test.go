package fastorder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotbray.GO/core/apperror"
	productEntity "hotbray.GO/model/entity/product"
	productRepo "hotbray.GO/model/repository/product"
	"hotbray.GO/model/testdb"
)

// countingFinder wraps the real repository and counts obsolete-map lookups.
type countingFinder struct {
	ProductFinder
	obsoleteCalls int
	batchCalls    int
	singleCalls   int
	failAlt       string
}

func (c *countingFinder) FindByPartNumber(ctx context.Context, part string) (*productEntity.Product, error) {
	c.singleCalls++
	if part == c.failAlt {
		return nil, errors.New("connection reset")
	}
	return c.ProductFinder.FindByPartNumber(ctx, part)
}

func (c *countingFinder) FindByPartNumbers(ctx context.Context, parts []string) (map[string]*productEntity.Product, error) {
	c.batchCalls++
	return c.ProductFinder.FindByPartNumbers(ctx, parts)
}

func (c *countingFinder) FindObsoleteAlternative(ctx context.Context, part string) (*productEntity.Product, error) {
	c.obsoleteCalls++
	return c.ProductFinder.FindObsoleteAlternative(ctx, part)
}

func catalog(t *testing.T) *countingFinder {
	db := testdb.Open(t)
	testdb.SeedProducts(t, db,
		&productEntity.Product{PartNumber: "A1", Name: "Air filter", Price: testdb.Price(9.5)},
		&productEntity.Product{PartNumber: "NEW-1", Name: "Brake pad v2", Price: testdb.Price(20)},
		&productEntity.Product{PartNumber: "FLAG-1", Name: "Old wiper", IsObsolete: true, AlternativePartNumber: testdb.Str("wiper-2")},
		&productEntity.Product{PartNumber: "WIPER-2", Name: "Wiper v2"},
		&productEntity.Product{PartNumber: "FLAG-2", Name: "Orphan", IsObsolete: true, AlternativePartNumber: testdb.Str("NOWHERE")},
		&productEntity.Product{PartNumber: "FLAG-3", Name: "Flaky", IsObsolete: true, AlternativePartNumber: testdb.Str("FLAKY-ALT")},
	)
	testdb.SeedObsolete(t, db, "OLD-1", "NEW-1")
	return &countingFinder{ProductFinder: productRepo.NewProductRepository(db)}
}

func TestResolve_ExactMatchSkipsObsoleteLookup(t *testing.T) {
	f := catalog(t)
	res, err := NewResolver(f).Resolve(context.Background(), "  a1 ")
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "A1", res.PartNumber)
	assert.False(t, res.IsObsolete)
	assert.Nil(t, res.Alternative)
	assert.Equal(t, OutcomeExact, res.Outcome)
	assert.Zero(t, f.obsoleteCalls)
}

func TestResolve_ObsoleteMapReturnsAlternative(t *testing.T) {
	res, err := NewResolver(catalog(t)).Resolve(context.Background(), "old-1")
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "NEW-1", res.Product.PartNumber)
	assert.True(t, res.IsObsolete)
	require.NotNil(t, res.Alternative)
	assert.Equal(t, "NEW-1", *res.Alternative)

	item := res.Item(1)
	require.NotNil(t, item.MappedTo)
	assert.Equal(t, res.Product.PartNumber, *item.MappedTo)
	assert.Equal(t, MessageObsolete, *item.Message)
}

func TestResolve_NotFoundIsNotAnError(t *testing.T) {
	res, err := NewResolver(catalog(t)).Resolve(context.Background(), "zzz")
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, "ZZZ", res.PartNumber)
	assert.Equal(t, MessageNotFound, *res.Item(1).Message)
}

func TestResolve_EmptyInputIsValidationError(t *testing.T) {
	_, err := NewResolver(catalog(t)).Resolve(context.Background(), "   ")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestResolve_FlaggedProductSubstituted(t *testing.T) {
	res, err := NewResolver(catalog(t)).Resolve(context.Background(), "flag-1")
	require.NoError(t, err)
	assert.Equal(t, "WIPER-2", res.Product.PartNumber)
	assert.Equal(t, OutcomeSubstituted, res.Outcome)
	assert.Equal(t, "FLAG-1", *res.MappedFrom)
	assert.Equal(t, "WIPER-2", *res.Alternative)
}

func TestResolve_FlaggedProductKeptWhenAlternativeMissing(t *testing.T) {
	res, err := NewResolver(catalog(t)).Resolve(context.Background(), "FLAG-2")
	require.NoError(t, err)
	assert.Equal(t, "FLAG-2", res.Product.PartNumber)
	assert.Equal(t, OutcomeKeptObsolete, res.Outcome)
	assert.ErrorIs(t, res.AlternativeErr, productRepo.ErrNotFound)
	assert.Nil(t, res.Item(1).MappedTo)
}

func TestResolve_FlaggedProductKeptWhenAlternativeLookupFails(t *testing.T) {
	f := catalog(t)
	f.failAlt = "FLAKY-ALT"
	res, err := NewResolver(f).Resolve(context.Background(), "FLAG-3")
	require.NoError(t, err, "a failing alternative lookup must not fail the request")
	assert.Equal(t, "FLAG-3", res.Product.PartNumber)
	assert.Error(t, res.AlternativeErr)
}
