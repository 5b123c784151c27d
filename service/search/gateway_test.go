package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotbray.GO/core/apperror"
)

const searchHits = `{
  "took": 7,
  "hits": {
    "total": {"value": 2},
    "hits": [
      {"_source": {"id": 1, "name": "Front wiper blade", "part_number": "WB-1", "price": 12.5, "description": "Rubber wiper"},
       "highlight": {"name": ["Front <em>wiper</em> blade"]}},
      {"_source": {"id": 2, "name": "Rear wiper", "part_number": "WB-2", "price": 9}}
    ]
  }
}`

func TestSearch_EmptyQueryDoesNotCallIndex(t *testing.T) {
	fake, es := newFakeES(t)
	g := NewGateway(es, "products", nil, 0)

	res, err := g.Search(context.Background(), "   ", 0, "")
	require.NoError(t, err)
	assert.Empty(t, res.Hits)
	assert.NotNil(t, res.Hits)
	assert.Empty(t, fake.requests)
}

func TestSearch_ShapesResult(t *testing.T) {
	fake, es := newFakeES(t)
	fake.on("POST /products/_search", func([]byte) (int, string) { return 200, searchHits })
	g := NewGateway(es, "products", nil, 0)

	res, err := g.Search(context.Background(), "wipres", 5, `category:Jaguar AND brand = "Lucas"`)
	require.NoError(t, err)
	assert.Equal(t, 2, res.EstimatedTotalHits)
	assert.Equal(t, 7, res.ProcessingTimeMs)
	assert.Equal(t, 5, res.Limit)
	require.Len(t, res.Hits, 2)

	formatted := res.Hits[0]["_formatted"].(map[string]interface{})
	assert.Equal(t, "Front <em>wiper</em> blade", formatted["name"])
	assert.Equal(t, "Front wiper blade", res.Hits[0]["name"])
	assert.Equal(t, "Rear wiper", res.Hits[1]["_formatted"].(map[string]interface{})["name"])

	calls := fake.calls("POST /products/_search")
	require.Len(t, calls, 1)
	body := decodeBody(t, calls[0].Body)
	assert.EqualValues(t, 5, body["size"])
	boolQ := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	filters := boolQ["filter"].([]interface{})
	require.Len(t, filters, 2)
	assert.Equal(t, map[string]interface{}{"term": map[string]interface{}{"category.raw": "Jaguar"}}, filters[0])
	assert.Equal(t, map[string]interface{}{"term": map[string]interface{}{"brand.raw": "Lucas"}}, filters[1])
	assert.Contains(t, body, "highlight")
}

func TestSearch_InvalidFilterIsValidationError(t *testing.T) {
	fake, es := newFakeES(t)
	g := NewGateway(es, "products", nil, 0)

	_, err := g.Search(context.Background(), "brake", 0, "price > 10")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Empty(t, fake.requests)
}

func TestSearch_IndexErrorIsDependencyError(t *testing.T) {
	fake, es := newFakeES(t)
	fake.on("POST /products/_search", func([]byte) (int, string) {
		return 500, `{"error":{"type":"boom"}}`
	})
	g := NewGateway(es, "products", nil, 0)

	_, err := g.Search(context.Background(), "brake", 0, "")
	assert.True(t, apperror.Is(err, apperror.KindDependency))
}

func TestSuggest_ProjectsWithoutHighlight(t *testing.T) {
	fake, es := newFakeES(t)
	fake.on("POST /products/_search", func([]byte) (int, string) { return 200, searchHits })
	g := NewGateway(es, "products", nil, 0)

	got, err := g.Suggest(context.Background(), "wiper", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "WB-1", got[0].PartNumber)
	assert.InDelta(t, 12.5, *got[0].Price, 0.001)
	assert.Nil(t, got[1].Image)

	body := decodeBody(t, fake.calls("POST /products/_search")[0].Body)
	assert.EqualValues(t, DefaultSuggestLimit, body["size"])
	assert.NotContains(t, body, "highlight")
	assert.ElementsMatch(t, []interface{}{"id", "name", "part_number", "image", "price"}, body["_source"])

	empty, err := g.Suggest(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
