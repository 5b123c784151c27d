package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"hotbray.GO/core/apperror"
	"hotbray.GO/core/cache"
	"hotbray.GO/core/metrics"
)

const (
	DefaultSearchLimit  = 20
	DefaultSuggestLimit = 8
	maxLimit            = 1000
)

// searchFields are the text fields a query is matched against, boosted by weight.
var searchFields = []string{"name^3", "part_number^3", "category", "description", "brand"}

// Result is the response of a full search.
type Result struct {
	Hits               []map[string]interface{} `json:"hits"`
	Offset             int                      `json:"offset"`
	Limit              int                      `json:"limit"`
	EstimatedTotalHits int                      `json:"estimatedTotalHits"`
	ProcessingTimeMs   int                      `json:"processingTimeMs"`
}

type Gateway struct {
	es         *elasticsearch.Client
	index      string
	cache      *cache.Cache
	suggestTTL time.Duration
}

// NewGateway wraps es for index. c may be nil or disabled.
func NewGateway(es *elasticsearch.Client, index string, c *cache.Cache, suggestTTL time.Duration) *Gateway {
	if c == nil {
		c = cache.New(nil, "search")
	}
	return &Gateway{es: es, index: index, cache: c, suggestTTL: suggestTTL}
}

func (g *Gateway) Index() string { return g.index }

// Search runs a typo-tolerant query with highlighting. A blank query
// returns no hits without contacting the index.
func (g *Gateway) Search(ctx context.Context, q string, limit int, filters string) (*Result, error) {
	q = strings.TrimSpace(q)
	limit = clampLimit(limit, DefaultSearchLimit)
	if q == "" {
		return &Result{Hits: []map[string]interface{}{}, Limit: limit}, nil
	}
	terms, err := ParseFilter(filters)
	if err != nil {
		return nil, apperror.Validation("Invalid filters: " + err.Error())
	}

	body := map[string]interface{}{
		"from":             0,
		"size":             limit,
		"track_total_hits": true,
		"query":            boolQuery(q, terms),
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"price": map[string]interface{}{"order": "desc", "missing": "_last"}},
		},
		"highlight": map[string]interface{}{
			"pre_tags":  []string{"<em>"},
			"post_tags": []string{"</em>"},
			"fields": map[string]interface{}{
				"name":        map[string]interface{}{"number_of_fragments": 0},
				"description": map[string]interface{}{"number_of_fragments": 0},
			},
		},
	}

	var resp searchResponse
	if err := g.do(ctx, "search", body, &resp); err != nil {
		return nil, err
	}

	out := &Result{
		Hits:               make([]map[string]interface{}, 0, len(resp.Hits.Hits)),
		Limit:              limit,
		EstimatedTotalHits: resp.Hits.Total.Value,
		ProcessingTimeMs:   resp.Took,
	}
	for _, h := range resp.Hits.Hits {
		out.Hits = append(out.Hits, h.withFormatted())
	}
	return out, nil
}

// Suggest returns a small projection for autocomplete. Results are cached
// per normalized query and limit.
func (g *Gateway) Suggest(ctx context.Context, q string, limit int) ([]Suggestion, error) {
	q = strings.TrimSpace(q)
	limit = clampLimit(limit, DefaultSuggestLimit)
	if q == "" {
		return []Suggestion{}, nil
	}

	key := g.cache.Key("suggest", limit, strings.ToLower(q))
	var cached []Suggestion
	if g.cache.GetJSON(ctx, key, &cached) {
		metrics.SearchRequests.WithLabelValues("suggest", "cache_hit").Inc()
		return cached, nil
	}

	body := map[string]interface{}{
		"size":    limit,
		"_source": suggestFields,
		"query":   boolQuery(q, nil),
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"price": map[string]interface{}{"order": "desc", "missing": "_last"}},
		},
	}
	var resp searchResponse
	if err := g.do(ctx, "suggest", body, &resp); err != nil {
		return nil, err
	}

	out := make([]Suggestion, 0, len(resp.Hits.Hits))
	for _, h := range resp.Hits.Hits {
		var s Suggestion
		if err := json.Unmarshal(h.Source, &s); err != nil {
			return nil, apperror.Dependency("decode suggestion", err)
		}
		out = append(out, s)
	}
	g.cache.SetJSON(ctx, key, out, g.suggestTTL)
	return out, nil
}

func boolQuery(q string, filters []map[string]interface{}) map[string]interface{} {
	b := map[string]interface{}{
		"must": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     q,
				"fields":    searchFields,
				"fuzziness": "AUTO",
			},
		},
	}
	if len(filters) > 0 {
		b["filter"] = filters
	}
	return map[string]interface{}{"bool": b}
}

func (g *Gateway) do(ctx context.Context, op string, body interface{}, dst interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return apperror.Dependency(op+" encode", err)
	}
	res, err := g.es.Search(
		g.es.Search.WithContext(ctx),
		g.es.Search.WithIndex(g.index),
		g.es.Search.WithBody(bytes.NewReader(raw)),
	)
	if err := checkResponse(op, res, err); err != nil {
		metrics.SearchRequests.WithLabelValues(op, "error").Inc()
		return err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		metrics.SearchRequests.WithLabelValues(op, "error").Inc()
		return apperror.Dependency(op+" decode", err)
	}
	metrics.SearchRequests.WithLabelValues(op, "ok").Inc()
	return nil
}

// checkResponse folds transport failures and error statuses into a
// Dependency error. On error the body is drained and closed.
func checkResponse(op string, res *esapi.Response, err error) error {
	if err != nil {
		return apperror.Dependency(op, err)
	}
	if res.IsError() {
		defer res.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return apperror.Dependency(op, fmt.Errorf("elasticsearch %s: %s", res.Status(), bytes.TrimSpace(msg)))
	}
	return nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

type searchResponse struct {
	Took int `json:"took"`
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

type searchHit struct {
	Source    json.RawMessage     `json:"_source"`
	Highlight map[string][]string `json:"highlight"`
}

// withFormatted returns the document plus a "_formatted" copy in which
// highlighted fields carry <em> markers.
func (h searchHit) withFormatted() map[string]interface{} {
	doc := map[string]interface{}{}
	_ = json.Unmarshal(h.Source, &doc)
	formatted := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		formatted[k] = v
	}
	for field, frags := range h.Highlight {
		if len(frags) > 0 {
			formatted[field] = strings.Join(frags, " ")
		}
	}
	doc["_formatted"] = formatted
	return doc
}
