package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"hotbray.GO/core/apperror"
	"hotbray.GO/core/metrics"
	productEntity "hotbray.GO/model/entity/product"
)

// BatchSource walks the product catalog in fixed-size batches.
type BatchSource interface {
	InBatches(ctx context.Context, batchSize int, fn func([]productEntity.Product) error) error
}

type ReindexOptions struct {
	BatchSize int
	Workers   int
}

// IndexDocuments upserts docs by id in a single bulk request.
func (g *Gateway) IndexDocuments(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, d := range docs {
		meta := map[string]interface{}{
			"index": map[string]interface{}{"_index": g.index, "_id": strconv.FormatUint(uint64(d.ID), 10)},
		}
		if err := enc.Encode(meta); err != nil {
			return apperror.Dependency("bulk encode", err)
		}
		if err := enc.Encode(d); err != nil {
			return apperror.Dependency("bulk encode", err)
		}
	}

	res, err := g.es.Bulk(bytes.NewReader(buf.Bytes()),
		g.es.Bulk.WithContext(ctx),
		g.es.Bulk.WithIndex(g.index),
	)
	if err := checkResponse("bulk", res, err); err != nil {
		metrics.SearchRequests.WithLabelValues("bulk", "error").Inc()
		return err
	}
	defer res.Body.Close()

	var out struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID     string          `json:"_id"`
			Status int             `json:"status"`
			Error  json.RawMessage `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		metrics.SearchRequests.WithLabelValues("bulk", "error").Inc()
		return apperror.Dependency("bulk decode", err)
	}
	if out.Errors {
		failed := 0
		for _, item := range out.Items {
			for _, r := range item {
				if r.Status >= 300 {
					if failed == 0 {
						log.Printf("search: bulk item %s failed: %s", r.ID, r.Error)
					}
					failed++
				}
			}
		}
		metrics.SearchRequests.WithLabelValues("bulk", "error").Inc()
		return apperror.Dependency("bulk", fmt.Errorf("%d of %d documents rejected", failed, len(docs)))
	}
	metrics.SearchRequests.WithLabelValues("bulk", "ok").Inc()
	return nil
}

// Reindex loads every product from src and bulk-indexes the batches with
// up to opts.Workers requests in flight. The suggest cache is cleared on success.
func (g *Gateway) Reindex(ctx context.Context, src BatchSource, opts ReindexOptions) (int, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	var indexed int64

	walkErr := src.InBatches(egCtx, opts.BatchSize, func(batch []productEntity.Product) error {
		if err := egCtx.Err(); err != nil {
			return err
		}
		docs := make([]Document, 0, len(batch))
		for _, p := range batch {
			docs = append(docs, NewDocument(p))
		}
		eg.Go(func() error {
			if err := g.IndexDocuments(egCtx, docs); err != nil {
				return err
			}
			atomic.AddInt64(&indexed, int64(len(docs)))
			return nil
		})
		return nil
	})
	if err := eg.Wait(); err != nil {
		return int(indexed), err
	}
	if walkErr != nil {
		return int(indexed), apperror.Dependency("load products", walkErr)
	}
	if err := g.cache.DeletePrefix(ctx); err != nil {
		log.Printf("search: clear suggest cache: %v", err)
	}
	return int(indexed), nil
}
