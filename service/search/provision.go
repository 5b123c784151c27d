package search

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"hotbray.GO/core/apperror"
)

// Synonyms are applied at query time only. Each line is an equivalence set.
var Synonyms = []string{
	"tire, tyre",
	"wiper, wipers, wipres, viper, waipar",
	"brake, brakes, break, breaks, pad",
	"battery, batery, batteries, batary, battrie, baterie",
	"engine oil, engine oils, oil, oils",
}

func textField() map[string]interface{} {
	return map[string]interface{}{
		"type":            "text",
		"search_analyzer": "product_search",
	}
}

func filterField() map[string]interface{} {
	f := textField()
	f["fields"] = map[string]interface{}{
		"raw": map[string]interface{}{"type": "keyword"},
	}
	return f
}

// IndexDefinition is the settings and mappings body used to create the index.
func IndexDefinition() map[string]interface{} {
	return map[string]interface{}{
		"settings": map[string]interface{}{
			"analysis": map[string]interface{}{
				"filter": map[string]interface{}{
					"part_synonyms": map[string]interface{}{
						"type":     "synonym_graph",
						"synonyms": Synonyms,
					},
				},
				"analyzer": map[string]interface{}{
					"product_search": map[string]interface{}{
						"tokenizer": "standard",
						"filter":    []string{"lowercase", "part_synonyms"},
					},
				},
			},
		},
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"id":          map[string]interface{}{"type": "long"},
				"name":        textField(),
				"part_number": filterField(),
				"description": textField(),
				"category":    filterField(),
				"brand":       filterField(),
				"price":       map[string]interface{}{"type": "scaled_float", "scaling_factor": 100},
				"image":       map[string]interface{}{"type": "keyword", "index": false},
			},
		},
	}
}

// Provision creates the index when missing. With recreate set an existing
// index is dropped first; otherwise it is left untouched.
func (g *Gateway) Provision(ctx context.Context, recreate bool) error {
	exists, err := g.es.Indices.Exists([]string{g.index}, g.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return apperror.Dependency("index exists", err)
	}
	exists.Body.Close()

	switch exists.StatusCode {
	case http.StatusOK:
		if !recreate {
			log.Printf("search: index %s already exists", g.index)
			return nil
		}
		res, err := g.es.Indices.Delete([]string{g.index}, g.es.Indices.Delete.WithContext(ctx))
		if err := checkResponse("index delete", res, err); err != nil {
			return err
		}
		res.Body.Close()
	case http.StatusNotFound:
	default:
		return apperror.Dependency("index exists", errStatus(exists.Status()))
	}

	raw, err := json.Marshal(IndexDefinition())
	if err != nil {
		return apperror.Dependency("index encode", err)
	}
	res, err := g.es.Indices.Create(g.index,
		g.es.Indices.Create.WithContext(ctx),
		g.es.Indices.Create.WithBody(bytes.NewReader(raw)),
	)
	if err := checkResponse("index create", res, err); err != nil {
		return err
	}
	res.Body.Close()
	log.Printf("search: created index %s", g.index)
	return nil
}

type errStatus string

func (e errStatus) Error() string { return "unexpected status " + string(e) }
