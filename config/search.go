package config

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// Search holds connection settings for the hosted product index.
type Search struct {
	Host       string
	APIKey     string
	Index      string
	SuggestTTL time.Duration
}

func SearchConfig() Search {
	return Search{
		Host:       GetEnv("SEARCH_HOST", "http://localhost:9200"),
		APIKey:     GetEnv("SEARCH_API_KEY", ""),
		Index:      GetEnv("SEARCH_INDEX", "products"),
		SuggestTTL: time.Duration(GetEnvInt("SEARCH_SUGGEST_TTL", 60)) * time.Second,
	}
}

// NewSearchClient builds the Elasticsearch client for cfg.
func NewSearchClient(cfg Search) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.Host},
		APIKey:    cfg.APIKey,
	})
}
