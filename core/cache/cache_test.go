package cache

import (
	"context"
	"testing"
	"time"
)

func TestNilClientIsNoop(t *testing.T) {
	c := New(nil, "suggest")
	if c.Enabled() {
		t.Fatal("Enabled: want false without client")
	}
	ctx := context.Background()
	c.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute)
	var out map[string]int
	if c.GetJSON(ctx, "k", &out) {
		t.Error("GetJSON: want miss on disabled cache")
	}
	if err := c.DeletePrefix(ctx); err != nil {
		t.Errorf("DeletePrefix: %v", err)
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	if c.Enabled() {
		t.Error("nil *Cache must report disabled")
	}
}

func TestKey(t *testing.T) {
	c := New(nil, "suggest")
	if got := c.Key("brake pad", 8); got != "suggest:brake pad:8" {
		t.Errorf("Key = %q", got)
	}
}
