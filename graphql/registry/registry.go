// Package registry holds named GraphQL extensions reachable through the
// _extension(name, args) query field.
package registry

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mitchellh/mapstructure"

	"hotbray.GO/core/apperror"
	"hotbray.GO/core/registry"
)

// ResolverFunc receives the JSON-decoded args object and returns a JSON-encodable value.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

var mu sync.Mutex
var locked int32

func entries() map[string]ResolverFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryGraphQL); ok && v != nil {
		return v.(map[string]ResolverFunc)
	}
	return make(map[string]ResolverFunc)
}

// Register adds an extension. Call from init(); names are unique and the
// registry is frozen by the first Resolve.
func Register(name string, resolve ResolverFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryGraphQL) {
		panic("graphql/registry: locked (register only during init before first request)")
	}
	m := entries()
	if _, ok := m[name]; ok {
		panic("graphql/registry: duplicate " + name)
	}
	m[name] = resolve
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, m)
}

// Unregister removes an extension (for tests).
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryGraphQL)
	atomic.StoreInt32(&locked, 0)
	m := entries()
	delete(m, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, m)
}

// Resolve runs the named extension. An unknown name is a validation error.
func Resolve(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	if atomic.CompareAndSwapInt32(&locked, 0, 1) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL)
	}
	resolve, ok := entries()[name]
	if !ok {
		return nil, apperror.Validation("unknown extension: " + name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return resolve(ctx, args)
}

// Names returns the registered extension names in sorted order.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	m := entries()
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Decode copies args into the struct pointed to by dst using mapstructure
// tags. Type mismatches are validation errors.
func Decode(args map[string]interface{}, dst interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: dst})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return apperror.Validation("invalid extension arguments")
	}
	return nil
}
