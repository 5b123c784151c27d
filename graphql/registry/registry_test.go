package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotbray.GO/core/apperror"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	defer Unregister("testEcho")
	Register("testEcho", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"echo": args["v"], "n": len(args)}, nil
	})

	got, err := Resolve(context.Background(), "testEcho", map[string]interface{}{"v": "ok"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"echo": "ok", "n": 1}, got)

	got, err = Resolve(context.Background(), "testEcho", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.(map[string]interface{})["n"])
}

func TestRegistry_UnknownIsValidation(t *testing.T) {
	_, err := Resolve(context.Background(), "nonexistent", nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Equal(t, "unknown extension: nonexistent", err.Error())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	defer Unregister("dup")
	Register("dup", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
	assert.Panics(t, func() {
		Register("dup", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
	})
}

func TestRegistry_NamesSorted(t *testing.T) {
	defer Unregister("zeta")
	defer Unregister("alpha")
	Register("zeta", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
	Register("alpha", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })

	names := Names()
	ia, iz := indexOf(names, "alpha"), indexOf(names, "zeta")
	require.True(t, ia >= 0 && iz >= 0, "names = %v", names)
	assert.Less(t, ia, iz)
}

func TestDecode(t *testing.T) {
	var in struct {
		Items []interface{} `mapstructure:"items"`
	}
	require.NoError(t, Decode(map[string]interface{}{"items": []interface{}{"A1"}}, &in))
	assert.Len(t, in.Items, 1)

	err := Decode(map[string]interface{}{"items": "A1"}, &in)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
