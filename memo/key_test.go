package memo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/krisalay/memo-cache"
	"github.com/krisalay/memo-cache/config"
)

func TestArgsKeyIsCanonical(t *testing.T) {
	a, err := ArgsKey(Args{
		Positional: []any{"q", 3},
		Keyword:    map[string]any{"b": 2, "a": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"args":["q",3],"kwargs":[["a",1],["b",2]]}`, a)

	empty, err := ArgsKey(Args{})
	require.NoError(t, err)
	assert.Equal(t, `{"args":[],"kwargs":[]}`, empty)
}

func TestJSONKeySortsMapKeys(t *testing.T) {
	k1, err := JSONKey(map[string]int{"z": 1, "a": 2, "m": 3})
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"m":3,"z":1}`, k1)
}

func TestCacheKeyShape(t *testing.T) {
	k := cacheKey("func", "search", `"golang"`)

	assert.True(t, strings.HasPrefix(k, "func:search:"))
	assert.Len(t, strings.TrimPrefix(k, "func:search:"), 16)
	assert.Equal(t, k, cacheKey("func", "search", `"golang"`))

	assert.NotEqual(t, k, cacheKey("func", "search", `"rust"`))
	assert.NotEqual(t, k, cacheKey("func", "lookup", `"golang"`))
}

func TestCachedValueOfWrongTypeIsMiss(t *testing.T) {
	c, err := cache.New(config.Config{MaxSize: 10, DefaultTTL: time.Hour})
	require.NoError(t, err)

	k := cacheKey(DefaultPrefix, "count", "x")
	require.NoError(t, c.Set(k, "not an int"))

	calls := 0
	wrapped, err := Wrap[string, int](c, "count", func(_ context.Context, s string) (int, error) {
		calls++
		return 42, nil
	}, StringKey)
	require.NoError(t, err)

	v, err := wrapped(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	stored, ok, err := c.Get(k)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, stored)
}
