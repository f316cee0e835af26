package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, namespace string) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), namespace)
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, mr := newTestAdapter(t, "holo")
	ctx := context.Background()

	err := adapter.Set(ctx, "preferred-language:abc", []byte("en"), 10*time.Second)
	require.NoError(t, err)

	value, err := adapter.Get(ctx, "preferred-language:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("en"), value)

	stored, err := mr.Get("holo:preferred-language:abc")
	require.NoError(t, err)
	assert.Equal(t, "en", stored)
}

func TestRedisAdapter_NoNamespace(t *testing.T) {
	adapter, mr := newTestAdapter(t, "")
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "plain", []byte("v"), 0))
	assert.True(t, mr.Exists("plain"))
}

func TestRedisAdapter_GetNotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t, "holo")

	_, err := adapter.Get(context.Background(), "non_existent_key")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "non_existent_key")
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t, "holo")
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "delete_test", []byte("value"), 0))
	require.NoError(t, adapter.Delete(ctx, "delete_test"))

	_, err := adapter.Get(ctx, "delete_test")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, adapter.Delete(ctx, "never_existed"))
}

func TestRedisAdapter_TTL(t *testing.T) {
	adapter, mr := newTestAdapter(t, "holo")
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl_test", []byte("expires_soon"), time.Second))

	_, err := adapter.Get(ctx, "ttl_test")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl_test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, mr := newTestAdapter(t, "holo")

	assert.NoError(t, adapter.Ping(context.Background()))

	mr.Close()
	assert.Error(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url", "holo")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
