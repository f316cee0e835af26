package adapters

import (
	"context"
	"testing"
	"time"

	"holo-lookup/internal/core/cache"
	"holo-lookup/internal/features/contact/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInbox(t *testing.T, retention time.Duration) (*RedisInbox, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "holo")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisInbox(adapter, retention), mr
}

func TestRedisInbox_SaveGet(t *testing.T) {
	inbox, mr := newInbox(t, 24*time.Hour)
	ctx := context.Background()

	sub := &domain.Submission{
		ID:        "sub-1",
		Name:      "Trần Thị B",
		Email:     "b@example.com",
		Phone:     "0912345678",
		Service:   "logistics",
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, inbox.Save(ctx, sub))

	assert.True(t, mr.Exists("holo:contact:sub-1"))
	assert.Equal(t, 24*time.Hour, mr.TTL("holo:contact:sub-1"))

	loaded, err := inbox.Get(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, sub, loaded)
}

func TestRedisInbox_GetMissing(t *testing.T) {
	inbox, _ := newInbox(t, time.Hour)

	loaded, err := inbox.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisInbox_GetCorrupt(t *testing.T) {
	inbox, mr := newInbox(t, time.Hour)
	require.NoError(t, mr.Set("holo:contact:bad", "{not json"))

	_, err := inbox.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal submission")
}
