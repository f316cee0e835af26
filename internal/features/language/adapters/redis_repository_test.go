package adapters

import (
	"context"
	"testing"
	"time"

	"holo-lookup/internal/core/cache"
	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/features/language/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T, ttl time.Duration) (*RedisPreferenceRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "holo")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisPreferenceRepository(adapter, ttl), mr
}

func TestRedisPreferenceRepository_SaveGet(t *testing.T) {
	repo, mr := newRepository(t, 0)
	ctx := context.Background()

	err := repo.Save(ctx, &domain.Preference{VisitorID: "visitor-1", Language: i18n.English})
	require.NoError(t, err)

	stored, err := mr.Get("holo:preferred-language:visitor-1")
	require.NoError(t, err)
	assert.Equal(t, "en", stored)

	pref, err := repo.Get(ctx, "visitor-1")
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.Equal(t, i18n.English, pref.Language)
}

func TestRedisPreferenceRepository_GetMissing(t *testing.T) {
	repo, _ := newRepository(t, 0)

	pref, err := repo.Get(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, pref)
}

func TestRedisPreferenceRepository_GetStaleValue(t *testing.T) {
	repo, mr := newRepository(t, 0)
	require.NoError(t, mr.Set("holo:preferred-language:visitor-2", "de"))

	pref, err := repo.Get(context.Background(), "visitor-2")
	assert.NoError(t, err)
	assert.Nil(t, pref)
}

func TestRedisPreferenceRepository_TTL(t *testing.T) {
	repo, mr := newRepository(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Preference{VisitorID: "visitor-3", Language: i18n.Vietnamese}))
	assert.Equal(t, time.Hour, mr.TTL("holo:preferred-language:visitor-3"))

	mr.FastForward(2 * time.Hour)

	pref, err := repo.Get(ctx, "visitor-3")
	assert.NoError(t, err)
	assert.Nil(t, pref)
}

func TestRedisPreferenceRepository_CacheDown(t *testing.T) {
	repo, mr := newRepository(t, 0)
	mr.Close()

	_, err := repo.Get(context.Background(), "visitor-4")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get language preference")

	err = repo.Save(context.Background(), &domain.Preference{VisitorID: "visitor-4", Language: i18n.English})
	assert.Error(t, err)
}
