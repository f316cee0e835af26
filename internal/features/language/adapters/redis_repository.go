package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"holo-lookup/internal/core/cache"
	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/features/language/domain"
)

// RedisPreferenceRepository implements ports.PreferenceRepository on the cache.
// The stored value is the bare language code, like the browser storage key it
// replaces.
type RedisPreferenceRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisPreferenceRepository creates a repository whose entries live for ttl (0 = forever).
func NewRedisPreferenceRepository(c cache.Cache, ttl time.Duration) *RedisPreferenceRepository {
	return &RedisPreferenceRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the preference, refreshing its TTL.
func (r *RedisPreferenceRepository) Save(ctx context.Context, pref *domain.Preference) error {
	if err := r.cache.Set(ctx, pref.StorageKey(), []byte(pref.Language), r.ttl); err != nil {
		return fmt.Errorf("failed to save language preference: %w", err)
	}
	return nil
}

// Get loads the visitor's preference. A missing key or a stale unsupported
// code both count as no preference.
func (r *RedisPreferenceRepository) Get(ctx context.Context, visitorID string) (*domain.Preference, error) {
	key := domain.Preference{VisitorID: visitorID}.StorageKey()

	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get language preference: %w", err)
	}

	lang, ok := i18n.Parse(string(data))
	if !ok {
		return nil, nil
	}

	return &domain.Preference{VisitorID: visitorID, Language: lang}, nil
}
