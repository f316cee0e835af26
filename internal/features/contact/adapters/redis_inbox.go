package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"holo-lookup/internal/core/cache"
	"holo-lookup/internal/features/contact/domain"
)

const submissionKeyPrefix = "contact:"

// RedisInbox implements ports.Inbox on the cache, one JSON document per submission.
type RedisInbox struct {
	cache     cache.Cache
	retention time.Duration
}

// NewRedisInbox creates a RedisInbox keeping submissions for retention.
func NewRedisInbox(c cache.Cache, retention time.Duration) *RedisInbox {
	return &RedisInbox{
		cache:     c,
		retention: retention,
	}
}

// Save stores the submission under its id.
func (r *RedisInbox) Save(ctx context.Context, sub *domain.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	if err := r.cache.Set(ctx, submissionKeyPrefix+sub.ID, data, r.retention); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// Get loads a submission by id. It returns nil, nil when the id is unknown or expired.
func (r *RedisInbox) Get(ctx context.Context, id string) (*domain.Submission, error) {
	data, err := r.cache.Get(ctx, submissionKeyPrefix+id)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	var sub domain.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}
	return &sub, nil
}
