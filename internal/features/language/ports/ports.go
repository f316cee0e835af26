package ports

import (
	"context"

	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/features/language/domain"
)

// PreferenceService defines the primary port for language preference operations.
type PreferenceService interface {
	Get(ctx context.Context, visitorID, acceptLanguage string) (i18n.Language, error)
	Set(ctx context.Context, visitorID, code string) (i18n.Language, error)
	Toggle(ctx context.Context, visitorID, acceptLanguage string) (i18n.Language, error)
	Resolve(ctx context.Context, visitorID, explicit, acceptLanguage string) i18n.Language
}

// PreferenceRepository defines the secondary port for preference storage.
// Get returns nil, nil when the visitor has no stored preference.
type PreferenceRepository interface {
	Save(ctx context.Context, pref *domain.Preference) error
	Get(ctx context.Context, visitorID string) (*domain.Preference, error)
}
