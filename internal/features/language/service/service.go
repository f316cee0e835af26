package service

import (
	"context"
	"fmt"

	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/core/logger"
	"holo-lookup/internal/features/language/domain"
	"holo-lookup/internal/features/language/ports"

	"go.uber.org/zap"
)

// PreferenceServiceImpl implements ports.PreferenceService.
type PreferenceServiceImpl struct {
	repo     ports.PreferenceRepository
	fallback i18n.Language
	logger   *zap.Logger
}

// NewPreferenceService creates a PreferenceServiceImpl. fallback is the language
// served to visitors with no usable preference.
func NewPreferenceService(repo ports.PreferenceRepository, fallback i18n.Language) *PreferenceServiceImpl {
	return &PreferenceServiceImpl{
		repo:     repo,
		fallback: fallback,
		logger:   logger.Named("language"),
	}
}

// Get returns the language the visitor currently sees: the stored preference,
// else the Accept-Language match, else the fallback. Unlike Resolve, storage
// errors are returned.
func (s *PreferenceServiceImpl) Get(ctx context.Context, visitorID, acceptLanguage string) (i18n.Language, error) {
	if visitorID == "" {
		return i18n.Match(acceptLanguage, s.fallback), nil
	}

	pref, err := s.repo.Get(ctx, visitorID)
	if err != nil {
		return "", fmt.Errorf("service: failed to get preference: %w", err)
	}
	if pref == nil {
		return i18n.Match(acceptLanguage, s.fallback), nil
	}
	return pref.Language, nil
}

// Set validates and stores the visitor's language.
func (s *PreferenceServiceImpl) Set(ctx context.Context, visitorID, code string) (i18n.Language, error) {
	pref, err := domain.NewPreference(visitorID, code)
	if err != nil {
		return "", err
	}

	if err := s.repo.Save(ctx, pref); err != nil {
		return "", fmt.Errorf("service: failed to save preference: %w", err)
	}
	return pref.Language, nil
}

// Toggle switches the visitor away from the language currently shown and
// stores the result.
func (s *PreferenceServiceImpl) Toggle(ctx context.Context, visitorID, acceptLanguage string) (i18n.Language, error) {
	current, err := s.Get(ctx, visitorID, acceptLanguage)
	if err != nil {
		return "", err
	}
	return s.Set(ctx, visitorID, string(i18n.Toggle(current)))
}

// Resolve picks the language for a request: an explicit code, then the stored
// preference, then the Accept-Language header, then the fallback. Storage
// errors are logged and skipped so a cache outage never blocks a page.
func (s *PreferenceServiceImpl) Resolve(ctx context.Context, visitorID, explicit, acceptLanguage string) i18n.Language {
	if lang, ok := i18n.Parse(explicit); ok {
		return lang
	}

	if visitorID != "" {
		pref, err := s.repo.Get(ctx, visitorID)
		if err != nil {
			s.logger.Warn("Failed to load language preference",
				zap.String("visitor_id", visitorID),
				zap.Error(err),
			)
		} else if pref != nil {
			return pref.Language
		}
	}

	return i18n.Match(acceptLanguage, s.fallback)
}
