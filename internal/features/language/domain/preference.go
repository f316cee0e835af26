package domain

import (
	"errors"

	"holo-lookup/internal/core/i18n"
)

var (
	// ErrUnsupportedLanguage is returned when a language code is not vi or en.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrMissingVisitor is returned when a preference is written without a visitor id.
	ErrMissingVisitor = errors.New("visitor id is required")
)

// PreferenceKeyPrefix is the storage key prefix of a visitor's language preference.
const PreferenceKeyPrefix = "preferred-language:"

// Preference is a visitor's chosen site language.
type Preference struct {
	VisitorID string        `json:"visitor_id"`
	Language  i18n.Language `json:"language"`
}

// NewPreference validates code and builds a Preference for visitorID.
func NewPreference(visitorID, code string) (*Preference, error) {
	if visitorID == "" {
		return nil, ErrMissingVisitor
	}

	lang, ok := i18n.Parse(code)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	return &Preference{VisitorID: visitorID, Language: lang}, nil
}

// StorageKey returns the cache key the preference is stored under.
func (p Preference) StorageKey() string {
	return PreferenceKeyPrefix + p.VisitorID
}
