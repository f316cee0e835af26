package domain

import (
	"testing"

	"holo-lookup/internal/core/i18n"

	"github.com/stretchr/testify/assert"
)

func TestNewPreference(t *testing.T) {
	tests := []struct {
		name        string
		visitorID   string
		code        string
		expected    i18n.Language
		expectedErr error
	}{
		{name: "Vietnamese", visitorID: "v1", code: "vi", expected: i18n.Vietnamese},
		{name: "EnglishUpperCase", visitorID: "v1", code: "EN", expected: i18n.English},
		{name: "Unsupported", visitorID: "v1", code: "fr", expectedErr: ErrUnsupportedLanguage},
		{name: "MissingVisitor", visitorID: "", code: "vi", expectedErr: ErrMissingVisitor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref, err := NewPreference(tt.visitorID, tt.code)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, pref)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, pref.Language)
			assert.Equal(t, "preferred-language:"+tt.visitorID, pref.StorageKey())
		})
	}
}
