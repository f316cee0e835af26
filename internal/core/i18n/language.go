package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported site language code.
type Language string

const (
	// Vietnamese is the default site language.
	Vietnamese Language = "vi"
	// English is the secondary site language.
	English Language = "en"
)

// Supported lists the site languages in matcher preference order.
var Supported = []Language{Vietnamese, English}

var matcher = language.NewMatcher([]language.Tag{
	language.Vietnamese,
	language.English,
})

// Parse reports whether s names a supported language. Matching ignores case and
// surrounding whitespace.
func Parse(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Vietnamese:
		return Vietnamese, true
	case English:
		return English, true
	}
	return "", false
}

// Toggle returns the other supported language.
func Toggle(l Language) Language {
	if l == Vietnamese {
		return English
	}
	return Vietnamese
}

// Match picks the best supported language for an Accept-Language header value,
// returning fallback when nothing matches.
func Match(acceptLanguage string, fallback Language) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return Supported[index]
}
