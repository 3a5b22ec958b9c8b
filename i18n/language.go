// Package i18n provides the supported language set and the localized
// label dictionary used by the layout engines. The dictionary is pure
// data; English is the base and every other language is a complete
// per-field overlay merged over it.
package i18n

import "strings"

// Language is an ISO-639-1 code for one of the supported languages.
type Language string

const (
	English    Language = "en"
	German     Language = "de"
	French     Language = "fr"
	Spanish    Language = "es"
	Portuguese Language = "pt"
	Thai       Language = "th"
	Italian    Language = "it"
)

// Supported lists the languages Parse accepts, in documentation order.
func Supported() []Language {
	return []Language{English, German, French, Spanish, Portuguese, Thai, Italian}
}

// Parse maps a case-insensitive short code or full English language name
// to a Language. It reports ok=false for anything unsupported; callers
// reject such input before any generation work starts.
func Parse(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, true
	case "de", "german":
		return German, true
	case "fr", "french":
		return French, true
	case "es", "spanish":
		return Spanish, true
	case "pt", "portuguese":
		return Portuguese, true
	case "th", "thai":
		return Thai, true
	case "it", "italian":
		return Italian, true
	}
	return "", false
}

// Code returns the short language code ("en", "de", ...).
func (l Language) Code() string { return string(l) }
