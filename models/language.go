package models

import "strings"

// Language is one of the closed set of menu display languages.
type Language string

const (
	LanguageTurkish Language = "tr"
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// DefaultLanguage is the source-of-truth language every record must carry.
const DefaultLanguage = LanguageTurkish

// Languages lists the supported languages in display order.
var Languages = []Language{LanguageTurkish, LanguageEnglish, LanguageArabic}

// ParseLanguage maps a tag such as "EN" or " ar " to a Language.
func ParseLanguage(tag string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(tag))) {
	case LanguageTurkish:
		return LanguageTurkish, nil
	case LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageArabic:
		return LanguageArabic, nil
	default:
		return "", ErrInvalidLanguage
	}
}

// IsRTL reports whether the language is written right to left.
func (l Language) IsRTL() bool {
	return l == LanguageArabic
}

// Localized holds one text value per language.
type Localized struct {
	TR string
	EN string
	AR string
}

// Get returns the value for lang. A missing translation yields "", there is
// no fallback to the Turkish value.
func (l Localized) Get(lang Language) string {
	switch lang {
	case LanguageTurkish:
		return l.TR
	case LanguageEnglish:
		return l.EN
	case LanguageArabic:
		return l.AR
	default:
		return ""
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
