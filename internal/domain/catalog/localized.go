package catalog

import "strings"

const (
	PrimaryLocale   = "tr"
	SecondaryLocale = "en"
)

// LocalizedString holds a display string in the site's two locales.
type LocalizedString struct {
	Primary   string `json:"tr"`
	Secondary string `json:"en"`
}

// Resolve returns primary, falling back to secondary, then "".
func (l LocalizedString) Resolve() string {
	if strings.TrimSpace(l.Primary) != "" {
		return l.Primary
	}
	if strings.TrimSpace(l.Secondary) != "" {
		return l.Secondary
	}
	return ""
}

// In prefers the requested locale and falls back to the other side.
func (l LocalizedString) In(locale string) string {
	if strings.EqualFold(locale, SecondaryLocale) {
		if strings.TrimSpace(l.Secondary) != "" {
			return l.Secondary
		}
		return l.Resolve()
	}
	return l.Resolve()
}

// SupportedLocale reports whether locale is one of the two site locales.
func SupportedLocale(locale string) bool {
	return strings.EqualFold(locale, PrimaryLocale) || strings.EqualFold(locale, SecondaryLocale)
}
