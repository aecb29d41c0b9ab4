package i18n

import (
	"strings"

	"ketotrack/backend/pkg/config"
)

// Supported locales. English is the fallback for unknown locales and for
// keys missing from a catalog.
const (
	LocaleEN = "en"
	LocaleDE = "de"
)

var catalogs = map[string]map[string]string{
	LocaleEN: en,
	LocaleDE: de,
}

// T resolves a message key for the given locale, falling back to English,
// then to the key itself so a missing entry stays visible instead of
// rendering as an empty string.
func T(locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := en[key]; ok {
		return msg
	}
	return key
}

// Supported reports whether the locale has a catalog.
func Supported(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}

// Negotiate picks a locale from an explicit request value and the
// Accept-Language header, in that order, defaulting to the configured
// application locale.
func Negotiate(explicit, acceptLanguage string) string {
	if Supported(explicit) {
		return explicit
	}
	for _, part := range strings.Split(acceptLanguage, ",") {
		lang := strings.TrimSpace(part)
		if i := strings.IndexByte(lang, ';'); i >= 0 {
			lang = lang[:i]
		}
		if i := strings.IndexByte(lang, '-'); i >= 0 {
			lang = lang[:i]
		}
		if Supported(lang) {
			return lang
		}
	}
	if Supported(config.Cfg.DefaultLocale) {
		return config.Cfg.DefaultLocale
	}
	return LocaleEN
}
