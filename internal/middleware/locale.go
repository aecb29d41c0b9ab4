package middleware

import (
	"ketotrack/backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

// LocaleKey is the gin context key under which the negotiated locale is set.
const LocaleKey = "locale"

// Locale resolves the request locale from the "locale" query parameter or
// the Accept-Language header and stores it in the context.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.Negotiate(c.Query("locale"), c.GetHeader("Accept-Language"))
		c.Set(LocaleKey, locale)
		c.Next()
	}
}

// RequestLocale reads the locale set by the Locale middleware, defaulting to
// English when the middleware did not run.
func RequestLocale(c *gin.Context) string {
	if locale, ok := c.Get(LocaleKey); ok {
		if s, ok := locale.(string); ok {
			return s
		}
	}
	return i18n.LocaleEN
}
