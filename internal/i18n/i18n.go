package i18n

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"

	DefaultLocale = LocaleEN

	contextKey = "locale"
)

// order matters: index 0 is the fallback
var (
	supported = []Locale{LocaleEN, LocaleZH}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Chinese})
)

type localeKey struct{}

// parses an explicit locale like "zh", "zh-CN" or "EN"
func ParseLocale(raw string) (Locale, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}

	base, _ := tag.Base()
	for _, l := range supported {
		if base.String() == string(l) {
			return l, true
		}
	}

	return "", false
}

// picks the locale for a request: explicit value, then Accept-Language, then en
func Negotiate(explicit, acceptLanguage string) Locale {
	if l, ok := ParseLocale(explicit); ok {
		return l
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}

	return supported[idx]
}

// translates key, falling back to English and then the key itself
func T(locale Locale, key string) string {
	if msg, ok := messages[locale][key]; ok {
		return msg
	}

	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}

	return key
}

// returns a copy of the translation table for a locale
func Messages(locale Locale) (map[string]string, bool) {
	table, ok := messages[locale]
	if !ok {
		return nil, false
	}

	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}

	return out, true
}

func Supported() []Locale {
	return append([]Locale(nil), supported...)
}

// resolves the request locale once and stores it on the gin and request contexts
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))

		c.Set(contextKey, locale)
		c.Request = c.Request.WithContext(WithLocale(c.Request.Context(), locale))
		c.Header("Content-Language", string(locale))

		c.Next()
	}
}

// locale stored by Middleware, or the default
func FromGin(c *gin.Context) Locale {
	if v, ok := c.Get(contextKey); ok {
		if l, ok := v.(Locale); ok {
			return l
		}
	}

	return Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
}

func WithLocale(ctx context.Context, locale Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(localeKey{}).(Locale); ok {
		return l
	}

	return DefaultLocale
}
