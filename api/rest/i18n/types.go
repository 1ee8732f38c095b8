package i18n

// TranslationsResponse is the full message table for one locale
type TranslationsResponse struct {
	Locale   string            `json:"locale"`
	Messages map[string]string `json:"messages"`
}

type LocalesResponse struct {
	Locales []string `json:"locales"`
	Default string   `json:"default"`
}
