// Package i18n serves the localized user-facing message tables with a
// read-through cache and an embedded English table as last-resort fallback.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

//go:embed locales/*.json
var localeFS embed.FS

// Key identifies one fixed user-facing message.
type Key string

// Message keys.
const (
	KeyRouterFailure        Key = "router_failure"
	KeyGenericRefusal       Key = "generic_refusal"
	KeySpecificFallback     Key = "specific_fallback"
	KeySpecificError        Key = "specific_error"
	KeySynthesisFailure     Key = "synthesis_failure"
	KeyUnrecognizedIntent   Key = "unrecognized_intent"
	KeyFailedProcessResults Key = "failed_process_search_results"
	KeyFailedExtractResults Key = "failed_extract_search_results"
)

var allKeys = []Key{
	KeyRouterFailure,
	KeyGenericRefusal,
	KeySpecificFallback,
	KeySpecificError,
	KeySynthesisFailure,
	KeyUnrecognizedIntent,
	KeyFailedProcessResults,
	KeyFailedExtractResults,
}

// Table maps message keys to localized strings.
type Table map[Key]string

// supportedLanguages lists the locale files shipped with the service.
var supportedLanguages = map[string]struct{}{
	"en": {}, "es": {}, "fr": {}, "de": {}, "zh": {}, "ja": {},
}

// defaultEN is the embedded last-resort table. The service must never fail
// purely because a locale file is missing or corrupt.
var defaultEN = Table{
	KeyRouterFailure:        "The AI router could not determine the intent of your query.",
	KeyGenericRefusal:       "I'm sorry, I specialize only in Movies, Games, Books, and TV Shows.",
	KeySpecificFallback:     "Here is what I found about that:",
	KeySpecificError:        "Failed to retrieve specific entity details.",
	KeySynthesisFailure:     "I found some information but couldn't generate a summary. Please check the details below.",
	KeyUnrecognizedIntent:   "I wasn't sure how to handle that query, but I'm here to help with movies, games, and books.",
	KeyFailedProcessResults: "Failed to process search results",
	KeyFailedExtractResults: "Failed to extract information from search results",
}

// Catalog is a read-through cache of loaded translation tables keyed by
// language code.
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]Table
	logger *zap.Logger
}

// NewCatalog creates an empty translation catalog.
func NewCatalog(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		tables: make(map[string]Table),
		logger: logger,
	}
}

// Resolve normalizes a language code, mapping unsupported codes to "en".
func Resolve(language string) string {
	if _, ok := supportedLanguages[language]; ok {
		return language
	}
	return "en"
}

// Table returns the message table for a language, falling back to English
// and finally to the embedded defaults when loading fails.
func (c *Catalog) Table(language string) Table {
	lang := Resolve(language)

	c.mu.RLock()
	t, ok := c.tables[lang]
	c.mu.RUnlock()
	if ok {
		return t
	}

	t, err := loadTable(lang)
	if err != nil {
		c.logger.Error("failed to load locale", zap.String("language", lang), zap.Error(err))
		if lang != "en" {
			return c.Table("en")
		}
		return defaultEN
	}

	c.mu.Lock()
	c.tables[lang] = t
	c.mu.Unlock()

	return t
}

// Lookup returns one localized message, never an empty string.
func (c *Catalog) Lookup(language string, key Key) string {
	if msg, ok := c.Table(language)[key]; ok && msg != "" {
		return msg
	}
	return defaultEN[key]
}

// loadTable reads and validates one embedded locale file.
func loadTable(lang string) (Table, error) {
	data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", lang))
	if err != nil {
		return nil, fmt.Errorf("read locale %s: %w", lang, err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", lang, err)
	}

	for _, k := range allKeys {
		if t[k] == "" {
			return nil, fmt.Errorf("locale %s: missing key %q", lang, k)
		}
	}

	return t, nil
}
