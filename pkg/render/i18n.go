package render

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Keys of the fixed canvas texts.
const (
	KeyEmptyTitle = "canvas.empty.title"
	KeyEmptyBody  = "canvas.empty.body"
	KeyDropArea   = "canvas.drop.area"
	KeySubmit     = "canvas.submit"
	KeySelectNone = "field.select.none"
)

// Default English canvas texts.
const (
	DefaultEmptyTitle = "No fields selected"
	DefaultEmptyBody  = "You must have at least one field on your form to publish."
	DefaultDropArea   = "Drag and drop a form field here"
	DefaultSelectNone = "-- select an option --"
)

// ErrMissingTranslator is passed to the missing handler when no translator
// is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler picks the text used when a translation fails.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// Text translates key, falling back to fallback (or the missing handler).
func (o RenderOptions) Text(key, fallback string) string {
	onMissing := o.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if o.Translator == nil {
		if o.OnMissing == nil {
			return fallback
		}
		return onMissing(o.Locale, key, fallback, ErrMissingTranslator)
	}
	msg, err := o.Translator.Translate(o.Locale, key)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(o.Locale, key, fallback, err)
	}
	return msg
}

// Catalog is an in-memory Translator keyed by locale then message key.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{messages: make(map[string]map[string]string)}
}

// Add registers messages for locale, replacing existing keys.
func (c *Catalog) Add(locale string, messages map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.messages[locale]
	if !ok {
		bucket = make(map[string]string, len(messages))
		c.messages[locale] = bucket
	}
	for key, msg := range messages {
		bucket[key] = msg
	}
}

// Translate implements Translator. Args are applied with fmt.Sprintf when
// present.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	msg, ok := c.messages[locale][key]
	if !ok {
		return "", fmt.Errorf("render: no %q message for locale %q", key, locale)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...), nil
	}
	return msg, nil
}
