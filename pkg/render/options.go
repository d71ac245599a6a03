package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultSubmitLabel is used when RenderOptions.SubmitLabel is empty.
const DefaultSubmitLabel = "Submit"

// RenderOptions carry per-request presentation settings.
type RenderOptions struct {
	// Theme supplies tokens and CSS variables for the canvas chrome.
	Theme *theme.RendererConfig
	// SubmitLabel is the caption of the submit input.
	SubmitLabel string
	// Locale and Translator localise the fixed canvas texts. Without a
	// translator the English defaults are used.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// Submit returns the submit caption, falling back to the default.
func (o RenderOptions) Submit() string {
	if label := strings.TrimSpace(o.SubmitLabel); label != "" {
		return label
	}
	return o.Text(KeySubmit, DefaultSubmitLabel)
}

// CSSVarsStyle renders the theme CSS variables as an inline style value,
// sorted by name so output is stable.
func (o RenderOptions) CSSVarsStyle() string {
	if o.Theme == nil || len(o.Theme.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(o.Theme.CSSVars))
	for name := range o.Theme.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(o.Theme.CSSVars[name])
		b.WriteByte(';')
	}
	return b.String()
}

// Asset resolves a theme asset key, or returns "" without a resolver.
func (o RenderOptions) Asset(key string) string {
	if o.Theme == nil || o.Theme.AssetURL == nil || key == "" {
		return ""
	}
	return o.Theme.AssetURL(key)
}

// ThemeName returns "name" or "name/variant" for the configured theme.
func (o RenderOptions) ThemeName() string {
	if o.Theme == nil || o.Theme.Theme == "" {
		return ""
	}
	if o.Theme.Variant == "" {
		return o.Theme.Theme
	}
	return o.Theme.Theme + "/" + o.Theme.Variant
}
