package render

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestRenderOptionsTheme(t *testing.T) {
	opts := RenderOptions{Theme: &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		CSSVars: map[string]string{"--brand": "#123456", "--accent": "#fff"},
		AssetURL: func(key string) string {
			return "/themes/acme/" + key
		},
	}}

	if got := opts.CSSVarsStyle(); got != "--accent: #fff; --brand: #123456;" {
		t.Fatalf("css vars style = %q", got)
	}
	if got := opts.Asset("canvas.css"); got != "/themes/acme/canvas.css" {
		t.Fatalf("asset = %q", got)
	}
	if got := opts.ThemeName(); got != "acme/dark" {
		t.Fatalf("theme name = %q", got)
	}

	var bare RenderOptions
	if bare.CSSVarsStyle() != "" || bare.Asset("x") != "" || bare.ThemeName() != "" {
		t.Fatalf("options without theme should render nothing")
	}
}

func TestRenderOptionsText(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add("es", map[string]string{KeyEmptyTitle: "Ningún campo seleccionado"})

	opts := RenderOptions{Locale: "es", Translator: catalog}
	if got := opts.Text(KeyEmptyTitle, DefaultEmptyTitle); got != "Ningún campo seleccionado" {
		t.Fatalf("translated text = %q", got)
	}
	if got := opts.Text(KeyDropArea, DefaultDropArea); got != DefaultDropArea {
		t.Fatalf("missing key should fall back, got %q", got)
	}
	if got := (RenderOptions{}).Submit(); got != DefaultSubmitLabel {
		t.Fatalf("default submit = %q", got)
	}
	if got := (RenderOptions{SubmitLabel: "Publish"}).Submit(); got != "Publish" {
		t.Fatalf("submit = %q", got)
	}

	var seen error
	strict := RenderOptions{OnMissing: func(_, key, _ string, err error) string {
		seen = err
		return "!" + key
	}}
	if got := strict.Text(KeySubmit, "Submit"); got != "!"+KeySubmit {
		t.Fatalf("missing handler not used, got %q", got)
	}
	if !errors.Is(seen, ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", seen)
	}
}
