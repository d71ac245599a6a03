package render

import (
	"errors"
	"fmt"
	"maps"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrUnknownVariant is returned by ResolveTheme for a variant the manifest
// does not declare.
var ErrUnknownVariant = errors.New("render: unknown theme variant")

// ResolveTheme flattens a manifest and one of its variants into renderer
// settings. Variant tokens, templates and assets override the base ones,
// and every token is also exposed as a "--name" CSS variable.
func ResolveTheme(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, errors.New("render: theme manifest is required")
	}

	tokens := maps.Clone(manifest.Tokens)
	partials := maps.Clone(manifest.Templates)
	files := maps.Clone(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrUnknownVariant, manifest.Name, variant)
		}
		tokens = merge(tokens, v.Tokens)
		partials = merge(partials, v.Templates)
		files = merge(files, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for name, value := range tokens {
		cssVars["--"+strings.TrimPrefix(name, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}, nil
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		switch {
		case file == "":
			return ""
		case strings.HasPrefix(file, "/"), strings.Contains(file, "://"):
			return file
		case prefix == "":
			return file
		}
		return path.Join(prefix, file)
	}
}

func merge(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(override))
	}
	maps.Copy(base, override)
	return base
}
