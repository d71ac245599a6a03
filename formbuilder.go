// Package formbuilder is the convenience entry point for the form layout
// engine: load a definition, start an editing session and render its canvas
// without wiring the individual packages by hand.
package formbuilder

import (
	"context"
	"io/fs"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
)

const importTimeout = 30 * time.Second

// Grid aliases layout.Grid for callers that only import the root package.
type Grid = layout.Grid

// Field aliases layout.Field.
type Field = layout.Field

// Target aliases layout.Target.
type Target = layout.Target

// Definition aliases formdef.Definition.
type Definition = formdef.Definition

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// LoadDefinition reads a JSON or YAML form definition from disk.
func LoadDefinition(path string) (Definition, error) {
	return formdef.LoadFile(path)
}

// ImportOperation seeds a definition from the request body of an OpenAPI
// operation. location may be a file path or an http(s) URL.
func ImportOperation(ctx context.Context, location, operationID string, options ...openapi.Option) (Definition, error) {
	data, err := openapi.Fetch(ctx, location, openapi.WithHTTPFallback(importTimeout))
	if err != nil {
		return Definition{}, err
	}
	return openapi.Import(ctx, data, operationID, options...)
}

// NewSession starts an editing session on the definition's grid.
func NewSession(def Definition, options ...editor.Option) *editor.Session {
	return editor.New(def.Grid(), options...)
}

// RenderHTML renders the session's current canvas with the embedded HTML
// templates.
func RenderHTML(ctx context.Context, title string, session *editor.Session, options RenderOptions) ([]byte, error) {
	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.View{
		Title:       title,
		Grid:        session.Grid(),
		Dragged:     session.Dragged(),
		ActiveField: session.ActiveField(),
	}, options)
}

// EmbeddedTemplates exposes the built-in canvas templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// AssetsFS exposes the static canvas assets (the default stylesheet) so Go
// applications can serve them next to rendered canvases.
//
//	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(formbuilder.AssetsFS())))
func AssetsFS() fs.FS {
	return html.AssetsFS()
}
