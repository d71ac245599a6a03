package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/layout"
)

// Renderer turns an editor view into bytes (HTML, terminal text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View, options RenderOptions) ([]byte, error)
}

// View is everything a renderer needs to draw the canvas.
type View struct {
	Title       string             `json:"title"`
	Grid        layout.Grid        `json:"grid"`
	Dragged     layout.DraggedItem `json:"dragged"`
	ActiveField string             `json:"activeField,omitempty"`
}
