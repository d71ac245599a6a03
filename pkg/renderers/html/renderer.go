package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

// StylesheetAsset is the theme asset key resolved for the canvas stylesheet.
const StylesheetAsset = "stylesheet"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The
// bundle needs canvas.tpl and field.tpl at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithLabelPolicy replaces the strict label sanitiser.
func WithLabelPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer draws the editor canvas as an HTML form fragment.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		cfg.policy = labelSanitizer()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("canvas", r.page(view, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type page struct {
	Title      string            `json:"title"`
	Theme      string            `json:"theme"`
	Style      string            `json:"style"`
	Stylesheet string            `json:"stylesheet"`
	Empty      bool              `json:"empty"`
	Dragging   bool              `json:"dragging"`
	Rows       []row             `json:"rows"`
	Bottom     *layout.Target    `json:"bottom,omitempty"`
	Text       map[string]string `json:"text"`
}

type row struct {
	Index int            `json:"index"`
	Top   *layout.Target `json:"top,omitempty"`
	Cells []cell         `json:"cells"`
	Right *layout.Target `json:"right,omitempty"`
}

type cell struct {
	Name        string         `json:"name"`
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Type        string         `json:"type"`
	Options     []option       `json:"options"`
	Preselected bool           `json:"preselected"`
	Left        *layout.Target `json:"left,omitempty"`
	Active      bool           `json:"active"`
	Dragged     bool           `json:"dragged"`
}

type option struct {
	Value    string `json:"value"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

func (r *Renderer) page(view render.View, options render.RenderOptions) page {
	canvas := render.NewCanvas(view)
	p := page{
		Title:      sanitize(r.policy, canvas.Title),
		Theme:      options.ThemeName(),
		Style:      options.CSSVarsStyle(),
		Stylesheet: options.Asset(StylesheetAsset),
		Empty:      canvas.Empty,
		Dragging:   canvas.Dragging,
		Bottom:     canvas.Bottom,
		Rows:       make([]row, 0, len(canvas.Rows)),
		Text: map[string]string{
			"emptyTitle": options.Text(render.KeyEmptyTitle, render.DefaultEmptyTitle),
			"emptyBody":  options.Text(render.KeyEmptyBody, render.DefaultEmptyBody),
			"dropArea":   options.Text(render.KeyDropArea, render.DefaultDropArea),
			"selectNone": options.Text(render.KeySelectNone, render.DefaultSelectNone),
			"submit":     options.Submit(),
		},
	}
	for _, cr := range canvas.Rows {
		out := row{Index: cr.Index, Top: cr.Top, Right: cr.Right, Cells: make([]cell, 0, len(cr.Cells))}
		for _, cc := range cr.Cells {
			out.Cells = append(out.Cells, r.cell(cc))
		}
		p.Rows = append(p.Rows, out)
	}
	return p
}

func (r *Renderer) cell(cc render.CanvasCell) cell {
	f := cc.Field
	c := cell{
		Name:        f.InternalName,
		ID:          controlID(f.InternalName),
		Label:       sanitize(r.policy, f.Label),
		Type:        string(f.Type),
		Preselected: f.HasPreselection(),
		Left:        cc.Left,
		Active:      cc.Active,
		Dragged:     cc.Dragged,
	}
	for _, opt := range f.Options {
		c.Options = append(c.Options, option{
			Value:    opt.Value,
			Text:     sanitize(r.policy, opt.Text),
			Selected: f.HasPreselection() && opt.Value == f.Preselected,
		})
	}
	return c
}
