package term

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

const (
	VerticalMarker   = "┆"
	HorizontalMarker = "┄"
	defaultWidth     = 48
)

// Option configures the terminal renderer.
type Option func(*Renderer)

// WithOutput binds styles to the colour profile of w. Without it output
// carries no ANSI sequences.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.lg = lipgloss.NewRenderer(w)
		}
	}
}

// WithWidth sets the length of horizontal slot lines.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// Renderer implements render.Renderer for terminals.
type Renderer struct {
	lg    *lipgloss.Renderer
	width int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the terminal renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{width: defaultWidth}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.lg == nil {
		r.lg = lipgloss.NewRenderer(io.Discard)
	}
	return r
}

func (r *Renderer) Name() string {
	return "term"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	canvas := render.NewCanvas(view)
	st := r.styles()

	var lines []string
	if title := strings.TrimSpace(canvas.Title); title != "" {
		lines = append(lines, st.title.Render(title))
	}

	if canvas.Empty {
		lines = append(lines,
			st.alert.Render(options.Text(render.KeyEmptyTitle, render.DefaultEmptyTitle)+"\n"+
				options.Text(render.KeyEmptyBody, render.DefaultEmptyBody)))
		if canvas.Bottom != nil {
			lines = append(lines, r.horizontal(st, *canvas.Bottom, options.Text(render.KeyDropArea, render.DefaultDropArea)))
		}
		return []byte(strings.Join(lines, "\n") + "\n"), nil
	}

	for _, row := range canvas.Rows {
		if row.Top != nil {
			lines = append(lines, r.horizontal(st, *row.Top, ""))
		}
		lines = append(lines, r.row(st, row))
	}
	if canvas.Bottom != nil {
		lines = append(lines, r.horizontal(st, *canvas.Bottom, ""))
	}
	lines = append(lines, st.muted.Render("["+options.Submit()+"]"))
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

func (r *Renderer) row(st styles, row render.CanvasRow) string {
	boxes := make([]string, 0, len(row.Cells))
	height := 1
	for _, cell := range row.Cells {
		box := r.box(st, cell)
		boxes = append(boxes, box)
		height = max(height, lipgloss.Height(box))
	}

	parts := make([]string, 0, 2*len(boxes)+1)
	for i, cell := range row.Cells {
		if cell.Left != nil {
			parts = append(parts, r.vertical(st, height))
		}
		parts = append(parts, boxes[i])
	}
	if row.Right != nil {
		parts = append(parts, r.vertical(st, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) box(st styles, cell render.CanvasCell) string {
	f := cell.Field
	style := st.field
	body := fmt.Sprintf("%s\n%s", f.Label, st.muted.Render(describe(f)))
	if f.IsHeader() {
		style = st.header
		body = f.Label
	}
	switch {
	case cell.Dragged:
		style = style.BorderStyle(lipgloss.HiddenBorder()).Faint(true)
	case cell.Active:
		style = style.BorderForeground(lipgloss.Color("#2CD7C7")).Bold(true)
	}
	return style.Render(body)
}

// describe is the second line of a field box: type, internal name and,
// for option fields, the option count.
func describe(f layout.Field) string {
	desc := fmt.Sprintf("%s · %s", f.Type, f.InternalName)
	if f.Type.HasOptions() {
		desc += fmt.Sprintf(" · %d options", len(f.Options))
	}
	return desc
}

func (r *Renderer) vertical(st styles, height int) string {
	return st.slot.Render(strings.TrimSuffix(strings.Repeat(VerticalMarker+"\n", height), "\n"))
}

func (r *Renderer) horizontal(st styles, target layout.Target, caption string) string {
	label := fmt.Sprintf(" %d:%d ", target.Row, target.Column)
	if caption != "" {
		label = " " + caption + label
	}
	fill := max(r.width-lipgloss.Width(label), 4)
	left := fill / 2
	return st.slot.Render(strings.Repeat(HorizontalMarker, left) + label + strings.Repeat(HorizontalMarker, fill-left))
}

type styles struct {
	title  lipgloss.Style
	field  lipgloss.Style
	header lipgloss.Style
	alert  lipgloss.Style
	slot   lipgloss.Style
	muted  lipgloss.Style
}

func (r *Renderer) styles() styles {
	return styles{
		title: r.lg.NewStyle().Bold(true).Underline(true),
		field: r.lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		header: r.lg.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 1).
			Bold(true),
		alert: r.lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F4D03F")).
			Padding(0, 1),
		slot:  r.lg.NewStyle().Foreground(lipgloss.Color("#1D9EA3")),
		muted: r.lg.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
	}
}
