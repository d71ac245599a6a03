package render

import "github.com/goliatone/go-formbuilder/pkg/layout"

// Canvas is the drawable projection of a View: every row and field with the
// drop slots the policy currently offers next to it. Renderers draw a Canvas
// instead of querying the policy themselves.
type Canvas struct {
	Title    string      `json:"title"`
	Empty    bool        `json:"empty"`
	Dragging bool        `json:"dragging"`
	Rows     []CanvasRow `json:"rows"`
	// Bottom is the slot below the last row (or the only slot of an empty
	// form).
	Bottom *layout.Target `json:"bottom,omitempty"`
}

// CanvasRow is one grid row with its slots.
type CanvasRow struct {
	Index int            `json:"index"`
	Top   *layout.Target `json:"top,omitempty"`
	Cells []CanvasCell   `json:"cells"`
	Right *layout.Target `json:"right,omitempty"`
}

// CanvasCell is one field with the slot on its left.
type CanvasCell struct {
	Field    layout.Field    `json:"field"`
	Position layout.Position `json:"position"`
	Left     *layout.Target  `json:"left,omitempty"`
	Active   bool            `json:"active"`
	Dragged  bool            `json:"dragged"`
}

// NewCanvas projects view through the drop-target policy.
func NewCanvas(view View) Canvas {
	g := view.Grid
	item := view.Dragged
	canvas := Canvas{
		Title:    view.Title,
		Empty:    layout.IsFormEmpty(g),
		Dragging: layout.IsDragged(item),
	}

	if canvas.Empty {
		if layout.HasTopDropTarget(g, 1, item) {
			canvas.Bottom = slot(layout.Above(1))
		}
		return canvas
	}

	canvas.Rows = make([]CanvasRow, 0, len(g))
	for r, row := range g {
		idx := r + 1
		cr := CanvasRow{Index: idx, Cells: make([]CanvasCell, 0, len(row))}
		if layout.HasTopDropTarget(g, idx, item) {
			cr.Top = slot(layout.Above(idx))
		}
		for c, field := range row {
			cell := CanvasCell{
				Field:    field,
				Position: layout.Position{Row: idx, Column: c + 1},
				Active:   view.ActiveField != "" && field.InternalName == view.ActiveField,
				Dragged:  layout.IsCurrentFieldDragged(item, field),
			}
			if layout.HasLeftDropTarget(row, c+1, item) {
				cell.Left = slot(layout.Between(idx, c+1))
			}
			cr.Cells = append(cr.Cells, cell)
		}
		if layout.HasRightDropTarget(row, item) {
			cr.Right = slot(layout.Between(idx, len(row)+1))
		}
		canvas.Rows = append(canvas.Rows, cr)
	}
	if layout.HasBottomDropTarget(g, item) {
		canvas.Bottom = slot(layout.Above(len(g) + 1))
	}
	return canvas
}

// Targets flattens the canvas slots in reading order.
func (c Canvas) Targets() []layout.Target {
	var out []layout.Target
	for _, row := range c.Rows {
		if row.Top != nil {
			out = append(out, *row.Top)
		}
		for _, cell := range row.Cells {
			if cell.Left != nil {
				out = append(out, *cell.Left)
			}
		}
		if row.Right != nil {
			out = append(out, *row.Right)
		}
	}
	if c.Bottom != nil {
		out = append(out, *c.Bottom)
	}
	return out
}

func slot(t layout.Target) *layout.Target {
	return &t
}
