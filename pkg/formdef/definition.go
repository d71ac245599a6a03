package formdef

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/palette"
)

var (
	// ErrUnknownType marks a field whose type is not in the vocabulary.
	ErrUnknownType = errors.New("formdef: unknown field type")
	// ErrInvalidPreselection marks a preselected value missing from the options.
	ErrInvalidPreselection = errors.New("formdef: preselected value is not an option")
)

// Definition is a form document: a title and the grid rows.
type Definition struct {
	Title string           `json:"title" yaml:"title"`
	Rows  [][]layout.Field `json:"rows" yaml:"rows"`
	// Source records where the definition was read from.
	Source string `json:"-" yaml:"-"`
}

// Grid returns the definition rows as a layout grid.
func (d Definition) Grid() layout.Grid {
	return layout.NewGrid(d.Rows...)
}

// FromGrid wraps a grid into a definition.
func FromGrid(title string, g layout.Grid) Definition {
	rows := make([][]layout.Field, 0, len(g))
	for _, row := range g.Clone() {
		rows = append(rows, []layout.Field(row))
	}
	return Definition{Title: title, Rows: rows}
}

// normalise canonicalises field types, drops empty rows, fills missing
// internal names and validates the grid invariants.
func normalise(def Definition) (Definition, error) {
	source := def.Source
	if source == "" {
		source = "definition"
	}

	var grid layout.Grid
	for r, row := range def.Rows {
		if len(row) == 0 {
			continue
		}
		out := make(layout.Row, 0, len(row))
		for c, field := range row {
			pos := layout.Position{Row: r + 1, Column: c + 1}
			fixed, err := normaliseField(field)
			if err != nil {
				return Definition{}, fmt.Errorf("formdef: %s %s: %w", source, pos, err)
			}
			out = append(out, fixed)
		}
		grid = append(grid, out)
	}

	// Names are filled after the whole grid is known so generated names
	// never collide with explicit ones further down.
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c].InternalName != "" {
				continue
			}
			grid[r][c].InternalName = palette.NameFor(grid, grid[r][c].Label)
		}
	}

	if err := grid.Validate(); err != nil {
		return Definition{}, fmt.Errorf("formdef: %s: %w", source, err)
	}

	normalised := FromGrid(def.Title, grid)
	normalised.Source = def.Source
	return normalised, nil
}

func normaliseField(field layout.Field) (layout.Field, error) {
	t, ok := layout.ParseFieldType(string(field.Type))
	if !ok {
		return layout.Field{}, fmt.Errorf("%q: %w", field.Type, ErrUnknownType)
	}
	field.Type = t
	if field.Label == "" && field.InternalName == "" {
		field.Label = string(t)
	}

	if !t.HasOptions() {
		field.Options = nil
		field.Preselected = ""
		return field, nil
	}

	var options []layout.Option
	for _, opt := range field.Options {
		if opt.Value == "" {
			opt.Value = palette.Camelize(opt.Text)
		}
		if opt.Text == "" {
			opt.Text = opt.Value
		}
		options = append(options, opt)
	}
	field.Options = options

	if field.Preselected != "" {
		found := false
		for _, opt := range options {
			if opt.Value == field.Preselected {
				found = true
				break
			}
		}
		if !found {
			return layout.Field{}, fmt.Errorf("%q: %w", field.Preselected, ErrInvalidPreselection)
		}
	}
	return field, nil
}
