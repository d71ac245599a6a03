package layout

import (
	"errors"
	"fmt"
)

// MaxRowFields is the number of fields a single row can hold.
const MaxRowFields = 3

// Row is an ordered, left-to-right group of 1 to MaxRowFields fields.
type Row []Field

// Grid is the ordered, top-to-bottom list of rows making up a form.
type Grid []Row

// NewGrid builds a grid from nested field slices, dropping empty rows.
func NewGrid(rows ...[]Field) Grid {
	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		grid = append(grid, Row(row))
	}
	return grid.Normalize()
}

// RowCount returns the number of rows.
func (g Grid) RowCount() int {
	return len(g)
}

// FieldCount returns the number of fields in the 1-based row, or 0 when the
// row does not exist.
func (g Grid) FieldCount(row int) int {
	if row < 1 || row > len(g) {
		return 0
	}
	return len(g[row-1])
}

// TotalFields counts every placed field.
func (g Grid) TotalFields() int {
	total := 0
	for _, row := range g {
		total += len(row)
	}
	return total
}

// IsFormEmpty reports the "no fields selected" state: zero rows, or a single
// row without fields.
func IsFormEmpty(g Grid) bool {
	return len(g) == 0 || (len(g) == 1 && len(g[0]) == 0)
}

// Names lists internal names in reading order.
func (g Grid) Names() []string {
	names := make([]string, 0, g.TotalFields())
	for _, row := range g {
		for _, field := range row {
			names = append(names, field.InternalName)
		}
	}
	return names
}

// Clone returns a deep copy so callers can hand grids across state
// transitions without sharing backing arrays.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = row.clone()
	}
	return out
}

// Normalize returns a copy without empty rows.
func (g Grid) Normalize() Grid {
	out := make(Grid, 0, len(g))
	for _, row := range g {
		if len(row) == 0 {
			continue
		}
		out = append(out, row.clone())
	}
	return out
}

// Equal reports structural equality (same rows, same fields, same order).
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if !g[i].equal(other[i]) {
			return false
		}
	}
	return true
}

// Validate checks every grid invariant and joins all violations.
func (g Grid) Validate() error {
	var errs []error
	seen := make(map[string]Position)
	for r, row := range g {
		rowIdx := r + 1
		switch {
		case len(row) == 0:
			errs = append(errs, fmt.Errorf("row %d: %w", rowIdx, ErrEmptyRow))
		case len(row) > MaxRowFields:
			errs = append(errs, fmt.Errorf("row %d holds %d fields: %w", rowIdx, len(row), ErrRowCapacity))
		}
		for c, field := range row {
			pos := Position{Row: rowIdx, Column: c + 1}
			if field.IsHeader() && len(row) > 1 {
				errs = append(errs, fmt.Errorf("row %d: %w", rowIdx, ErrHeaderNotAlone))
			}
			if field.InternalName == "" {
				errs = append(errs, fmt.Errorf("%s: %w", pos, ErrMissingName))
				continue
			}
			if prev, ok := seen[field.InternalName]; ok {
				errs = append(errs, fmt.Errorf("%q at %s and %s: %w", field.InternalName, prev, pos, ErrDuplicateName))
				continue
			}
			seen[field.InternalName] = pos
		}
	}
	return errors.Join(errs...)
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	for i, field := range r {
		out[i] = field.clone()
	}
	return out
}

func (r Row) equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		a, b := r[i], other[i]
		if a.InternalName != b.InternalName || a.Label != b.Label || a.Type != b.Type || a.Preselected != b.Preselected {
			return false
		}
		if len(a.Options) != len(b.Options) {
			return false
		}
		for j := range a.Options {
			if a.Options[j] != b.Options[j] {
				return false
			}
		}
	}
	return true
}

// without returns a copy of the row minus the 1-based column.
func (r Row) without(column int) Row {
	out := make(Row, 0, len(r))
	out = append(out, r[:column-1]...)
	return append(out, r[column:]...)
}

// with returns a copy of the row with field inserted before the 1-based column.
func (r Row) with(column int, field Field) Row {
	out := make(Row, 0, len(r)+1)
	out = append(out, r[:column-1]...)
	out = append(out, field)
	return append(out, r[column-1:]...)
}

// shift moves the element at index from to index to (0-based) in a copy.
func (r Row) shift(from, to int) Row {
	out := r.clone()
	field := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out, Field{})
	copy(out[to+1:], out[to:])
	out[to] = field
	return out
}
