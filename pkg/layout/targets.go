package layout

import "fmt"

// NewRow is the column value of a target that inserts a standalone row
// instead of placing the field inside an existing one.
const NewRow = 0

// Placement distinguishes drop slots between fields from slots between rows.
type Placement string

const (
	PlacementVertical   Placement = "vertical"
	PlacementHorizontal Placement = "horizontal"
)

// Target is a drop cell. Row is 1-based. Column is 1-based for a slot inside
// the row (Column N sits before the Nth field, len+1 after the last one) or
// NewRow for a slot above Row (Row == RowCount()+1 is below the last row).
type Target struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Between targets the slot before the 1-based column of a row.
func Between(row, column int) Target {
	return Target{Row: row, Column: column}
}

// Above targets the slot that opens a new row at the given 1-based index.
func Above(row int) Target {
	return Target{Row: row, Column: NewRow}
}

// Placement reports which kind of slot the target addresses.
func (t Target) Placement() Placement {
	if t.Column == NewRow {
		return PlacementHorizontal
	}
	return PlacementVertical
}

func (t Target) String() string {
	if t.Column == NewRow {
		return fmt.Sprintf("row %d (new row)", t.Row)
	}
	return fmt.Sprintf("row %d column %d", t.Row, t.Column)
}

// IsHeader reports whether f is a header field.
func IsHeader(f Field) bool {
	return f.IsHeader()
}

// IsCurrentFieldDragged reports whether f is the placed field being dragged.
func IsCurrentFieldDragged(item DraggedItem, f Field) bool {
	return item.IsExisting() && item.matches(f)
}

// IsFullRow reports whether the row has reached MaxRowFields.
func IsFullRow(row Row) bool {
	return len(row) >= MaxRowFields
}

// IsAnyFieldDragged reports whether the dragged item is a member of row.
func IsAnyFieldDragged(row Row, item DraggedItem) bool {
	for _, f := range row {
		if item.matches(f) {
			return true
		}
	}
	return false
}

// IsSingleFieldRow reports whether the row holds exactly one field.
func IsSingleFieldRow(row Row) bool {
	return len(row) == 1
}

// IsSingleAndDragged reports whether the row's sole occupant is being dragged.
func IsSingleAndDragged(row Row, item DraggedItem) bool {
	return IsSingleFieldRow(row) && item.matches(row[0])
}

// HasLeftDropTarget reports whether the slot before the 1-based column of
// row accepts the dragged item.
func HasLeftDropTarget(row Row, column int, item DraggedItem) bool {
	if column < 1 || column > len(row) {
		return false
	}
	return hasVerticalSlot(row, column, item)
}

// HasRightDropTarget reports whether the slot after the last field of row
// accepts the dragged item.
func HasRightDropTarget(row Row, item DraggedItem) bool {
	if len(row) == 0 {
		return false
	}
	return hasVerticalSlot(row, len(row)+1, item)
}

func hasVerticalSlot(row Row, column int, item DraggedItem) bool {
	if !IsDragged(item) || item.IsHeader() {
		return false
	}
	if IsFullRow(row) && !IsAnyFieldDragged(row, item) {
		return false
	}
	if column <= len(row) {
		right := row[column-1]
		if IsHeader(right) || IsCurrentFieldDragged(item, right) {
			return false
		}
	}
	if column >= 2 {
		left := row[column-2]
		if IsHeader(left) || IsCurrentFieldDragged(item, left) {
			return false
		}
	}
	return true
}

// HasTopDropTarget reports whether the slot above the 1-based row accepts
// the dragged item. Dropping a lone field next to itself is suppressed.
func HasTopDropTarget(g Grid, row int, item DraggedItem) bool {
	if !IsDragged(item) {
		return false
	}
	if IsFormEmpty(g) {
		return row == 1
	}
	if row < 1 || row > len(g) {
		return false
	}
	if IsSingleAndDragged(g[row-1], item) {
		return false
	}
	if row > 1 && IsSingleAndDragged(g[row-2], item) {
		return false
	}
	return true
}

// HasBottomDropTarget reports whether the slot below the last row accepts
// the dragged item.
func HasBottomDropTarget(g Grid, item DraggedItem) bool {
	if !IsDragged(item) || IsFormEmpty(g) {
		return false
	}
	return !IsSingleAndDragged(g[len(g)-1], item)
}

// VerticalTargets lists the allowed slots inside the 1-based row.
func VerticalTargets(g Grid, row int, item DraggedItem) []Target {
	if row < 1 || row > len(g) || !IsDragged(item) {
		return nil
	}
	fields := g[row-1]
	var out []Target
	for column := 1; column <= len(fields); column++ {
		if HasLeftDropTarget(fields, column, item) {
			out = append(out, Between(row, column))
		}
	}
	if HasRightDropTarget(fields, item) {
		out = append(out, Between(row, len(fields)+1))
	}
	return out
}

// HorizontalTargets lists the allowed slots between rows, including the
// ones above the first and below the last row.
func HorizontalTargets(g Grid, item DraggedItem) []Target {
	if !IsDragged(item) {
		return nil
	}
	if IsFormEmpty(g) {
		return []Target{Above(1)}
	}
	var out []Target
	for row := 1; row <= len(g); row++ {
		if HasTopDropTarget(g, row, item) {
			out = append(out, Above(row))
		}
	}
	if HasBottomDropTarget(g, item) {
		out = append(out, Above(len(g)+1))
	}
	return out
}

// Targets lists every allowed slot in reading order: the slot above each
// row, then the slots inside it, and finally the slot below the last row.
func Targets(g Grid, item DraggedItem) []Target {
	if !IsDragged(item) {
		return nil
	}
	if IsFormEmpty(g) {
		return []Target{Above(1)}
	}
	var out []Target
	for row := 1; row <= len(g); row++ {
		if HasTopDropTarget(g, row, item) {
			out = append(out, Above(row))
		}
		out = append(out, VerticalTargets(g, row, item)...)
	}
	if HasBottomDropTarget(g, item) {
		out = append(out, Above(len(g)+1))
	}
	return out
}

// CanDrop reports whether the policy offers target for the current drag.
func CanDrop(g Grid, item DraggedItem, target Target) bool {
	if target.Column == NewRow {
		if !IsFormEmpty(g) && target.Row == len(g)+1 {
			return HasBottomDropTarget(g, item)
		}
		return HasTopDropTarget(g, target.Row, item)
	}
	if IsFormEmpty(g) || target.Row < 1 || target.Row > len(g) {
		return false
	}
	row := g[target.Row-1]
	if target.Column == len(row)+1 {
		return HasRightDropTarget(row, item)
	}
	return HasLeftDropTarget(row, target.Column, item)
}
