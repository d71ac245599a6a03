package layout

import "fmt"

// Move returns the grid produced by dropping item onto target. Targets the
// drop-target policy does not offer leave the grid unchanged, so a drop that
// bypasses the policy is a no-op rather than a malformed grid. The input is
// never modified.
func Move(g Grid, item DraggedItem, target Target) Grid {
	out, _ := Apply(g, item, target)
	return out
}

// Apply is Move with the rejection reported. On error the returned grid is
// a copy of the input.
func Apply(g Grid, item DraggedItem, target Target) (Grid, error) {
	if !CanDrop(g, item, target) {
		return g.Clone(), fmt.Errorf("%s: %w", target, ErrTargetNotAllowed)
	}
	return rebuild(g, item, target), nil
}

// rebuild walks the source rows once, top to bottom, emitting each row
// according to the first matching case. The source position is resolved up
// front because the same-row cases compare it with the target.
func rebuild(g Grid, item DraggedItem, target Target) Grid {
	if IsFormEmpty(g) {
		g = nil
	}

	element := item.Field()
	var from Position
	if item.IsExisting() {
		if pos, ok := Locate(g, item.InternalName); ok {
			from = pos
			element = g[pos.Row-1][pos.Column-1].clone()
		}
	}

	toRow, toColumn := target.Row, target.Column
	out := make(Grid, 0, len(g)+1)

	for i, row := range g {
		idx := i + 1
		isFrom := idx == from.Row
		isTo := idx == toRow

		switch {
		case isFrom && isTo && toColumn != NewRow:
			// Reorder inside the row. Moving right, the removal shifts
			// every later index down by one.
			if from.Column < toColumn {
				out = append(out, row.shift(from.Column-1, toColumn-2))
			} else {
				out = append(out, row.shift(from.Column-1, toColumn-1))
			}

		case isFrom && isTo:
			// Pull the field out into its own row just above the remainder.
			out = append(out, Row{element})
			if rest := row.without(from.Column); len(rest) > 0 {
				out = append(out, rest)
			}

		case isFrom:
			// The field leaves for another row; a sole occupant collapses
			// the row entirely.
			if len(row) > 1 {
				out = append(out, row.without(from.Column))
			}

		case isTo && toColumn == NewRow:
			out = append(out, Row{element}, row.clone())

		case isTo:
			out = append(out, row.with(toColumn, element))

		default:
			out = append(out, row.clone())
		}
	}

	if toColumn == NewRow && toRow == len(g)+1 {
		out = append(out, Row{element})
	}
	return out
}
