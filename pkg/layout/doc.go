// Package layout holds the form builder's grid engine: the rows-of-fields
// model, the identity locator, the drop mutation and the drop-target policy.
//
// A Grid is an ordered list of rows, each holding one to MaxRowFields fields.
// Headers always sit alone. Every function in this package is pure: grids go
// in, new grids come out, and nothing is mutated in place, so callers can
// keep previous grids around for undo.
//
// The mutation engine and the policy share state but never call each other
// from the caller's point of view. A view asks Targets (or the Has*DropTarget
// predicates) which slots to draw while an item is dragged, and on drop hands
// the chosen Target to Move:
//
//	item := layout.DragField(field)
//	for _, t := range layout.Targets(grid, item) {
//		// draw t
//	}
//	grid = layout.Move(grid, item, layout.Between(1, 1))
//
// Move treats targets the policy would not offer as no-ops; Apply reports
// them with ErrTargetNotAllowed.
package layout
