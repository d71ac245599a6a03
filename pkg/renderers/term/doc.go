// Package term draws the editor canvas for terminals: one lipgloss box per
// field, one line of boxes per row. Vertical drop slots show as ┆ columns
// between boxes and horizontal slots as ┄ lines between rows, each labelled
// with the row:column pair the move command accepts.
package term
