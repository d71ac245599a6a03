package layout

import "fmt"

// Position is a 1-based (row, column) cell.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// Locate scans rows top-to-bottom and fields left-to-right, returning the
// position of the first field whose internal name matches. A miss is the
// expected outcome for palette items that were never placed.
func Locate(g Grid, internalName string) (Position, bool) {
	if internalName == "" {
		return Position{}, false
	}
	for r, row := range g {
		for c, field := range row {
			if field.InternalName == internalName {
				return Position{Row: r + 1, Column: c + 1}, true
			}
		}
	}
	return Position{}, false
}

// Lookup returns the placed field with the given internal name.
func Lookup(g Grid, internalName string) (Field, bool) {
	pos, ok := Locate(g, internalName)
	if !ok {
		return Field{}, false
	}
	return g[pos.Row-1][pos.Column-1], true
}
