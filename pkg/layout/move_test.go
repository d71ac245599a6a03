package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func text(name string) Field {
	return Field{InternalName: name, Label: name, Type: FieldTypeSingleLineText}
}

func header(name string) Field {
	return Field{InternalName: name, Label: name, Type: FieldTypeHeader}
}

func grid(rows ...[]Field) Grid {
	return NewGrid(rows...)
}

func row(fields ...Field) []Field {
	return fields
}

func TestMove_Cases(t *testing.T) {
	a, b, c, d := text("a"), text("b"), text("c"), text("d")
	n := Field{Label: "New", Type: FieldTypeNumber}
	h := header("h")

	cases := []struct {
		name   string
		grid   Grid
		item   DraggedItem
		target Target
		want   Grid
	}{
		{
			name:   "same row move left to first column",
			grid:   grid(row(a, b, c)),
			item:   DragField(c),
			target: Between(1, 1),
			want:   grid(row(c, a, b)),
		},
		{
			name:   "same row move right before last field",
			grid:   grid(row(a, b, c)),
			item:   DragField(a),
			target: Between(1, 3),
			want:   grid(row(b, a, c)),
		},
		{
			name:   "same row move right to the end",
			grid:   grid(row(a, b, c)),
			item:   DragField(a),
			target: Between(1, 4),
			want:   grid(row(b, c, a)),
		},
		{
			name:   "extract into new row above remainder",
			grid:   grid(row(a, b)),
			item:   DragField(b),
			target: Above(1),
			want:   grid(row(b), row(a)),
		},
		{
			name:   "new row between rows removes from source row",
			grid:   grid(row(a, b), row(c)),
			item:   DragField(b),
			target: Above(2),
			want:   grid(row(a), row(b), row(c)),
		},
		{
			name:   "new row above earlier row",
			grid:   grid(row(a), row(b, c)),
			item:   DragField(c),
			target: Above(1),
			want:   grid(row(c), row(a), row(b)),
		},
		{
			name:   "lone field moved up collapses its row",
			grid:   grid(row(a), row(b), row(c)),
			item:   DragField(c),
			target: Above(1),
			want:   grid(row(c), row(a), row(b)),
		},
		{
			name:   "insert into other row collapses source",
			grid:   grid(row(a, b), row(c)),
			item:   DragField(c),
			target: Between(1, 2),
			want:   grid(row(a, c, b)),
		},
		{
			name:   "insert at first column of other row",
			grid:   grid(row(a), row(b, c)),
			item:   DragField(a),
			target: Between(2, 1),
			want:   grid(row(a, b, c)),
		},
		{
			name:   "insert after last field of earlier row",
			grid:   grid(row(a), row(b, c), row(d)),
			item:   DragField(d),
			target: Between(1, 2),
			want:   grid(row(a, d), row(b, c)),
		},
		{
			name:   "append below last row from the last row",
			grid:   grid(row(a), row(b, c)),
			item:   DragField(c),
			target: Above(3),
			want:   grid(row(a), row(b), row(c)),
		},
		{
			name:   "append lone field from first row",
			grid:   grid(row(a), row(b)),
			item:   DragField(a),
			target: Above(3),
			want:   grid(row(b), row(a)),
		},
		{
			name:   "new palette field at first column",
			grid:   grid(row(a, b)),
			item:   DragNew(n.Type, n.Label),
			target: Between(1, 1),
			want:   grid(row(n, a, b)),
		},
		{
			name:   "new palette field as new middle row",
			grid:   grid(row(a), row(b)),
			item:   DragNew(n.Type, n.Label),
			target: Above(2),
			want:   grid(row(a), row(n), row(b)),
		},
		{
			name:   "new palette field into empty grid",
			grid:   Grid{},
			item:   DragNew(n.Type, n.Label),
			target: Above(1),
			want:   grid(row(n)),
		},
		{
			name:   "new palette field into single empty row",
			grid:   Grid{Row{}},
			item:   DragNew(n.Type, n.Label),
			target: Above(1),
			want:   grid(row(n)),
		},
		{
			name:   "header moved to the top",
			grid:   grid(row(a), row(h), row(b)),
			item:   DragField(h),
			target: Above(1),
			want:   grid(row(h), row(a), row(b)),
		},
		{
			name:   "unknown internal name is placed as new field",
			grid:   grid(row(a)),
			item:   DraggedItem{InternalName: "z", Label: "z", Type: FieldTypeSingleLineText},
			target: Between(1, 2),
			want:   grid(row(a, text("z"))),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Apply(tc.grid, tc.item, tc.target)
			if err != nil {
				t.Fatalf("apply %s: %v", tc.target, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("grid mismatch (-want +got):\n%s", diff)
			}
			if err := got.Validate(); err != nil && tc.item.InternalName != "" {
				t.Fatalf("result violates invariants: %v", err)
			}
		})
	}
}

func TestMove_RejectedTargetsAreNoOps(t *testing.T) {
	a, b, c, d := text("a"), text("b"), text("c"), text("d")
	h := header("h")

	cases := []struct {
		name   string
		grid   Grid
		item   DraggedItem
		target Target
	}{
		{"lone field below itself", grid(row(a)), DragField(a), Above(2)},
		{"lone field above itself", grid(row(a), row(b)), DragField(b), Above(2)},
		{"field before itself", grid(row(a, b)), DragField(a), Between(1, 1)},
		{"field after itself", grid(row(a, b)), DragField(a), Between(1, 2)},
		{"fourth field into full row", grid(row(a, b, c), row(d)), DragField(d), Between(1, 4)},
		{"new field into full row", grid(row(a, b, c)), DragNew(FieldTypeNumber, "n"), Between(1, 2)},
		{"header beside a field", grid(row(a), row(h)), DragField(h), Between(1, 2)},
		{"field beside a header", grid(row(h), row(a)), DragField(a), Between(1, 2)},
		{"row out of range", grid(row(a), row(b)), DragField(a), Between(5, 1)},
		{"column out of range", grid(row(a), row(b)), DragField(a), Between(2, 4)},
		{"nothing dragged", grid(row(a)), DraggedItem{}, Above(1)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Apply(tc.grid, tc.item, tc.target)
			if !errors.Is(err, ErrTargetNotAllowed) {
				t.Fatalf("expected ErrTargetNotAllowed, got %v", err)
			}
			if diff := cmp.Diff(tc.grid, got); diff != "" {
				t.Fatalf("rejected drop changed grid (-want +got):\n%s", diff)
			}
			if moved := Move(tc.grid, tc.item, tc.target); !moved.Equal(tc.grid) {
				t.Fatalf("Move should be a no-op, got %v", moved)
			}
		})
	}
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	input := grid(row(text("a"), text("b")), row(text("c")))
	snapshot := input.Clone()

	_ = Move(input, DragField(text("c")), Between(1, 1))
	_ = Move(input, DragField(text("a")), Above(3))

	if diff := cmp.Diff(snapshot, input); diff != "" {
		t.Fatalf("input grid mutated (-want +got):\n%s", diff)
	}
}

func TestMove_PreservesFieldIdentity(t *testing.T) {
	color := Field{
		InternalName: "color",
		Label:        "Favourite colour",
		Type:         FieldTypeDropdown,
		Options:      []Option{{Value: "r", Text: "Red"}, {Value: "g", Text: "Green"}},
		Preselected:  "g",
	}
	input := grid(row(text("a"), color), row(text("b")))

	// The drag state only carries identity, the engine must reuse the
	// placed field with its options.
	got := Move(input, DraggedItem{InternalName: "color"}, Above(3))

	moved, ok := Lookup(got, "color")
	if !ok {
		t.Fatalf("color field lost after move: %v", got)
	}
	if diff := cmp.Diff(color, moved); diff != "" {
		t.Fatalf("field changed while moving (-want +got):\n%s", diff)
	}
	if pos, _ := Locate(got, "color"); pos != (Position{Row: 3, Column: 1}) {
		t.Fatalf("unexpected position %s", pos)
	}
}

func TestMove_SelfAdjacentDropsKeepGrid(t *testing.T) {
	input := grid(
		row(text("a"), text("b"), text("c")),
		row(header("h")),
		row(text("d")),
		row(text("e"), text("f")),
	)

	for r, fields := range input {
		for c, field := range fields {
			item := DragField(field)
			targets := []Target{Between(r+1, c+1), Between(r+1, c+2)}
			if len(fields) == 1 {
				targets = append(targets, Above(r+1), Above(r+2))
			}
			for _, target := range targets {
				if got := Move(input, item, target); !got.Equal(input) {
					t.Fatalf("dropping %s at %s changed grid: %v", field.InternalName, target, got)
				}
			}
		}
	}
}
