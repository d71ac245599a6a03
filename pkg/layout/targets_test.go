package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTargets(t *testing.T) {
	a, b, c := text("a"), text("b"), text("c")
	h := header("h")

	cases := []struct {
		name string
		grid Grid
		item DraggedItem
		want []Target
	}{
		{
			name: "nothing dragged",
			grid: grid(row(a)),
			item: DraggedItem{},
			want: nil,
		},
		{
			name: "empty form offers a single slot",
			grid: Grid{},
			item: DragNew(FieldTypeNumber, "Number"),
			want: []Target{Above(1)},
		},
		{
			name: "empty row counts as empty form",
			grid: Grid{Row{}},
			item: DragNew(FieldTypeHeader, "Header"),
			want: []Target{Above(1)},
		},
		{
			name: "new field into a single row",
			grid: grid(row(a)),
			item: DragNew(FieldTypeNumber, "Number"),
			want: []Target{Above(1), Between(1, 1), Between(1, 2), Above(2)},
		},
		{
			name: "lone field has no slots next to itself",
			grid: grid(row(a)),
			item: DragField(a),
			want: nil,
		},
		{
			name: "dragging first field of a pair",
			grid: grid(row(a, b)),
			item: DragField(a),
			want: []Target{Above(1), Between(1, 3), Above(2)},
		},
		{
			name: "full row stays open to its own members",
			grid: grid(row(a, b, c)),
			item: DragField(b),
			want: []Target{Above(1), Between(1, 1), Between(1, 4), Above(2)},
		},
		{
			name: "full row is closed to new fields",
			grid: grid(row(a, b, c)),
			item: DragNew(FieldTypeDate, "Date"),
			want: []Target{Above(1), Above(2)},
		},
		{
			name: "header row has only horizontal slots",
			grid: grid(row(h), row(a, b)),
			item: DragField(a),
			want: []Target{Above(1), Above(2), Between(2, 3), Above(3)},
		},
		{
			name: "dragged header never gets vertical slots",
			grid: grid(row(a), row(b)),
			item: DragNew(FieldTypeHeader, "Header"),
			want: []Target{Above(1), Above(2), Above(3)},
		},
		{
			name: "lone dragged field in the middle",
			grid: grid(row(a), row(b), row(c)),
			item: DragField(b),
			want: []Target{
				Above(1), Between(1, 1), Between(1, 2),
				Between(3, 1), Between(3, 2), Above(4),
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Targets(tc.grid, tc.item)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("targets mismatch (-want +got):\n%s", diff)
			}
			for _, target := range got {
				if !CanDrop(tc.grid, tc.item, target) {
					t.Fatalf("listed target %s rejected by CanDrop", target)
				}
			}
		})
	}
}

func TestVerticalTargets_HeaderRowIsClosed(t *testing.T) {
	g := grid(row(header("h")), row(text("a")))
	for _, item := range []DraggedItem{
		DragField(text("a")),
		DragNew(FieldTypeNumber, "Number"),
		DragField(header("h")),
	} {
		if got := VerticalTargets(g, 1, item); len(got) != 0 {
			t.Fatalf("header row offered %v while dragging %+v", got, item)
		}
	}
}

func TestVerticalTargets_FullRowIsClosedToOutsiders(t *testing.T) {
	g := grid(row(text("a"), text("b"), text("c")), row(text("d")))
	if got := VerticalTargets(g, 1, DragField(text("d"))); len(got) != 0 {
		t.Fatalf("full row offered %v to a field from another row", got)
	}
	if got := VerticalTargets(g, 1, DragNew(FieldTypeRadio, "Radio")); len(got) != 0 {
		t.Fatalf("full row offered %v to a palette field", got)
	}
}

func TestHorizontalTargets(t *testing.T) {
	g := grid(row(text("a")), row(text("b"), text("c")), row(text("d")))

	got := HorizontalTargets(g, DragField(text("d")))
	want := []Target{Above(1), Above(2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("horizontal targets mismatch (-want +got):\n%s", diff)
	}

	got = HorizontalTargets(g, DragField(text("b")))
	want = []Target{Above(1), Above(2), Above(3), Above(4)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("horizontal targets mismatch (-want +got):\n%s", diff)
	}
}

func TestPredicates(t *testing.T) {
	a, b := text("a"), text("b")
	item := DragField(a)

	if !IsCurrentFieldDragged(item, a) || IsCurrentFieldDragged(item, b) {
		t.Fatalf("IsCurrentFieldDragged mismatch")
	}
	if IsCurrentFieldDragged(DragNew(FieldTypeNumber, "n"), Field{Type: FieldTypeNumber}) {
		t.Fatalf("empty names must never match")
	}
	if !IsAnyFieldDragged(Row{b, a}, item) || IsAnyFieldDragged(Row{b}, item) {
		t.Fatalf("IsAnyFieldDragged mismatch")
	}
	if !IsFullRow(Row{a, b, text("c")}) || IsFullRow(Row{a, b}) {
		t.Fatalf("IsFullRow mismatch")
	}
	if !IsSingleAndDragged(Row{a}, item) || IsSingleAndDragged(Row{a, b}, item) {
		t.Fatalf("IsSingleAndDragged mismatch")
	}
	if IsDragged(DraggedItem{}) || !IsDragged(DraggedItem{Label: "x"}) {
		t.Fatalf("IsDragged mismatch")
	}
}

func TestTargetPlacementAndString(t *testing.T) {
	if Above(2).Placement() != PlacementHorizontal {
		t.Fatalf("Above should be horizontal")
	}
	if Between(1, 3).Placement() != PlacementVertical {
		t.Fatalf("Between should be vertical")
	}
	if got := Between(1, 3).String(); got != "row 1 column 3" {
		t.Fatalf("unexpected string %q", got)
	}
	if got := Above(4).String(); got != "row 4 (new row)" {
		t.Fatalf("unexpected string %q", got)
	}
}
