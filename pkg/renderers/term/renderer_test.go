package term_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/term"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

// Field boxes are four lines tall: border, label, description, border.
const fieldBoxHeight = 4

func TestRender_EmptyForm(t *testing.T) {
	out := mustRender(t, render.View{})
	if !strings.Contains(out, render.DefaultEmptyTitle) || !strings.Contains(out, render.DefaultEmptyBody) {
		t.Fatalf("missing empty-form alert:\n%s", out)
	}
	if strings.Contains(out, term.HorizontalMarker) {
		t.Fatalf("no slots expected without a drag:\n%s", out)
	}

	out = mustRender(t, render.View{Dragged: layout.DragNew(layout.FieldTypeDate, "Date")})
	lines := slotLines(out)
	if len(lines) != 1 || !strings.Contains(lines[0], render.DefaultDropArea+" 1:0") {
		t.Fatalf("expected one labelled drop area, got %q", lines)
	}
}

func TestRender_SlotsMatchPolicy(t *testing.T) {
	cases := []struct {
		name string
		grid layout.Grid
		item layout.DraggedItem
	}{
		{"palette field", testsupport.Grid("a b / c"), layout.DragNew(layout.FieldTypeNumber, "Number")},
		{"lone row member", testsupport.Grid("a b / c"), layout.DragField(layout.Field{InternalName: "c"})},
		{"full row member", testsupport.Grid("a b c / d"), layout.DragField(layout.Field{InternalName: "b"})},
		{"no drag", testsupport.Grid("a / b"), layout.DraggedItem{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out := mustRender(t, render.View{Grid: tc.grid, Dragged: tc.item})

			var vertical, horizontal int
			for _, target := range layout.Targets(tc.grid, tc.item) {
				if target.Placement() == layout.PlacementHorizontal {
					horizontal++
					continue
				}
				vertical++
			}
			if got := len(slotLines(out)); got != horizontal {
				t.Fatalf("rendered %d horizontal slots, want %d:\n%s", got, horizontal, out)
			}
			if got := strings.Count(out, term.VerticalMarker); got != vertical*fieldBoxHeight {
				t.Fatalf("rendered %d vertical markers, want %d:\n%s", got, vertical*fieldBoxHeight, out)
			}
		})
	}
}

func TestRender_FieldBoxes(t *testing.T) {
	g := layout.NewGrid(
		[]layout.Field{{InternalName: "intro", Label: "Welcome", Type: layout.FieldTypeHeader}},
		[]layout.Field{
			{InternalName: "name", Label: "Name", Type: layout.FieldTypeSingleLineText},
			{InternalName: "pick", Label: "Pick", Type: layout.FieldTypeRadio, Options: []layout.Option{{Value: "a", Text: "A"}}},
		},
	)
	out := mustRender(t, render.View{Title: "Signup", Grid: g, ActiveField: "name"})

	for _, want := range []string{
		"Signup",
		"Welcome",
		"single-line-text · name",
		"radio · pick · 1 options",
		"[Submit]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "header · intro") {
		t.Fatalf("header boxes carry no description:\n%s", out)
	}
}

func TestRender_Identity(t *testing.T) {
	r := term.New(term.WithWidth(20))
	if r.Name() != "term" || !strings.HasPrefix(r.ContentType(), "text/plain") {
		t.Fatalf("unexpected identity %s %s", r.Name(), r.ContentType())
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, render.View{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected cancelled context to fail")
	}
}

func mustRender(t *testing.T, view render.View) string {
	t.Helper()
	out, err := term.New().Render(testsupport.Context(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func slotLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, term.HorizontalMarker) {
			lines = append(lines, line)
		}
	}
	return lines
}
