package layout

import "testing"

func TestLocate(t *testing.T) {
	g := grid(row(text("a"), text("b")), row(header("h")), row(text("c")))

	cases := []struct {
		name string
		want Position
		ok   bool
	}{
		{"a", Position{Row: 1, Column: 1}, true},
		{"b", Position{Row: 1, Column: 2}, true},
		{"h", Position{Row: 2, Column: 1}, true},
		{"c", Position{Row: 3, Column: 1}, true},
		{"missing", Position{}, false},
		{"", Position{}, false},
	}
	for _, tc := range cases {
		got, ok := Locate(g, tc.name)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Locate(%q) = %s,%v want %s,%v", tc.name, got, ok, tc.want, tc.ok)
		}
	}

	if f, ok := Lookup(g, "h"); !ok || !f.IsHeader() {
		t.Fatalf("Lookup(h) = %+v,%v", f, ok)
	}
	if got := (Position{Row: 2, Column: 3}).String(); got != "(2,3)" {
		t.Fatalf("unexpected position string %q", got)
	}
}

func TestLocateIgnoresUnnamedFields(t *testing.T) {
	g := Grid{Row{{Type: FieldTypeNumber}}}
	if _, ok := Locate(g, ""); ok {
		t.Fatalf("unnamed fields must not be locatable")
	}
}
