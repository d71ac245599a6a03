package formdef_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/layout"
)

func TestParse_YAMLNormalises(t *testing.T) {
	def, err := formdef.LoadFile(filepath.Join("testdata", "forms", "contact.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := layout.Grid{
		{
			{InternalName: "firstName", Label: "First Name", Type: layout.FieldTypeSingleLineText},
			{InternalName: "lastName", Label: "Last Name", Type: layout.FieldTypeSingleLineText},
		},
		{
			{
				InternalName: "favouriteColour",
				Label:        "Favourite colour",
				Type:         layout.FieldTypeDropdown,
				Options: []layout.Option{
					{Value: "deepRed", Text: "Deep Red"},
					{Value: "blue", Text: "Blue"},
				},
				Preselected: "blue",
			},
		},
	}
	if diff := cmp.Diff(want, def.Grid()); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
	if def.Title != "Contact" {
		t.Fatalf("title = %q", def.Title)
	}
}

func TestParse_GeneratedNamesAvoidExplicitOnes(t *testing.T) {
	data := []byte(`{"rows": [
		[{"label": "Email", "type": "text"}],
		[{"internalName": "email", "label": "Primary email", "type": "text"}]
	]}`)
	def, err := formdef.Parse(data, "inline.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"email2", "email"}, def.Grid().Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
		text string
	}{
		{name: "empty", data: "   ", text: "is empty"},
		{name: "garbage", data: "rows: [[{", text: "invalid JSON or YAML"},
		{
			name: "unknown type",
			data: `{"rows": [[{"internalName": "sig", "type": "signature"}]]}`,
			want: formdef.ErrUnknownType,
		},
		{
			name: "bad preselection",
			data: `{"rows": [[{"internalName": "r", "type": "radio", "options": [{"value": "a"}], "preselected": "b"}]]}`,
			want: formdef.ErrInvalidPreselection,
		},
		{
			name: "header shares row",
			data: `{"rows": [[{"internalName": "h", "type": "header"}, {"internalName": "a", "type": "text"}]]}`,
			want: layout.ErrHeaderNotAlone,
		},
		{
			name: "row over capacity",
			data: `{"rows": [[{"type": "text"}, {"type": "text"}, {"type": "text"}, {"type": "text"}]]}`,
			want: layout.ErrRowCapacity,
		},
		{
			name: "duplicate names",
			data: `{"rows": [[{"internalName": "a", "type": "text"}], [{"internalName": "a", "type": "date"}]]}`,
			want: layout.ErrDuplicateName,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := formdef.Parse([]byte(tc.data), tc.name)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tc.text != "" && !strings.Contains(err.Error(), tc.text) {
				t.Fatalf("expected %q in %v", tc.text, err)
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	defs, err := formdef.LoadFS(os.DirFS(filepath.Join("testdata", "forms")))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	var sources []string
	for _, def := range defs {
		sources = append(sources, def.Source)
	}
	if diff := cmp.Diff([]string{"contact.yaml", "nested/notes.json"}, sources); diff != "" {
		t.Fatalf("sources mismatch (-want +got):\n%s", diff)
	}
	if got := defs[1].Grid()[0][0].Type; got != layout.FieldTypeMultiLineText {
		t.Fatalf("textarea should map to multi-line-text, got %q", got)
	}

	if defs, err := formdef.LoadFS(nil); err != nil || defs != nil {
		t.Fatalf("nil fs should load nothing, got %v,%v", defs, err)
	}

	broken := fstest.MapFS{"bad.json": {Data: []byte(`{"rows": [[{"type": "nope"}]]}`)}}
	if _, err := formdef.LoadFS(broken); !errors.Is(err, formdef.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestSample(t *testing.T) {
	def := formdef.Sample()
	want := [][]string{
		{"firstname", "lastname", "nickname"},
		{"header"},
		{"lastname2", "nickname2"},
	}
	var got [][]string
	for _, row := range def.Grid() {
		var names []string
		for _, f := range row {
			names = append(names, f.InternalName)
		}
		got = append(got, names)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sample mismatch (-want +got):\n%s", diff)
	}

	defs, err := formdef.LoadFS(formdef.EmbeddedFS())
	if err != nil {
		t.Fatalf("embedded forms: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected two embedded forms, got %d", len(defs))
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	def := formdef.Sample()
	for _, format := range []formdef.Format{formdef.FormatJSON, formdef.FormatYAML} {
		data, err := formdef.Encode(def, format)
		if err != nil {
			t.Fatalf("encode %s: %v", format, err)
		}
		back, err := formdef.Parse(data, string(format))
		if err != nil {
			t.Fatalf("parse %s: %v\n%s", format, err, data)
		}
		if diff := cmp.Diff(def.Grid(), back.Grid()); diff != "" {
			t.Fatalf("%s round trip mismatch (-want +got):\n%s", format, diff)
		}
	}

	if _, err := formdef.Encode(def, "xml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	if f, err := formdef.ParseFormat(".yml"); err != nil || f != formdef.FormatYAML {
		t.Fatalf("ParseFormat(.yml) = %q,%v", f, err)
	}
}
