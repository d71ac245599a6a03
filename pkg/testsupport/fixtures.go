package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/layout"
)

// MustLoadDefinition reads a JSON/YAML form definition fixture.
func MustLoadDefinition(t *testing.T, path string) formdef.Definition {
	t.Helper()

	def, err := formdef.LoadFile(path)
	if err != nil {
		t.Fatalf("load definition: %v", err)
	}
	return def
}

// MustLoadGrid reads a form definition fixture and returns its grid.
func MustLoadGrid(t *testing.T, path string) layout.Grid {
	t.Helper()
	return MustLoadDefinition(t, path).Grid()
}

// Grid builds a grid from a compact layout notation: rows separated by "/",
// fields by whitespace. A leading "#" marks a header, "?" a dropdown with
// two options; anything else is a single-line text field.
//
//	Grid("a b c / #title / d")
func Grid(notation string) layout.Grid {
	var rows [][]layout.Field
	for _, rawRow := range strings.Split(notation, "/") {
		var row []layout.Field
		for _, token := range strings.Fields(rawRow) {
			row = append(row, field(token))
		}
		rows = append(rows, row)
	}
	return layout.NewGrid(rows...)
}

func field(token string) layout.Field {
	switch {
	case strings.HasPrefix(token, "#"):
		name := strings.TrimPrefix(token, "#")
		return layout.Field{InternalName: name, Label: name, Type: layout.FieldTypeHeader}
	case strings.HasPrefix(token, "?"):
		name := strings.TrimPrefix(token, "?")
		return layout.Field{
			InternalName: name,
			Label:        name,
			Type:         layout.FieldTypeDropdown,
			Options:      []layout.Option{{Value: "yes", Text: "Yes"}, {Value: "no", Text: "No"}},
		}
	default:
		return layout.Field{InternalName: token, Label: token, Type: layout.FieldTypeSingleLineText}
	}
}

// Notation renders a grid back into the Grid notation, for readable
// failure messages.
func Notation(g layout.Grid) string {
	rows := make([]string, 0, len(g))
	for _, row := range g {
		names := make([]string, 0, len(row))
		for _, f := range row {
			switch f.Type {
			case layout.FieldTypeHeader:
				names = append(names, "#"+f.InternalName)
			case layout.FieldTypeDropdown:
				names = append(names, "?"+f.InternalName)
			default:
				names = append(names, f.InternalName)
			}
		}
		rows = append(rows, strings.Join(names, " "))
	}
	return strings.Join(rows, " / ")
}

// WriteGolden writes arbitrary data to a golden file as JSON when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, payload)
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
