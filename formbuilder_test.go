package formbuilder

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/layout"
)

func TestSessionRenderHTML(t *testing.T) {
	session := NewSession(formdef.Sample())
	if err := session.OnDragStart("nickname2"); err != nil {
		t.Fatalf("drag: %v", err)
	}

	out, err := RenderHTML(context.Background(), "Contact details", session, RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "fb-canvas--dragging") || !strings.Contains(html, "Contact details") {
		t.Fatalf("unexpected canvas:\n%s", html)
	}
	if got, want := strings.Count(html, "data-target="), len(session.Targets()); got != want {
		t.Fatalf("expected %d drop slots, got %d", want, got)
	}
}

func TestImportOperation(t *testing.T) {
	def, err := ImportOperation(context.Background(), filepath.Join("pkg", "openapi", "testdata", "events.yaml"), "createEvent")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if first := def.Grid()[0][0]; first.Type != layout.FieldTypeHeader {
		t.Fatalf("expected a header row first, got %+v", first)
	}
}

func TestEmbeddedFS(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "canvas.tpl"); err != nil {
		t.Fatalf("canvas template: %v", err)
	}
	css, err := fs.ReadFile(AssetsFS(), "formbuilder.css")
	if err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
	if !strings.Contains(string(css), ".fb-drop") {
		t.Fatalf("stylesheet misses drop slot rules")
	}
}
