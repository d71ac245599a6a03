package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/layout"
)

func TestRegistryDefaults(t *testing.T) {
	reg := NewRegistry()

	var ids, titles []string
	for _, entry := range reg.List() {
		ids = append(ids, entry.ID)
		titles = append(titles, entry.Title)
		if entry.Type.HasOptions() && len(entry.Options) != 2 {
			t.Fatalf("%s: expected two default options, got %v", entry.ID, entry.Options)
		}
		if !entry.Type.HasOptions() && len(entry.Options) != 0 {
			t.Fatalf("%s: unexpected options %v", entry.ID, entry.Options)
		}
	}

	wantIDs := []string{
		"singleLinedText", "number", "multilineText", "dropdown",
		"radio", "date", "checkboxes", "header",
	}
	wantTitles := []string{
		"Single-lined Text", "Number", "Multiline Text", "Dropdown",
		"Radio", "Date", "Checkboxes", "Header",
	}
	if diff := cmp.Diff(wantIDs, ids); diff != "" {
		t.Fatalf("palette order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantTitles, titles); diff != "" {
		t.Fatalf("palette titles mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := Empty()

	if err := reg.Register(Entry{ID: "email", Title: "Email", Type: layout.FieldTypeSingleLineText}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(Entry{ID: "email", Type: layout.FieldTypeNumber}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if err := reg.Register(Entry{ID: "sig", Type: "signature"}); err == nil {
		t.Fatalf("expected unknown type error")
	}
	if err := reg.Register(Entry{ID: "  ", Type: layout.FieldTypeDate}); err == nil {
		t.Fatalf("expected missing id error")
	}

	entry, ok := reg.Lookup("email")
	if !ok || entry.Title != "Email" {
		t.Fatalf("lookup email = %+v,%v", entry, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestRegistryDescriptor(t *testing.T) {
	reg := NewRegistry()

	item, err := reg.Descriptor(EntryDropdown)
	if err != nil {
		t.Fatalf("descriptor: %v", err)
	}
	want := layout.DraggedItem{
		Label:   "Dropdown",
		Type:    layout.FieldTypeDropdown,
		Options: DefaultOptions(),
	}
	if diff := cmp.Diff(want, item); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if item.IsExisting() {
		t.Fatalf("palette descriptors must describe new fields")
	}

	if _, err := reg.Descriptor("signature"); !errors.Is(err, ErrUnknownEntry) {
		t.Fatalf("expected ErrUnknownEntry, got %v", err)
	}
}

func TestRegistryListIsACopy(t *testing.T) {
	reg := NewRegistry()
	list := reg.List()
	list[3].Options[0].Text = "mutated"

	entry, _ := reg.Lookup(EntryDropdown)
	if entry.Options[0].Text != "Option 1" {
		t.Fatalf("registry state leaked through List: %+v", entry.Options)
	}
}
