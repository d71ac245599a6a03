package palette

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/layout"
)

// Built-in palette identifiers, in the order the palette lists them.
const (
	EntrySingleLinedText = "singleLinedText"
	EntryNumber          = "number"
	EntryMultilineText   = "multilineText"
	EntryDropdown        = "dropdown"
	EntryRadio           = "radio"
	EntryDate            = "date"
	EntryCheckboxes      = "checkboxes"
	EntryHeader          = "header"
)

// ErrUnknownEntry is returned when a palette id is not registered.
var ErrUnknownEntry = errors.New("palette: unknown entry")

// Entry is a single palette item.
type Entry struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Type    layout.FieldType `json:"type"`
	Options []layout.Option  `json:"options,omitempty"`
}

// Registry keeps palette entries in registration order. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// NewRegistry returns a registry holding the built-in entries.
func NewRegistry() *Registry {
	reg := Empty()
	for _, entry := range builtins() {
		reg.MustRegister(entry)
	}
	return reg
}

// Empty returns a registry without entries.
func Empty() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry. Duplicate ids and unknown field types are errors.
func (r *Registry) Register(entry Entry) error {
	id := strings.TrimSpace(entry.ID)
	if id == "" {
		return fmt.Errorf("palette: entry id is required")
	}
	if !entry.Type.Known() {
		return fmt.Errorf("palette: entry %q: unknown field type %q", id, entry.Type)
	}
	if entry.Title == "" {
		entry.Title = id
	}
	entry.ID = id
	entry.Options = append([]layout.Option(nil), entry.Options...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("palette: entry %q already registered", id)
	}
	r.entries[id] = entry
	r.order = append(r.order, id)
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(entry Entry) {
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}

// Lookup returns the entry registered under id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	entry.Options = append([]layout.Option(nil), entry.Options...)
	return entry, true
}

// List returns the entries in palette order.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		entry := r.entries[id]
		entry.Options = append([]layout.Option(nil), entry.Options...)
		out = append(out, entry)
	}
	return out
}

// Descriptor returns the drag state for a new field built from the entry.
// The descriptor carries no internal name; one is assigned when it lands.
func (r *Registry) Descriptor(id string) (layout.DraggedItem, error) {
	entry, ok := r.Lookup(id)
	if !ok {
		return layout.DraggedItem{}, fmt.Errorf("%q: %w", id, ErrUnknownEntry)
	}
	return entry.Descriptor(), nil
}

// Descriptor converts the entry into a new-field drag descriptor.
func (e Entry) Descriptor() layout.DraggedItem {
	return layout.DragNew(e.Type, e.Title, e.Options...)
}

func builtins() []Entry {
	return []Entry{
		{ID: EntrySingleLinedText, Title: "Single-lined Text", Type: layout.FieldTypeSingleLineText},
		{ID: EntryNumber, Title: "Number", Type: layout.FieldTypeNumber},
		{ID: EntryMultilineText, Title: "Multiline Text", Type: layout.FieldTypeMultiLineText},
		{ID: EntryDropdown, Title: "Dropdown", Type: layout.FieldTypeDropdown, Options: DefaultOptions()},
		{ID: EntryRadio, Title: "Radio", Type: layout.FieldTypeRadio, Options: DefaultOptions()},
		{ID: EntryDate, Title: "Date", Type: layout.FieldTypeDate},
		{ID: EntryCheckboxes, Title: "Checkboxes", Type: layout.FieldTypeCheckboxes, Options: DefaultOptions()},
		{ID: EntryHeader, Title: "Header", Type: layout.FieldTypeHeader},
	}
}

// DefaultOptions is the starter option list given to option-bearing entries.
func DefaultOptions() []layout.Option {
	return []layout.Option{
		{Value: "option1", Text: "Option 1"},
		{Value: "option2", Text: "Option 2"},
	}
}
