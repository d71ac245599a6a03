package layout

import "strings"

// FieldType is the fixed vocabulary of placeable form elements.
type FieldType string

const (
	FieldTypeSingleLineText  FieldType = "single-line-text"
	FieldTypeMultiLineText   FieldType = "multi-line-text"
	FieldTypeNumber          FieldType = "number"
	FieldTypeBooleanCheckbox FieldType = "boolean-checkbox"
	FieldTypeCheckboxes      FieldType = "checkboxes"
	FieldTypeDropdown        FieldType = "dropdown"
	FieldTypeRadio           FieldType = "radio"
	FieldTypeDate            FieldType = "date"
	FieldTypeHeader          FieldType = "header"
)

var knownFieldTypes = map[FieldType]struct{}{
	FieldTypeSingleLineText:  {},
	FieldTypeMultiLineText:   {},
	FieldTypeNumber:          {},
	FieldTypeBooleanCheckbox: {},
	FieldTypeCheckboxes:      {},
	FieldTypeDropdown:        {},
	FieldTypeRadio:           {},
	FieldTypeDate:            {},
	FieldTypeHeader:          {},
}

// Known reports whether t belongs to the built-in vocabulary.
func (t FieldType) Known() bool {
	_, ok := knownFieldTypes[t]
	return ok
}

// HasOptions reports whether fields of this type render an option list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeCheckboxes, FieldTypeDropdown, FieldTypeRadio:
		return true
	}
	return false
}

// ParseFieldType maps loose spellings (including the legacy "single-lined
// text" form) onto the canonical vocabulary.
func ParseFieldType(raw string) (FieldType, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	switch key {
	case "single-line-text", "single-lined-text", "text", "singlelinedtext":
		return FieldTypeSingleLineText, true
	case "multi-line-text", "multiline-text", "textarea", "multilinetext":
		return FieldTypeMultiLineText, true
	case "boolean-checkbox", "booleancheckbox", "checkbox":
		return FieldTypeBooleanCheckbox, true
	case "select":
		return FieldTypeDropdown, true
	}
	t := FieldType(key)
	if t.Known() {
		return t, true
	}
	return "", false
}

// Option is a single {value, text} entry of a checkboxes/dropdown/radio field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
}

// Field is a placed form element. InternalName is its identity; it is empty
// only for palette items that have not been dropped yet.
type Field struct {
	InternalName string    `json:"internalName,omitempty" yaml:"internalName,omitempty"`
	Label        string    `json:"label" yaml:"label"`
	Type         FieldType `json:"type" yaml:"type"`
	Options      []Option  `json:"options,omitempty" yaml:"options,omitempty"`
	// Preselected holds the pre-chosen option value. The empty string means
	// nothing is selected.
	Preselected string `json:"preselected,omitempty" yaml:"preselected,omitempty"`
}

// IsHeader reports whether the field is a header, which always sits alone.
func (f Field) IsHeader() bool {
	return f.Type == FieldTypeHeader
}

// HasPreselection reports whether an option value was pre-chosen.
func (f Field) HasPreselection() bool {
	return f.Preselected != ""
}

func (f Field) clone() Field {
	if len(f.Options) > 0 {
		f.Options = append([]Option(nil), f.Options...)
	}
	return f
}
