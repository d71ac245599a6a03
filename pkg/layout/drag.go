package layout

// DraggedItem is the transient drag state. The zero value means nothing is
// being dragged. An item carrying an InternalName references a placed field;
// one without it describes a new palette field.
type DraggedItem struct {
	InternalName string    `json:"internalName,omitempty"`
	Label        string    `json:"label,omitempty"`
	Type         FieldType `json:"type,omitempty"`
	Options      []Option  `json:"options,omitempty"`
}

// DragField builds the drag state for an already placed field.
func DragField(f Field) DraggedItem {
	return DraggedItem{
		InternalName: f.InternalName,
		Label:        f.Label,
		Type:         f.Type,
	}
}

// DragNew builds the drag state for a new palette field.
func DragNew(t FieldType, label string, options ...Option) DraggedItem {
	return DraggedItem{
		Label:   label,
		Type:    t,
		Options: append([]Option(nil), options...),
	}
}

// IsDragged reports whether any recognised key of the item is set.
func IsDragged(item DraggedItem) bool {
	return item.InternalName != "" || item.Label != "" || item.Type != "" || len(item.Options) > 0
}

// IsExisting reports whether the item references a placed field identity.
func (d DraggedItem) IsExisting() bool {
	return IsDragged(d) && d.InternalName != ""
}

// IsHeader reports whether the dragged item is a header.
func (d DraggedItem) IsHeader() bool {
	return d.Type == FieldTypeHeader
}

// Field converts a new-field descriptor into a placeable field.
func (d DraggedItem) Field() Field {
	return Field{
		InternalName: d.InternalName,
		Label:        d.Label,
		Type:         d.Type,
		Options:      append([]Option(nil), d.Options...),
	}
}

// matches compares identities; empty names never match.
func (d DraggedItem) matches(f Field) bool {
	return d.InternalName != "" && d.InternalName == f.InternalName
}
