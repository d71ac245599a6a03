package layout

import "errors"

var (
	// ErrRowCapacity marks a row holding more than MaxRowFields fields.
	ErrRowCapacity = errors.New("layout: row exceeds capacity")
	// ErrEmptyRow marks a row without fields.
	ErrEmptyRow = errors.New("layout: empty row")
	// ErrHeaderNotAlone marks a header sharing its row with other fields.
	ErrHeaderNotAlone = errors.New("layout: header must be alone in its row")
	// ErrDuplicateName marks an internal name used by more than one field.
	ErrDuplicateName = errors.New("layout: duplicate internal name")
	// ErrMissingName marks a placed field without an internal name.
	ErrMissingName = errors.New("layout: field without internal name")
	// ErrTargetNotAllowed is returned by Apply when the drop-target policy
	// does not offer the requested target for the current drag.
	ErrTargetNotAllowed = errors.New("layout: drop target not allowed")
)
