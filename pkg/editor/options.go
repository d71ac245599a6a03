package editor

import (
	"github.com/charmbracelet/log"

	"github.com/goliatone/go-formbuilder/pkg/palette"
)

// DefaultHistoryLimit bounds the undo stack when WithHistoryLimit is not set.
const DefaultHistoryLimit = 50

// Option configures a Session.
type Option func(*Session)

// WithHistoryLimit caps how many grids Undo can step back through. Values
// below one disable history.
func WithHistoryLimit(limit int) Option {
	return func(s *Session) {
		if limit < 0 {
			limit = 0
		}
		s.historyLimit = limit
	}
}

// WithLogger routes drag and drop events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPalette overrides the palette used by OnPaletteDragStart.
func WithPalette(reg *palette.Registry) Option {
	return func(s *Session) {
		if reg != nil {
			s.palette = reg
		}
	}
}
