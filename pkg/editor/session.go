package editor

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/palette"
)

// Session owns the editable state of one form: the grid, the item being
// dragged and the field selected for editing. Every callback replaces the
// state wholesale, so grids handed out earlier are never touched. A Session
// is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	grid    layout.Grid
	dragged layout.DraggedItem
	active  string

	undo         []layout.Grid
	redo         []layout.Grid
	historyLimit int

	logger  *log.Logger
	palette *palette.Registry
}

// State is a point-in-time copy of a session.
type State struct {
	Grid        layout.Grid        `json:"grid"`
	Dragged     layout.DraggedItem `json:"dragged"`
	ActiveField string             `json:"activeField,omitempty"`
	Empty       bool               `json:"empty"`
	Targets     []layout.Target    `json:"targets"`
	CanUndo     bool               `json:"canUndo"`
	CanRedo     bool               `json:"canRedo"`
}

// New starts a session on a copy of grid. Empty rows are dropped.
func New(grid layout.Grid, opts ...Option) *Session {
	s := &Session{
		grid:         grid.Normalize(),
		historyLimit: DefaultHistoryLimit,
		logger:       log.New(io.Discard),
		palette:      palette.NewRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() layout.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Dragged returns the current drag state; the zero value means idle.
func (s *Session) Dragged() layout.DraggedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragged
}

// ActiveField returns the internal name of the selected field, if any.
func (s *Session) ActiveField() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// IsFormEmpty reports whether the form has no fields.
func (s *Session) IsFormEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return layout.IsFormEmpty(s.grid)
}

// Targets lists the slots that accept the current drag.
func (s *Session) Targets() []layout.Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	return layout.Targets(s.grid, s.dragged)
}

// OnDragStart begins dragging the placed field with the given internal name.
func (s *Session) OnDragStart(internalName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	field, ok := layout.Lookup(s.grid, internalName)
	if !ok {
		return fmt.Errorf("%q: %w", internalName, ErrUnknownField)
	}
	s.dragged = layout.DragField(field)
	s.logger.Debug("drag start", "field", internalName)
	return nil
}

// OnPaletteDragStart begins dragging a new field described by a palette entry.
func (s *Session) OnPaletteDragStart(entryID string) error {
	item, err := s.palette.Descriptor(entryID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragged = item
	s.logger.Debug("drag start", "palette", entryID)
	return nil
}

// OnDragEnd abandons the current drag.
func (s *Session) OnDragEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragged = layout.DraggedItem{}
}

// OnDrop drops the dragged item onto target and ends the drag. New fields get
// an internal name derived from their label. A target the policy does not
// offer leaves the grid unchanged and returns layout.ErrTargetNotAllowed.
func (s *Session) OnDrop(target layout.Target) (layout.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.dragged
	if !layout.IsDragged(item) {
		return s.grid.Clone(), ErrNotDragging
	}
	s.dragged = layout.DraggedItem{}

	if !item.IsExisting() {
		item.InternalName = palette.NameFor(s.grid, item.Label)
	}

	next, err := layout.Apply(s.grid, item, target)
	if err != nil {
		s.logger.Debug("drop rejected", "field", item.InternalName, "row", target.Row, "column", target.Column)
		return next, fmt.Errorf("editor: drop %s: %w", item.InternalName, err)
	}

	s.pushUndo(s.grid)
	s.redo = nil
	s.grid = next
	s.logger.Debug("drop", "field", item.InternalName, "row", target.Row, "column", target.Column, "rows", next.RowCount())
	return next.Clone(), nil
}

// OnClick selects the field with the given internal name for editing.
func (s *Session) OnClick(internalName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := layout.Locate(s.grid, internalName); !ok {
		return fmt.Errorf("%q: %w", internalName, ErrUnknownField)
	}
	s.active = internalName
	return nil
}

// OnClickOutside clears the selection.
func (s *Session) OnClickOutside() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ""
}

// Undo restores the grid that preceded the last drop.
func (s *Session) Undo() (layout.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) == 0 {
		return s.grid.Clone(), ErrNothingToUndo
	}
	prev := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, s.grid)
	s.replace(prev)
	return prev.Clone(), nil
}

// Redo reapplies the last undone drop.
func (s *Session) Redo() (layout.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.redo) == 0 {
		return s.grid.Clone(), ErrNothingToRedo
	}
	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.pushUndo(s.grid)
	s.replace(next)
	return next.Clone(), nil
}

// Snapshot copies the full session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	targets := layout.Targets(s.grid, s.dragged)
	if targets == nil {
		targets = []layout.Target{}
	}
	return State{
		Grid:        s.grid.Clone(),
		Dragged:     s.dragged,
		ActiveField: s.active,
		Empty:       layout.IsFormEmpty(s.grid),
		Targets:     targets,
		CanUndo:     len(s.undo) > 0,
		CanRedo:     len(s.redo) > 0,
	}
}

// replace swaps the grid and drops a selection or drag that no longer
// refers to a placed field.
func (s *Session) replace(grid layout.Grid) {
	s.grid = grid
	if _, ok := layout.Locate(grid, s.active); !ok {
		s.active = ""
	}
	if s.dragged.IsExisting() {
		if _, ok := layout.Locate(grid, s.dragged.InternalName); !ok {
			s.dragged = layout.DraggedItem{}
		}
	}
}

func (s *Session) pushUndo(grid layout.Grid) {
	if s.historyLimit == 0 {
		return
	}
	s.undo = append(s.undo, grid)
	if over := len(s.undo) - s.historyLimit; over > 0 {
		s.undo = append([]layout.Grid(nil), s.undo[over:]...)
	}
}
