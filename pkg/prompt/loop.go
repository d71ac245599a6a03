package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/term"
)

// Action labels offered at the top of every turn.
const (
	ActionMove   = "Move a field"
	ActionAdd    = "Add a field"
	ActionSelect = "Select a field"
	ActionUndo   = "Undo"
	ActionRedo   = "Redo"
	ActionRename = "Rename the form"
	ActionDone   = "Done"

	cancelChoice = "Cancel"
	noneChoice   = "(none)"
)

var actions = []string{ActionMove, ActionAdd, ActionSelect, ActionUndo, ActionRedo, ActionRename, ActionDone}

// Option configures a Loop.
type Option func(*Loop)

// WithDriver overrides the prompt driver (survey on stdout by default).
func WithDriver(driver PromptDriver) Option {
	return func(l *Loop) {
		if driver != nil {
			l.driver = driver
		}
	}
}

// WithRenderer overrides the canvas renderer (term by default).
func WithRenderer(renderer render.Renderer) Option {
	return func(l *Loop) {
		if renderer != nil {
			l.renderer = renderer
		}
	}
}

// WithPalette sets the entries offered by "Add a field". It should match
// the palette the session was created with.
func WithPalette(reg *palette.Registry) Option {
	return func(l *Loop) {
		if reg != nil {
			l.palette = reg
		}
	}
}

// WithTitle sets the initial form title.
func WithTitle(title string) Option {
	return func(l *Loop) {
		l.title = title
	}
}

// WithLogger routes loop events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loop is the interactive editor.
type Loop struct {
	session  *editor.Session
	driver   PromptDriver
	renderer render.Renderer
	palette  *palette.Registry
	title    string
	logger   *log.Logger
}

// NewLoop wraps session in an interactive loop.
func NewLoop(session *editor.Session, opts ...Option) *Loop {
	l := &Loop{
		session:  session,
		renderer: term.New(),
		palette:  palette.NewRegistry(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	if l.driver == nil {
		l.driver = NewSurveyDriver(nil)
	}
	return l
}

// Title returns the current form title.
func (l *Loop) Title() string {
	return l.title
}

// Run prompts until the user is done or aborts, returning the final grid.
// An abort returns the grid as it stood together with ErrAborted.
func (l *Loop) Run(ctx context.Context) (layout.Grid, error) {
	for {
		if err := l.draw(ctx); err != nil {
			return l.session.Grid(), err
		}
		idx, err := l.driver.Select(ctx, SelectConfig{Message: "What next?", Options: actions})
		if err != nil {
			return l.session.Grid(), err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		action := actions[idx]
		l.logger.Debug("prompt action", "action", action)
		done, err := l.handle(ctx, action)
		if err != nil {
			return l.session.Grid(), err
		}
		if done {
			return l.session.Grid(), nil
		}
	}
}

func (l *Loop) handle(ctx context.Context, action string) (bool, error) {
	switch action {
	case ActionMove:
		return false, l.move(ctx)
	case ActionAdd:
		return false, l.add(ctx)
	case ActionSelect:
		return false, l.selectField(ctx)
	case ActionUndo:
		_, err := l.session.Undo()
		return false, l.report(ctx, err)
	case ActionRedo:
		_, err := l.session.Redo()
		return false, l.report(ctx, err)
	case ActionRename:
		title, err := l.driver.Input(ctx, InputConfig{Message: "Form title", Default: l.title})
		if err != nil {
			return false, err
		}
		l.title = strings.TrimSpace(title)
		return false, nil
	case ActionDone:
		return l.driver.Confirm(ctx, ConfirmConfig{Message: "Finish editing?", Default: true})
	}
	return false, nil
}

func (l *Loop) move(ctx context.Context) error {
	names := l.session.Grid().Names()
	if len(names) == 0 {
		return l.driver.Info(ctx, "The form has no fields yet.")
	}
	idx, err := l.choose(ctx, "Which field?", names)
	if err != nil || idx < 0 {
		return err
	}
	if err := l.session.OnDragStart(names[idx]); err != nil {
		return l.report(ctx, err)
	}
	return l.drop(ctx)
}

func (l *Loop) add(ctx context.Context) error {
	entries := l.palette.List()
	titles := make([]string, len(entries))
	for i, entry := range entries {
		titles[i] = entry.Title
	}
	idx, err := l.choose(ctx, "Which field type?", titles)
	if err != nil || idx < 0 {
		return err
	}
	if err := l.session.OnPaletteDragStart(entries[idx].ID); err != nil {
		return l.report(ctx, err)
	}
	return l.drop(ctx)
}

func (l *Loop) selectField(ctx context.Context) error {
	names := l.session.Grid().Names()
	idx, err := l.driver.Select(ctx, SelectConfig{
		Message: "Select which field?",
		Options: append([]string{noneChoice}, names...),
	})
	if err != nil {
		return err
	}
	if idx <= 0 || idx > len(names) {
		l.session.OnClickOutside()
		return nil
	}
	return l.report(ctx, l.session.OnClick(names[idx-1]))
}

// drop shows the canvas with its slots and drops onto the chosen one. The
// drag ends either way.
func (l *Loop) drop(ctx context.Context) error {
	targets := l.session.Targets()
	if len(targets) == 0 {
		l.session.OnDragEnd()
		return l.driver.Info(ctx, "There is nowhere to drop this field.")
	}
	if err := l.draw(ctx); err != nil {
		l.session.OnDragEnd()
		return err
	}

	labels := make([]string, len(targets))
	for i, target := range targets {
		labels[i] = target.String()
	}
	idx, err := l.choose(ctx, "Drop where?", labels)
	if err != nil || idx < 0 {
		l.session.OnDragEnd()
		return err
	}
	_, err = l.session.OnDrop(targets[idx])
	return l.report(ctx, err)
}

// choose offers options plus a trailing Cancel. Cancel yields -1.
func (l *Loop) choose(ctx context.Context, message string, options []string) (int, error) {
	choices := append(append([]string(nil), options...), cancelChoice)
	idx, err := l.driver.Select(ctx, SelectConfig{Message: message, Options: choices, PageSize: 12})
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(options) {
		return -1, nil
	}
	return idx, nil
}

func (l *Loop) draw(ctx context.Context) error {
	state := l.session.Snapshot()
	out, err := l.renderer.Render(ctx, render.View{
		Title:       l.title,
		Grid:        state.Grid,
		Dragged:     state.Dragged,
		ActiveField: state.ActiveField,
	}, render.RenderOptions{})
	if err != nil {
		return fmt.Errorf("prompt: draw canvas: %w", err)
	}
	return l.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
}

// report shows recoverable session errors to the user instead of ending
// the loop.
func (l *Loop) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) {
		return err
	}
	l.logger.Debug("prompt action failed", "err", err)
	return l.driver.Info(ctx, "! "+err.Error())
}
