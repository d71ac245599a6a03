package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

const maxBodyBytes = 1 << 20

type createSessionRequest struct {
	// Definition is a JSON or YAML form definition document. Empty means
	// the server seed.
	Definition json.RawMessage `json:"definition"`
}

type dragRequest struct {
	InternalName string `json:"internalName" validate:"required_without=PaletteID,excluded_with=PaletteID"`
	PaletteID    string `json:"paletteId" validate:"required_without=InternalName"`
}

type dropRequest struct {
	Row    int  `json:"row" validate:"min=1"`
	Column *int `json:"column" validate:"required,min=0"`
}

type activeRequest struct {
	InternalName string `json:"internalName"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	editor.State
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePalette(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.palette.List())
}

func (s *Server) handleListSessions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": s.store.List()})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	def := s.seed
	if raw := strings.TrimSpace(string(req.Definition)); raw != "" && raw != "null" {
		data := []byte(raw)
		// A YAML document arrives as a JSON string.
		var text string
		if json.Unmarshal(data, &text) == nil {
			data = []byte(text)
		}
		parsed, err := formdef.Parse(data, "request")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		def = parsed
	}

	id, session := s.store.Create(def.Grid())
	if def.Title != "" {
		s.titles.Store(id, def.Title)
	}
	s.metrics.sessions.Set(float64(s.store.Len()))
	s.logger.Info("session created", "id", id, "fields", session.Grid().TotalFields())
	writeJSON(w, http.StatusCreated, s.response(id, session))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, session, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.response(id, session))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("%q: %w", id, editor.ErrSessionNotFound))
		return
	}
	s.titles.Delete(id)
	s.metrics.sessions.Set(float64(s.store.Len()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDragStart(w http.ResponseWriter, r *http.Request) {
	id, session, ok := s.session(w, r)
	if !ok {
		return
	}
	var req dragRequest
	if !s.decode(w, r, &req) {
		return
	}

	var err error
	if req.PaletteID != "" {
		err = session.OnPaletteDragStart(req.PaletteID)
	} else {
		err = session.OnDragStart(req.InternalName)
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s.response(id, session))
}

func (s *Server) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	id, session, ok := s.session(w, r)
	if !ok {
		return
	}
	session.OnDragEnd()
	writeJSON(w, http.StatusOK, s.response(id, session))
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	id, session, ok := s.session(w, r)
	if !ok {
		return
	}
	var req dropRequest
	if !s.decode(w, r, &req) {
		return
	}

	target := layout.Target{Row: req.Row, Column: *req.Column}
	if _, err := session.OnDrop(target); err != nil {
		if errors.Is(err, layout.ErrTargetNotAllowed) {
			s.metrics.drops.WithLabelValues("rejected").Inc()
			s.logger.Warn("drop rejected", "session", id, "row", target.Row, "column", target.Column)
		}
		writeError(w, statusFor(err), err)
		return
	}
	s.metrics.drops.WithLabelValues("applied").Inc()
	writeJSON(w, http.StatusOK, s.response(id, session))
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	id, session, ok := s.session(w, r)
	if !ok {
		return
	}
	if _, err := session.Undo(); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s.response(id, session))
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	id, session, ok := s.session(w, r)
	if !ok {
		return
	}
	if _, err := session.Redo(); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s.response(id, session))
}

func (s *Server) handleActive(w http.ResponseWriter, r *http.Request) {
	id, session, ok := s.session(w, r)
	if !ok {
		return
	}
	var req activeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.InternalName == "" {
		session.OnClickOutside()
	} else if err := session.OnClick(req.InternalName); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s.response(id, session))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	id, session, ok := s.session(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("renderer")
	if name == "" {
		name = s.defaultRenderer
	}
	renderer, err := s.renderers.Get(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := s.renderOptions
	if locale := r.URL.Query().Get("locale"); locale != "" {
		opts.Locale = locale
	}
	state := session.Snapshot()
	out, err := renderer.Render(r.Context(), render.View{
		Title:       s.title(id),
		Grid:        state.Grid,
		Dragged:     state.Dragged,
		ActiveField: state.ActiveField,
	}, opts)
	if err != nil {
		s.logger.Error("render failed", "session", id, "renderer", name, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (string, *editor.Session, bool) {
	id := chi.URLParam(r, "id")
	session, err := s.store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return "", nil, false
	}
	return id, session, true
}

func (s *Server) response(id string, session *editor.Session) sessionResponse {
	return sessionResponse{ID: id, Title: s.title(id), State: session.Snapshot()}
}

func (s *Server) title(id string) string {
	if v, ok := s.titles.Load(id); ok {
		return v.(string)
	}
	return ""
}

// decode reads a JSON body into dst and validates it, writing a 400 on
// failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("server: decode request: %w", err))
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("server: invalid request: %w", err))
		return false
	}
	return true
}

// decodeOptional accepts an empty body.
func decodeOptional(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("server: decode request: %w", err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, editor.ErrSessionNotFound),
		errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, palette.ErrUnknownEntry):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrNotDragging),
		errors.Is(err, editor.ErrNothingToUndo),
		errors.Is(err, editor.ErrNothingToRedo),
		errors.Is(err, layout.ErrTargetNotAllowed):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
