// Package server exposes solver sessions over a small JSON HTTP API.
//
// Routes:
//
//	POST   /api/sessions           create a session {size, persistent, enumerate}
//	GET    /api/sessions           list sessions
//	GET    /api/sessions/{id}      session state
//	POST   /api/sessions/{id}/next next solution for the session
//	DELETE /api/sessions/{id}      drop a session
//
// Solver failures map onto status codes: invalid size 400, exhausted
// search 404, duplicate solution 409.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gitrdm/queenslogic/internal/config"
	"github.com/gitrdm/queenslogic/internal/render"
	"github.com/gitrdm/queenslogic/pkg/queens"
)

// Server is the queens HTTP server.
type Server struct {
	mux   *http.ServeMux
	store *Store
	cfg   config.Config
	log   *slog.Logger
}

// New creates a configured server. A nil logger falls back to
// slog.Default.
func New(cfg config.Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		mux:   http.NewServeMux(),
		store: NewStore(),
		cfg:   cfg,
		log:   log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	s.mux.HandleFunc("GET /api/sessions", s.handleListSessions)
	s.mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	s.mux.HandleFunc("POST /api/sessions/{id}/next", s.handleNextSolution)
	s.mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type createRequest struct {
	Size       int   `json:"size"`
	Persistent *bool `json:"persistent,omitempty"`
	Enumerate  *bool `json:"enumerate,omitempty"`
}

type sessionResponse struct {
	*Session
	Solutions int `json:"solutions"`
}

type solutionResponse struct {
	Placements []placementJSON `json:"placements"`
	Board      string          `json:"board"`
	Solutions  int             `json:"solutions"`
}

type placementJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Size < 1 {
		s.writeError(w, http.StatusBadRequest, "size must be at least 1")
		return
	}
	if req.Size > s.cfg.MaxBoardSize {
		s.writeError(w, http.StatusBadRequest, "size exceeds configured maximum")
		return
	}

	persistent := s.cfg.PersistentHistory
	if req.Persistent != nil {
		persistent = *req.Persistent
	}
	enumerate := s.cfg.SearchPastDuplicates
	if req.Enumerate != nil {
		enumerate = *req.Enumerate
	}
	if enumerate && !persistent {
		s.writeError(w, http.StatusBadRequest, "enumerate requires persistent")
		return
	}

	sess := s.store.Create(req.Size, persistent, enumerate)
	s.log.Info("session created", "id", sess.ID, "size", sess.Size,
		"persistent", sess.Persistent, "enumerate", sess.Enumerate)
	s.writeJSON(w, http.StatusCreated, sessionResponse{Session: sess, Solutions: sess.Solutions()})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.List()
	out := make([]sessionResponse, len(sessions))
	for i, sess := range sessions {
		out[i] = sessionResponse{Session: sess, Solutions: sess.Solutions()}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Get(r.PathValue("id"))
	if sess == nil {
		s.writeError(w, http.StatusNotFound, "session not found")
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{Session: sess, Solutions: sess.Solutions()})
}

func (s *Server) handleNextSolution(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Get(r.PathValue("id"))
	if sess == nil {
		s.writeError(w, http.StatusNotFound, "session not found")
		return
	}

	sol, err := sess.Next(r.Context())
	switch {
	case errors.Is(err, queens.ErrInvalidSize):
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, queens.ErrNoSolutionFound):
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, queens.ErrDuplicateSolution):
		s.writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		s.log.Error("search failed", "id", sess.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	placed := make([]placementJSON, len(sol))
	for i, p := range sol {
		placed[i] = placementJSON{Row: p.Square.Row, Col: p.Square.Col}
	}
	s.writeJSON(w, http.StatusOK, solutionResponse{
		Placements: placed,
		Board:      render.Text(sol, sess.Size),
		Solutions:  sess.Solutions(),
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(r.PathValue("id")) {
		s.writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
