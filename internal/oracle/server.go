// Package oracle is a local stand-in for the remote inference service.
// It serves the documented session protocol over HTTP with a miniature
// of the dermatology decision tree, so the client can run end to end
// without the real backend. Sessions are held in memory only.
package oracle

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
)

// Server owns the in-memory session table.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*flow
}

// New creates an empty Server.
func New() *Server {
	return &Server{sessions: make(map[string]*flow)}
}

// Handler returns the HTTP handler mounted at the API base path.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/sessions", s.handleCreate)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Post("/answer", s.handleAnswer)
		r.Delete("/", s.handleDelete)
	})
	return r
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = newFlow()
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	f, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	status := api.Status{
		Question: f.currentQuestion(),
		Progress: f.progress(),
	}
	if status.Question == nil {
		status.Diagnosis = f.diagnose()
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	f, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	var body struct {
		QuestionID string          `json:"question_id"`
		Answer     json.RawMessage `json:"answer"`
		IsMultiple bool            `json:"is_multiple"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed answer body", http.StatusBadRequest)
		return
	}

	values, err := decodeAnswerValue(body.Answer, body.IsMultiple)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := f.currentQuestion()
	if current == nil || current.ID != body.QuestionID {
		http.Error(w, "answer does not match the current question", http.StatusConflict)
		return
	}
	f.record(body.QuestionID, values)

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookup(id string) (*flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.sessions[id]
	return f, ok
}

// decodeAnswerValue accepts the protocol's string-or-array answer
// field and normalizes it to a slice.
func decodeAnswerValue(raw json.RawMessage, multiple bool) ([]string, error) {
	if multiple {
		var values []string
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, errBadAnswer
		}
		return values, nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, errBadAnswer
	}
	return []string{value}, nil
}

var errBadAnswer = jsonError("answer value does not match is_multiple")

type jsonError string

func (e jsonError) Error() string { return string(e) }

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
