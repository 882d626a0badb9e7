package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/amalg/go-minesweeper/internal/game"
)

// Server exposes matches over a JSON API. Matches live in memory, keyed by
// UUID; the registry lock only guards the map — per-match serialization is
// the Match's own job.
type Server struct {
	log      *logrus.Logger
	opponent game.CellChooser // shared chooser for duel matches

	mu      sync.RWMutex
	matches map[uuid.UUID]*game.Match
}

// New creates a server with an empty match registry.
func New(log *logrus.Logger) *Server {
	return &Server{
		log:      log,
		opponent: game.NewRandomChooser(0),
		matches:  make(map[uuid.UUID]*game.Match),
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /matches", s.handleCreate)
	mux.HandleFunc("GET /matches/{id}", s.handleGet)
	mux.HandleFunc("POST /matches/{id}/reveal", s.handleReveal)
	mux.HandleFunc("POST /matches/{id}/flag", s.handleFlag)
	return mux
}

type cellRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type revealResponse struct {
	Outcome   string          `json:"outcome"`
	Uncovered []game.Position `json:"uncovered,omitempty"`
	Opponent  *revealResponse `json:"opponent,omitempty"`
	Match     game.Snapshot   `json:"match"`
}

type flagResponse struct {
	Outcome string        `json:"outcome"`
	Match   game.Snapshot `json:"match"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	config := game.DefaultConfig()
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	match, err := game.NewMatch(config)
	switch {
	case errors.Is(err, game.ErrInvalidDimensions), errors.Is(err, game.ErrTooManyMines):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.mu.Lock()
	s.matches[match.ID] = match
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"match":  match.ID,
		"width":  config.Width,
		"height": config.Height,
		"mines":  config.Mines,
		"duel":   config.Duel,
	}).Info("match created")

	writeJSON(w, http.StatusCreated, match.Snapshot())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	match, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, match.Snapshot())
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	match, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req cellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res := match.Reveal(req.X, req.Y)
	s.log.WithFields(logrus.Fields{
		"match":   match.ID,
		"x":       req.X,
		"y":       req.Y,
		"outcome": res.Outcome.String(),
		"status":  match.Status().String(),
	}).Info("reveal")

	resp := revealResponse{
		Outcome:   res.Outcome.String(),
		Uncovered: res.Uncovered,
	}

	// In duel matches the server plays the opponent's turn immediately, so
	// the client sees both halves of the exchange in one response.
	if match.Config().Duel && match.Turn() == game.TurnOpponent {
		opp := match.OpponentMove(s.opponent)
		resp.Opponent = &revealResponse{
			Outcome:   opp.Outcome.String(),
			Uncovered: opp.Uncovered,
		}
	}

	resp.Match = match.Snapshot()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFlag(w http.ResponseWriter, r *http.Request) {
	match, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req cellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	outcome := match.ToggleFlag(req.X, req.Y)
	s.log.WithFields(logrus.Fields{
		"match":   match.ID,
		"x":       req.X,
		"y":       req.Y,
		"outcome": outcome.String(),
	}).Info("flag toggle")

	writeJSON(w, http.StatusOK, flagResponse{
		Outcome: outcome.String(),
		Match:   match.Snapshot(),
	})
}

// lookup resolves the {id} path segment to a registered match, writing the
// error response itself when it cannot.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*game.Match, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid match id"})
		return nil, false
	}
	s.mu.RLock()
	match, ok := s.matches[id]
	s.mu.RUnlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no such match"})
		return nil, false
	}
	return match, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
