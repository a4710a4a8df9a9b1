package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"taleforge/internal/journal"
	"taleforge/internal/service"
)

type startRequest struct {
	PlayerName string `json:"player_name"`
	Genre      string `json:"genre"`
}

type actionRequest struct {
	GameID string `json:"game_id"`
	Action string `json:"action"`
}

// POST /api/game/start
func (s *Server) handleGameStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.Service.CreateGameSession(r.Context(), req.PlayerName, req.Genre)
	if err != nil {
		internalError(w, "start game", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /api/game/action
func (s *Server) handleGameAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.Service.ApplyGameAction(r.Context(), req.GameID, req.Action)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		internalError(w, "game action", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type activityRequest struct {
	GameID   string `json:"game_id"`
	Activity string `json:"activity"`
}

// POST /api/game/activity
func (s *Server) handleGameActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.Service.ApplyGameActivity(r.Context(), req.GameID, req.Activity)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Game not found")
		return
	case errors.Is(err, service.ErrUnknownActivity):
		writeError(w, http.StatusBadRequest, "Unknown activity")
		return
	case err != nil:
		internalError(w, "game activity", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /api/game/{id}/journal
func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	st, err := s.Service.GameSession(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		internalError(w, "load game", err)
		return
	}
	pdf, err := journal.Generate(st)
	if err != nil {
		internalError(w, "journal", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="adventure-journal.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("write journal: %v", err)
	}
}

func internalError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
