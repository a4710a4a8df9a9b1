package web

import (
	"errors"
	"net/http"

	"taleforge/internal/service"
)

type continueRequest struct {
	StoryID   string `json:"story_id"`
	UserInput string `json:"user_input"`
	Action    string `json:"action"`
}

// POST /api/story/start
func (s *Server) handleStoryStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.Service.CreateStorySession(r.Context(), req.PlayerName, req.Genre)
	if err != nil {
		internalError(w, "start story", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /api/story/continue
func (s *Server) handleStoryContinue(w http.ResponseWriter, r *http.Request) {
	var req continueRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.Service.ContinueStory(r.Context(), req.StoryID, req.UserInput, req.Action)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Story not found")
		return
	}
	if err != nil {
		internalError(w, "continue story", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
