package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"taleforge/internal/game"
	"taleforge/internal/session"
	"taleforge/internal/story"
)

// ErrNotFound is returned for ids that do not name a live session.
var ErrNotFound = session.ErrNotFound

// ErrUnknownActivity is returned for activity names the engine does not run.
var ErrUnknownActivity = game.ErrUnknownActivity

// GameResponse is the result of creating or acting in a game session.
type GameResponse struct {
	GameID  string       `json:"game_id,omitempty"`
	Message string       `json:"message"`
	State   game.Session `json:"state"`
	Choices []string     `json:"choices"`
}

// StoryResponse is the result of creating or continuing a story session.
type StoryResponse struct {
	StoryID string        `json:"story_id,omitempty"`
	Message string        `json:"message"`
	State   story.Session `json:"state"`
}

// Service owns both session stores and the engines that mutate them.
type Service struct {
	Engine  *game.Engine
	Story   *story.Engine
	Games   session.Store[game.Session]
	Stories session.Store[story.Session]
}

func (s *Service) CreateGameSession(ctx context.Context, playerName, genre string) (GameResponse, error) {
	res := s.Engine.NewSession(playerName, parseGenre(genre))
	id, err := s.Games.Create(ctx, res.State)
	if err != nil {
		return GameResponse{}, fmt.Errorf("create game session: %w", err)
	}
	return GameResponse{GameID: id, Message: res.Message, State: res.State, Choices: res.Choices}, nil
}

// ApplyGameAction resolves action against the game session id. The
// session is locked for the whole action and only a successful result is
// stored.
func (s *Service) ApplyGameAction(ctx context.Context, id, action string) (GameResponse, error) {
	var res game.StepResult
	_, err := s.Games.Update(ctx, id, func(cur game.Session) (game.Session, error) {
		r, err := s.Engine.Apply(cur, action)
		if err != nil {
			return cur, err
		}
		res = r
		return r.State, nil
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return GameResponse{}, ErrNotFound
		}
		return GameResponse{}, fmt.Errorf("apply action: %w", err)
	}
	return GameResponse{Message: res.Message, State: res.State, Choices: res.Choices}, nil
}

// ApplyGameActivity runs a training activity in the game session id under
// the same locking as ApplyGameAction.
func (s *Service) ApplyGameActivity(ctx context.Context, id, activity string) (GameResponse, error) {
	kind, ok := game.ParseActivity(activity)
	if !ok {
		return GameResponse{}, fmt.Errorf("%w %q", ErrUnknownActivity, activity)
	}
	var res game.StepResult
	_, err := s.Games.Update(ctx, id, func(cur game.Session) (game.Session, error) {
		r, err := s.Engine.Activity(cur, kind)
		if err != nil {
			return cur, err
		}
		res = r
		return r.State, nil
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return GameResponse{}, ErrNotFound
		}
		return GameResponse{}, fmt.Errorf("apply activity: %w", err)
	}
	return GameResponse{Message: res.Message, State: res.State, Choices: res.Choices}, nil
}

// GameSession returns a snapshot of a game session.
func (s *Service) GameSession(ctx context.Context, id string) (game.Session, error) {
	st, ok, err := s.Games.Get(ctx, id)
	if err != nil {
		return game.Session{}, err
	}
	if !ok {
		return game.Session{}, ErrNotFound
	}
	return st.Clone(), nil
}

func (s *Service) CreateStorySession(ctx context.Context, playerName, genre string) (StoryResponse, error) {
	st := s.Story.NewSession(playerName, parseGenre(genre))
	id, err := s.Stories.Create(ctx, st)
	if err != nil {
		return StoryResponse{}, fmt.Errorf("create story session: %w", err)
	}
	return StoryResponse{StoryID: id, Message: st.CurrentScene, State: st}, nil
}

// ContinueStory records userInput and the narrator's answer to action.
func (s *Service) ContinueStory(ctx context.Context, id, userInput, action string) (StoryResponse, error) {
	var msg string
	st, err := s.Stories.Update(ctx, id, func(cur story.Session) (story.Session, error) {
		next, m, err := s.Story.Continue(cur, userInput, story.ParseAction(action))
		if err != nil {
			return cur, err
		}
		msg = m
		return next, nil
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return StoryResponse{}, ErrNotFound
		}
		return StoryResponse{}, fmt.Errorf("continue story: %w", err)
	}
	return StoryResponse{Message: msg, State: st}, nil
}

func parseGenre(raw string) game.Genre {
	g, ok := game.ParseGenre(raw)
	if !ok && raw != "" {
		log.Printf("unknown genre %q, using %s", raw, g)
	}
	return g
}
