package game

import (
	"errors"
	"fmt"
	"strings"
)

// Engine resolves free-text actions against a Catalog. It holds no
// per-session state; callers pass a Session in and store the one that
// comes back.
type Engine struct {
	Catalog *Catalog
	Dice    Dice
}

// OpeningChoices are offered with every new session.
var OpeningChoices = []string{"Explore the area carefully", "Check your equipment", "Move forward cautiously"}

var (
	defaultChoices  = []string{"Explore", "Move forward", "Check status", "Look for clues"}
	gameOverChoices = []string{"Restart", "Check status"}
)

// NewSession builds a fresh character for name in genre.
func (e *Engine) NewSession(name string, genre Genre) StepResult {
	if strings.TrimSpace(name) == "" {
		name = DefaultPlayerName
	}
	gc := e.Catalog.Genre(genre)
	st := Session{
		PlayerName:       name,
		Genre:            genre,
		HP:               StartHP,
		MaxHP:            StartHP,
		Level:            1,
		XPToNextLevel:    StartXPToNextLevel,
		Inventory:        append([]string{}, StartInventory...),
		Location:         gc.Locations[0],
		Enemies:          []Enemy{},
		VisitedLocations: []string{},
		DefeatedEnemies:  []string{},
	}
	msg := fill(gc.Opening, name)
	if msg == "" {
		msg = "Your adventure begins now. The world awaits your actions."
	}
	return StepResult{State: st, Message: msg, Choices: append([]string{}, OpeningChoices...)}
}

// Apply classifies action and runs the matching handler on a copy of st.
// The returned State is the whole result of the action; st itself is
// never modified.
func (e *Engine) Apply(st Session, action string) (StepResult, error) {
	if e.Catalog == nil || e.Dice == nil {
		return StepResult{State: st}, errors.New("game: engine needs a catalog and dice")
	}
	gc := e.Catalog.Genre(st.Genre)
	if gc == nil {
		return StepResult{State: st}, fmt.Errorf("game: no content for genre %q", st.Genre)
	}

	next := st.Clone()
	if next.GameOver {
		return e.afterGameOver(next, action), nil
	}

	intent := Classify(action)
	var msg string
	var choices []string
	switch intent {
	case IntentCombat:
		msg, choices = e.handleCombat(&next, gc)
	case IntentExploration:
		msg, choices = e.handleExploration(&next, gc)
	case IntentRest:
		msg, choices = e.handleRest(&next, gc)
	case IntentMovement:
		msg, choices = e.handleMovement(&next, gc)
	case IntentInventory:
		msg, choices = handleInventory(&next)
	case IntentItemUse:
		msg, choices = e.handleItemUse(&next, gc, action)
	case IntentStatus:
		msg, choices = handleStatus(&next)
	default:
		msg, choices = e.handleGeneral(&next, gc)
	}
	if next.GameOver {
		choices = gameOverChoices
	}
	return StepResult{State: next, Intent: intent, Message: msg, Choices: append([]string{}, choices...)}, nil
}

func (e *Engine) afterGameOver(st Session, action string) StepResult {
	if isRestart(action) {
		res := e.NewSession(st.PlayerName, st.Genre)
		res.Message = "You awaken as if from a long dream. " + res.Message
		return res
	}
	if Classify(action) == IntentStatus {
		msg, _ := handleStatus(&st)
		return StepResult{State: st, Intent: IntentStatus, Message: msg, Choices: append([]string{}, gameOverChoices...)}
	}
	return StepResult{
		State:   st,
		Intent:  IntentGeneral,
		Message: "Your adventure has ended. Type 'restart' to begin a new one.",
		Choices: append([]string{}, gameOverChoices...),
	}
}

func isRestart(action string) bool {
	a := strings.ToLower(strings.TrimSpace(action))
	return a == "restart" || a == "new game" || a == "start over"
}

func clampHP(st *Session) {
	if st.HP < 0 {
		st.HP = 0
	}
	if st.HP > st.MaxHP {
		st.HP = st.MaxHP
	}
}

// heal restores up to amount hp and reports how much was actually gained.
func heal(st *Session, amount int) int {
	old := st.HP
	st.HP += amount
	clampHP(st)
	return st.HP - old
}
