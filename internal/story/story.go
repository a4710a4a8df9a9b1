package story

import (
	"errors"
	"strings"

	"taleforge/internal/game"
)

// DefaultPlayerName is used when a story is started without a name.
const DefaultPlayerName = "Storyteller"

// DefaultTone is the tone every story starts with.
const DefaultTone = "creative"

// Speaker tags who contributed a transcript entry.
type Speaker string

const (
	Player   Speaker = "player"
	Narrator Speaker = "narrator"
)

// Entry is one line of the transcript.
type Entry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Session is one free-form story. StorySoFar only ever grows.
type Session struct {
	PlayerName   string     `json:"player_name"`
	Genre        game.Genre `json:"genre"`
	Tone         string     `json:"tone"`
	StorySoFar   []Entry    `json:"story_so_far"`
	CurrentScene string     `json:"current_scene"`
	Characters   []string   `json:"characters"`
	Locations    []string   `json:"locations"`
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	out := s
	out.StorySoFar = append([]Entry{}, s.StorySoFar...)
	out.Characters = append([]string{}, s.Characters...)
	out.Locations = append([]string{}, s.Locations...)
	return out
}

// Action selects how the narrator answers.
type Action string

const (
	ActionNone      Action = ""
	ActionContinue  Action = "continue"
	ActionSummarize Action = "summarize"
	ActionReframe   Action = "reframe"
	ActionInspire   Action = "inspire"
)

// ParseAction maps a raw action. Anything unrecognised means "respond to
// the input".
func ParseAction(s string) Action {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionContinue, ActionSummarize, ActionReframe, ActionInspire:
		return a
	}
	return ActionNone
}

// Reply is what a Narrator produces for one turn. A non-empty Tone
// replaces the session's tone.
type Reply struct {
	Text string
	Tone string
}

// Narrator writes the story's side of the conversation.
type Narrator interface {
	Opening(st Session) string
	Narrate(st Session, action Action, input string) (Reply, error)
}

// Engine runs story sessions against a Narrator.
type Engine struct {
	Narrator Narrator
}

// NewSession starts a story. The opening becomes the current scene but is
// not part of the transcript.
func (e *Engine) NewSession(name string, genre game.Genre) Session {
	if strings.TrimSpace(name) == "" {
		name = DefaultPlayerName
	}
	st := Session{
		PlayerName: name,
		Genre:      genre,
		Tone:       DefaultTone,
		StorySoFar: []Entry{},
		Characters: []string{},
		Locations:  []string{},
	}
	if e.Narrator != nil {
		st.CurrentScene = e.Narrator.Opening(st)
	}
	return st
}

// Continue records input, if any, asks the narrator for a reply and
// records that too. st is not modified.
func (e *Engine) Continue(st Session, input string, action Action) (Session, string, error) {
	if e.Narrator == nil {
		return st, "", errors.New("story: engine needs a narrator")
	}
	next := st.Clone()
	input = strings.TrimSpace(input)
	if input != "" {
		next.StorySoFar = append(next.StorySoFar, Entry{Speaker: Player, Text: input})
	}

	reply, err := e.Narrator.Narrate(next, action, input)
	if err != nil {
		return st, "", err
	}
	if reply.Tone != "" {
		next.Tone = reply.Tone
	}
	next.StorySoFar = append(next.StorySoFar, Entry{Speaker: Narrator, Text: reply.Text})
	next.CurrentScene = reply.Text
	return next, reply.Text, nil
}
