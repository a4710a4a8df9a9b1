package story

import (
	"errors"
	"fmt"
	"strings"

	"taleforge/internal/game"
)

const (
	blankPage    = "A blank page awaits your story. Where shall we begin?"
	justStarting = "Our story is just beginning, a blank canvas waiting for the first brushstrokes of our collective imagination. Each word we write together will build a world of wonder, mystery, and infinite possibility."
	recapHeader  = "Here's where our story currently stands:\n\n"
	recapFooter  = "\nEvery sentence we craft adds another layer of depth to our shared narrative. Each character, each location, each twist and turn contributes to the rich tapestry we're weaving together.\n\nWhat shall we write into existence next?"
	unfolding    = "The narrative unfolds in unexpected, wonderful directions. Each choice opens new pathways through the storyscape we're mapping together. What surprising turn does the tale take next?"
	ordinary     = "What if the most ordinary object in the room held the key to everything?"

	// briefLimit is the input length below which the narrator asks for more.
	briefLimit = 15
)

var (
	descriptionCues = []string{"more about", "tell me about", "describe", "explain"}
	questionCues    = []string{"how", "why", "what if"}
)

// CannedNarrator answers from the Catalog's story texts.
type CannedNarrator struct {
	Catalog *game.Catalog
	Dice    game.Dice
}

func (n *CannedNarrator) Opening(st Session) string {
	text := n.content(st).Opening
	if text == "" {
		return blankPage
	}
	return strings.ReplaceAll(text, "{name}", st.PlayerName)
}

func (n *CannedNarrator) Narrate(st Session, action Action, input string) (Reply, error) {
	if n.Catalog == nil || n.Dice == nil {
		return Reply{}, errors.New("story: narrator needs a catalog and dice")
	}
	sc := n.content(st)
	switch action {
	case ActionContinue:
		return Reply{Text: or(sc.Continuation, unfolding)}, nil
	case ActionSummarize:
		return Reply{Text: summarize(st.StorySoFar)}, nil
	case ActionReframe:
		if len(n.Catalog.Perspectives) == 0 {
			return Reply{Text: unfolding}, nil
		}
		p := n.Catalog.Perspectives[n.Dice.IntN(len(n.Catalog.Perspectives))]
		return Reply{Text: p.Text, Tone: p.Tone}, nil
	case ActionInspire:
		spark := ordinary
		if len(sc.Inspirations) > 0 {
			spark = sc.Inspirations[n.Dice.IntN(len(sc.Inspirations))]
		}
		return Reply{Text: fmt.Sprintf("Story Inspiration: %s\n\nHow might this spark ignite new directions for our narrative?", spark)}, nil
	}
	return Reply{Text: n.respond(sc, input)}, nil
}

// respond picks a reply by what the input looks like: a request for
// description, a question, something too brief to work with, or a
// contribution to the story.
func (n *CannedNarrator) respond(sc game.StoryContent, input string) string {
	lower := strings.ToLower(input)
	switch {
	case containsAny(lower, descriptionCues):
		return or(sc.Description, unfolding)
	case containsAny(lower, questionCues):
		return or(sc.Question, unfolding)
	case len([]rune(input)) < briefLimit:
		if len(n.Catalog.BriefPrompts) == 0 {
			return unfolding
		}
		return n.Catalog.BriefPrompts[n.Dice.IntN(len(n.Catalog.BriefPrompts))]
	}
	return or(sc.Detailed, unfolding)
}

func (n *CannedNarrator) content(st Session) game.StoryContent {
	if n.Catalog == nil {
		return game.StoryContent{}
	}
	gc := n.Catalog.Genre(st.Genre)
	if gc == nil {
		return game.StoryContent{}
	}
	return gc.Story
}

// summarize recaps the most recent entries of the transcript.
func summarize(entries []Entry) string {
	if len(entries) == 0 {
		return justStarting
	}
	if len(entries) > game.RecapEntries {
		entries = entries[len(entries)-game.RecapEntries:]
	}
	var b strings.Builder
	b.WriteString(recapHeader)
	for _, e := range entries {
		who := "Narrator"
		if e.Speaker == Player {
			who = "You"
		}
		fmt.Fprintf(&b, "- %s: %s\n", who, e.Text)
	}
	b.WriteString(recapFooter)
	return b.String()
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
