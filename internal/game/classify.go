package game

import (
	"strings"
	"unicode"
)

type intentKeywords struct {
	intent   Intent
	keywords []string
}

// intentTable is checked top to bottom; the first category with a match
// wins. The order is part of the contract: "attack and run" is combat.
var intentTable = []intentKeywords{
	{IntentCombat, []string{"attack", "fight", "battle", "kill", "stab", "slash"}},
	{IntentExploration, []string{"explore", "search", "look", "investigate", "examine"}},
	{IntentRest, []string{"rest", "sleep", "heal", "recover"}},
	{IntentMovement, []string{"move", "go", "travel", "proceed", "walk", "run"}},
	{IntentInventory, []string{"inventory", "items", "equipment", "check inventory"}},
	{IntentItemUse, []string{"use", "consume", "drink", "eat"}},
	{IntentStatus, []string{"level", "stats", "status", "character"}},
}

// Classify maps free text onto exactly one Intent. Keywords match whole
// words, allowing plain inflections ("attacks", "exploring", "rested"),
// rather than any substring: "use health potion" must not read as rest
// through "heal".
func Classify(text string) Intent {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, row := range intentTable {
		for _, kw := range row.keywords {
			if matchKeyword(words, kw) {
				return row.intent
			}
		}
	}
	return IntentGeneral
}

func matchKeyword(words []string, kw string) bool {
	parts := strings.Fields(kw)
	if len(parts) == 0 {
		return false
	}
	for i := 0; i+len(parts) <= len(words); i++ {
		ok := true
		for j, p := range parts {
			w := words[i+j]
			// only the last word of a phrase may be inflected
			if j < len(parts)-1 {
				ok = w == p
			} else {
				ok = inflectionOf(w, p)
			}
			if !ok {
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func inflectionOf(word, kw string) bool {
	if word == kw {
		return true
	}
	if !strings.HasPrefix(word, kw) {
		stem := strings.TrimSuffix(kw, "e")
		return stem != kw && word == stem+"ing"
	}
	switch word[len(kw):] {
	case "s", "es", "ed", "d", "ing":
		return true
	}
	// doubled final consonant: "stabbed", "running"
	last := kw[len(kw)-1:]
	switch word[len(kw):] {
	case last + "ed", last + "ing":
		return true
	}
	return false
}
