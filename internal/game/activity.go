package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownActivity is returned for activity names outside the table.
var ErrUnknownActivity = errors.New("game: unknown activity")

// Activity is a training task done away from combat.
type Activity string

const (
	ActivityHunt     Activity = "hunt"
	ActivityPractice Activity = "practice"
	ActivityJob      Activity = "job"
)

// ParseActivity maps a raw activity name.
func ParseActivity(s string) (Activity, bool) {
	a := Activity(strings.ToLower(strings.TrimSpace(s)))
	_, ok := activityTable[a]
	return a, ok
}

type activityTuning struct {
	verb      string
	report    string
	lootLabel string

	xpBase, xpSpread, xpPerLevel, xpLevelDiv int
	goldBase, goldSpread, goldPerLevel      int

	lootChance float64
	loot       []string
}

var activityChoices = []string{"Hunt", "Practice", "Do a job", "Explore the area"}

// Activity runs one training task on a copy of st. Nothing happens once
// the game is over or while an enemy is engaged.
func (e *Engine) Activity(st Session, kind Activity) (StepResult, error) {
	if e.Catalog == nil || e.Dice == nil {
		return StepResult{State: st}, errors.New("game: engine needs a catalog and dice")
	}
	gc := e.Catalog.Genre(st.Genre)
	if gc == nil {
		return StepResult{State: st}, fmt.Errorf("game: no content for genre %q", st.Genre)
	}
	t, ok := activityTable[kind]
	if !ok {
		return StepResult{State: st}, fmt.Errorf("%w %q", ErrUnknownActivity, kind)
	}

	next := st.Clone()
	if next.GameOver {
		return StepResult{
			State:   next,
			Message: fmt.Sprintf("You cannot %s while defeated.", t.verb),
			Choices: append([]string{}, gameOverChoices...),
		}, nil
	}
	if enemy, engaged := next.ActiveEnemy(); engaged {
		return StepResult{
			State:   next,
			Intent:  IntentCombat,
			Message: fmt.Sprintf("The %s will not wait while you %s.", enemy.Name, t.verb),
			Choices: combatChoices(&next),
		}, nil
	}

	var b strings.Builder
	xp := roll(e.Dice, t.xpBase+t.xpPerLevel*next.Level/t.xpLevelDiv, t.xpSpread)
	fmt.Fprintf(&b, t.report, xp)
	if t.goldBase > 0 {
		gold := roll(e.Dice, t.goldBase+t.goldPerLevel*next.Level, t.goldSpread)
		next.Gold += gold
		fmt.Fprintf(&b, " You are paid %d gold.", gold)
	}
	if chance(e.Dice, t.lootChance) {
		if item, ok := pick(e.Dice, t.loot); ok {
			next.Inventory = append(next.Inventory, item)
			fmt.Fprintf(&b, " %s: %s!", t.lootLabel, item)
		}
	}
	b.WriteString(e.gainXP(&next, gc, xp))
	return StepResult{State: next, Message: b.String(), Choices: append([]string{}, activityChoices...)}, nil
}
