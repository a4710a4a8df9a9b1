package game

import (
	"fmt"
	"strings"
)

func (e *Engine) handleExploration(st *Session, gc *GenreContent) (string, []string) {
	var b strings.Builder
	event, _ := pick(e.Dice, gc.Events)
	b.WriteString(event)

	var found []string
	if chance(e.Dice, ItemFindChance) {
		tier := Common
		if len(gc.Items[Uncommon]) > 0 && chance(e.Dice, UncommonFindChance) {
			tier = Uncommon
		}
		if item, ok := pick(e.Dice, gc.Items[tier]); ok {
			st.Inventory = append(st.Inventory, item)
			found = append(found, "a "+item)
		}
	}
	if chance(e.Dice, GoldFindChance) {
		gold := roll(e.Dice, goldFindPerLevel*st.Level, goldFindSpread)
		st.Gold += gold
		found = append(found, fmt.Sprintf("%d gold coins", gold))
	}
	if len(found) > 0 {
		fmt.Fprintf(&b, " You find %s.", strings.Join(found, " and "))
	}

	if chance(e.Dice, DiscoverChance) {
		if loc, ok := e.unvisitedLocation(st, gc); ok {
			st.markVisited(st.Location)
			st.Location = loc
			fmt.Fprintf(&b, " The trail leads you somewhere new: %s.", loc)
			if desc := gc.Describe(loc); desc != "" {
				b.WriteString(" " + desc)
			}
		}
	}

	if _, engaged := st.ActiveEnemy(); !engaged && chance(e.Dice, AmbushChance) {
		st.Enemies = []Enemy{e.spawnEnemy(st, gc)}
		b.WriteString(" Suddenly, ")
		b.WriteString(lowerFirst(encounterText(st.Enemies[0], st.Level)))
	}

	if _, engaged := st.ActiveEnemy(); engaged {
		return b.String(), combatChoices(st)
	}
	return b.String(), []string{"Continue exploring", "Move to new area", "Check your surroundings"}
}

func (e *Engine) handleRest(st *Session, gc *GenreContent) (string, []string) {
	if enemy, engaged := st.ActiveEnemy(); engaged {
		return fmt.Sprintf("You can't rest with the %s bearing down on you!", enemy.Name), combatChoices(st)
	}
	after := []string{"Travel onward", "Explore the area", "Check inventory"}
	if st.HP >= st.MaxHP {
		return fmt.Sprintf("You are already at full health (%d/%d). Resting has no effect.", st.HP, st.MaxHP), after
	}

	gained := heal(st, roll(e.Dice, restBase+restPerLevel*st.Level, restSpread))
	msg := fmt.Sprintf("You take a moment to rest and recover. You regain %d HP. Current HP: %d/%d", gained, st.HP, st.MaxHP)
	if chance(e.Dice, RestEventChance) {
		if ev, ok := pick(e.Dice, gc.RestEvents); ok {
			msg += " " + ev
		}
	}
	return msg, after
}

// handleMovement travels to another location. Unvisited locations are
// preferred; moving while engaged is a flee attempt.
func (e *Engine) handleMovement(st *Session, gc *GenreContent) (string, []string) {
	var b strings.Builder
	if enemy, engaged := st.ActiveEnemy(); engaged {
		if !chance(e.Dice, FleeChance) {
			fmt.Fprintf(&b, "You try to flee, but the %s blocks your way! ", enemy.Name)
			b.WriteString(e.enemyStrikes(st, *enemy))
			if st.GameOver {
				return b.String(), gameOverChoices
			}
			return b.String(), combatChoices(st)
		}
		fmt.Fprintf(&b, "You escape from the %s! ", enemy.Name)
		st.Enemies = st.Enemies[:0]
	}

	dest, ok := e.unvisitedLocation(st, gc)
	if !ok {
		dest, ok = e.otherLocation(st, gc)
	}
	if !ok {
		b.WriteString("You're already familiar with this area. Perhaps you should explore it more thoroughly.")
		return b.String(), []string{"Explore this area", "Rest for a moment", "Check status"}
	}

	st.markVisited(st.Location)
	st.Location = dest
	fmt.Fprintf(&b, "You travel to %s.", dest)
	if desc := gc.Describe(dest); desc != "" {
		b.WriteString(" " + desc)
	}

	p := EncounterChance
	if gc.isDangerous(dest) {
		p = DangerEncounter
	}
	if chance(e.Dice, p) {
		st.Enemies = []Enemy{e.spawnEnemy(st, gc)}
		b.WriteString(" ")
		b.WriteString(encounterText(st.Enemies[0], st.Level))
		b.WriteString(" It blocks your path!")
		return b.String(), combatChoices(st)
	}
	if chance(e.Dice, MoveEventChance) {
		if ev, ok := pick(e.Dice, gc.Events); ok {
			b.WriteString(" " + ev)
		}
	}
	return b.String(), []string{"Explore this area", "Continue moving", "Rest for a moment"}
}

func (e *Engine) unvisitedLocation(st *Session, gc *GenreContent) (string, bool) {
	var out []string
	for _, l := range gc.Locations {
		if l != st.Location && !contains(st.VisitedLocations, l) {
			out = append(out, l)
		}
	}
	return pick(e.Dice, out)
}

func (e *Engine) otherLocation(st *Session, gc *GenreContent) (string, bool) {
	var out []string
	for _, l := range gc.Locations {
		if l != st.Location {
			out = append(out, l)
		}
	}
	return pick(e.Dice, out)
}

// handleInventory only reads st.
func handleInventory(st *Session) (string, []string) {
	choices := []string{"Explore area", "Move to new location", "Check status"}
	if len(st.Inventory) == 0 {
		msg := "Your inventory is empty. Explore areas to find useful items!"
		if st.Gold > 0 {
			msg += fmt.Sprintf(" Gold: %d coins", st.Gold)
		}
		return msg, choices
	}

	var order []string
	counts := map[string]int{}
	for _, it := range st.Inventory {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}
	var b strings.Builder
	b.WriteString("You check your inventory:\n")
	for _, it := range order {
		fmt.Fprintf(&b, "\n- %s x%d", it, counts[it])
	}
	if st.Gold > 0 {
		fmt.Fprintf(&b, "\n\nGold: %d coins", st.Gold)
	}
	return b.String(), choices
}

// handleStatus only reads st.
func handleStatus(st *Session) (string, []string) {
	var b strings.Builder
	b.WriteString("Character Status:\n")
	fmt.Fprintf(&b, "Name: %s\n", st.PlayerName)
	fmt.Fprintf(&b, "Level: %d\n", st.Level)
	fmt.Fprintf(&b, "HP: %d/%d\n", st.HP, st.MaxHP)
	fmt.Fprintf(&b, "XP: %d/%d\n", st.XP, st.XPToNextLevel)
	fmt.Fprintf(&b, "Location: %s\n", st.Location)
	fmt.Fprintf(&b, "Gold: %d\n", st.Gold)
	fmt.Fprintf(&b, "Visited Locations: %d\n", len(st.VisitedLocations))
	fmt.Fprintf(&b, "Defeated Enemies: %d", len(st.DefeatedEnemies))
	if enemy, ok := st.ActiveEnemy(); ok {
		fmt.Fprintf(&b, "\nCurrent Enemy: %s (Level %d, HP %d/%d)", enemy.Name, enemy.Level, enemy.HP, enemy.MaxHP)
	}
	return b.String(), []string{"Explore area", "Check inventory", "Move to new location"}
}

// handleItemUse consumes one owned item named in action. The longest
// matching name wins so "greater health potion" is not read as
// "health potion".
func (e *Engine) handleItemUse(st *Session, gc *GenreContent, action string) (string, []string) {
	lower := strings.ToLower(action)
	after := []string{"Explore the area", "Check inventory", "Move on"}

	item := longestMention(lower, st.Inventory)
	if item == "" {
		if named := longestMention(lower, e.knownItems(gc)); named != "" {
			return fmt.Sprintf("You don't have a %s.", named), orCombat(st, after)
		}
		return "You need to specify which item to use.", orCombat(st, after)
	}

	st.removeItem(item)
	eff, ok := e.Catalog.ItemEffects[item]
	var msg string
	switch {
	case ok && eff.HealBase > 0:
		gained := heal(st, eff.HealBase+eff.HealPerLevel*st.Level)
		msg = fmt.Sprintf("You %s the %s and recover %d HP. Current HP: %d/%d", verbOf(eff), item, gained, st.HP, st.MaxHP)
	case ok && eff.Message != "":
		msg = fmt.Sprintf("You %s the %s. %s", verbOf(eff), item, eff.Message)
	default:
		msg = fmt.Sprintf("You use the %s. It serves its purpose well.", item)
	}
	return msg, orCombat(st, after)
}

func orCombat(st *Session, choices []string) []string {
	if _, engaged := st.ActiveEnemy(); engaged {
		return combatChoices(st)
	}
	return choices
}

func verbOf(eff ItemEffect) string {
	if eff.Verb == "" {
		return "use"
	}
	return eff.Verb
}

// longestMention returns the longest of names found in lowerText. Names of
// equal length are ordered alphabetically so the result does not depend on
// the order of names.
func longestMention(lowerText string, names []string) string {
	best := ""
	for _, n := range names {
		if !strings.Contains(lowerText, strings.ToLower(n)) {
			continue
		}
		if len(n) > len(best) || (len(n) == len(best) && n < best) {
			best = n
		}
	}
	return best
}

// knownItems lists every item name the genre can produce.
func (e *Engine) knownItems(gc *GenreContent) []string {
	var out []string
	for _, items := range gc.Items {
		out = append(out, items...)
	}
	for _, t := range gc.Enemies {
		out = append(out, t.Drops...)
	}
	for _, t := range gc.Bosses {
		out = append(out, t.Drops...)
	}
	for name := range e.Catalog.ItemEffects {
		out = append(out, name)
	}
	return out
}

var engagedLines = []string{
	"The %s growls menacingly. You need to decide your next move in combat.",
	"With the %s before you, the tension is palpable. What will you do?",
	"The battle continues! The %s awaits your action.",
}

var idleLines = []string{
	"%s Your actions shape the world around you.",
	"%s Every choice leads to new possibilities.",
	"%s The adventure continues based on your decisions.",
	"%s What destiny will you forge next?",
}

func (e *Engine) handleGeneral(st *Session, gc *GenreContent) (string, []string) {
	var msg string
	if enemy, engaged := st.ActiveEnemy(); engaged {
		line, _ := pick(e.Dice, engagedLines)
		msg = fmt.Sprintf(line, enemy.Name)
	} else {
		desc := gc.Describe(st.Location)
		if desc == "" {
			desc = "This place feels strange and unfamiliar."
		}
		line, _ := pick(e.Dice, idleLines)
		msg = fmt.Sprintf(line, desc)
	}
	if hint, ok := pick(e.Dice, e.Catalog.Hints); ok {
		msg += hint
	}
	if _, engaged := st.ActiveEnemy(); engaged {
		return msg, combatChoices(st)
	}
	return msg, defaultChoices
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
