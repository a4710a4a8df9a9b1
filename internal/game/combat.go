package game

import (
	"fmt"
	"strings"
)

var victoryChoices = []string{"Explore the area", "Move on", "Rest", "Check inventory"}

// handleCombat resolves one exchange, spawning an enemy first when the
// player is not already fighting one.
func (e *Engine) handleCombat(st *Session, gc *GenreContent) (string, []string) {
	var b strings.Builder
	enemy, engaged := st.ActiveEnemy()
	if !engaged {
		st.Enemies = []Enemy{e.spawnEnemy(st, gc)}
		enemy = &st.Enemies[0]
		b.WriteString("You prepare for battle! ")
		b.WriteString(encounterText(*enemy, st.Level))
		b.WriteString(" ")
	}

	dmg := roll(e.Dice, playerDmgBase+playerDmgPerLevel*st.Level, playerDmgSpread)
	enemy.HP -= dmg
	if enemy.HP < 0 {
		enemy.HP = 0
	}
	fmt.Fprintf(&b, "You attack the %s dealing %d damage!", enemy.Name, dmg)

	if enemy.HP == 0 {
		defeated := *enemy
		st.Enemies = st.Enemies[1:]
		b.WriteString(" ")
		b.WriteString(e.victory(st, gc, defeated))
		return b.String(), victoryChoices
	}

	fmt.Fprintf(&b, " The %s has %d/%d HP left. ", enemy.Name, enemy.HP, enemy.MaxHP)
	b.WriteString(e.enemyStrikes(st, *enemy))
	if st.GameOver {
		return b.String(), gameOverChoices
	}
	return b.String(), combatChoices(st)
}

// enemyStrikes applies one enemy hit to the player.
func (e *Engine) enemyStrikes(st *Session, enemy Enemy) string {
	dmg := roll(e.Dice, enemyDmgBase+enemyDmgPerLevel*enemy.Level, enemyDmgSpread)
	st.HP -= dmg
	clampHP(st)
	msg := fmt.Sprintf("The %s counterattacks! You take %d damage. HP: %d/%d", enemy.Name, dmg, st.HP, st.MaxHP)
	if st.HP == 0 {
		st.GameOver = true
		msg += " You have been defeated! The adventure ends here."
	}
	return msg
}

func (e *Engine) victory(st *Session, gc *GenreContent, enemy Enemy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You defeat the %s and gain %d XP!", enemy.Name, enemy.XP)
	if !enemy.Boss {
		st.markDefeated(enemy.Name)
	}
	if chance(e.Dice, DropChance) {
		if item, ok := pick(e.Dice, enemy.Drops); ok {
			st.Inventory = append(st.Inventory, item)
			fmt.Fprintf(&b, " The %s drops a %s!", enemy.Name, item)
		}
	}
	gold := roll(e.Dice, goldPerEnemyLevel*enemy.Level, goldKillSpread)
	st.Gold += gold
	fmt.Fprintf(&b, " You find %d gold coins.", gold)
	if chance(e.Dice, KillGiftChance) {
		gifts, ok := KillGifts[enemy.Level]
		if !ok {
			gifts = []string{defaultKillGift}
		}
		gift, _ := pick(e.Dice, gifts)
		st.Inventory = append(st.Inventory, gift)
		fmt.Fprintf(&b, " You receive a gift: %s!", gift)
	}
	bonus := roll(e.Dice, killBonusPerLvl*enemy.Level, killBonusSpread)
	fmt.Fprintf(&b, " Bonus XP: %d.", bonus)
	b.WriteString(e.gainXP(st, gc, enemy.XP+bonus))
	return b.String()
}

// spawnEnemy picks the next opponent. Bosses appear with BossChance and
// are scaled up to the player's level. Otherwise the pick is uniform over
// regular enemies the player has not defeated yet, preferring those within
// MaxLevelGap levels.
func (e *Engine) spawnEnemy(st *Session, gc *GenreContent) Enemy {
	if len(gc.Bosses) > 0 && chance(e.Dice, BossChance) {
		t, _ := pick(e.Dice, gc.Bosses)
		level := max(t.Level, st.Level)
		t.HP = t.HP * level / t.Level
		t.Level = level
		return newEnemy(t, true)
	}

	var near, remaining []EnemyTemplate
	for _, t := range gc.Enemies {
		if contains(st.DefeatedEnemies, t.Name) {
			continue
		}
		remaining = append(remaining, t)
		if t.Level <= st.Level+MaxLevelGap {
			near = append(near, t)
		}
	}
	if len(near) == 0 {
		near = remaining
	}
	t, ok := pick(e.Dice, near)
	if !ok {
		t = EnemyTemplate{Name: "Mysterious Stranger", Level: st.Level, HP: 50, XP: 25, Drops: []string{"Health Potion"}}
	}
	return newEnemy(t, false)
}

func newEnemy(t EnemyTemplate, boss bool) Enemy {
	return Enemy{
		Name:  t.Name,
		Level: t.Level,
		HP:    t.HP,
		MaxHP: t.HP,
		XP:    t.XP,
		Drops: append([]string{}, t.Drops...),
		Boss:  boss,
	}
}

func encounterText(enemy Enemy, playerLevel int) string {
	var msg string
	if enemy.Boss {
		msg = fmt.Sprintf("A powerful %s (Level %d) appears! This is a boss encounter!", enemy.Name, enemy.Level)
	} else {
		msg = fmt.Sprintf("A %s (Level %d) appears!", enemy.Name, enemy.Level)
	}
	if enemy.Level > playerLevel+WarnLevelGap {
		msg += fmt.Sprintf(" Warning: the %s is much stronger than you! Proceed with caution.", enemy.Name)
	}
	return msg
}

// combatChoices suggests next moves while an enemy is engaged.
func combatChoices(st *Session) []string {
	choices := []string{"Attack again", "Run away"}
	if item, ok := healingItem(st); ok {
		choices = append(choices, "Use "+item)
	}
	return append(choices, "Check status")
}

// healingItemNames is checked in order of preference.
var healingItemNames = []string{"Health Potion", "Medkit", "Greater Health Potion", "Advanced Medkit", "Smelling Salts", "Rations", "Emergency Rations"}

func healingItem(st *Session) (string, bool) {
	for _, name := range healingItemNames {
		if st.HasItem(name) {
			return name, true
		}
	}
	return "", false
}
