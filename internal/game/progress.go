package game

import (
	"fmt"
	"strings"
)

// gainXP adds xp and applies every level-up it pays for. Each level
// raises max hp, heals fully, pays gold, and every LevelRewardEvery levels
// grants an uncommon item.
func (e *Engine) gainXP(st *Session, gc *GenreContent, xp int) string {
	st.XP += xp
	var b strings.Builder
	for st.XPToNextLevel > 0 && st.XP >= st.XPToNextLevel {
		st.XP -= st.XPToNextLevel
		st.Level++
		st.XPToNextLevel = st.XPToNextLevel * xpCurveNum / xpCurveDen

		oldMax := st.MaxHP
		st.MaxHP += levelHPBase + levelHPPerLevel*st.Level
		st.HP = st.MaxHP
		fmt.Fprintf(&b, " LEVEL UP! You are now Level %d! Your maximum HP increased from %d to %d. You are fully healed!",
			st.Level, oldMax, st.MaxHP)

		var rewards []string
		if st.Level%LevelRewardEvery == 0 {
			if item, ok := pick(e.Dice, gc.Items[Uncommon]); ok {
				st.Inventory = append(st.Inventory, item)
				rewards = append(rewards, item)
			}
		}
		gold := st.Level * goldPerLevelUp
		st.Gold += gold
		rewards = append(rewards, fmt.Sprintf("%d gold", gold))
		fmt.Fprintf(&b, " You receive: %s!", strings.Join(rewards, " and "))
	}
	return b.String()
}
