package game

// Starting character sheet.
const (
	StartHP            = 100
	StartXPToNextLevel = 100
	DefaultPlayerName  = "Adventurer"
)

// StartInventory is what every new character carries.
var StartInventory = []string{"Torch", "Water Flask"}

// Probabilities, each checked as dice.Float64() < p.
const (
	BossChance         = 0.10
	DropChance         = 0.70
	ItemFindChance     = 0.50
	UncommonFindChance = 0.20
	GoldFindChance     = 0.30
	DiscoverChance     = 0.20
	AmbushChance       = 0.25
	RestEventChance    = 0.30
	FleeChance         = 0.60
	EncounterChance    = 0.30
	DangerEncounter    = 0.60
	MoveEventChance    = 0.25
)

// Spawn limits.
const (
	// MaxLevelGap keeps regular spawns within reach of the player.
	MaxLevelGap = 2
	// WarnLevelGap is how far above the player an enemy must be before the
	// narrative warns about it.
	WarnLevelGap = 3
	// LevelRewardEvery grants an uncommon item every N levels.
	LevelRewardEvery = 3
	// RecapEntries bounds how much of a transcript a summary repeats.
	RecapEntries = 8
)

// Damage and healing ranges: base + perLevel*level + U[0, spread].
const (
	playerDmgBase     = 5
	playerDmgPerLevel = 5
	playerDmgSpread   = 10

	enemyDmgBase     = 5
	enemyDmgPerLevel = 4
	enemyDmgSpread   = 8

	restBase     = 15
	restPerLevel = 5
	restSpread   = 10

	goldPerEnemyLevel = 5
	goldKillSpread    = 5
	goldFindPerLevel  = 5
	goldFindSpread    = 15
	goldPerLevelUp    = 10
)

// Level-up curve.
const (
	levelHPBase     = 20
	levelHPPerLevel = 2
	xpCurveNum      = 3
	xpCurveDen      = 2
)

// Kill rewards on top of the enemy's own xp and drops.
const (
	KillGiftChance  = 0.60
	killBonusPerLvl = 5
	killBonusSpread = 5
	defaultKillGift = "Coin Pouch"
)

// KillGifts are the gifts a kill may grant, keyed by the enemy's level.
// Enemies of any other level grant defaultKillGift.
var KillGifts = map[int][]string{
	1: {"Ration", "Lesser Rune"},
	2: {"Minor Amulet", "Iron Tincture"},
	3: {"Greater Rune", "Enchanted Band"},
}

// Training activities. xp is xpBase + xpPerLevel*level/xpLevelDiv + U[0, xpSpread]
// and gold, when paid, is goldBase + goldPerLevel*level + U[0, goldSpread].
var activityTable = map[Activity]activityTuning{
	ActivityHunt: {
		verb: "hunt", report: "You go hunting and gain %d XP.", lootLabel: "You found",
		xpBase: 10, xpSpread: 10, xpPerLevel: 2, xpLevelDiv: 1,
		lootChance: 0.40, loot: []string{"Ration", "Leather Strip", "Minor Rune"},
	},
	ActivityPractice: {
		verb: "practice", report: "You spend time practicing and gain %d XP.", lootLabel: "Practice reward",
		xpBase: 8, xpSpread: 6, xpPerLevel: 1, xpLevelDiv: 1,
		lootChance: 0.30, loot: []string{"Minor Amulet", "Training Token"},
	},
	ActivityJob: {
		verb: "do jobs", report: "You complete a job and gain %d XP.", lootLabel: "Job bonus",
		xpBase: 6, xpSpread: 8, xpPerLevel: 1, xpLevelDiv: 2,
		goldBase: 5, goldSpread: 9, goldPerLevel: 1,
		lootChance: 0.20, loot: []string{"Tool Kit", "Minor Rune"},
	},
}
