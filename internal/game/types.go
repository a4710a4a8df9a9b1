package game

// Genre selects which partition of the Catalog a session draws from.
type Genre string

const (
	Fantasy Genre = "fantasy"
	SciFi   Genre = "sci-fi"
	Mystery Genre = "mystery"
)

// DefaultGenre is used whenever a requested genre is not recognised.
const DefaultGenre = Fantasy

// Genres lists every supported genre in display order.
var Genres = []Genre{Fantasy, SciFi, Mystery}

// ParseGenre maps a raw genre string onto a known Genre. The boolean is
// false when the input was not recognised and DefaultGenre was returned.
func ParseGenre(s string) (Genre, bool) {
	for _, g := range Genres {
		if string(g) == s {
			return g, true
		}
	}
	return DefaultGenre, false
}

// Rarity is the drop/generation tier of an item.
type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Legendary Rarity = "legendary"
)

// Session tracks one adventure: the character sheet, where they are, and
// any enemy they are currently fighting.
type Session struct {
	PlayerName       string   `json:"player_name"`
	Genre            Genre    `json:"genre"`
	HP               int      `json:"hp"`
	MaxHP            int      `json:"max_hp"`
	Level            int      `json:"level"`
	XP               int      `json:"xp"`
	XPToNextLevel    int      `json:"xp_to_next_level"`
	Gold             int      `json:"gold"`
	Inventory        []string `json:"inventory"`
	Location         string   `json:"location"`
	Enemies          []Enemy  `json:"enemies"`
	VisitedLocations []string `json:"visited_locations"`
	DefeatedEnemies  []string `json:"defeated_enemies"`
	GameOver         bool     `json:"game_over"`
}

// Enemy is a live combat instance copied from an EnemyTemplate. Changing
// it never touches the Catalog.
type Enemy struct {
	Name  string   `json:"name"`
	Level int      `json:"level"`
	HP    int      `json:"hp"`
	MaxHP int      `json:"max_hp"`
	XP    int      `json:"xp"`
	Drops []string `json:"drops"`
	Boss  bool     `json:"boss"`
}

// Clone returns a deep copy so handlers can mutate freely and the caller
// decides whether to keep the result.
func (s Session) Clone() Session {
	out := s
	out.Inventory = append([]string{}, s.Inventory...)
	out.VisitedLocations = append([]string{}, s.VisitedLocations...)
	out.DefeatedEnemies = append([]string{}, s.DefeatedEnemies...)
	out.Enemies = make([]Enemy, len(s.Enemies))
	for i, e := range s.Enemies {
		e.Drops = append([]string{}, e.Drops...)
		out.Enemies[i] = e
	}
	return out
}

// ActiveEnemy returns the enemy currently engaged, if any.
func (s *Session) ActiveEnemy() (*Enemy, bool) {
	if len(s.Enemies) == 0 {
		return nil, false
	}
	return &s.Enemies[0], true
}

// HasItem reports whether at least one instance of name is carried.
func (s *Session) HasItem(name string) bool {
	for _, it := range s.Inventory {
		if it == name {
			return true
		}
	}
	return false
}

// removeItem drops the first instance of name from the inventory.
func (s *Session) removeItem(name string) bool {
	for i, it := range s.Inventory {
		if it == name {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Session) markVisited(loc string) {
	if loc == "" || contains(s.VisitedLocations, loc) {
		return
	}
	s.VisitedLocations = append(s.VisitedLocations, loc)
}

func (s *Session) markDefeated(name string) {
	if contains(s.DefeatedEnemies, name) {
		return
	}
	s.DefeatedEnemies = append(s.DefeatedEnemies, name)
}

// Intent is the classified category of a free-text action.
type Intent string

const (
	IntentCombat      Intent = "combat"
	IntentExploration Intent = "exploration"
	IntentRest        Intent = "rest"
	IntentMovement    Intent = "movement"
	IntentInventory   Intent = "inventory"
	IntentItemUse     Intent = "item_use"
	IntentStatus      Intent = "status"
	IntentGeneral     Intent = "general"
)

// StepResult is what a single action produces.
type StepResult struct {
	State   Session
	Intent  Intent
	Message string
	Choices []string
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
