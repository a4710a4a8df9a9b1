package game

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the immutable content every session reads from. It is loaded
// once at startup and shared between all sessions.
type Catalog struct {
	Genres       map[Genre]*GenreContent `yaml:"genres"`
	ItemEffects  map[string]ItemEffect   `yaml:"itemEffects"`
	Hints        []string                `yaml:"hints"`
	BriefPrompts []string                `yaml:"briefPrompts"`
	Perspectives []Perspective           `yaml:"perspectives"`
}

// GenreContent is one genre's partition of the Catalog.
type GenreContent struct {
	Opening      string              `yaml:"opening"`
	Locations    []string            `yaml:"locations"`
	Descriptions map[string]string   `yaml:"descriptions"`
	Enemies      []EnemyTemplate     `yaml:"enemies"`
	Bosses       []EnemyTemplate     `yaml:"bosses"`
	Items        map[Rarity][]string `yaml:"items"`
	Events       []string            `yaml:"events"`
	RestEvents   []string            `yaml:"restEvents"`
	Story        StoryContent        `yaml:"story"`
}

// EnemyTemplate is the catalog description an Enemy is spawned from.
type EnemyTemplate struct {
	Name  string   `yaml:"name"`
	Level int      `yaml:"level"`
	HP    int      `yaml:"hp"`
	XP    int      `yaml:"xp"`
	Drops []string `yaml:"drops"`
}

// ItemEffect describes what using an item does. Items without an entry
// are consumed with a generic message.
type ItemEffect struct {
	Verb         string `yaml:"verb"` // "drink" | "use" | "eat"
	HealBase     int    `yaml:"healBase"`
	HealPerLevel int    `yaml:"healPerLevel"`
	Message      string `yaml:"message"`
}

// StoryContent holds the canned story-mode texts for a genre.
type StoryContent struct {
	Opening      string   `yaml:"opening"`
	Continuation string   `yaml:"continuation"`
	Description  string   `yaml:"description"`
	Question     string   `yaml:"question"`
	Detailed     string   `yaml:"detailed"`
	Inspirations []string `yaml:"inspirations"`
}

// Perspective is a reframing prompt together with the tone it sets.
type Perspective struct {
	Tone string `yaml:"tone"`
	Text string `yaml:"text"`
}

// DefaultCatalog parses the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog loads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // operator-supplied config path
	if err != nil {
		return nil, err
	}
	return ParseCatalog(b)
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every genre carries enough content for each handler.
func (c *Catalog) Validate() error {
	var problems []string
	for _, g := range Genres {
		gc := c.Genres[g]
		if gc == nil {
			problems = append(problems, fmt.Sprintf("genre %q missing", g))
			continue
		}
		if len(gc.Locations) == 0 {
			problems = append(problems, fmt.Sprintf("genre %q has no locations", g))
		}
		if len(gc.Enemies) == 0 {
			problems = append(problems, fmt.Sprintf("genre %q has no enemies", g))
		}
		if len(gc.Events) == 0 {
			problems = append(problems, fmt.Sprintf("genre %q has no events", g))
		}
		if len(gc.Items[Common]) == 0 {
			problems = append(problems, fmt.Sprintf("genre %q has no common items", g))
		}
		for _, e := range append(append([]EnemyTemplate{}, gc.Enemies...), gc.Bosses...) {
			if e.Level < 1 || e.HP < 1 {
				problems = append(problems, fmt.Sprintf("enemy %q needs level and hp >= 1", e.Name))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid catalog: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Genre returns the content for g, falling back to DefaultGenre.
func (c *Catalog) Genre(g Genre) *GenreContent {
	if gc := c.Genres[g]; gc != nil {
		return gc
	}
	return c.Genres[DefaultGenre]
}

// Describe returns the flavor description of a location, if any.
func (gc *GenreContent) Describe(loc string) string {
	return gc.Descriptions[loc]
}

// isDangerous reports whether loc sits past the first three, safer,
// locations of the genre's list.
func (gc *GenreContent) isDangerous(loc string) bool {
	for i, l := range gc.Locations {
		if l == loc {
			return i > 2
		}
	}
	return false
}

// fill substitutes the {name} placeholder used by opening texts.
func fill(text, name string) string {
	return strings.ReplaceAll(text, "{name}", name)
}
