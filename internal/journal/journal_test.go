package journal

import (
	"bytes"
	"reflect"
	"sync"
	"testing"

	"taleforge/internal/game"
)

func testSession() game.Session {
	return game.Session{
		PlayerName:       "ava",
		Genre:            game.Fantasy,
		HP:               80,
		MaxHP:            124,
		Level:            2,
		XP:               10,
		XPToNextLevel:    150,
		Gold:             25,
		Inventory:        []string{"Torch", "Health Potion", "Torch"},
		Location:         "Dragon Cave",
		VisitedLocations: []string{"Ancient Forest", "Mystic Ruins"},
		DefeatedEnemies:  []string{"Goblin"},
	}
}

func TestGenerate_ReturnsPDF(t *testing.T) {
	b, err := Generate(testSession())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b) < 100 {
		t.Errorf("PDF too short: %d bytes", len(b))
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
}

func TestGenerate_EmptySession(t *testing.T) {
	b, err := Generate(game.Session{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
}

func TestGenerate_InCombatWithUnicodeName(t *testing.T) {
	st := testSession()
	st.PlayerName = "Zoë"
	st.Enemies = []game.Enemy{{Name: "Orc", Level: 2, HP: 30, MaxHP: 50}}
	st.GameOver = true
	for i := 0; i < 60; i++ {
		st.Inventory = append(st.Inventory, "Rope")
		st.Inventory = append(st.Inventory, string(rune('A'+i%26))+" Trinket")
	}

	b, err := Generate(st)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st := testSession()
			st.PlayerName = "sir galahad of the lake"
			b, err := Generate(st)
			if err != nil {
				t.Errorf("Generate: %v", err)
				return
			}
			if !bytes.HasPrefix(b, []byte("%PDF")) {
				t.Error("output is not a PDF (missing %PDF header)")
			}
			if got := label("Enchanted Castle"); got != "ENCHANTED CASTLE" {
				t.Errorf("Expected 'ENCHANTED CASTLE', got %q", got)
			}
		}()
	}
	wg.Wait()
}

func TestRoute(t *testing.T) {
	st := testSession()
	want := []string{"Ancient Forest", "Mystic Ruins", "Dragon Cave"}
	if got := Route(st); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// a revisited location is drawn once, as the current stop
	st.Location = "Ancient Forest"
	want = []string{"Mystic Ruins", "Ancient Forest"}
	if got := Route(st); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRoute_KeepsMostRecent(t *testing.T) {
	st := game.Session{Location: "Here"}
	for i := 0; i < 30; i++ {
		st.VisitedLocations = append(st.VisitedLocations, string(rune('a'+i%26))+string(rune('0'+i/26)))
	}
	got := Route(st)
	if len(got) != maxStops {
		t.Fatalf("Expected %d stops, got %d", maxStops, len(got))
	}
	if got[len(got)-1] != "Here" {
		t.Errorf("Expected current location last, got %s", got[len(got)-1])
	}
}

func TestSceneryFor(t *testing.T) {
	tests := map[string]Scenery{
		"Ancient Forest":         SceneForest,
		"Crystal Caverns":        SceneCave,
		"Mage Tower":             SceneTower,
		"Hawthorne Manor":        SceneHall,
		"Royal Capital":          SceneTown,
		"Shadow Swamp":           SceneWater,
		"Seaside Cliff":          SceneShore,
		"Mystic Ruins":           SceneRuins,
		"Derelict Space Station": SceneStation,
		"Nowhere In Particular":  SceneDefault,
		"":                       SceneDefault,
	}
	for loc, want := range tests {
		if got := SceneryFor(loc); got != want {
			t.Errorf("SceneryFor(%q) = %s, expected %s", loc, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := label("Dragon Cave"); got != "DRAGON CAVE" {
		t.Errorf("Expected 'DRAGON CAVE', got %q", got)
	}
	if got := label("The Extraordinarily Long Location"); len([]rune(got)) != 22 {
		t.Errorf("Expected a 22 rune label, got %q", got)
	}
}

func TestInventoryLines(t *testing.T) {
	got := inventoryLines([]string{"Torch", "Rope", "Torch"})
	want := []string{"Torch x2", "Rope"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
