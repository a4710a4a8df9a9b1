package game

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestActivity_Rewards(t *testing.T) {
	tests := []struct {
		kind   Activity
		level  int
		wantXP int
		gold   int
	}{
		// 10 + 2*level
		{ActivityHunt, 1, 12, 0},
		// 8 + level
		{ActivityPractice, 2, 10, 0},
		// 6 + level/2 xp, 5 + level gold
		{ActivityJob, 1, 6, 6},
		{ActivityJob, 4, 8, 9},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			engine := testEngine(t, &scriptedDice{})
			st := newPlayer(t, engine)
			st.Level = tt.level
			st.XPToNextLevel = 1000

			res, err := engine.Activity(st, tt.kind)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if res.State.XP != tt.wantXP {
				t.Errorf("Expected %d xp, got %d", tt.wantXP, res.State.XP)
			}
			if res.State.Gold != tt.gold {
				t.Errorf("Expected %d gold, got %d", tt.gold, res.State.Gold)
			}
			if !reflect.DeepEqual(res.State.Inventory, st.Inventory) {
				t.Errorf("Expected no loot on a failed roll, got %v", res.State.Inventory)
			}
			if len(res.Choices) == 0 || res.Message == "" {
				t.Error("Expected a message and choices")
			}
			if st.XP != 0 {
				t.Error("Expected the input session to be unchanged")
			}
		})
	}
}

func TestActivity_Loot(t *testing.T) {
	engine := testEngine(t, &scriptedDice{ints: []int{0, 1}, floats: []float64{0.0}})
	st := newPlayer(t, engine)

	res, err := engine.Activity(st, ActivityHunt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !res.State.HasItem("Leather Strip") {
		t.Errorf("Expected Leather Strip, got %v", res.State.Inventory)
	}
	if !strings.Contains(res.Message, "You found: Leather Strip!") {
		t.Errorf("Expected the loot narrated, got %q", res.Message)
	}
}

func TestActivity_LevelsUp(t *testing.T) {
	engine := testEngine(t, &scriptedDice{})
	st := newPlayer(t, engine)
	st.XP = 95

	res, _ := engine.Activity(st, ActivityHunt)
	if res.State.Level != 2 || res.State.XP != 7 {
		t.Errorf("Expected level 2 with 7 xp, got level %d xp %d", res.State.Level, res.State.XP)
	}
	if !strings.Contains(res.Message, "LEVEL UP!") {
		t.Errorf("Expected level-up narrated, got %q", res.Message)
	}
}

func TestActivity_Refused(t *testing.T) {
	engine := testEngine(t, &scriptedDice{})

	t.Run("game over", func(t *testing.T) {
		st := newPlayer(t, engine)
		st.HP = 0
		st.GameOver = true
		res, err := engine.Activity(st, ActivityPractice)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !reflect.DeepEqual(res.State, st) {
			t.Error("Expected no mutation after game over")
		}
		if !strings.Contains(res.Message, "cannot practice while defeated") {
			t.Errorf("Expected refusal, got %q", res.Message)
		}
	})

	t.Run("engaged", func(t *testing.T) {
		st := newPlayer(t, engine)
		st.Enemies = []Enemy{{Name: "Orc", Level: 2, HP: 50, MaxHP: 50, Drops: []string{}}}
		res, err := engine.Activity(st, ActivityJob)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !reflect.DeepEqual(res.State, st) {
			t.Error("Expected no mutation while engaged")
		}
		if res.Intent != IntentCombat {
			t.Errorf("Expected combat choices, got intent %s", res.Intent)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		st := newPlayer(t, engine)
		if _, err := engine.Activity(st, "juggle"); !errors.Is(err, ErrUnknownActivity) {
			t.Errorf("Expected ErrUnknownActivity, got %v", err)
		}
	})
}

func TestParseActivity(t *testing.T) {
	tests := map[string]bool{
		"hunt":       true,
		" Practice ": true,
		"job":        true,
		"fish":       false,
		"":           false,
	}
	for in, want := range tests {
		if _, ok := ParseActivity(in); ok != want {
			t.Errorf("ParseActivity(%q) ok = %v, expected %v", in, ok, want)
		}
	}
}
