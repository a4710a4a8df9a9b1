package service

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"taleforge/internal/game"
	"taleforge/internal/session"
	"taleforge/internal/story"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := game.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	dice := game.NewDice(1)
	return &Service{
		Engine:  &game.Engine{Catalog: cat, Dice: dice},
		Story:   &story.Engine{Narrator: &story.CannedNarrator{Catalog: cat, Dice: dice}},
		Games:   session.NewMemoryStore[game.Session](0, 0),
		Stories: session.NewMemoryStore[story.Session](0, 0),
	}
}

func TestCreateGameSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateGameSession(ctx, "Ava", "fantasy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.GameID == "" {
		t.Fatal("Expected a game id")
	}
	if res.State.Location != "Ancient Forest" || res.State.HP != res.State.MaxHP {
		t.Errorf("Unexpected initial state: %+v", res.State)
	}
	if !reflect.DeepEqual(res.State.Inventory, []string{"Torch", "Water Flask"}) {
		t.Errorf("Expected starting inventory, got %v", res.State.Inventory)
	}

	stored, err := svc.GameSession(ctx, res.GameID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(stored, res.State) {
		t.Error("Expected stored state to match the response")
	}
}

func TestCreateGameSession_UnknownGenre(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateGameSession(context.Background(), "Ava", "western")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.State.Genre != game.Fantasy {
		t.Errorf("Expected fallback to fantasy, got %s", res.State.Genre)
	}
}

func TestApplyGameAction(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created, _ := svc.CreateGameSession(ctx, "Ava", "fantasy")

	res, err := svc.ApplyGameAction(ctx, created.GameID, "explore the forest")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Message == "" {
		t.Error("Expected a narrative message")
	}
	if res.State.HP != created.State.HP {
		t.Errorf("Expected hp unchanged, got %d", res.State.HP)
	}

	stored, _ := svc.GameSession(ctx, created.GameID)
	if !reflect.DeepEqual(stored, res.State) {
		t.Error("Expected the action result to be committed")
	}
}

func TestApplyGameAction_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ApplyGameAction(context.Background(), "000000000000", "attack")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestApplyGameAction_EngineErrorKeepsState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created, _ := svc.CreateGameSession(ctx, "Ava", "fantasy")

	svc.Engine = &game.Engine{}
	if _, err := svc.ApplyGameAction(ctx, created.GameID, "attack"); err == nil {
		t.Fatal("Expected engine error")
	}
	stored, _ := svc.GameSession(ctx, created.GameID)
	if !reflect.DeepEqual(stored, created.State) {
		t.Error("Expected the stored session untouched")
	}
}

func TestApplyGameActivity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created, _ := svc.CreateGameSession(ctx, "Ava", "fantasy")

	res, err := svc.ApplyGameActivity(ctx, created.GameID, "job")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.State.XP <= 0 || res.State.Gold <= 0 {
		t.Errorf("Expected xp and gold from a job, got xp %d gold %d", res.State.XP, res.State.Gold)
	}
	stored, _ := svc.GameSession(ctx, created.GameID)
	if !reflect.DeepEqual(stored, res.State) {
		t.Error("Expected the activity result to be committed")
	}

	if _, err := svc.ApplyGameActivity(ctx, created.GameID, "juggle"); !errors.Is(err, ErrUnknownActivity) {
		t.Errorf("Expected ErrUnknownActivity, got %v", err)
	}
	if _, err := svc.ApplyGameActivity(ctx, "000000000000", "hunt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestApplyGameAction_Concurrent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created, _ := svc.CreateGameSession(ctx, "Ava", "fantasy")

	actions := []string{"attack", "rest", "explore", "move on", "status"}
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.ApplyGameAction(ctx, created.GameID, actions[i%len(actions)])
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if res.State.HP < 0 || res.State.HP > res.State.MaxHP {
				t.Errorf("hp %d out of [0,%d]", res.State.HP, res.State.MaxHP)
			}
		}(i)
	}
	wg.Wait()

	stored, _ := svc.GameSession(ctx, created.GameID)
	if stored.HP < 0 || stored.HP > stored.MaxHP || stored.Gold < 0 {
		t.Errorf("Unexpected final state: %+v", stored)
	}
}

func TestStorySessions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateStorySession(ctx, "", "sci-fi")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if created.StoryID == "" || created.Message == "" {
		t.Fatalf("Expected id and opening, got %+v", created)
	}
	if created.State.PlayerName != story.DefaultPlayerName {
		t.Errorf("Expected default name, got %q", created.State.PlayerName)
	}

	res, err := svc.ContinueStory(ctx, created.StoryID, "I draw my sword", "continue")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(res.State.StorySoFar) != 2 {
		t.Errorf("Expected 2 transcript entries, got %d", len(res.State.StorySoFar))
	}
	if res.State.CurrentScene != res.Message {
		t.Error("Expected current scene to match the reply")
	}

	again, _ := svc.ContinueStory(ctx, created.StoryID, "", "summarize")
	if len(again.State.StorySoFar) != 3 {
		t.Errorf("Expected 3 transcript entries, got %d", len(again.State.StorySoFar))
	}
}

func TestContinueStory_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ContinueStory(context.Background(), "nope", "hello", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGameAndStoryStoresAreSeparate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created, _ := svc.CreateStorySession(ctx, "Ava", "fantasy")

	if _, err := svc.ApplyGameAction(ctx, created.StoryID, "attack"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected story id to be unknown to the game store, got %v", err)
	}
}
