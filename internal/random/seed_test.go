package random

import "testing"

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if a == b {
		t.Errorf("Expected distinct seeds, got %d twice", a)
	}
}

func TestResolve(t *testing.T) {
	got, err := Resolve(42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("Expected configured seed 42, got %d", got)
	}

	got, err = Resolve(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got == 0 {
		t.Error("Expected a generated seed")
	}
}
