package tables

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		tbl, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s) failed: %v", name, err)
		}
		if tbl.Name != name {
			t.Errorf("Expected table %s, got %s", name, tbl.Name)
		}
		if tbl.Extract == nil || tbl.Build == nil {
			t.Errorf("Expected %s to convert both ways", name)
		}
	}

	if _, err := Lookup("held_items"); !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Expected ErrUnknownTable, got %v", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{
		"base_stats", "battle_moves", "evolution", "level_up_learnsets",
		"pokedex_text", "tmhm_learnsets", "tutor_learnsets",
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, got[i])
		}
	}
}

func TestOutputs(t *testing.T) {
	learnsets, _ := Lookup("level_up_learnsets")
	if learnsets.Outputs != 2 {
		t.Errorf("Expected 2 outputs for level_up_learnsets, got %d", learnsets.Outputs)
	}
	moves, _ := Lookup("battle_moves")
	if moves.Outputs != 1 {
		t.Errorf("Expected 1 output for battle_moves, got %d", moves.Outputs)
	}
}
