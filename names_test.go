package cdata

import "testing"

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"catchRate", "catch_rate"},
		{"safariZoneFleeRate", "safari_zone_flee_rate"},
		{"eggGroup1", "egg_group1"},
		{"SpAttack", "sp_attack"},
		{"MrMime", "mr_mime"},
		{"NidoranF", "nidoran_f"},
		{"Bulbasaur", "bulbasaur"},
		{"pp", "pp"},
	}
	for _, tt := range tests {
		if got := CamelToSnake(tt.in); got != tt.want {
			t.Errorf("CamelToSnake(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"catch_rate", "catchRate"},
		{"egg_group1", "eggGroup1"},
		{"secondary_effect_chance", "secondaryEffectChance"},
		{"no_flip", "noFlip"},
		{"type", "type"},
	}
	for _, tt := range tests {
		if got := SnakeToCamel(tt.in); got != tt.want {
			t.Errorf("SnakeToCamel(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNameMappingRoundTrip(t *testing.T) {
	names := []string{
		"catch_rate", "exp_yield", "gender_ratio", "egg_cycles", "growth_rate",
		"egg_group1", "egg_group2", "safari_zone_flee_rate", "body_color",
		"no_flip", "secondary_effect_chance", "priority",
	}
	for _, name := range names {
		if got := CamelToSnake(SnakeToCamel(name)); got != name {
			t.Errorf("Expected %q to survive a round trip, got %q", name, got)
		}
	}
}

func TestSnakeToPascal(t *testing.T) {
	if got := SnakeToPascal("mr_mime"); got != "MrMime" {
		t.Errorf("Expected 'MrMime', got '%s'", got)
	}
	if got := SnakeToPascal("bulbasaur"); got != "Bulbasaur" {
		t.Errorf("Expected 'Bulbasaur', got '%s'", got)
	}
}

func TestNamespaces(t *testing.T) {
	if got := StripNamespace("TYPE_GRASS", "TYPE"); got != "grass" {
		t.Errorf("Expected 'grass', got '%s'", got)
	}
	if got := StripNamespace("MOVE_TARGET_SELECTED", "MOVE_TARGET"); got != "selected" {
		t.Errorf("Expected 'selected', got '%s'", got)
	}
	if got := StripNamespace("FLAG_MAKES_CONTACT", ""); got != "flag_makes_contact" {
		t.Errorf("Expected 'flag_makes_contact', got '%s'", got)
	}
	if got := AddNamespace("grass", "TYPE"); got != "TYPE_GRASS" {
		t.Errorf("Expected 'TYPE_GRASS', got '%s'", got)
	}
	if got := AddNamespace("flag_a", ""); got != "FLAG_A" {
		t.Errorf("Expected 'FLAG_A', got '%s'", got)
	}
}
