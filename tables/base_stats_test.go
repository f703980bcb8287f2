package tables

import (
	"strings"
	"testing"

	"github.com/decomp-tools/cdata"
	"github.com/rs/zerolog"
)

const bulbasaurStats = `    [SPECIES_BULBASAUR] =
    {
        .baseHP = 45,
        .baseAttack = 49,
        .baseDefense = 49,
        .baseSpeed = 45,
        .baseSpAttack = 65,
        .baseSpDefense = 65,
        .type1 = TYPE_GRASS,
        .type2 = TYPE_POISON,
        .catchRate = 45,
        .expYield = 64,
        .evYield_HP = 0,
        .evYield_Attack = 0,
        .evYield_Defense = 0,
        .evYield_Speed = 0,
        .evYield_SpAttack = 1,
        .evYield_SpDefense = 0,
        .item1 = ITEM_NONE,
        .item2 = ITEM_NONE,
        .genderRatio = PERCENT_FEMALE(12.5),
        .eggCycles = 20,
        .friendship = 70,
        .growthRate = GROWTH_MEDIUM_SLOW,
        .eggGroup1 = EGG_GROUP_MONSTER,
        .eggGroup2 = EGG_GROUP_GRASS,
        .abilities = {ABILITY_OVERGROW, ABILITY_NONE},
        .safariZoneFleeRate = 0,
        .bodyColor = BODY_COLOR_GREEN,
        .noFlip = FALSE,
    },`

const voltorbStats = `    [SPECIES_VOLTORB] =
    {
        .baseHP = 40,
        .type1 = TYPE_ELECTRIC,
        .type2 = TYPE_ELECTRIC,
        .genderRatio = MON_GENDERLESS,
        .abilities = {ABILITY_SOUNDPROOF, ABILITY_STATIC},
    },`

func baseStatsSource(entries ...string) string {
	return baseStatsHeader + strings.Join(entries, "\n\n") + "\n};\n"
}

func TestBaseStatsRoundTrip(t *testing.T) {
	src := baseStatsSource("    [SPECIES_NONE] = {0},", bulbasaurStats, voltorbStats)

	table, err := cdata.NewParser(BaseStatsLayout).ParseString(src)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	out, err := cdata.NewFormatter(BaseStatsLayout).Format(table)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if out != src {
		t.Errorf("Expected round trip to reproduce the source.\nExpected:\n%s\nGot:\n%s", src, out)
	}
}

func TestBaseStatsFields(t *testing.T) {
	table, err := cdata.NewParser(BaseStatsLayout).ParseString(baseStatsSource(bulbasaurStats, voltorbStats))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	v, _ := table.Get("bulbasaur")
	bulbasaur := v.(*cdata.Record)
	stats, _ := bulbasaur.Get("base_stats")
	if sp, _ := stats.(*cdata.Record).Get("sp_attack"); sp != 65 {
		t.Errorf("Expected base sp_attack 65, got %v", sp)
	}
	evs, _ := bulbasaur.Get("ev_yield")
	if sp, _ := evs.(*cdata.Record).Get("sp_attack"); sp != 1 {
		t.Errorf("Expected ev_yield sp_attack 1, got %v", sp)
	}
	if ratio, _ := bulbasaur.Get("gender_ratio"); ratio != 12.5 {
		t.Errorf("Expected gender_ratio 12.5, got %v", ratio)
	}
	if growth, _ := bulbasaur.Get("growth_rate"); growth != "medium_slow" {
		t.Errorf("Expected growth_rate 'medium_slow', got '%v'", growth)
	}

	v, _ = table.Get("voltorb")
	if ratio, _ := v.(*cdata.Record).Get("gender_ratio"); ratio != 255.0 {
		t.Errorf("Expected genderless ratio 255, got %v", ratio)
	}
}

func TestBaseStatsAbilitiesBraceList(t *testing.T) {
	rec := cdata.NewRecord()
	rec.Set("abilities", cdata.List{"overgrow", "none"})
	table := cdata.NewRecord()
	table.Set("bulbasaur", rec)

	out, err := cdata.NewFormatter(BaseStatsLayout).Format(table)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(out, "        .abilities = {ABILITY_OVERGROW, ABILITY_NONE},\n") {
		t.Errorf("Expected brace-list abilities, got:\n%s", out)
	}

	rec.Set("abilities", cdata.List{"levitate"})
	out, err = cdata.NewFormatter(BaseStatsLayout).Format(table)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(out, ".abilities = {ABILITY_LEVITATE},") {
		t.Errorf("Expected a single ability to keep its braces, got:\n%s", out)
	}
}

func TestBaseStatsGenderRatios(t *testing.T) {
	tests := []struct {
		v    cdata.Value
		want string
	}{
		{0, "MON_MALE"},
		{254, "MON_FEMALE"},
		{255, "MON_GENDERLESS"},
		{50, "PERCENT_FEMALE(50)"},
		{87.5, "PERCENT_FEMALE(87.5)"},
	}
	for _, tt := range tests {
		assigns, _, err := BaseStatsSchema.FormatField("gender_ratio", tt.v)
		if err != nil {
			t.Fatalf("FormatField(%v) failed: %v", tt.v, err)
		}
		if assigns[0] != ".genderRatio = "+tt.want {
			t.Errorf("Expected %s for %v, got %s", tt.want, tt.v, assigns[0])
		}
	}
}

func TestBaseStatsAliases(t *testing.T) {
	src := `#define OLD_UNOWN_BASE_STATS    \
    {                           \
        .baseHP        = 50,    \
        .type1 = TYPE_NORMAL,   \
        .noFlip = TRUE,         \
    }

` + baseStatsSource(
		"    [SPECIES_NONE] = {0},",
		"    [SPECIES_OLD_UNOWN_B] = OLD_UNOWN_BASE_STATS,",
		"    [SPECIES_OLD_UNOWN_C] = OLD_UNOWN_BASE_STATS,",
	)

	table, err := cdata.NewParser(BaseStatsLayout).WithLogger(zerolog.Nop()).ParseString(src)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	b, _ := table.Get("old_unown_b")
	c, _ := table.Get("old_unown_c")
	if b.(*cdata.Record) != c.(*cdata.Record) {
		t.Error("Expected both species to share the define")
	}
	if hp, _ := b.(*cdata.Record).Get("base_stats"); hp == nil {
		t.Error("Expected aliased base stats")
	}

	out, err := cdata.NewFormatter(BaseStatsLayout).Format(table)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if strings.Count(out, "        .noFlip = TRUE,") != 2 {
		t.Errorf("Expected the alias to be written out for each species, got:\n%s", out)
	}
}
