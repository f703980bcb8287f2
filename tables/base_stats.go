package tables

import "github.com/decomp-tools/cdata"

const baseStatsHeader = `
// Maximum value for a female Pokémon is 254 (MON_FEMALE) which is 100% female.
// 255 (MON_GENDERLESS) is reserved for genderless Pokémon.
#define PERCENT_FEMALE(percent) min(254, ((percent * 255) / 100))

const struct BaseStats gBaseStats[] =
{
`

// stats declares the six members of a stat spread, each written as
// prefix + suffix in C.
func stats(name, prefix string, suffixes [6]string) cdata.Field {
	members := []string{"hp", "attack", "defense", "speed", "sp_attack", "sp_defense"}
	fields := make([]cdata.Field, len(members))
	for i, m := range members {
		fields[i] = cdata.Int(m).As(prefix + suffixes[i])
	}
	return cdata.Nested(name, fields...)
}

// BaseStatsSchema is the field codec table of struct BaseStats.
var BaseStatsSchema = cdata.NewSchema(
	stats("base_stats", "base", [6]string{"HP", "Attack", "Defense", "Speed", "SpAttack", "SpDefense"}),
	cdata.Enum("type1", "TYPE"),
	cdata.Enum("type2", "TYPE"),
	cdata.Int("catch_rate"),
	cdata.Int("exp_yield"),
	stats("ev_yield", "evYield_", [6]string{"HP", "Attack", "Defense", "Speed", "SpAttack", "SpDefense"}),
	cdata.Enum("item1", "ITEM"),
	cdata.Enum("item2", "ITEM"),
	cdata.Ratio("gender_ratio", "PERCENT_FEMALE",
		cdata.Constant{Name: "MON_MALE", Value: 0},
		cdata.Constant{Name: "MON_FEMALE", Value: 254},
		cdata.Constant{Name: "MON_GENDERLESS", Value: 255},
	),
	cdata.Int("egg_cycles"),
	cdata.Int("friendship"),
	cdata.Enum("growth_rate", "GROWTH"),
	cdata.Enum("egg_group1", "EGG_GROUP"),
	cdata.Enum("egg_group2", "EGG_GROUP"),
	cdata.ConstList("abilities", "ABILITY"),
	cdata.Int("safari_zone_flee_rate"),
	cdata.Enum("body_color", "BODY_COLOR"),
	cdata.Bool("no_flip"),
)

// BaseStatsLayout is gBaseStats, one field body per species. Species
// sharing placeholder stats reference a #define'd body.
var BaseStatsLayout = &cdata.Layout{
	Name:         "base_stats",
	Signature:    "const struct BaseStats gBaseStats[] =",
	KeyNamespace: "SPECIES",
	Style:        cdata.StyleBody,
	Schema:       BaseStatsSchema,
	Null:         "{0}",
	Header:       baseStatsHeader,
	Separator:    "\n\n",
	Footer:       "\n};\n",
}
