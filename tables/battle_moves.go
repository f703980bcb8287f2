package tables

import "github.com/decomp-tools/cdata"

// BattleMovesSchema is the field codec table of struct BattleMove.
var BattleMovesSchema = cdata.NewSchema(
	cdata.Enum("effect", "EFFECT"),
	cdata.Int("power"),
	cdata.Enum("type", "TYPE"),
	cdata.Int("accuracy"),
	cdata.Int("pp"),
	cdata.Int("secondary_effect_chance"),
	cdata.Enum("target", "MOVE_TARGET"),
	cdata.Int("priority"),
	cdata.Flags("flags", ""),
)

const battleMovesSignature = "const struct BattleMove gBattleMoves[MOVES_COUNT] ="

// BattleMovesLayout is gBattleMoves, one field body per move.
var BattleMovesLayout = &cdata.Layout{
	Name:         "battle_moves",
	Signature:    battleMovesSignature,
	KeyNamespace: "MOVE",
	Style:        cdata.StyleBody,
	Schema:       BattleMovesSchema,
	Null:         "{0}",
	Header:       battleMovesSignature + "\n{\n",
	Separator:    "\n\n",
	Footer:       "\n};\n",
}
