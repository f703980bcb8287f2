package tables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decomp-tools/cdata"
)

const (
	learnsetDeclPrefix = "static const u16 "
	learnsetDeclSuffix = "[] = {"
	levelUpMove        = "LEVEL_UP_MOVE("
	levelUpEnd         = "LEVEL_UP_END"
)

// LevelUpMove is one LEVEL_UP_MOVE(level, move) item.
type LevelUpMove struct {
	Level int    `cdata:"level,required"`
	Name  string `cdata:"name,required"`
}

// LearnsetArray returns the C array holding the learnset of species key.
func LearnsetArray(key string) string {
	return "s" + cdata.SnakeToPascal(key) + "LevelUpLearnset"
}

type learnsetDeclaration struct{}

func (learnsetDeclaration) Key(text string) (string, bool) {
	if !strings.HasPrefix(text, learnsetDeclPrefix) || !strings.HasSuffix(text, learnsetDeclSuffix) {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(text, learnsetDeclPrefix), learnsetDeclSuffix)
	if !strings.HasPrefix(name, "s") || !strings.HasSuffix(name, "LevelUpLearnset") {
		return "", false
	}
	name = strings.TrimSuffix(strings.TrimPrefix(name, "s"), "LevelUpLearnset")
	return cdata.CamelToSnake(name), true
}

func (learnsetDeclaration) Open(key string) string {
	return learnsetDeclPrefix + LearnsetArray(key) + learnsetDeclSuffix
}

func (learnsetDeclaration) ParseItem(text string) (cdata.Value, bool, error) {
	if !strings.HasPrefix(text, levelUpMove) {
		// LEVEL_UP_END and anything else carries no move
		return nil, false, nil
	}
	args, ok := cdata.Parenthesized(text)
	if !ok {
		return nil, false, fmt.Errorf("%w: level-up move %q", cdata.ErrMalformedRecord, text)
	}
	parts := cdata.SplitList(args, ",")
	if len(parts) != 2 {
		return nil, false, fmt.Errorf("%w: level-up move %q", cdata.ErrMalformedRecord, text)
	}
	level, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, false, fmt.Errorf("%w: level %q", cdata.ErrMalformedRecord, parts[0])
	}
	rec, err := cdata.MarshalRecord(LevelUpMove{Level: level, Name: cdata.StripNamespace(parts[1], "MOVE")})
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

func (learnsetDeclaration) FormatItems(v cdata.Value) ([]string, error) {
	recs, err := cdata.AsRecords(v)
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(recs)+1)
	for i, rec := range recs {
		var m LevelUpMove
		if err := cdata.UnmarshalRecord(rec, &m); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		items = append(items, fmt.Sprintf("%s%d, %s),", levelUpMove, m.Level, cdata.AddNamespace(m.Name, "MOVE")))
	}
	return append(items, levelUpEnd), nil
}

// LevelUpLearnsetsLayout declares one array per species.
var LevelUpLearnsetsLayout = &cdata.Layout{
	Name:        "level_up_learnsets",
	Style:       cdata.StyleDeclared,
	Declaration: learnsetDeclaration{},
	Header:      "#define LEVEL_UP_MOVE(lvl, move) ((lvl << 9) | move)\n\n",
	Separator:   "\n\n",
}

// FormatLearnsetPointers renders gLevelUpLearnsets. SPECIES_NONE points at
// the first species' learnset.
func FormatLearnsetPointers(learnsets *cdata.Record) (string, error) {
	keys := learnsets.Keys()
	if len(keys) == 0 {
		return "", fmt.Errorf("level_up_learnsets: no learnsets to point at")
	}
	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, pointerEntry("none", keys[0]))
	for _, key := range keys {
		lines = append(lines, pointerEntry(key, key))
	}
	return cdata.FixTabs("const u16 *const gLevelUpLearnsets[NUM_SPECIES] =\n{\n" +
		strings.Join(lines, "\n") + "\n};"), nil
}

func pointerEntry(species, learnset string) string {
	return fmt.Sprintf("\t[%s] = %s,", cdata.AddNamespace(species, "SPECIES"), LearnsetArray(learnset))
}
