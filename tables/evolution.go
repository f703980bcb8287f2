package tables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decomp-tools/cdata"
)

const (
	evolutionSignature = "const struct Evolution gEvolutionTable[NUM_SPECIES][EVOS_PER_MON] ="

	// speciesKeyWidth is the column the '=' of a padded species entry sits in.
	speciesKeyWidth = 21
)

// evoParam names the record field that holds an evolution's parameter.
type evoParam int

const (
	paramLevel evoParam = iota
	paramItem
	paramBeauty
	paramNone // written as 0
)

var evolutionParams = map[string]evoParam{
	"level":            paramLevel,
	"level_atk_lt_def": paramLevel,
	"level_atk_gt_def": paramLevel,
	"level_atk_eq_def": paramLevel,
	"level_cascoon":    paramLevel,
	"level_ninjask":    paramLevel,
	"level_shedinja":   paramLevel,
	"level_silcoon":    paramLevel,
	"item":             paramItem,
	"trade_item":       paramItem,
	"friendship":       paramNone,
	"friendship_day":   paramNone,
	"friendship_night": paramNone,
	"trade":            paramNone,
	"beauty":           paramBeauty,
}

// Evolution is one {EVO_..., param, SPECIES_...} triple.
type Evolution struct {
	Type    string `cdata:"type,required"`
	Level   int    `cdata:"level"`
	Item    string `cdata:"item"`
	Beauty  int    `cdata:"beauty"`
	Value   string `cdata:"value"`
	Species string `cdata:"species,required"`
}

func (e *Evolution) record() *cdata.Record {
	rec := cdata.NewRecord()
	rec.Set("type", e.Type)
	switch kind, known := evolutionParams[e.Type]; {
	case !known:
		rec.Set("value", e.Value)
	case kind == paramLevel:
		rec.Set("level", e.Level)
	case kind == paramItem:
		rec.Set("item", e.Item)
	case kind == paramBeauty:
		rec.Set("beauty", e.Beauty)
	}
	rec.Set("species", e.Species)
	return rec
}

func (e *Evolution) param() string {
	switch kind, known := evolutionParams[e.Type]; {
	case !known:
		return e.Value
	case kind == paramLevel:
		return strconv.Itoa(e.Level)
	case kind == paramItem:
		return cdata.AddNamespace(e.Item, "ITEM")
	case kind == paramBeauty:
		return strconv.Itoa(e.Beauty)
	default:
		return "0"
	}
}

// ParseEvolution parses the text between the braces of one evolution.
func ParseEvolution(text string) (*Evolution, error) {
	parts := cdata.SplitList(text, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: evolution %q", cdata.ErrMalformedRecord, text)
	}
	e := &Evolution{
		Type:    cdata.StripNamespace(parts[0], "EVO"),
		Species: cdata.StripNamespace(parts[2], "SPECIES"),
	}
	kind, known := evolutionParams[e.Type]
	switch {
	case !known:
		e.Value = parts[1]
	case kind == paramLevel, kind == paramBeauty:
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: evolution parameter %q", cdata.ErrMalformedRecord, parts[1])
		}
		if kind == paramLevel {
			e.Level = n
		} else {
			e.Beauty = n
		}
	case kind == paramItem:
		e.Item = cdata.StripNamespace(parts[1], "ITEM")
	}
	return e, nil
}

// Format renders the evolution as a brace triple.
func (e *Evolution) Format() string {
	return fmt.Sprintf("{%s, %s, %s}",
		cdata.AddNamespace(e.Type, "EVO"), e.param(), cdata.AddNamespace(e.Species, "SPECIES"))
}

type evolutionEntry struct{}

// ParseEntry parses "{{EVO_LEVEL, 16, SPECIES_IVYSAUR}, ...}" into a list of
// evolution records.
func (evolutionEntry) ParseEntry(rhs string) (cdata.Value, error) {
	inner, ok := cdata.Braced(rhs)
	if !ok {
		return nil, fmt.Errorf("%w: evolution list %q", cdata.ErrMalformedRecord, rhs)
	}
	evos := cdata.List{}
	for strings.TrimSpace(inner) != "" {
		text, ok := cdata.Braced(inner)
		if !ok {
			return nil, fmt.Errorf("%w: evolution %q", cdata.ErrMalformedRecord, inner)
		}
		e, err := ParseEvolution(text)
		if err != nil {
			return nil, err
		}
		evos = append(evos, e.record())
		// skip past "{" + text + "}"
		inner = inner[strings.IndexByte(inner, '{')+len(text)+2:]
		inner = strings.TrimLeft(inner, " ,")
	}
	return evos, nil
}

func (evolutionEntry) FormatEntry(v cdata.Value) (string, error) {
	recs, err := cdata.AsRecords(v)
	if err != nil {
		return "", err
	}
	join := ",\n\t" + strings.Repeat(" ", speciesKeyWidth+len("= {"))
	evos := make([]string, len(recs))
	for i, rec := range recs {
		var e Evolution
		if err := cdata.UnmarshalRecord(rec, &e); err != nil {
			return "", fmt.Errorf("evolution %d: %w", i, err)
		}
		evos[i] = e.Format()
	}
	return "{" + strings.Join(evos, join) + "}", nil
}

// EvolutionLayout is gEvolutionTable, one line per species that may wrap
// when a species has several evolutions.
var EvolutionLayout = &cdata.Layout{
	Name:         "evolution",
	Signature:    evolutionSignature,
	KeyNamespace: "SPECIES",
	Style:        cdata.StyleInline,
	Entry:        evolutionEntry{},
	Null:         "{0}",
	KeyWidth:     speciesKeyWidth,
	EntryEnd:     ",",
	Header:       evolutionSignature + "\n{\n",
	Separator:    "\n",
	Footer:       "\n};",
}
