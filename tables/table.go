// Package tables defines the game data tables cdata converts: their field
// schemas, entry rules and C templates.
package tables

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/decomp-tools/cdata"
)

// ErrUnknownTable is returned by Lookup for a name no table is registered under.
var ErrUnknownTable = errors.New("unknown table")

// Table converts one game data table between its JSON document and C text.
type Table struct {
	Name string
	// Outputs is the number of C files Build produces.
	Outputs int
	// Extract parses C source into the JSON document.
	Extract func(r io.Reader) (*cdata.Record, error)
	// Build formats the JSON document into Outputs C texts.
	Build func(doc *cdata.Record) ([]string, error)
}

// FromLayout creates the Table of a single-array layout.
func FromLayout(layout *cdata.Layout) *Table {
	return &Table{
		Name:    layout.Name,
		Outputs: 1,
		Extract: func(r io.Reader) (*cdata.Record, error) {
			return cdata.NewParser(layout).Parse(r)
		},
		Build: func(doc *cdata.Record) ([]string, error) {
			text, err := cdata.NewFormatter(layout).Format(doc)
			if err != nil {
				return nil, err
			}
			return []string{text}, nil
		},
	}
}

var registry = map[string]*Table{}

func register(t *Table) {
	if _, dup := registry[t.Name]; dup {
		panic("tables: duplicate table " + t.Name)
	}
	registry[t.Name] = t
}

func init() {
	register(FromLayout(BaseStatsLayout))
	register(FromLayout(BattleMovesLayout))
	register(FromLayout(EvolutionLayout))
	register(FromLayout(TMHMLearnsetsLayout))

	learnsets := FromLayout(LevelUpLearnsetsLayout)
	learnsets.Outputs = 2
	learnsets.Build = buildLevelUpLearnsets
	register(learnsets)

	register(&Table{
		Name:    "tutor_learnsets",
		Outputs: 1,
		Extract: func(r io.Reader) (*cdata.Record, error) {
			src, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			return extractTutor(string(src))
		},
		Build: buildTutor,
	})

	register(&Table{
		Name:    "pokedex_text",
		Outputs: 1,
		Extract: ParsePokedexText,
		Build: func(doc *cdata.Record) ([]string, error) {
			text, err := FormatPokedexText(doc)
			if err != nil {
				return nil, err
			}
			return []string{text}, nil
		},
	})
}

func buildLevelUpLearnsets(doc *cdata.Record) ([]string, error) {
	learnsets, err := cdata.NewFormatter(LevelUpLearnsetsLayout).Format(doc)
	if err != nil {
		return nil, err
	}
	pointers, err := FormatLearnsetPointers(doc)
	if err != nil {
		return nil, err
	}
	return []string{learnsets, pointers}, nil
}

// Lookup returns the table registered under name.
func Lookup(name string) (*Table, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownTable, name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns the registered table names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
