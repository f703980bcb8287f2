// Package config loads the build manifest: which JSON documents are
// formatted into which C files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/decomp-tools/cdata/tables"
)

// Entry builds one table.
type Entry struct {
	Table   string   `yaml:"table"`
	JSON    string   `yaml:"json"`
	Outputs []string `yaml:"outputs"`
}

// Manifest lists the tables of a build. Relative paths are resolved
// against BaseDir.
type Manifest struct {
	BaseDir string  `yaml:"base_dir"`
	Entries []Entry `yaml:"entries"`
}

// Default returns the manifest of the standard build, run from the tools
// directory of the decompilation tree. The JSON files it names must hold
// de-namespaced keys, so documents from older tools need a fresh extract.
func Default() *Manifest {
	return &Manifest{
		BaseDir: ".",
		Entries: []Entry{
			{
				Table:   "battle_moves",
				JSON:    "battlemovesjson/battle_moves.json",
				Outputs: []string{"../src/data/battle_moves.h"},
			},
			{
				Table: "level_up_learnsets",
				JSON:  "learnsetsjson/level_up_learnsets.json",
				Outputs: []string{
					"../src/data/pokemon/level_up_learnsets.h",
					"../src/data/pokemon/level_up_learnset_pointers.h",
				},
			},
			{
				Table:   "evolution",
				JSON:    "evolutionjson/evolution.json",
				Outputs: []string{"../src/data/pokemon/evolution.h"},
			},
			{
				Table:   "tmhm_learnsets",
				JSON:    "tmhm_learnsets_json/tmhm_learnsets.json",
				Outputs: []string{"../src/data/pokemon/tmhm_learnsets.h"},
			},
		},
	}
}

// Load reads and validates a manifest file. An empty base_dir means the
// directory the manifest is in.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if m.BaseDir == "" {
		m.BaseDir = filepath.Dir(path)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks every entry names a known table with the number of
// outputs that table produces.
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return fmt.Errorf("no entries")
	}
	for i, e := range m.Entries {
		t, err := tables.Lookup(e.Table)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if e.JSON == "" {
			return fmt.Errorf("entry %d (%s): missing json", i, e.Table)
		}
		if len(e.Outputs) != t.Outputs {
			return fmt.Errorf("entry %d (%s): expected %d outputs, got %d", i, e.Table, t.Outputs, len(e.Outputs))
		}
	}
	return nil
}

// Resolve joins a manifest path onto BaseDir.
func (m *Manifest) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.BaseDir, path)
}
