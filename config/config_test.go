package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decomp-tools/cdata/tables"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cdata.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	m := Default()
	if err := m.Validate(); err != nil {
		t.Fatalf("Expected the default manifest to be valid, got %v", err)
	}
	if len(m.Entries) != 4 {
		t.Errorf("Expected 4 entries, got %d", len(m.Entries))
	}
	if m.Entries[1].Table != "level_up_learnsets" || len(m.Entries[1].Outputs) != 2 {
		t.Errorf("Expected learnsets with pointers second, got %+v", m.Entries[1])
	}
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
entries:
  - table: evolution
    json: evolution.json
    outputs: [out/evolution.h]
  - table: level_up_learnsets
    json: learnsets.json
    outputs:
      - out/level_up_learnsets.h
      - out/level_up_learnset_pointers.h
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if m.BaseDir != filepath.Dir(path) {
		t.Errorf("Expected base dir %s, got %s", filepath.Dir(path), m.BaseDir)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(m.Entries))
	}
	if got := m.Resolve("evolution.json"); got != filepath.Join(filepath.Dir(path), "evolution.json") {
		t.Errorf("Expected path under base dir, got %s", got)
	}
	if got := m.Resolve("/abs/evolution.json"); got != "/abs/evolution.json" {
		t.Errorf("Expected absolute path to be kept, got %s", got)
	}
}

func TestLoadUnknownTable(t *testing.T) {
	path := writeManifest(t, `
entries:
  - table: held_items
    json: items.json
    outputs: [items.h]
`)
	_, err := Load(path)
	if !errors.Is(err, tables.ErrUnknownTable) {
		t.Errorf("Expected ErrUnknownTable, got %v", err)
	}
}

func TestLoadWrongOutputs(t *testing.T) {
	path := writeManifest(t, `
entries:
  - table: level_up_learnsets
    json: learnsets.json
    outputs: [learnsets.h]
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "expected 2 outputs, got 1") {
		t.Errorf("Expected an output count error, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load(writeManifest(t, "entries: [")); err == nil {
		t.Error("Expected an error for invalid YAML")
	}
	if _, err := Load(writeManifest(t, "base_dir: .\n")); err == nil {
		t.Error("Expected an error for a manifest without entries")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
