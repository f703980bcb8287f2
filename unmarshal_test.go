package cdata

import "testing"

type levelMove struct {
	Level int    `cdata:"level,required"`
	Name  string `cdata:"name"`
	Note  string `cdata:"-"`
}

func TestUnmarshalRecord(t *testing.T) {
	rec := NewRecord()
	rec.Set("level", 7)
	rec.Set("name", "leech_seed")

	var m levelMove
	if err := UnmarshalRecord(rec, &m); err != nil {
		t.Fatalf("UnmarshalRecord() failed: %v", err)
	}
	if m.Level != 7 || m.Name != "leech_seed" {
		t.Errorf("Expected {7 leech_seed}, got %+v", m)
	}
}

func TestUnmarshalRecordRequired(t *testing.T) {
	rec := NewRecord()
	rec.Set("name", "tackle")

	var m levelMove
	if err := UnmarshalRecord(rec, &m); err == nil {
		t.Error("Expected an error for a missing required field")
	}
}

func TestUnmarshalRecordTarget(t *testing.T) {
	var m levelMove
	if err := UnmarshalRecord(NewRecord(), m); err == nil {
		t.Error("Expected an error for a non-pointer target")
	}
}

func TestUnmarshalRecordNested(t *testing.T) {
	type stats struct {
		HP     int `cdata:"hp"`
		Attack int `cdata:"attack"`
	}
	type species struct {
		Stats     stats    `cdata:"base_stats"`
		Abilities []string `cdata:"abilities"`
		Ratio     float64  `cdata:"gender_ratio"`
		NoFlip    bool     `cdata:"no_flip"`
	}

	base := NewRecord()
	base.Set("hp", 45)
	base.Set("attack", 49)
	rec := NewRecord()
	rec.Set("base_stats", base)
	rec.Set("abilities", List{"overgrow", "none"})
	rec.Set("gender_ratio", 12.5)
	rec.Set("no_flip", true)

	var s species
	if err := UnmarshalRecord(rec, &s); err != nil {
		t.Fatalf("UnmarshalRecord() failed: %v", err)
	}
	if s.Stats.HP != 45 || s.Stats.Attack != 49 {
		t.Errorf("Expected stats {45 49}, got %+v", s.Stats)
	}
	if len(s.Abilities) != 2 || s.Abilities[1] != "none" {
		t.Errorf("Expected [overgrow none], got %v", s.Abilities)
	}
	if s.Ratio != 12.5 || !s.NoFlip {
		t.Errorf("Expected ratio 12.5 and no_flip, got %v and %v", s.Ratio, s.NoFlip)
	}
}

func TestMarshalRecord(t *testing.T) {
	rec, err := MarshalRecord(levelMove{Level: 1, Name: "tackle", Note: "skipped"})
	if err != nil {
		t.Fatalf("MarshalRecord() failed: %v", err)
	}
	keys := rec.Keys()
	if len(keys) != 2 || keys[0] != "level" || keys[1] != "name" {
		t.Errorf("Expected keys [level name], got %v", keys)
	}
	if v, _ := rec.Get("level"); v != 1 {
		t.Errorf("Expected level 1, got %v", v)
	}
}

func TestRecordEqualIsOrdered(t *testing.T) {
	a := NewRecord()
	a.Set("hp", 1)
	a.Set("tags", List{"a"})
	b := NewRecord()
	b.Set("tags", List{"a"})
	b.Set("hp", 1.0)
	if a.Equal(b) {
		t.Error("Expected records with different field order to differ")
	}
	c := NewRecord()
	c.Set("hp", 1.0)
	c.Set("tags", List{"a"})
	if !a.Equal(c) {
		t.Error("Expected 1 and 1.0 to compare equal")
	}
}
