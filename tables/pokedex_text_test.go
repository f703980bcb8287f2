package tables

import (
	"errors"
	"strings"
	"testing"

	"github.com/decomp-tools/cdata"
)

const pokedexCanonical = `const u8 gBulbasaurPokedexText[] = _(
    "Bulbasaur can be seen napping in bright\n"
    "sunlight.");

const u8 gMrMimePokedexText[] = _(
    "A mime.");`

func TestPokedexTextRoundTrip(t *testing.T) {
	table, err := ParsePokedexText(strings.NewReader(pokedexCanonical))
	if err != nil {
		t.Fatalf("ParsePokedexText() failed: %v", err)
	}
	v, _ := table.Get("bulbasaur")
	if v != `Bulbasaur can be seen napping in bright\nsunlight.` {
		t.Errorf("Expected the \\n escape to stay literal, got %q", v)
	}
	if _, ok := table.Get("mr_mime"); !ok {
		t.Errorf("Expected key 'mr_mime', got %v", table.Keys())
	}

	out, err := FormatPokedexText(table)
	if err != nil {
		t.Fatalf("FormatPokedexText() failed: %v", err)
	}
	if out != pokedexCanonical {
		t.Errorf("Expected round trip to reproduce the source.\nExpected:\n%s\nGot:\n%s", pokedexCanonical, out)
	}
}

func TestPokedexTextMalformed(t *testing.T) {
	src := "const u8 gBulbasaurPokedexText[] = _(\n    unquoted);\n"
	_, err := ParsePokedexText(strings.NewReader(src))
	var perr *cdata.ParseError
	if !errors.As(err, &perr) || perr.Line != 2 {
		t.Fatalf("Expected a ParseError on line 2, got %v", err)
	}
}

func TestPokedexTextUnclosed(t *testing.T) {
	src := "const u8 gBulbasaurPokedexText[] = _(\n    \"A seed.\\n\"\n"
	if _, err := ParsePokedexText(strings.NewReader(src)); !errors.Is(err, cdata.ErrMalformedRecord) {
		t.Errorf("Expected ErrMalformedRecord, got %v", err)
	}
}
