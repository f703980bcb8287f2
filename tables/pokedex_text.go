package tables

import (
	"fmt"
	"io"
	"strings"

	"github.com/decomp-tools/cdata"
	"github.com/rs/zerolog/log"
)

const (
	pokedexTextPrefix = "const u8 g"
	pokedexTextSuffix = "PokedexText[] = _("
	pokedexTextEnd    = ");"
	textNewline       = `\n`
)

// ParsePokedexText reads gXPokedexText string arrays into a record mapping
// species key to text. Line breaks stay as the two-character \n escape.
func ParsePokedexText(r io.Reader) (*cdata.Record, error) {
	scanner := cdata.NewScanner(r)
	table := cdata.NewRecord()

	var key string
	var text strings.Builder
	open := false
	for {
		line, ok := scanner.NextLine()
		if !ok {
			break
		}
		if !open {
			if strings.HasPrefix(line.Text, pokedexTextPrefix) && strings.HasSuffix(line.Text, pokedexTextSuffix) {
				name := strings.TrimSuffix(strings.TrimPrefix(line.Text, pokedexTextPrefix), pokedexTextSuffix)
				key = cdata.CamelToSnake(name)
				text.Reset()
				open = true
			}
			continue
		}

		done := strings.HasSuffix(line.Text, pokedexTextEnd)
		body := strings.TrimSuffix(line.Text, pokedexTextEnd)
		if !strings.HasPrefix(body, `"`) || !strings.HasSuffix(body, `"`) || len(body) < 2 {
			return nil, &cdata.ParseError{
				Table: "pokedex_text",
				Line:  line.Num,
				Text:  line.Text,
				Err:   fmt.Errorf("%w: expected a quoted string", cdata.ErrMalformedRecord),
			}
		}
		text.WriteString(body[1 : len(body)-1])
		if done {
			table.Set(key, text.String())
			open = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pokedex_text: %w", err)
	}
	if open {
		return nil, fmt.Errorf("pokedex_text: %w: text of %q is never closed", cdata.ErrMalformedRecord, key)
	}

	log.Debug().Str("table", "pokedex_text").Int("records", table.Len()).Msg("parsed table")
	return table, nil
}

// FormatPokedexText writes one string array per species, one quoted line
// per \n escape.
func FormatPokedexText(table *cdata.Record) (string, error) {
	entries := make([]string, 0, table.Len())
	err := table.Each(func(key string, v cdata.Value) error {
		text, err := cdata.AsString(v)
		if err != nil {
			return fmt.Errorf("pokedex_text: %s: %w", key, err)
		}
		lines := strings.Split(text, textNewline)
		for i, line := range lines {
			lines[i] = "\t\"" + line
		}
		entries = append(entries, pokedexTextPrefix+cdata.SnakeToPascal(key)+pokedexTextSuffix+"\n"+
			strings.Join(lines, textNewline+"\"\n")+"\""+pokedexTextEnd)
		return nil
	})
	if err != nil {
		return "", err
	}
	return cdata.FixTabs(strings.Join(entries, "\n\n")), nil
}
