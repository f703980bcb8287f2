package cdata

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Formatter renders a table as C source text.
type Formatter struct {
	layout *Layout
	logger zerolog.Logger
}

// NewFormatter creates a Formatter for layout, logging through the global logger.
func NewFormatter(layout *Layout) *Formatter {
	return &Formatter{
		layout: layout,
		logger: log.Logger,
	}
}

// WithLogger configures the logger.
func (f *Formatter) WithLogger(logger zerolog.Logger) *Formatter {
	f.logger = logger
	return f
}

// Format renders every record of table in its own order, wrapped in the
// layout's header and footer. Tabs are written as four spaces.
func (f *Formatter) Format(table *Record) (string, error) {
	entries := make([]string, 0, table.Len())
	err := table.Each(func(key string, v Value) error {
		entry, err := f.entry(key, v)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", f.layout.Name, key, err)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(f.layout.Header)
	b.WriteString(strings.Join(entries, f.layout.Separator))
	b.WriteString(f.layout.Footer)
	return FixTabs(b.String()), nil
}

func (f *Formatter) entry(key string, v Value) (string, error) {
	switch f.layout.Style {
	case StyleInline:
		return f.inlineEntry(key, v)
	case StyleDeclared:
		return f.declaredEntry(key, v)
	default:
		return f.bodyEntry(key, v)
	}
}

func (f *Formatter) bodyEntry(key string, v Value) (string, error) {
	symbol := f.layout.KeySymbol(key)
	if IsNull(v) {
		return fmt.Sprintf("\t%s = %s,", symbol, f.layout.Null), nil
	}
	rec, ok := v.(*Record)
	if !ok {
		return "", fmt.Errorf("cannot convert %T to record", v)
	}

	lines := []string{"\t" + symbol + " =", "\t{"}
	err := rec.Each(func(name string, fv Value) error {
		assigns, known, err := f.layout.Schema.FormatField(name, fv)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		if !known {
			f.logger.Debug().Str("table", f.layout.Name).Str("key", key).Str("field", name).Msg("skipping unsupported field")
			return nil
		}
		for _, a := range assigns {
			lines = append(lines, "\t\t"+a+",")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	lines = append(lines, "\t},")
	return strings.Join(lines, "\n"), nil
}

func (f *Formatter) inlineEntry(key string, v Value) (string, error) {
	rhs := f.layout.Null
	if !IsNull(v) {
		var err error
		if rhs, err = f.layout.Entry.FormatEntry(v); err != nil {
			return "", err
		}
	}
	return "\t" + f.layout.padKey(f.layout.KeySymbol(key)) + "= " + rhs + f.layout.EntryEnd, nil
}

func (f *Formatter) declaredEntry(key string, v Value) (string, error) {
	items, err := f.layout.Declaration.FormatItems(v)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, f.layout.Declaration.Open(key))
	for _, item := range items {
		lines = append(lines, "\t"+item)
	}
	lines = append(lines, "};")
	return strings.Join(lines, "\n"), nil
}
