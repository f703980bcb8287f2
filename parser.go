package cdata

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Parser recovers a table from C source text.
type Parser struct {
	layout *Layout
	logger zerolog.Logger
}

// NewParser creates a Parser for layout, logging through the global logger.
func NewParser(layout *Layout) *Parser {
	return &Parser{
		layout: layout,
		logger: log.Logger,
	}
}

// WithLogger configures the logger.
func (p *Parser) WithLogger(logger zerolog.Logger) *Parser {
	p.logger = logger
	return p
}

type parseMode int

const (
	modeIdle   parseMode = iota
	modeDefine           // "#define NAME" seen, waiting for its '{'
	modeRecord           // inside a record body
)

// parseState is everything one Parse call carries from line to line.
type parseState struct {
	mode     parseMode
	active   bool // signature matched
	outer    bool // outer array open
	done     bool // outer array closed
	keyed    bool // key line seen, body not open yet
	key      string
	defining bool // the open body belongs to a define
	define   string
	record   *Record
	items    List
	pending  *pendingEntry
	aliases  map[string]*Record
	table    *Record
}

// pendingEntry is an inline entry whose brackets are still open.
type pendingEntry struct {
	key  string
	text string
	line Line
}

// ParseString parses C source held in a string.
func (p *Parser) ParseString(src string) (*Record, error) {
	return p.Parse(strings.NewReader(src))
}

// Parse reads C source and returns the table as a record keyed by record
// key, in source order. The first malformed line aborts the whole table.
func (p *Parser) Parse(r io.Reader) (*Record, error) {
	scanner := NewScanner(r)
	st := &parseState{
		aliases: make(map[string]*Record),
		table:   NewRecord(),
	}

	for {
		line, ok := scanner.NextLine()
		if !ok {
			break
		}
		if err := p.step(st, line); err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				return nil, err
			}
			return nil, p.lineError(line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", p.layout.Name, err)
	}
	if st.pending != nil {
		return nil, p.lineError(st.pending.line, malformed("entry %q is never closed", st.pending.key))
	}
	if st.mode == modeRecord {
		return nil, fmt.Errorf("%s: %w: record %q is never closed", p.layout.Name, ErrMalformedRecord, st.key)
	}

	p.logger.Debug().Str("table", p.layout.Name).Int("records", st.table.Len()).Msg("parsed table")
	return st.table, nil
}

func (p *Parser) lineError(line Line, err error) error {
	return &ParseError{Table: p.layout.Name, Line: line.Num, Text: line.Text, Err: err}
}

func (p *Parser) step(st *parseState, line Line) error {
	if st.pending != nil {
		return p.continueEntry(st, line)
	}

	switch line.Kind {
	case LineComment:
		return nil
	case LineDefine:
		return p.startDefine(st, line)
	}

	// A define that is not followed by a body is a plain macro.
	if st.mode == modeDefine && line.Kind != LineArrayStart {
		st.mode = modeIdle
	}

	if st.mode == modeIdle && !st.active {
		if st.done {
			return nil
		}
		if p.layout.Signature != "" {
			if strings.HasPrefix(line.Text, p.layout.Signature) {
				st.active = true
				st.outer = strings.HasSuffix(line.Text, "{")
			}
			return nil
		}
		st.active = true
	}

	switch line.Kind {
	case LineArrayStart:
		return p.openBody(st)
	case LineArrayEnd:
		return p.closeBody(st)
	case LineKey:
		return p.keyLine(st, line)
	case LineField:
		return p.field(st, line)
	default:
		return p.plain(st, line)
	}
}

func (p *Parser) startDefine(st *parseState, line Line) error {
	if st.mode == modeRecord {
		return malformed("#define inside a record body")
	}
	name, ok := DefineName(line.Text)
	if !ok {
		p.logger.Debug().Str("table", p.layout.Name).Int("line", line.Num).Msg("skipping macro")
		return nil
	}
	st.mode = modeDefine
	st.define = name
	return nil
}

func (p *Parser) openBody(st *parseState) error {
	switch {
	case st.mode == modeDefine:
		st.mode = modeRecord
		st.defining = true
		st.record = NewRecord()
	case st.mode == modeRecord:
		return malformed("nested '{' inside record %q", st.key)
	case st.keyed:
		p.beginRecord(st)
	case !st.outer:
		st.outer = true
	default:
		return malformed("'{' without a record key")
	}
	return nil
}

func (p *Parser) beginRecord(st *parseState) {
	st.mode = modeRecord
	st.keyed = false
	st.record = NewRecord()
	st.items = List{}
}

func (p *Parser) closeBody(st *parseState) error {
	switch {
	case st.mode == modeRecord && st.defining:
		st.aliases[st.define] = st.record
		st.defining = false
		st.define = ""
	case st.mode == modeRecord:
		if p.layout.Style == StyleDeclared {
			st.table.Set(st.key, st.items)
		} else {
			st.table.Set(st.key, st.record)
		}
	case st.keyed:
		return malformed("record %q has no body", st.key)
	case st.outer:
		st.outer = false
		st.active = false
		st.done = true
		return nil
	default:
		return nil
	}
	st.mode = modeIdle
	st.record = nil
	st.items = nil
	return nil
}

func (p *Parser) keyLine(st *parseState, line Line) error {
	if st.mode == modeRecord {
		return malformed("record key inside record %q", st.key)
	}
	if !st.outer {
		return nil
	}
	if st.keyed {
		return malformed("record %q has no body", st.key)
	}
	raw, ok := Bracketed(line.Text)
	if !ok || strings.TrimSpace(raw) == "" {
		return malformed("record key")
	}
	rest := line.Text[strings.IndexByte(line.Text, ']')+1:]
	_, rhs, ok := Assignment(rest)
	if !ok {
		return malformed("record key without '='")
	}
	key := p.layout.KeyName(raw)
	if rhs == "" {
		st.keyed = true
		st.key = key
		return nil
	}

	if p.layout.Style != StyleInline {
		switch {
		case rhs == "{":
			st.key = key
			p.beginRecord(st)
		case rhs == p.layout.Null || isIdentifier(rhs):
			p.aliasReference(st, key, rhs, line)
		default:
			return malformed("record %q: expected a body or an alias, got %q", key, rhs)
		}
		return nil
	}
	if !Balanced(rhs) {
		// keep the separators Assignment trims, the entry continues
		_, open, _ := strings.Cut(rest, "=")
		st.pending = &pendingEntry{key: key, text: strings.TrimSpace(open), line: line}
		return nil
	}
	return p.inlineEntry(st, key, rhs)
}

// aliasReference binds key to a record defined earlier with #define. The
// record is shared, not copied. Unknown names, the sentinel included, give
// the null record.
func (p *Parser) aliasReference(st *parseState, key, name string, line Line) {
	if rec, ok := st.aliases[name]; ok {
		st.table.Set(key, rec)
		return
	}
	if name != p.layout.Null {
		p.logger.Warn().
			Str("table", p.layout.Name).
			Str("key", key).
			Str("alias", name).
			Int("line", line.Num).
			Msg("unresolved alias, using null record")
	}
	st.table.Set(key, NewRecord())
}

// isIdentifier reports whether s is a bare C identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func (p *Parser) continueEntry(st *parseState, line Line) error {
	if line.Kind == LineComment || line.Text == "" {
		return nil
	}
	st.pending.text += " " + line.Text
	if !Balanced(st.pending.text) {
		return nil
	}
	entry := st.pending
	st.pending = nil
	rhs := strings.TrimSuffix(strings.TrimSuffix(entry.text, ";"), ",")
	if err := p.inlineEntry(st, entry.key, rhs); err != nil {
		// report the line the entry started on
		return p.lineError(entry.line, err)
	}
	return nil
}

func (p *Parser) inlineEntry(st *parseState, key, rhs string) error {
	if rhs == p.layout.Null {
		st.table.Set(key, p.layout.nullValue())
		return nil
	}
	v, err := p.layout.Entry.ParseEntry(rhs)
	if err != nil {
		return fmt.Errorf("entry %s: %w", key, err)
	}
	st.table.Set(key, v)
	return nil
}

func (p *Parser) field(st *parseState, line Line) error {
	if st.mode != modeRecord || p.layout.Schema == nil {
		return nil
	}
	symbol, raw, err := splitField(line.Text)
	if err != nil {
		return err
	}
	return p.layout.Schema.ParseField(symbol, raw, st.record)
}

// splitField splits ".member = value," into member and value.
func splitField(text string) (string, string, error) {
	text = strings.TrimPrefix(text, ".")
	text = strings.TrimSuffix(text, ",")
	parts := strings.Split(text, "=")
	if len(parts) != 2 {
		return "", "", malformed("field assignment")
	}
	symbol := strings.TrimSpace(parts[0])
	if symbol == "" {
		return "", "", malformed("field assignment without a name")
	}
	return symbol, strings.TrimSpace(parts[1]), nil
}

func (p *Parser) plain(st *parseState, line Line) error {
	if p.layout.Style != StyleDeclared || line.Text == "" {
		return nil
	}
	decl := p.layout.Declaration
	if st.mode == modeRecord {
		v, ok, err := decl.ParseItem(line.Text)
		if err != nil {
			return fmt.Errorf("%s: %w", st.key, err)
		}
		if ok {
			st.items = append(st.items, v)
		}
		return nil
	}
	key, ok := decl.Key(line.Text)
	if !ok {
		return nil
	}
	st.key = key
	st.keyed = true
	if strings.HasSuffix(line.Text, "{") {
		p.beginRecord(st)
	}
	return nil
}
