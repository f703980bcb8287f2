package cdata

import "strings"

// Style is the shape a table's entries take in C.
type Style int

const (
	// StyleBody entries open a brace body with one ".field = value," per line:
	//
	//	[SPECIES_BULBASAUR] =
	//	{
	//	    .baseHP = 45,
	//	},
	StyleBody Style = iota
	// StyleInline entries carry their value after '=' on the key line,
	// possibly continued over following lines until brackets balance.
	StyleInline
	// StyleDeclared tables declare one array per record key, one item per line.
	StyleDeclared
)

// EntryRule converts the right-hand side of a StyleInline entry.
type EntryRule interface {
	ParseEntry(rhs string) (Value, error)
	FormatEntry(v Value) (string, error)
}

// Declaration converts the arrays of a StyleDeclared table.
type Declaration interface {
	// Key recognises a declaration line and returns its record key.
	Key(text string) (string, bool)
	// Open returns the declaration line for key, including the opening brace.
	Open(key string) string
	// ParseItem parses one body line. ok is false for lines that carry no item.
	ParseItem(text string) (v Value, ok bool, err error)
	// FormatItems renders the body lines of a record, without indentation.
	FormatItems(v Value) ([]string, error)
}

// Layout describes how one table is laid out in C source.
type Layout struct {
	Name string
	// Signature is the declaration line of the outer array. Lines before it
	// are skipped, except macro definitions. Empty for StyleDeclared tables.
	Signature string
	// KeyNamespace is stripped from bracketed keys: [SPECIES_BULBASAUR]
	// becomes "bulbasaur".
	KeyNamespace string
	Style        Style

	Schema      *Schema     // StyleBody
	Entry       EntryRule   // StyleInline
	Declaration Declaration // StyleDeclared

	// Null is the sentinel right-hand side of an empty entry, e.g. {0}.
	Null string
	// KeyWidth pads the bracketed key of StyleInline entries to a column.
	// Zero writes a single space.
	KeyWidth int
	// EntryEnd follows every StyleInline entry.
	EntryEnd string

	Header    string
	Separator string
	Footer    string
}

// KeyName maps a bracketed C key to its record key.
func (l *Layout) KeyName(raw string) string {
	return StripNamespace(raw, l.KeyNamespace)
}

// KeySymbol maps a record key to its bracketed C key.
func (l *Layout) KeySymbol(key string) string {
	return "[" + AddNamespace(key, l.KeyNamespace) + "]"
}

func (l *Layout) padKey(symbol string) string {
	if l.KeyWidth == 0 {
		return symbol + " "
	}
	if len(symbol) >= l.KeyWidth {
		return symbol
	}
	return symbol + strings.Repeat(" ", l.KeyWidth-len(symbol))
}

// nullValue is what an entry written as the sentinel parses to.
func (l *Layout) nullValue() Value {
	if l.Style == StyleBody {
		return NewRecord()
	}
	return List{}
}

// IsNull reports whether v is written as the sentinel.
func IsNull(v Value) bool {
	switch val := v.(type) {
	case nil:
		return true
	case *Record:
		return val.IsNull()
	case List:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}

// FixTabs rewrites every tab to four spaces.
func FixTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
