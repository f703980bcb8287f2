package cdata

import (
	"fmt"
	"strconv"
	"strings"
)

// RuleKind selects how a field value is parsed and formatted.
type RuleKind int

const (
	// RuleInt is a decimal integer.
	RuleInt RuleKind = iota
	// RuleBool is TRUE or FALSE.
	RuleBool
	// RuleEnum is a single namespaced constant.
	RuleEnum
	// RuleList is a brace list of namespaced constants: {A, B}.
	RuleList
	// RuleFlags is a bit-flag list of constants: A | B.
	RuleFlags
	// RuleNested spreads a sub-record over one C field per member.
	RuleNested
	// RuleRatio is a number written as a named constant or a macro call,
	// e.g. MON_FEMALE or PERCENT_FEMALE(12.5).
	RuleRatio
)

// Constant names a numeric value for RuleRatio fields.
type Constant struct {
	Name  string
	Value float64
}

// Field is one entry of a table's field codec table.
type Field struct {
	Name      string // JSON key
	Symbol    string // C member name, SnakeToCamel(Name) when empty
	Kind      RuleKind
	Namespace string     // constant prefix without the trailing '_'
	Fields    []Field    // members of a RuleNested field
	Constants []Constant // named values of a RuleRatio field
	Macro     string     // macro of a RuleRatio field
}

// Int declares an integer field.
func Int(name string) Field { return Field{Name: name, Kind: RuleInt} }

// Bool declares a TRUE/FALSE field.
func Bool(name string) Field { return Field{Name: name, Kind: RuleBool} }

// Enum declares a constant field in namespace.
func Enum(name, namespace string) Field {
	return Field{Name: name, Kind: RuleEnum, Namespace: namespace}
}

// ConstList declares a brace list of constants in namespace.
func ConstList(name, namespace string) Field {
	return Field{Name: name, Kind: RuleList, Namespace: namespace}
}

// Flags declares a '|' joined list of constants in namespace.
func Flags(name, namespace string) Field {
	return Field{Name: name, Kind: RuleFlags, Namespace: namespace}
}

// Nested declares a sub-record whose members are written as separate C fields.
// Members normally carry an explicit Symbol.
func Nested(name string, members ...Field) Field {
	return Field{Name: name, Kind: RuleNested, Fields: members}
}

// Ratio declares a number that is written as one of constants when it
// matches one and as macro(value) otherwise.
func Ratio(name, macro string, constants ...Constant) Field {
	return Field{Name: name, Kind: RuleRatio, Macro: macro, Constants: constants}
}

// As overrides the C member name.
func (f Field) As(symbol string) Field {
	f.Symbol = symbol
	return f
}

// CSymbol returns the C member name of f.
func (f *Field) CSymbol() string {
	if f.Symbol != "" {
		return f.Symbol
	}
	return SnakeToCamel(f.Name)
}

// member returns the nested member called name.
func (f *Field) member(name string) (*Field, bool) {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i], true
		}
	}
	return nil, false
}

type fieldPath struct {
	parent *Field // nil for top-level fields
	field  *Field
}

// Schema is a table's field codec table, indexed both by JSON key and by C
// member name.
type Schema struct {
	fields   []Field
	byName   map[string]*Field
	bySymbol map[string]fieldPath
}

// NewSchema builds a schema from fields. Declaring the same C member twice
// panics; schemas are package-level tables.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{
		fields:   fields,
		byName:   make(map[string]*Field, len(fields)),
		bySymbol: make(map[string]fieldPath, len(fields)),
	}
	for i := range s.fields {
		f := &s.fields[i]
		s.byName[f.Name] = f
		if f.Kind == RuleNested {
			for j := range f.Fields {
				s.index(fieldPath{parent: f, field: &f.Fields[j]})
			}
			continue
		}
		s.index(fieldPath{field: f})
	}
	return s
}

func (s *Schema) index(path fieldPath) {
	symbol := path.field.CSymbol()
	if _, dup := s.bySymbol[symbol]; dup {
		panic(fmt.Sprintf("cdata: duplicate C member %q in schema", symbol))
	}
	s.bySymbol[symbol] = path
}

// Fields returns the top-level fields in declaration order.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Field returns the top-level field with JSON key name.
func (s *Schema) Field(name string) (*Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// ParseField parses the value of C member symbol into target. Nested
// members land in the sub-record of their parent field.
func (s *Schema) ParseField(symbol, raw string, target *Record) error {
	path, ok := s.bySymbol[symbol]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownField, symbol)
	}
	v, err := path.field.parseValue(raw)
	if err != nil {
		return fmt.Errorf("field %s: %w", symbol, err)
	}
	if path.parent == nil {
		target.Set(path.field.Name, v)
		return nil
	}
	sub, _ := target.Get(path.parent.Name)
	rec, ok := sub.(*Record)
	if !ok {
		rec = NewRecord()
		target.Set(path.parent.Name, rec)
	}
	rec.Set(path.field.Name, v)
	return nil
}

// FormatField renders the JSON field name as C member assignments
// (".member = value"). ok is false when the schema has no rule for name.
func (s *Schema) FormatField(name string, v Value) (assigns []string, ok bool, err error) {
	f, ok := s.byName[name]
	if !ok {
		return nil, false, nil
	}
	if f.Kind != RuleNested {
		text, err := f.formatValue(v)
		if err != nil {
			return nil, true, err
		}
		return []string{assign(f.CSymbol(), text)}, true, nil
	}
	rec, isRecord := v.(*Record)
	if !isRecord {
		return nil, true, fmt.Errorf("cannot convert %T to record", v)
	}
	err = rec.Each(func(member string, mv Value) error {
		m, found := f.member(member)
		if !found {
			return nil
		}
		text, err := m.formatValue(mv)
		if err != nil {
			return fmt.Errorf("%s: %w", member, err)
		}
		assigns = append(assigns, assign(m.CSymbol(), text))
		return nil
	})
	return assigns, true, err
}

func assign(symbol, value string) string {
	return "." + symbol + " = " + value
}

func (f *Field) parseValue(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	switch f.Kind {
	case RuleInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, malformed("integer %q", raw)
		}
		return n, nil
	case RuleBool:
		switch raw {
		case "TRUE", "true":
			return true, nil
		case "FALSE", "false":
			return false, nil
		}
		return nil, malformed("boolean %q", raw)
	case RuleEnum:
		return StripNamespace(raw, f.Namespace), nil
	case RuleList:
		if raw == "0" {
			return List{}, nil
		}
		inner, ok := Braced(raw)
		if !ok {
			return nil, malformed("constant list %q", raw)
		}
		return f.constants(SplitList(inner, ",")), nil
	case RuleFlags:
		if raw == "0" {
			return List{}, nil
		}
		return f.constants(SplitList(raw, "|")), nil
	case RuleRatio:
		return f.parseRatio(raw)
	default:
		return nil, fmt.Errorf("field %s: rule %d has no scalar form", f.Name, f.Kind)
	}
}

func (f *Field) constants(tokens []string) List {
	out := make(List, len(tokens))
	for i, token := range tokens {
		out[i] = StripNamespace(token, f.Namespace)
	}
	return out
}

func (f *Field) parseRatio(raw string) (Value, error) {
	if strings.HasPrefix(raw, f.Macro+"(") {
		inner, ok := Parenthesized(raw)
		if !ok {
			return nil, malformed("%s call %q", f.Macro, raw)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(inner), 64)
		if err != nil {
			return nil, malformed("%s argument %q", f.Macro, inner)
		}
		return v, nil
	}
	for _, c := range f.Constants {
		if c.Name == raw {
			return c.Value, nil
		}
	}
	return nil, malformed("unknown constant %q", raw)
}

func (f *Field) formatValue(v Value) (string, error) {
	switch f.Kind {
	case RuleInt:
		n, err := AsInt(v)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case RuleBool:
		b, ok := v.(bool)
		if !ok {
			return "", fmt.Errorf("cannot convert %T to bool", v)
		}
		if b {
			return "TRUE", nil
		}
		return "FALSE", nil
	case RuleEnum:
		s, err := AsString(v)
		if err != nil {
			return "", err
		}
		return AddNamespace(s, f.Namespace), nil
	case RuleList, RuleFlags:
		items, err := AsStrings(v)
		if err != nil {
			return "", err
		}
		if len(items) == 0 {
			return "0", nil
		}
		tokens := make([]string, len(items))
		for i, item := range items {
			tokens[i] = AddNamespace(item, f.Namespace)
		}
		if f.Kind == RuleFlags {
			return strings.Join(tokens, " | "), nil
		}
		return "{" + strings.Join(tokens, ", ") + "}", nil
	case RuleRatio:
		n, err := toFloat(v)
		if err != nil {
			return "", err
		}
		for _, c := range f.Constants {
			if c.Value == n {
				return c.Name, nil
			}
		}
		return f.Macro + "(" + strconv.FormatFloat(n, 'f', -1, 64) + ")", nil
	default:
		return "", fmt.Errorf("field %s: rule %d has no scalar form", f.Name, f.Kind)
	}
}
