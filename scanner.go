package cdata

import (
	"bufio"
	"io"
	"strings"
)

// LineKind classifies one trimmed source line.
type LineKind int

const (
	LinePlain LineKind = iota
	LineComment
	LineDefine
	LineArrayStart
	LineArrayEnd
	LineKey
	LineField
)

func (k LineKind) String() string {
	switch k {
	case LineComment:
		return "comment"
	case LineDefine:
		return "define"
	case LineArrayStart:
		return "array-start"
	case LineArrayEnd:
		return "array-end"
	case LineKey:
		return "key"
	case LineField:
		return "field"
	default:
		return "plain"
	}
}

const defineMarker = "#define"

// Line is a classified source line. Text is trimmed and has any macro
// continuation backslash removed.
type Line struct {
	Num  int
	Text string
	Kind LineKind
}

// Scanner wraps a bufio.Scanner with line numbering and classification.
type Scanner struct {
	*bufio.Scanner
	lineNum int
}

// NewScanner creates a new Scanner from an io.Reader.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{Scanner: s}
}

// NextLine advances the scanner and returns the next classified line.
func (s *Scanner) NextLine() (Line, bool) {
	if !s.Scan() {
		return Line{Num: s.lineNum}, false
	}
	s.lineNum++
	text := trimLine(s.Text())
	return Line{Num: s.lineNum, Text: text, Kind: Classify(text)}, true
}

// trimLine strips surrounding whitespace and a trailing macro continuation.
func trimLine(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasSuffix(line, `\`) {
		line = strings.TrimSpace(strings.TrimSuffix(line, `\`))
	}
	return line
}

// Classify returns the kind of a trimmed line.
func Classify(text string) LineKind {
	switch {
	case strings.HasPrefix(text, "//"), strings.HasPrefix(text, "/*"), strings.HasPrefix(text, "*"):
		return LineComment
	case strings.HasPrefix(text, defineMarker):
		return LineDefine
	case strings.HasPrefix(text, "{"):
		return LineArrayStart
	case strings.HasPrefix(text, "}"):
		return LineArrayEnd
	case strings.HasPrefix(text, "["):
		return LineKey
	case strings.HasPrefix(text, "."):
		return LineField
	default:
		return LinePlain
	}
}

// Bracketed returns the text strictly between the first '[' and the next ']'.
func Bracketed(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(s[start+1:], ']')
	if end < 0 {
		return "", false
	}
	return s[start+1 : start+1+end], true
}

// Parenthesized returns the text between the first '(' and its matching ')'.
func Parenthesized(s string) (string, bool) {
	return enclosed(s, '(', ')')
}

// Braced returns the text between the first '{' and its matching '}'.
func Braced(s string) (string, bool) {
	return enclosed(s, '{', '}')
}

func enclosed(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start+1 : i], true
			}
		}
	}
	return "", false
}

// Assignment splits "lhs = rhs," at the first '='. The right-hand side is
// trimmed and loses one trailing ',' or ';'.
func Assignment(s string) (lhs, rhs string, ok bool) {
	lhs, rhs, ok = strings.Cut(s, "=")
	if !ok {
		return "", "", false
	}
	rhs = strings.TrimSpace(rhs)
	rhs = strings.TrimSuffix(rhs, ",")
	rhs = strings.TrimSuffix(rhs, ";")
	return strings.TrimSpace(lhs), strings.TrimSpace(rhs), true
}

// Balanced reports whether every '{' and '(' in s is closed.
func Balanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		}
	}
	return depth <= 0
}

// DefineName returns the macro name of a "#define" line. Function-like
// macros report ok false, as do macros with a value on the same line:
// neither can introduce a record body.
func DefineName(text string) (name string, ok bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(text, defineMarker))
	if rest == "" || strings.Contains(rest, "(") {
		return "", false
	}
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return "", false
	}
	return fields[0], true
}

// SplitList splits s on sep and trims every part. An empty s gives no parts.
func SplitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
