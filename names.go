package cdata

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/golang-cz/textcase"
)

var (
	camelWord  = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// CamelToSnake converts a C field name to its JSON key: "catchRate" becomes
// "catch_rate", "SpAttack" becomes "sp_attack".
//
// Runs of capitals are ambiguous ("HP" and "hP" both give "hp"), so the
// conversion is only an inverse of SnakeToCamel for lower-case snake names.
func CamelToSnake(s string) string {
	s = camelWord.ReplaceAllString(s, "${1}_${2}")
	s = lowerUpper.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// SnakeToCamel converts a JSON key to its C field name. The first segment
// stays as written, every later segment is title cased.
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(title(part))
	}
	return b.String()
}

// SnakeToPascal converts a JSON key to the capitalised stem of a C symbol,
// "mr_mime" becomes "MrMime".
func SnakeToPascal(s string) string {
	return textcase.PascalCase(s)
}

// title upper-cases the first letter of every alphabetic run and lower-cases
// the rest: "group1" gives "Group1", "a2b" gives "A2B".
func title(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// StripNamespace removes the constant namespace from a C token and lower
// cases it: StripNamespace("TYPE_GRASS", "TYPE") is "grass". An empty
// namespace only lower cases.
func StripNamespace(token, namespace string) string {
	token = strings.TrimSpace(token)
	if namespace != "" {
		token = strings.TrimPrefix(token, namespace+"_")
	}
	return strings.ToLower(token)
}

// AddNamespace is the inverse of StripNamespace: AddNamespace("grass",
// "TYPE") is "TYPE_GRASS".
func AddNamespace(value, namespace string) string {
	value = strings.ToUpper(value)
	if namespace == "" {
		return value
	}
	return namespace + "_" + value
}
