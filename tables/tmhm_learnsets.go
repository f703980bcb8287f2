package tables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decomp-tools/cdata"
)

const tmhmSignature = "const u32 gTMHMLearnsets[][2] ="

const tmhmHeader = `#define TMHM_LEARNSET(moves) {(u32)(moves), ((u64)(moves) >> 32)}
#define TMHM(tmhm) ((u64)1 << (ITEM_##tmhm - ITEM_TM01_FOCUS_PUNCH))

// This table determines which TMs and HMs a species is capable of learning.
// Each entry is a 64-bit bit array spread across two 32-bit values, with
// each bit corresponding to a .
` + tmhmSignature + "\n{\n"

const (
	// NumTMs is the number of TM items, bits 0 to 49.
	NumTMs = 50
	// NumHMs is the number of HM items, bits 50 to 57.
	NumHMs = 8
)

// TMHMBit returns the bit a TM or HM item occupies in a learnset mask.
// name is the lower-cased item name without ITEM_, e.g. "tm06_toxic".
func TMHMBit(name string) (uint, error) {
	if len(name) < 4 {
		return 0, fmt.Errorf("%q is not a TM or HM", name)
	}
	num, err := strconv.Atoi(name[2:4])
	if err != nil {
		return 0, fmt.Errorf("%q is not a TM or HM", name)
	}
	switch strings.ToLower(name[:2]) {
	case "tm":
		if num < 1 || num > NumTMs {
			return 0, fmt.Errorf("TM number %d out of range", num)
		}
		return uint(num - 1), nil
	case "hm":
		if num < 1 || num > NumHMs {
			return 0, fmt.Errorf("HM number %d out of range", num)
		}
		return uint(NumTMs + num - 1), nil
	default:
		return 0, fmt.Errorf("%q is not a TM or HM", name)
	}
}

// EncodeTMHMWords builds the learnset mask of names and splits it into the
// two words stored in gTMHMLearnsets.
func EncodeTMHMWords(names []string) (lo, hi uint32, err error) {
	var mask uint64
	for _, name := range names {
		bit, err := TMHMBit(name)
		if err != nil {
			return 0, 0, err
		}
		mask |= 1 << bit
	}
	return uint32(mask), uint32(mask >> 32), nil
}

// DecodeTMHMWords joins the two stored words back into the learnset mask.
func DecodeTMHMWords(lo, hi uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// FormatTMHMWords writes a mask in the expanded form of TMHM_LEARNSET.
func FormatTMHMWords(lo, hi uint32) string {
	return fmt.Sprintf("{(%d), (%d)}", lo, hi)
}

// parseTMHMWords reads the expanded form back.
func parseTMHMWords(rhs string) (lo, hi uint32, err error) {
	inner, ok := cdata.Braced(rhs)
	if !ok {
		return 0, 0, fmt.Errorf("%w: learnset words %q", cdata.ErrMalformedRecord, rhs)
	}
	parts := cdata.SplitList(inner, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: learnset words %q", cdata.ErrMalformedRecord, rhs)
	}
	words := make([]uint32, 2)
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.Trim(part, "()"), 0, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: learnset word %q", cdata.ErrMalformedRecord, part)
		}
		words[i] = uint32(n)
	}
	return words[0], words[1], nil
}

// macroList is an entry written as OUTER(INNER(A) | INNER(B) ...), with
// every operand after the first on its own line.
type macroList struct {
	outer, inner string
	namespace    string
	indent       int
}

func (m macroList) ParseEntry(rhs string) (cdata.Value, error) {
	body := strings.TrimPrefix(rhs, m.outer)
	inner, ok := cdata.Parenthesized(body)
	if !ok {
		return nil, fmt.Errorf("%w: %s list %q", cdata.ErrMalformedRecord, m.inner, rhs)
	}
	out := cdata.List{}
	for _, operand := range cdata.SplitList(inner, "|") {
		if !strings.HasPrefix(operand, m.inner+"(") {
			return nil, fmt.Errorf("%w: %s operand %q", cdata.ErrMalformedRecord, m.inner, operand)
		}
		name, ok := cdata.Parenthesized(operand)
		if !ok {
			return nil, fmt.Errorf("%w: %s operand %q", cdata.ErrMalformedRecord, m.inner, operand)
		}
		out = append(out, cdata.StripNamespace(name, m.namespace))
	}
	return out, nil
}

func (m macroList) FormatEntry(v cdata.Value) (string, error) {
	names, err := cdata.AsStrings(v)
	if err != nil {
		return "", err
	}
	operands := make([]string, len(names))
	for i, name := range names {
		operands[i] = m.inner + "(" + cdata.AddNamespace(name, m.namespace) + ")"
	}
	join := "\n\t" + strings.Repeat(" ", m.indent) + "| "
	return m.outer + "(" + strings.Join(operands, join) + ")", nil
}

type tmhmEntry struct {
	macroList
}

// ParseEntry also accepts the expanded word form for an empty learnset.
func (e tmhmEntry) ParseEntry(rhs string) (cdata.Value, error) {
	if !strings.HasPrefix(rhs, "{") {
		return e.macroList.ParseEntry(rhs)
	}
	lo, hi, err := parseTMHMWords(rhs)
	if err != nil {
		return nil, err
	}
	if mask := DecodeTMHMWords(lo, hi); mask != 0 {
		return nil, fmt.Errorf("%w: raw learnset mask %#x has no item names", cdata.ErrMalformedRecord, mask)
	}
	return cdata.List{}, nil
}

// FormatEntry rejects names that have no bit in the mask.
func (e tmhmEntry) FormatEntry(v cdata.Value) (string, error) {
	names, err := cdata.AsStrings(v)
	if err != nil {
		return "", err
	}
	if _, _, err := EncodeTMHMWords(names); err != nil {
		return "", err
	}
	return e.macroList.FormatEntry(v)
}

// TMHMLearnsetsLayout is gTMHMLearnsets. Learnsets are lists of item names
// such as "tm06_toxic".
var TMHMLearnsetsLayout = &cdata.Layout{
	Name:         "tmhm_learnsets",
	Signature:    tmhmSignature,
	KeyNamespace: "SPECIES",
	Style:        cdata.StyleInline,
	Entry: tmhmEntry{macroList{
		outer:  "TMHM_LEARNSET",
		inner:  "TMHM",
		indent: speciesKeyWidth + len("= TMHM_LEARNSET") - 1,
	}},
	Null:      FormatTMHMWords(0, 0),
	KeyWidth:  speciesKeyWidth,
	Header:    tmhmHeader,
	Separator: ",\n",
	Footer:    "\n};",
}
