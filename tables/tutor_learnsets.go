package tables

import (
	"fmt"
	"strings"

	"github.com/decomp-tools/cdata"
)

const (
	tutorMovesSignature     = "const u16 gTutorMoves[TUTOR_MOVE_COUNT] ="
	tutorLearnsetsSignature = "static const u32 sTutorLearnsets[] ="
)

// enumEntry is an entry whose value is a single constant.
type enumEntry struct {
	namespace string
}

func (e enumEntry) ParseEntry(rhs string) (cdata.Value, error) {
	if strings.ContainsAny(rhs, "{(|") {
		return nil, fmt.Errorf("%w: constant %q", cdata.ErrMalformedRecord, rhs)
	}
	return cdata.StripNamespace(rhs, e.namespace), nil
}

func (e enumEntry) FormatEntry(v cdata.Value) (string, error) {
	s, err := cdata.AsString(v)
	if err != nil {
		return "", err
	}
	return cdata.AddNamespace(s, e.namespace), nil
}

// TutorMovesLayout is gTutorMoves, the move taught by each tutor slot. The
// footer carries the TUTOR macro and opens sTutorLearnsets, so the two
// layouts format into one file.
var TutorMovesLayout = &cdata.Layout{
	Name:         "tutor_moves",
	Signature:    tutorMovesSignature,
	KeyNamespace: "TUTOR_MOVE",
	Style:        cdata.StyleInline,
	Entry:        enumEntry{namespace: "MOVE"},
	Header:       tutorMovesSignature + "\n{\n",
	Separator:    ",\n",
	Footer:       "\n};\n\n#define TUTOR(move) (1u << (TUTOR_##move))\n\n" + tutorLearnsetsSignature + "\n{\n",
}

// TutorLearnsetsLayout is sTutorLearnsets, the tutor moves each species
// can learn as lists of move names.
var TutorLearnsetsLayout = &cdata.Layout{
	Name:         "tutor_learnsets",
	Signature:    tutorLearnsetsSignature,
	KeyNamespace: "SPECIES",
	Style:        cdata.StyleInline,
	Entry: macroList{
		inner:     "TUTOR",
		namespace: "MOVE",
		indent:    speciesKeyWidth + len("="),
	},
	Null:      "(0)",
	KeyWidth:  speciesKeyWidth,
	Separator: ",\n\n",
	Footer:    "\n};",
}

// tutorDocument is the JSON shape of the tutor table file.
type tutorDocument struct {
	Moves []string `cdata:"tutor_moves,required"`
}

func extractTutor(src string) (*cdata.Record, error) {
	moves, err := cdata.NewParser(TutorMovesLayout).ParseString(src)
	if err != nil {
		return nil, err
	}
	learnsets, err := cdata.NewParser(TutorLearnsetsLayout).ParseString(src)
	if err != nil {
		return nil, err
	}

	list := make(cdata.List, 0, moves.Len())
	err = moves.Each(func(_ string, v cdata.Value) error {
		list = append(list, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	doc := cdata.NewRecord()
	doc.Set("tutor_moves", list)
	doc.Set("tutor_learnsets", learnsets)
	return doc, nil
}

func buildTutor(doc *cdata.Record) ([]string, error) {
	var td tutorDocument
	if err := cdata.UnmarshalRecord(doc, &td); err != nil {
		return nil, fmt.Errorf("tutor_learnsets: %w", err)
	}
	v, _ := doc.Get("tutor_learnsets")
	learnsets, ok := v.(*cdata.Record)
	if !ok {
		return nil, fmt.Errorf("tutor_learnsets: cannot convert %T to record", v)
	}

	moves := cdata.NewRecord()
	for _, move := range td.Moves {
		moves.Set(move, move)
	}
	movesText, err := cdata.NewFormatter(TutorMovesLayout).Format(moves)
	if err != nil {
		return nil, err
	}
	learnsetsText, err := cdata.NewFormatter(TutorLearnsetsLayout).Format(learnsets)
	if err != nil {
		return nil, err
	}
	return []string{movesText + learnsetsText}, nil
}
