// Package ikseg is the top-level tokenizer API: it regularizes input,
// drives the three sub-segmenters cursor by cursor, arbitrates the
// resulting candidates, and runs them through the output pipeline.
package ikseg

import (
	"github.com/blueshen/ik-go/arbitrate"
	"github.com/blueshen/ik-go/charkind"
	"github.com/blueshen/ik-go/dict"
	"github.com/blueshen/ik-go/lexeme"
	"github.com/blueshen/ik-go/output"
	"github.com/blueshen/ik-go/segment"
)

// Mode selects whether Tokenize returns every candidate lexeme or one
// best non-crossing cover per conflict group.
type Mode int

const (
	// Index returns every candidate lexeme, for maximal recall.
	Index Mode = iota
	// Search returns one best non-crossing cover per conflict group.
	Search
)

func (m Mode) toArbitrate() arbitrate.Mode {
	if m == Search {
		return arbitrate.Search
	}
	return arbitrate.Index
}

// Segmenter tokenizes text against a dictionary. It holds no
// per-tokenization state itself — each Tokenize call builds its own
// sub-segmenters — so a single Segmenter is safe to call concurrently
// from multiple goroutines, exactly as safe as the Dictionary it wraps
// (guarded internally by a RWMutex).
type Segmenter struct {
	dict       *dict.Dictionary
	arbitrator *arbitrate.Arbitrator
}

// New returns a Segmenter backed by d. d must already be populated
// (see dict.LoadAll) before the first Tokenize call.
func New(d *dict.Dictionary) *Segmenter {
	return &Segmenter{dict: d, arbitrator: arbitrate.New()}
}

// Tokenize regularizes text, scans it once left to right through all
// three sub-segmenters, arbitrates the resulting candidates under
// mode, and runs the output pipeline.
func (s *Segmenter) Tokenize(text string, mode Mode) []lexeme.Lexeme {
	input := charkind.RegularizeString(text)

	letter := segment.NewLetter()
	quantifier := segment.NewCnQuantifier(s.dict)
	cjk := segment.NewCJK(s.dict)

	orig := lexeme.NewList()
	for cursor := 0; cursor < len(input); cursor++ {
		curType := charkind.Of(input[cursor])
		letter.Analyze(input, cursor, curType, orig)
		quantifier.Analyze(input, cursor, curType, orig)
		cjk.Analyze(input, cursor, curType, orig)
	}

	pathMap := s.arbitrator.Process(orig, mode.toArbitrate())
	return output.Run(input, pathMap, mode.toArbitrate(), s.dict)
}
