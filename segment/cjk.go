package segment

import (
	"github.com/blueshen/ik-go/charkind"
	"github.com/blueshen/ik-go/dict"
	"github.com/blueshen/ik-go/lexeme"
)

const cjkSegmenterName = "CJK_SEGMENTER"

// CJK emits CN_WORD lexemes by probing the main dictionary at every
// non-USELESS cursor. It has no private state: the dictionary trie
// itself tracks how far a match can extend.
type CJK struct {
	dict *dict.Dictionary
}

// NewCJK returns a CJK segmenter backed by d's main dictionary.
func NewCJK(d *dict.Dictionary) *CJK {
	return &CJK{dict: d}
}

func (s *CJK) Name() string { return cjkSegmenterName }

func (s *CJK) Analyze(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List) {
	if curCharType == charkind.Useless {
		return
	}
	hits := s.dict.MatchMain(input, cursor, len(input)-cursor)
	for _, h := range hits {
		if h.IsMatch() {
			out.Insert(lexeme.New(h.Begin, h.End, lexeme.CNWord))
		}
	}
}
