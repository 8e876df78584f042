package segment

import (
	"github.com/blueshen/ik-go/charkind"
	"github.com/blueshen/ik-go/dict"
	"github.com/blueshen/ik-go/lexeme"
)

const quantifierSegmenterName = "QUAN_SEGMENTER"

// chineseNumeralChars are the ~35 code points (simplified, traditional
// and formal/banker's variants) that make up a Chinese numeral run.
var chineseNumeralChars = map[rune]bool{
	'一': true, '二': true, '两': true, '三': true, '四': true, '五': true,
	'六': true, '七': true, '八': true, '九': true, '十': true, '零': true,
	'壹': true, '贰': true, '叁': true, '肆': true, '伍': true, '陆': true,
	'柒': true, '捌': true, '玖': true, '拾': true, '百': true, '千': true,
	'万': true, '亿': true, '佰': true, '仟': true, '萬': true, '億': true,
	'兆': true, '卅': true, '廿': true,
}

// CnQuantifier runs two sub-phases per cursor: a Chinese-numeral run
// (CN_NUM) and a count scan that, once triggered, probes the
// quantifier dictionary for a Chinese measure word (COUNT).
//
// REDESIGN FLAG (spec.md §9): the original number-run machine emitted a
// CN_NUM lexeme at every cursor while the run stayed open, not only at
// its close — a carryover bug. This implementation emits exactly once,
// at close or at end-of-input.
type CnQuantifier struct {
	dict  *dict.Dictionary
	start int
	end   int
}

// NewCnQuantifier returns a CnQuantifier segmenter backed by d's
// quantifier dictionary.
func NewCnQuantifier(d *dict.Dictionary) *CnQuantifier {
	return &CnQuantifier{dict: d, start: -1, end: -1}
}

func (s *CnQuantifier) Name() string { return quantifierSegmenterName }

func (s *CnQuantifier) Analyze(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List) {
	s.processNumber(input, cursor, curCharType, out)
	s.processCount(input, cursor, curCharType, out)
}

func (s *CnQuantifier) processNumber(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List) {
	lastIndex := len(input) - 1
	curChar := input[cursor]
	if s.initial() {
		if curCharType == charkind.Chinese && chineseNumeralChars[curChar] {
			s.start = cursor
			s.end = cursor
		}
	} else if curCharType == charkind.Chinese && chineseNumeralChars[curChar] {
		s.end = cursor
	} else {
		out.Insert(lexeme.New(s.start, s.end+1, lexeme.CNNum))
		s.reset()
	}
	if s.end == lastIndex {
		out.Insert(lexeme.New(s.start, s.end+1, lexeme.CNNum))
		s.reset()
	}
}

func (s *CnQuantifier) processCount(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List) {
	if !s.needCountScan(cursor, out) {
		return
	}
	if curCharType != charkind.Chinese {
		return
	}
	hits := s.dict.MatchQuantifier(input, cursor, len(input)-cursor)
	for _, h := range hits {
		if h.IsMatch() {
			out.Insert(lexeme.New(h.Begin, h.End, lexeme.Count))
		}
	}
}

// needCountScan fires when a number run is currently open, or when the
// last lexeme in out is ARABIC/CN_NUM and ends exactly at cursor — the
// second clause (spec.md §9's other REDESIGN FLAG) is what lets
// "960万平方公里" compound into a CQUAN after a leading ARABIC run.
func (s *CnQuantifier) needCountScan(cursor int, out *lexeme.List) bool {
	if s.start != -1 && s.end != -1 {
		return true
	}
	last, ok := out.PeekBack()
	if !ok {
		return false
	}
	if last.Type() != lexeme.Arabic && last.Type() != lexeme.CNNum {
		return false
	}
	return last.Begin()+last.Length() == cursor
}

func (s *CnQuantifier) initial() bool { return s.start == -1 && s.end == -1 }

func (s *CnQuantifier) reset() { s.start, s.end = -1, -1 }
