package segment

import (
	"github.com/blueshen/ik-go/charkind"
	"github.com/blueshen/ik-go/lexeme"
)

const letterSegmenterName = "LETTER_SEGMENTER"

// letterConnectors may extend a run of the mixed English/Arabic machine
// without closing it.
var letterConnectors = map[rune]bool{
	'#': true, '&': true, '+': true, '-': true, '.': true, '@': true, '_': true,
}

// numConnectors may appear inside an Arabic run (a thousands/decimal
// separator) without extending or closing it.
var numConnectors = map[rune]bool{
	',': true, '.': true,
}

// Letter runs three independent linear state machines over the input:
// an English-only run, an Arabic-only run (tolerating ',' and '.' as
// separators), and a mixed English/Arabic run that also tolerates a
// fixed set of connector punctuation — so "zhiyi.shen@gmail.com" is
// emitted whole by the mixed machine while the English machine
// separately emits "zhiyi", "shen", "gmail", "com".
type Letter struct {
	mixStart, mixEnd         int
	englishStart, englishEnd int
	arabicStart, arabicEnd   int
}

// NewLetter returns a Letter segmenter with all three machines closed.
func NewLetter() *Letter {
	return &Letter{mixStart: -1, mixEnd: -1, englishStart: -1, englishEnd: -1, arabicStart: -1, arabicEnd: -1}
}

func (s *Letter) Name() string { return letterSegmenterName }

func (s *Letter) Analyze(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List) {
	s.processEnglish(input, cursor, curCharType, out)
	s.processArabic(input, cursor, curCharType, out)
	s.processMixed(input, cursor, curCharType, out)
}

func (s *Letter) processEnglish(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List) {
	lastIndex := len(input) - 1
	if s.englishStart == -1 {
		if curCharType == charkind.English {
			s.englishStart = cursor
			s.englishEnd = cursor
		}
	} else if curCharType == charkind.English {
		s.englishEnd = cursor
	} else {
		out.Insert(lexeme.New(s.englishStart, s.englishEnd+1, lexeme.English))
		s.englishStart, s.englishEnd = -1, -1
	}
	if s.englishEnd == lastIndex {
		out.Insert(lexeme.New(s.englishStart, s.englishEnd+1, lexeme.English))
		s.englishStart, s.englishEnd = -1, -1
	}
}

func (s *Letter) processArabic(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List) {
	lastIndex := len(input) - 1
	curChar := input[cursor]
	if s.arabicStart == -1 {
		if curCharType == charkind.Arabic {
			s.arabicStart = cursor
			s.arabicEnd = cursor
		}
	} else if curCharType == charkind.Arabic {
		s.arabicEnd = cursor
	} else if curCharType == charkind.Useless && numConnectors[curChar] {
		// tolerate a numeric separator without extending or closing
	} else {
		out.Insert(lexeme.New(s.arabicStart, s.arabicEnd+1, lexeme.Arabic))
		s.arabicStart, s.arabicEnd = -1, -1
	}
	if s.arabicEnd == lastIndex {
		out.Insert(lexeme.New(s.arabicStart, s.arabicEnd+1, lexeme.Arabic))
		s.arabicStart, s.arabicEnd = -1, -1
	}
}

func (s *Letter) processMixed(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List) {
	lastIndex := len(input) - 1
	curChar := input[cursor]
	if s.mixStart == -1 {
		if curCharType == charkind.Arabic || curCharType == charkind.English {
			s.mixStart = cursor
			s.mixEnd = cursor
		}
	} else if curCharType == charkind.Arabic || curCharType == charkind.English {
		s.mixEnd = cursor
	} else if curCharType == charkind.Useless && letterConnectors[curChar] {
		s.mixEnd = cursor
	} else {
		out.Insert(lexeme.New(s.mixStart, s.mixEnd+1, lexeme.Letter))
		s.mixStart, s.mixEnd = -1, -1
	}
	if s.mixEnd == lastIndex {
		out.Insert(lexeme.New(s.mixStart, s.mixEnd+1, lexeme.Letter))
		s.mixStart, s.mixEnd = -1, -1
	}
}
