// Package segment implements the three sub-segmenters that each scan
// the regularized input once, left to right, emitting candidate
// lexemes into a shared ordered list as their private state machines
// open and close runs.
package segment

import (
	"github.com/blueshen/ik-go/charkind"
	"github.com/blueshen/ik-go/lexeme"
)

// Segmenter is analyzed once per input character position, in strictly
// ascending cursor order, by the driver in package ikseg. Each
// implementation keeps private state across calls.
type Segmenter interface {
	// Analyze processes the character at cursor, inserting zero or
	// more lexemes into out as its state machine opens, extends or
	// closes a run.
	Analyze(input []rune, cursor int, curCharType charkind.Kind, out *lexeme.List)
	// Name identifies the segmenter, for diagnostics.
	Name() string
}
