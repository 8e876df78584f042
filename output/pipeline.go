// Package output drains an arbitrator's path map into the final
// ordered token stream: filling single-character gaps, compounding
// digit/quantifier runs in SEARCH mode, filtering stop words and
// materializing each surviving lexeme's text.
package output

import (
	"container/list"

	"github.com/blueshen/ik-go/arbitrate"
	"github.com/blueshen/ik-go/charkind"
	"github.com/blueshen/ik-go/dict"
	"github.com/blueshen/ik-go/lexeme"
)

// Run walks input (already regularized) from 0 to len(input), draining
// pathMap's paths in position order, filling single-character gaps,
// compounding (SEARCH mode only), filtering stop words against d, and
// materializing text for every surviving lexeme.
func Run(input []rune, pathMap map[int]*lexeme.Path, mode arbitrate.Mode, d *dict.Dictionary) []lexeme.Lexeme {
	drained := toResult(input, pathMap)
	final := make([]lexeme.Lexeme, 0, drained.Len())

	for e := drained.Front(); e != nil; e = drained.Front() {
		lx := drained.Remove(e).(lexeme.Lexeme)
		if mode == arbitrate.Search {
			compound(drained, &lx)
		}
		if d.IsStopWord(input, lx.Begin(), lx.Length()) {
			continue
		}
		lx.Materialize(input)
		final = append(final, lx)
	}
	return final
}

// toResult walks index from 0 to len(input), draining each path's
// lexemes in order and filling single-character gaps between them and
// between paths, per spec.md §4.5.
func toResult(input []rune, pathMap map[int]*lexeme.Path) *list.List {
	results := list.New()
	index := 0
	charCount := len(input)

	for index < charCount {
		curType := charkind.Of(input[index])
		if curType == charkind.Useless {
			index++
			continue
		}
		path, ok := pathMap[index]
		if !ok {
			emitGapChar(results, input, index, curType)
			index++
			continue
		}
		for {
			lx, ok := path.PollFirst()
			if !ok {
				break
			}
			results.PushBack(lx)
			index = lx.Begin() + lx.Length()
			next, ok := path.PeekFirst()
			if !ok {
				break
			}
			for index < next.Begin() {
				emitGapChar(results, input, index, charkind.Of(input[index]))
				index++
			}
		}
	}
	return results
}

func emitGapChar(results *list.List, input []rune, index int, curType charkind.Kind) {
	switch curType {
	case charkind.Chinese:
		results.PushBack(lexeme.New(index, index+1, lexeme.CNChar))
	case charkind.OtherCJK:
		results.PushBack(lexeme.New(index, index+1, lexeme.OtherCJK))
	}
}

// compound performs SEARCH mode's digit+quantifier merge, looking at
// most two lexemes ahead in results: ARABIC+CNNum -> CNNum,
// ARABIC+Count -> CQuan, then (possibly newly retyped) CNNum+Count ->
// CQuan.
func compound(results *list.List, result *lexeme.Lexeme) {
	front := results.Front()
	if front == nil {
		return
	}
	if result.Type() == lexeme.Arabic {
		next := front.Value.(lexeme.Lexeme)
		appended := false
		switch next.Type() {
		case lexeme.CNNum:
			appended = result.Append(next, lexeme.CNNum)
		case lexeme.Count:
			appended = result.Append(next, lexeme.CQuan)
		}
		if appended {
			results.Remove(front)
			front = results.Front()
		}
	}

	if result.Type() == lexeme.CNNum && front != nil {
		next := front.Value.(lexeme.Lexeme)
		if next.Type() == lexeme.Count {
			if result.Append(next, lexeme.CQuan) {
				results.Remove(front)
			}
		}
	}
}
