// Package arbitrate resolves overlapping candidate lexemes into either
// a maximal-recall cover (INDEX mode) or a single best non-crossing
// cover per conflict group (SEARCH mode).
package arbitrate

import (
	"sort"

	"github.com/blueshen/ik-go/lexeme"
)

// Mode selects how a conflict group of crossing lexemes is resolved.
type Mode int

const (
	// Index emits every lexeme in a conflict group, for maximal recall.
	Index Mode = iota
	// Search picks one optimal non-crossing sub-path per conflict group.
	Search
)

// Arbitrator groups crossing lexemes from an ordered lexeme.List into
// cross-paths and, in Search mode, resolves each group of two or more
// crossing lexemes down to a single best path.
type Arbitrator struct{}

// New returns an Arbitrator. It holds no state between calls.
func New() *Arbitrator { return &Arbitrator{} }

// Process walks orgLexemes once, grouping crossing candidates into
// cross-paths via Path.AddCrossLexeme, and returns the resulting paths
// keyed by each path's PathBegin.
func (a *Arbitrator) Process(orgLexemes *lexeme.List, mode Mode) map[int]*lexeme.Path {
	pathMap := make(map[int]*lexeme.Path)
	crossPath := lexeme.NewPath()

	for e := orgLexemes.Front(); e != nil; e = e.Next() {
		lx := lexeme.At(e)
		if !crossPath.AddCrossLexeme(lx) {
			a.finalize(crossPath, mode, pathMap)
			crossPath = lexeme.NewPath()
			crossPath.AddCrossLexeme(lx)
		}
	}
	a.finalize(crossPath, mode, pathMap)
	return pathMap
}

// finalize emits crossPath directly if it has no internal ambiguity
// (size 1, or Index mode), otherwise resolves it via judge starting
// from the group's own head node.
func (a *Arbitrator) finalize(crossPath *lexeme.Path, mode Mode, pathMap map[int]*lexeme.Path) {
	if crossPath.Size() == 0 {
		return
	}
	if crossPath.Size() == 1 || mode != Search {
		pathMap[crossPath.PathBegin()] = crossPath
		return
	}
	result := a.judge(crossPath.Head())
	pathMap[result.PathBegin()] = result
}

// judge performs an iterative-deepening enumeration of every maximal
// non-crossing subsequence reachable from head, and returns the best
// one under Path.Less.
func (a *Arbitrator) judge(head *lexeme.Element) *lexeme.Path {
	option := lexeme.NewPath()
	conflicts := a.forwardPath(head, option)

	candidates := []*lexeme.Path{option.Clone()}

	for len(conflicts) > 0 {
		c := conflicts[len(conflicts)-1]
		conflicts = conflicts[:len(conflicts)-1]

		a.backPath(lexeme.At(c), option)
		moreConflicts := a.forwardPath(c, option)
		conflicts = append(conflicts, moreConflicts...)
		candidates = append(candidates, option.Clone())
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Less(candidates[j]) })
	return candidates[0]
}

// forwardPath walks forward from cur, greedily adding every lexeme
// that does not cross what option already holds; any lexeme that
// fails to add is returned in the conflict stack, in list order.
func (a *Arbitrator) forwardPath(cur *lexeme.Element, option *lexeme.Path) []*lexeme.Element {
	var conflicts []*lexeme.Element
	for e := cur; e != nil; e = e.Next() {
		if !option.AddNotCrossLexeme(lexeme.At(e)) {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

// backPath rolls option back, removing its tail lexeme, until lx no
// longer crosses what remains.
func (a *Arbitrator) backPath(lx lexeme.Lexeme, option *lexeme.Path) {
	for option.Cross(lx) {
		if _, ok := option.RemoveTail(); !ok {
			return
		}
	}
}
