package lexeme

import "container/list"

// Element is the stable node handle type List hands out, re-exported so
// callers outside this package never need to import container/list
// directly.
type Element = list.Element

// Path is an ordered, non-crossing sequence of lexemes spanning
// [PathBegin, PathEnd), plus PayloadLen (the sum of its lexemes'
// lengths; for a path grown by AddCrossLexeme, the span PathEnd -
// PathBegin). Two lexemes cross iff their ranges overlap.
type Path struct {
	pathBegin  int
	pathEnd    int
	payloadLen int
	lexemes    *List
}

// NewPath returns an empty Path. PathBegin/PathEnd read -1 until the
// first lexeme is added.
func NewPath() *Path {
	return &Path{pathBegin: -1, pathEnd: -1, lexemes: NewList()}
}

func (p *Path) PathBegin() int  { return p.pathBegin }
func (p *Path) PathEnd() int    { return p.pathEnd }
func (p *Path) PayloadLen() int { return p.payloadLen }
func (p *Path) Size() int       { return p.lexemes.Len() }

// PathLength is path_end - path_begin, i.e. the span the path covers.
func (p *Path) PathLength() int { return p.pathEnd - p.pathBegin }

// Head returns the underlying lexeme list's first element, used by the
// arbitrator to start a forward walk from the group's head node.
func (p *Path) Head() *Element { return p.lexemes.Front() }

// Cross reports whether lx overlaps the path's current [PathBegin,
// PathEnd) span.
func (p *Path) Cross(lx Lexeme) bool {
	begin := lx.Begin()
	length := lx.Length()
	return (begin >= p.pathBegin && begin < p.pathEnd) ||
		(p.pathBegin >= begin && p.pathBegin < begin+length)
}

// AddCrossLexeme appends lx to the path unconditionally if the path is
// empty or lx crosses it, growing PathEnd to cover lx and setting
// PayloadLen to the resulting span. Returns false
// (without mutating the path) if lx neither starts the path nor
// crosses it.
func (p *Path) AddCrossLexeme(lx Lexeme) bool {
	switch {
	case p.lexemes.Empty():
		p.lexemes.Insert(lx)
		p.pathBegin = lx.Begin()
		p.pathEnd = lx.End()
		p.payloadLen += lx.Length()
		return true
	case p.Cross(lx):
		p.lexemes.Insert(lx)
		if lx.End() > p.pathEnd {
			p.pathEnd = lx.End()
		}
		p.payloadLen = p.pathEnd - p.pathBegin
		return true
	default:
		return false
	}
}

// AddNotCrossLexeme appends lx only if it does not cross the path.
// Returns false, leaving the path unchanged, if lx crosses it.
func (p *Path) AddNotCrossLexeme(lx Lexeme) bool {
	switch {
	case p.lexemes.Empty():
		p.lexemes.Insert(lx)
		p.pathBegin = lx.Begin()
		p.pathEnd = lx.End()
		p.payloadLen += lx.Length()
		return true
	case p.Cross(lx):
		return false
	default:
		p.lexemes.Insert(lx)
		p.payloadLen += lx.Length()
		if head, ok := p.lexemes.PeekFront(); ok {
			p.pathBegin = head.Begin()
		}
		if tail, ok := p.lexemes.PeekBack(); ok {
			p.pathEnd = tail.End()
		}
		return true
	}
}

// RemoveTail pops the path's current last lexeme, recomputing PathEnd
// from the new tail (or resetting to empty state).
func (p *Path) RemoveTail() (Lexeme, bool) {
	tail, ok := p.lexemes.PopBack()
	if !ok {
		return Lexeme{}, false
	}
	if p.lexemes.Empty() {
		p.pathBegin = -1
		p.pathEnd = -1
		p.payloadLen = 0
		return tail, true
	}
	p.payloadLen -= tail.Length()
	if newTail, ok := p.lexemes.PeekBack(); ok {
		p.pathEnd = newTail.Begin() + newTail.Length()
	}
	return tail, true
}

// PollFirst pops and returns the smallest (leftmost) lexeme.
func (p *Path) PollFirst() (Lexeme, bool) {
	return p.lexemes.PopFront()
}

// PeekFirst returns the smallest (leftmost) lexeme without removing
// it, used by the output pipeline to look ahead one lexeme while
// filling the gap before it.
func (p *Path) PeekFirst() (Lexeme, bool) {
	return p.lexemes.PeekFront()
}

// XWeight is the product of every lexeme's length.
func (p *Path) XWeight() int {
	product := 1
	p.lexemes.Each(func(lx Lexeme) { product *= lx.Length() })
	return product
}

// PWeight is sum(i * len_i) over the 1-indexed lexeme sequence.
func (p *Path) PWeight() int {
	weight := 0
	i := 0
	p.lexemes.Each(func(lx Lexeme) {
		i++
		weight += i * lx.Length()
	})
	return weight
}

// Clone returns a deep (value) copy of p.
func (p *Path) Clone() *Path {
	cp := NewPath()
	cp.pathBegin = p.pathBegin
	cp.pathEnd = p.pathEnd
	cp.payloadLen = p.payloadLen
	p.lexemes.Each(func(lx Lexeme) { cp.lexemes.Insert(lx) })
	return cp
}

// Less implements the candidate-path comparator from spec.md §4.4:
// larger payload wins, then fewer lexemes, then longer span, then
// later end, then larger x-weight, then larger p-weight.
func (p *Path) Less(o *Path) bool {
	if p.payloadLen != o.payloadLen {
		return p.payloadLen > o.payloadLen
	}
	if p.Size() != o.Size() {
		return p.Size() < o.Size()
	}
	if p.PathLength() != o.PathLength() {
		return p.PathLength() > o.PathLength()
	}
	if p.pathEnd != o.pathEnd {
		return p.pathEnd > o.pathEnd
	}
	if xw, oxw := p.XWeight(), o.XWeight(); xw != oxw {
		return xw > oxw
	}
	return p.PWeight() > o.PWeight()
}
