package lexeme

import "container/list"

// List is a doubly linked container that keeps its elements in Lexeme
// order on every Insert and silently drops duplicates (equal under
// Lexeme.Equal). It is built on container/list — the same doubly
// linked list primitive the teacher package uses for its trie-build BFS
// queue — instead of a hand-rolled raw-pointer list, since
// container/list's *list.Element already gives the stable node handles
// the arbitrator's conflict stack needs.
type List struct {
	l *list.List
}

// NewList returns an empty List.
func NewList() *List {
	return &List{l: list.New()}
}

// Len returns the number of lexemes currently held.
func (lst *List) Len() int { return lst.l.Len() }

// Empty reports whether the list holds no lexemes.
func (lst *List) Empty() bool { return lst.l.Len() == 0 }

// Front returns the first element, or nil if the list is empty.
func (lst *List) Front() *list.Element { return lst.l.Front() }

// Back returns the last element, or nil if the list is empty.
func (lst *List) Back() *list.Element { return lst.l.Back() }

// At extracts the Lexeme held by an element returned from Front, Back,
// or an element's Next/Prev.
func At(e *list.Element) Lexeme { return e.Value.(Lexeme) }

// PeekFront returns the smallest lexeme without removing it.
func (lst *List) PeekFront() (Lexeme, bool) {
	if e := lst.l.Front(); e != nil {
		return At(e), true
	}
	return Lexeme{}, false
}

// PeekBack returns the largest lexeme without removing it.
func (lst *List) PeekBack() (Lexeme, bool) {
	if e := lst.l.Back(); e != nil {
		return At(e), true
	}
	return Lexeme{}, false
}

// PopFront removes and returns the smallest lexeme.
func (lst *List) PopFront() (Lexeme, bool) {
	e := lst.l.Front()
	if e == nil {
		return Lexeme{}, false
	}
	lst.l.Remove(e)
	return At(e), true
}

// PopBack removes and returns the largest lexeme.
func (lst *List) PopBack() (Lexeme, bool) {
	e := lst.l.Back()
	if e == nil {
		return Lexeme{}, false
	}
	lst.l.Remove(e)
	return At(e), true
}

// Insert places lx at its sorted position. A lexeme equal (same Begin
// and End) to one already present is dropped rather than inserted
// again.
func (lst *List) Insert(lx Lexeme) {
	if lst.l.Len() == 0 {
		lst.l.PushBack(lx)
		return
	}
	if lx.Less(At(lst.l.Front())) {
		lst.l.PushFront(lx)
		return
	}
	if At(lst.l.Back()).Less(lx) {
		lst.l.PushBack(lx)
		return
	}
	for e := lst.l.Back(); e != nil; e = e.Prev() {
		v := At(e)
		if v.Equal(lx) {
			return
		}
		if v.Less(lx) {
			lst.l.InsertAfter(lx, e)
			return
		}
	}
	lst.l.PushFront(lx)
}

// Each calls fn for every lexeme from head to tail.
func (lst *List) Each(fn func(Lexeme)) {
	for e := lst.l.Front(); e != nil; e = e.Next() {
		fn(At(e))
	}
}
