package dict

// node is one trie node. Root has no value and is never terminal.
// Children are keyed by rune rather than byte, so multi-byte CJK
// characters never get split across node boundaries — the same
// rune-keyed child map the teacher package uses for its automaton,
// adapted here to a plain prefix trie instead of an Aho-Corasick
// fail-link graph.
type node struct {
	value    rune
	hasValue bool
	terminal bool
	children map[rune]*node
}

func newNode() *node {
	return &node{}
}

func (n *node) isRoot() bool { return !n.hasValue }

func (n *node) hasChildren() bool { return len(n.children) > 0 }

func (n *node) child(r rune) (*node, bool) {
	c, ok := n.children[r]
	return c, ok
}

func (n *node) addChild(r rune) *node {
	if n.children == nil {
		n.children = make(map[rune]*node)
	}
	c := &node{value: r, hasValue: true}
	n.children[r] = c
	return c
}

// Trie is a rune-keyed prefix trie supporting Insert, Delete and
// offset-windowed Match.
type Trie struct {
	root *node
	size int
}

// NewTrie returns an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Size is the number of distinct terminal (complete) words inserted.
func (t *Trie) Size() int { return t.size }

// Insert walks/creates a path of nodes, one per rune of word, marking
// the final node terminal. Idempotent on a word already present; a
// zero-length word is a harmless no-op (it only ever touches the root,
// which is never terminal).
func (t *Trie) Insert(word string) {
	cur := t.root
	runes := []rune(word)
	for i, r := range runes {
		c, ok := cur.child(r)
		if !ok {
			c = cur.addChild(r)
		}
		cur = c
		if i == len(runes)-1 {
			if !cur.terminal {
				cur.terminal = true
				t.size++
			}
		}
	}
}

// Delete clears the terminal flag on word's final node if the path
// exists. Nodes are never pruned.
func (t *Trie) Delete(word string) {
	cur := t.root
	for _, r := range word {
		c, ok := cur.child(r)
		if !ok {
			return
		}
		cur = c
	}
	if cur.terminal {
		cur.terminal = false
		t.size--
	}
}

// Exists reports whether word is a complete (terminal) entry.
func (t *Trie) Exists(word string) bool {
	cur := t.root
	for _, r := range word {
		c, ok := cur.child(r)
		if !ok {
			return false
		}
		cur = c
	}
	return cur.terminal
}

// Match returns every hit starting at offset within the window
// [offset, offset+length) of text, in ascending length order. If
// offset+length exceeds len(text), Match returns an empty slice without
// error (spec.md §4.2's LookupOutOfRange case).
func (t *Trie) Match(text []rune, offset, length int) []Hit {
	if offset < 0 || length < 0 || offset+length > len(text) {
		return nil
	}
	var hits []Hit
	cur := t.root
	end := offset
	for i := offset; i < offset+length; i++ {
		c, ok := cur.child(text[i])
		if !ok {
			break
		}
		// cur is the node reached after the previous rune; its terminal
		// flag, if set, describes a complete word ending at end+1 (the
		// position we already reached), not at i.
		if cur.terminal {
			h := newHit(offset, end+1)
			h.setMatch()
			if cur.hasChildren() {
				h.setPrefix()
			}
			hits = append(hits, h)
		}
		cur = c
		end = i
	}
	if !cur.isRoot() {
		h := newHit(offset, end+1)
		if cur.terminal {
			h.setMatch()
		}
		if cur.hasChildren() {
			h.setPrefix()
		}
		hits = append(hits, h)
	}
	return hits
}

// MatchWord is Match over the whole of text, from offset 0.
func (t *Trie) MatchWord(text []rune) []Hit {
	return t.Match(text, 0, len(text))
}
