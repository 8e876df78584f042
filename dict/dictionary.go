package dict

import "sync"

// Dictionary holds the three tries (main, quantifier, stop word) behind
// a single RWMutex, per spec.md §5's shared-read/exclusive-write model:
// every Match*/IsStopWord call takes the read lock only for the
// duration of its own trie walk, not for the whole tokenize call.
type Dictionary struct {
	mu         sync.RWMutex
	mainDict   *Trie
	quanDict   *Trie
	stopDict   *Trie
}

// NewDictionary returns an empty Dictionary. Callers populate it via a
// Loader (see FileLoader) before handing it to a segmenter.
func NewDictionary() *Dictionary {
	return &Dictionary{
		mainDict: NewTrie(),
		quanDict: NewTrie(),
		stopDict: NewTrie(),
	}
}

// MatchMain matches the main dictionary at [offset, offset+length).
func (d *Dictionary) MatchMain(text []rune, offset, length int) []Hit {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mainDict.Match(text, offset, length)
}

// MatchQuantifier matches the quantifier dictionary at
// [offset, offset+length).
func (d *Dictionary) MatchQuantifier(text []rune, offset, length int) []Hit {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.quanDict.Match(text, offset, length)
}

// IsStopWord reports whether any complete stop-word dictionary entry
// was hit while scanning the window [offset, offset+length) — not only
// an entry spanning the whole window, matching the dictionary's
// match-then-scan-for-any-MATCH-hit semantics.
func (d *Dictionary) IsStopWord(text []rune, offset, length int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, h := range d.stopDict.Match(text, offset, length) {
		if h.IsMatch() {
			return true
		}
	}
	return false
}

// AddWords inserts words into the main dictionary under an exclusive
// lock.
func (d *Dictionary) AddWords(words []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, w := range words {
		d.mainDict.Insert(w)
	}
}

// DisableWords removes words from the main dictionary under an
// exclusive lock.
func (d *Dictionary) DisableWords(words []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, w := range words {
		d.mainDict.Delete(w)
	}
}

// mainTrie, quanTrie and stopTrie give the Loader write access to the
// tries during startup, before any Match*/IsStopWord caller could be
// running concurrently.
func (d *Dictionary) mainTrie() *Trie { return d.mainDict }
func (d *Dictionary) quanTrie() *Trie { return d.quanDict }
func (d *Dictionary) stopTrie() *Trie { return d.stopDict }
