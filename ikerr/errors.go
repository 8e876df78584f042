// Package ikerr holds the three error kinds spec.md §7 names. Only
// ConfigMissingError and DictIOError are ever returned — the third,
// LookupOutOfRangeError, documents a case the trie handles silently
// (an empty result, not an error) and exists only so tests and docs
// have a concrete type to point at.
package ikerr

import "fmt"

// ConfigMissingError means the configuration file named by a
// config.Provider could not be found at startup.
type ConfigMissingError struct {
	Path string
}

func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("config file missing: %s", e.Path)
}

// DictIOError means a dictionary file could not be opened or read.
type DictIOError struct {
	Path string
	Err  error
}

func (e *DictIOError) Error() string {
	return fmt.Sprintf("dictionary I/O error at %s: %v", e.Path, e.Err)
}

func (e *DictIOError) Unwrap() error { return e.Err }

// LookupOutOfRangeError documents the condition under which
// dict.Trie.Match is queried with offset+length beyond the input's
// rune count. Trie.Match never constructs or returns one of these —
// per spec.md §7 that case returns an empty hit slice, not an error.
type LookupOutOfRangeError struct {
	Offset int
	Length int
	Count  int
}

func (e *LookupOutOfRangeError) Error() string {
	return fmt.Sprintf("lookup out of range: offset=%d length=%d count=%d", e.Offset, e.Length, e.Count)
}
