// Package config defines the Configuration contract spec.md §6 names
// (the loader asks for four path lookups) and provides a YAML-backed
// default implementation of it.
package config

// Provider names the dictionary files a DictionaryLoader should load.
type Provider interface {
	// MainDictionary is the path to the single main dictionary file.
	MainDictionary() string
	// QuantifierDictionary is the path to the single quantifier
	// dictionary file.
	QuantifierDictionary() string
	// ExtDictionaries lists zero or more extension dictionary files,
	// merged into the main dictionary.
	ExtDictionaries() []string
	// ExtStopWordDictionaries lists the stop word dictionary files,
	// with one built-in file always prepended.
	ExtStopWordDictionaries() []string
}
