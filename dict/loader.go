package dict

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/blueshen/ik-go/config"
	"github.com/blueshen/ik-go/ikerr"
)

// Loader feeds newline-delimited words from a dictionary file into a
// Trie. It is the external collaborator spec.md §1 names: the core
// segmenter packages never read a filesystem themselves.
type Loader interface {
	Load(t *Trie, path string) error
}

// FileLoader reads UTF-8 dictionary files, one word per line, trimming
// surrounding whitespace. Empty lines insert a no-op empty word. Open
// or read failures are returned as *ikerr.DictIOError rather than
// panicking, so only the caller (typically a CLI's main) decides
// whether a load failure is fatal.
type FileLoader struct {
	Log *zap.SugaredLogger
}

// NewFileLoader returns a FileLoader that logs nothing unless Log is
// set.
func NewFileLoader() *FileLoader {
	return &FileLoader{Log: zap.NewNop().Sugar()}
}

// Load reads path line by line, inserting each trimmed line into t.
func (l *FileLoader) Load(t *Trie, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &ikerr.DictIOError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		t.Insert(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return &ikerr.DictIOError{Path: path, Err: err}
	}
	l.logger().Debugw("loaded dictionary", "path", path, "size", t.Size())
	return nil
}

func (l *FileLoader) logger() *zap.SugaredLogger {
	if l.Log != nil {
		return l.Log
	}
	return zap.NewNop().Sugar()
}

// LoadAll builds a Dictionary's three tries from the paths a
// config.Provider names: the main dictionary plus its extension
// dictionaries (merged into one trie), the quantifier dictionary, and
// the stop word dictionaries (one built-in path is expected to already
// be first in cfg.ExtStopWordDictionaries()).
func LoadAll(d *Dictionary, cfg config.Provider, loader Loader) error {
	if err := loader.Load(d.mainTrie(), cfg.MainDictionary()); err != nil {
		return fmt.Errorf("loading main dictionary: %w", err)
	}
	for _, path := range cfg.ExtDictionaries() {
		if err := loader.Load(d.mainTrie(), path); err != nil {
			return fmt.Errorf("loading extension dictionary: %w", err)
		}
	}
	if err := loader.Load(d.quanTrie(), cfg.QuantifierDictionary()); err != nil {
		return fmt.Errorf("loading quantifier dictionary: %w", err)
	}
	for _, path := range cfg.ExtStopWordDictionaries() {
		if err := loader.Load(d.stopTrie(), path); err != nil {
			return fmt.Errorf("loading stop word dictionary: %w", err)
		}
	}
	return nil
}
