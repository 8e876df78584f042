package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blueshen/ik-go/ikerr"
)

func writeYAML(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "ik.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadYAMLResolvesPathsRelativeToItself(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "main_dict: main.dic\nquantifier_dict: quantifier.dic\next_dicts: [ext1.dic]\n")

	p, err := LoadYAML(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "main.dic"), p.MainDictionary())
	require.Equal(t, filepath.Join(dir, "quantifier.dic"), p.QuantifierDictionary())
	require.Equal(t, []string{filepath.Join(dir, "ext1.dic")}, p.ExtDictionaries())
}

func TestExtStopWordDictionariesPrependsBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "stop_word_dict: custom.dic\next_stop_word_dicts: [extra.dic]\n")

	p, err := LoadYAML(path)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, builtinStopWordDict),
		filepath.Join(dir, "custom.dic"),
		filepath.Join(dir, "extra.dic"),
	}, p.ExtStopWordDictionaries())
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.Error(t, err)
	var missing *ikerr.ConfigMissingError
	require.ErrorAs(t, err, &missing)
}
