package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blueshen/ik-go/arbitrate"
	"github.com/blueshen/ik-go/dict"
	"github.com/blueshen/ik-go/lexeme"
)

// stubProvider satisfies config.Provider structurally, without
// importing the config package, purely to drive dict.LoadAll in tests.
type stubProvider struct {
	main, quant, stop string
}

func (p stubProvider) MainDictionary() string       { return p.main }
func (p stubProvider) QuantifierDictionary() string { return p.quant }
func (p stubProvider) ExtDictionaries() []string    { return nil }
func (p stubProvider) ExtStopWordDictionaries() []string {
	if p.stop == "" {
		return nil
	}
	return []string{p.stop}
}

func dictWithStopWords(t *testing.T, words ...string) *dict.Dictionary {
	t.Helper()
	dir := t.TempDir()
	main := filepath.Join(dir, "main.dic")
	quant := filepath.Join(dir, "quant.dic")
	stop := filepath.Join(dir, "stop.dic")
	require.NoError(t, os.WriteFile(main, []byte(""), 0o644))
	require.NoError(t, os.WriteFile(quant, []byte(""), 0o644))
	content := ""
	for _, w := range words {
		content += w + "\n"
	}
	require.NoError(t, os.WriteFile(stop, []byte(content), 0o644))

	d := dict.NewDictionary()
	require.NoError(t, dict.LoadAll(d, stubProvider{main: main, quant: quant, stop: stop}, dict.NewFileLoader()))
	return d
}

func TestRunFillsSingleCharacterGaps(t *testing.T) {
	d := dict.NewDictionary()
	input := []rune("中a国")

	pathMap := map[int]*lexeme.Path{
		1: singlePath(lexeme.New(1, 2, lexeme.English)),
	}

	got := Run(input, pathMap, arbitrate.Index, d)
	require.Len(t, got, 3)
	require.Equal(t, lexeme.CNChar, got[0].Type())
	require.Equal(t, "中", got[0].Text())
	require.Equal(t, lexeme.English, got[1].Type())
	require.Equal(t, "a", got[1].Text())
	require.Equal(t, lexeme.CNChar, got[2].Type())
	require.Equal(t, "国", got[2].Text())
}

func TestRunFiltersStopWords(t *testing.T) {
	d := dictWithStopWords(t, "的")

	input := []rune("的")
	pathMap := map[int]*lexeme.Path{
		0: singlePath(lexeme.New(0, 1, lexeme.CNWord)),
	}

	got := Run(input, pathMap, arbitrate.Index, d)
	require.Empty(t, got)
}

func TestRunCompoundsArabicAndCNNumInSearchMode(t *testing.T) {
	d := dict.NewDictionary()
	input := []rune("960万")

	path := lexeme.NewPath()
	path.AddNotCrossLexeme(lexeme.New(0, 3, lexeme.Arabic))
	path.AddNotCrossLexeme(lexeme.New(3, 4, lexeme.CNNum))
	pathMap := map[int]*lexeme.Path{0: path}

	got := Run(input, pathMap, arbitrate.Search, d)
	require.Len(t, got, 1)
	require.Equal(t, lexeme.CNNum, got[0].Type())
	require.Equal(t, 0, got[0].Begin())
	require.Equal(t, 4, got[0].End())
	require.Equal(t, "960万", got[0].Text())
}

func TestRunCompoundsArabicThenCountInSearchMode(t *testing.T) {
	d := dict.NewDictionary()
	input := []rune("100公里")

	path := lexeme.NewPath()
	path.AddNotCrossLexeme(lexeme.New(0, 3, lexeme.Arabic))
	path.AddNotCrossLexeme(lexeme.New(3, 5, lexeme.Count))
	pathMap := map[int]*lexeme.Path{0: path}

	got := Run(input, pathMap, arbitrate.Search, d)
	require.Len(t, got, 1)
	require.Equal(t, lexeme.CQuan, got[0].Type())
	require.Equal(t, "100公里", got[0].Text())
}

func TestRunDoesNotCompoundInIndexMode(t *testing.T) {
	d := dict.NewDictionary()
	input := []rune("960万")

	path := lexeme.NewPath()
	path.AddNotCrossLexeme(lexeme.New(0, 3, lexeme.Arabic))
	path.AddNotCrossLexeme(lexeme.New(3, 4, lexeme.CNNum))
	pathMap := map[int]*lexeme.Path{0: path}

	got := Run(input, pathMap, arbitrate.Index, d)
	require.Len(t, got, 2)
	require.Equal(t, lexeme.Arabic, got[0].Type())
	require.Equal(t, lexeme.CNNum, got[1].Type())
}

func singlePath(lx lexeme.Lexeme) *lexeme.Path {
	p := lexeme.NewPath()
	p.AddCrossLexeme(lx)
	return p
}
