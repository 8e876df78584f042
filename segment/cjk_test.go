package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blueshen/ik-go/charkind"
	"github.com/blueshen/ik-go/dict"
	"github.com/blueshen/ik-go/lexeme"
)

func TestCJKAnalyzeEmitsMatchHitsOnly(t *testing.T) {
	d := dict.NewDictionary()
	d.AddWords([]string{"中华", "中华人民"})

	input := []rune("中华人民")
	out := lexeme.NewList()
	cjk := NewCJK(d)
	for cursor := range input {
		cjk.Analyze(input, cursor, charkind.Of(input[cursor]), out)
	}

	var got []lexeme.Lexeme
	out.Each(func(lx lexeme.Lexeme) { got = append(got, lx) })
	require.Len(t, got, 2)
	require.Equal(t, lexeme.New(0, 4, lexeme.CNWord), got[0])
	require.Equal(t, lexeme.New(0, 2, lexeme.CNWord), got[1])
}

func TestCJKAnalyzeSkipsUseless(t *testing.T) {
	d := dict.NewDictionary()
	input := []rune(" ")
	out := lexeme.NewList()
	NewCJK(d).Analyze(input, 0, charkind.Useless, out)
	require.True(t, out.Empty())
}
