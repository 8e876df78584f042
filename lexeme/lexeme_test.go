package lexeme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexemeOrdering(t *testing.T) {
	a := New(0, 3, CNWord)
	b := New(0, 2, CNWord)
	c := New(1, 2, CNWord)
	require.True(t, a.Less(b), "same begin, longer sorts first")
	require.True(t, b.Less(c), "smaller begin sorts first")
	require.False(t, c.Less(a))
}

func TestLexemeEqual(t *testing.T) {
	a := New(0, 3, CNWord)
	b := New(0, 3, English)
	require.True(t, a.Equal(b), "equality is purely positional")
}

func TestLexemeMaterialize(t *testing.T) {
	input := []rune("中华人民")
	lx := New(0, 2, CNWord)
	lx.Materialize(input)
	require.Equal(t, "中华", lx.Text())
}

func TestLexemeMaterializeOutOfRangeIsNoop(t *testing.T) {
	input := []rune("中华")
	lx := New(0, 5, CNWord)
	lx.Materialize(input)
	require.Equal(t, "", lx.Text())
}

func TestLexemeAppend(t *testing.T) {
	a := New(0, 2, Arabic)
	b := New(2, 5, CNNum)
	require.True(t, a.Append(b, CNNum))
	require.Equal(t, 0, a.Begin())
	require.Equal(t, 5, a.End())
	require.Equal(t, CNNum, a.Type())
}

func TestLexemeAppendRequiresAdjacency(t *testing.T) {
	a := New(0, 2, Arabic)
	b := New(3, 5, CNNum)
	require.False(t, a.Append(b, CNNum))
	require.Equal(t, 2, a.End(), "failed append leaves the lexeme unchanged")
}

func TestTypeStringMatchesConsumerNames(t *testing.T) {
	cases := map[Type]string{
		English:  "ENGLISH",
		Arabic:   "ARABIC",
		Letter:   "LETTER",
		CNWord:   "CN_WORD",
		CNChar:   "CN_CHAR",
		OtherCJK: "OtherCjk",
		CNNum:    "TYPE_CNUM",
		Count:    "COUNT",
		CQuan:    "TYPE_CQUAN",
		Unknown:  "UNKNOWN",
	}
	for typ, want := range cases {
		require.Equal(t, want, typ.String())
	}
}
