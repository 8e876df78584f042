package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrieInsertAndMatchWord(t *testing.T) {
	tr := NewTrie()
	tr.Insert("中华")
	tr.Insert("中华人民")

	hits := tr.MatchWord([]rune("中华人民"))
	require.Len(t, hits, 2)
	require.True(t, hits[0].IsMatch())
	require.Equal(t, 0, hits[0].Begin)
	require.Equal(t, 2, hits[0].End)
	require.True(t, hits[1].IsMatch())
	require.Equal(t, 0, hits[1].Begin)
	require.Equal(t, 4, hits[1].End)
}

func TestTrieMatchEmitsPrefixFlag(t *testing.T) {
	tr := NewTrie()
	tr.Insert("中华")
	tr.Insert("中华人民")

	hits := tr.Match([]rune("中华"), 0, 2)
	require.Len(t, hits, 1)
	require.True(t, hits[0].IsMatch())
	require.True(t, hits[0].IsPrefix(), "中华 has a child (人) so it is still a viable prefix")
}

func TestTrieMatchNoDuplicateFinalHit(t *testing.T) {
	tr := NewTrie()
	tr.Insert("ab")
	tr.Insert("abc")

	hits := tr.Match([]rune("abc"), 0, 3)
	require.Len(t, hits, 2, "ab (intermediate MATCH) then abc (final MATCH, no PREFIX) — no duplicate")
	require.Equal(t, 2, hits[0].End)
	require.True(t, hits[0].IsMatch())
	require.True(t, hits[0].IsPrefix())
	require.Equal(t, 3, hits[1].End)
	require.True(t, hits[1].IsMatch())
	require.False(t, hits[1].IsPrefix())
}

func TestTrieDelete(t *testing.T) {
	tr := NewTrie()
	tr.Insert("中华")
	require.True(t, tr.Exists("中华"))
	tr.Delete("中华")
	require.False(t, tr.Exists("中华"))
}

func TestTrieMatchOutOfRangeReturnsEmpty(t *testing.T) {
	tr := NewTrie()
	tr.Insert("中华")
	hits := tr.Match([]rune("中华"), 1, 5)
	require.Empty(t, hits)
}

func TestTrieMatchNoPathReturnsEmpty(t *testing.T) {
	tr := NewTrie()
	tr.Insert("中华")
	hits := tr.Match([]rune("日本"), 0, 2)
	require.Empty(t, hits)
}

func TestTrieInsertIdempotent(t *testing.T) {
	tr := NewTrie()
	tr.Insert("中华")
	tr.Insert("中华")
	require.Equal(t, 1, tr.Size())
}
