package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspositionsBasic(t *testing.T) {
	ts := Transpositions("abc", "bca")

	require.Len(t, ts, 4)
	assert.Equal(t, Transposition{Start: 0, Destination: 2, Span: 1}, ts[0])
	assert.Equal(t, Transposition{Start: 1, Destination: 0, Span: 1}, ts[1])
	assert.Equal(t, Transposition{Start: 1, Destination: 0, Span: 2}, ts[2])
	assert.Equal(t, Transposition{Start: 2, Destination: 1, Span: 1}, ts[3])
}

func TestTranspositionsIdentical(t *testing.T) {
	ts := Transpositions("abc", "abc")
	// every substring matches itself, plus nothing else for distinct letters
	assert.Contains(t, ts, Transposition{Start: 0, Destination: 0, Span: 3})
}

func TestCovers(t *testing.T) {
	ts := Transpositions("abc", "bca")
	require.Len(t, ts, 4)

	// only the span-2 run and the single letters inside it cover each other
	covering := map[[2]int]bool{
		{1, 2}: true, {2, 1}: true,
		{2, 3}: true, {3, 2}: true,
	}
	for i := range ts {
		for j := range ts {
			if i == j {
				continue
			}
			assert.Equal(t, covering[[2]int{i, j}], Covers(ts[i], ts[j]),
				"Covers(ts[%d], ts[%d])", i, j)
		}
	}
}

func TestCoversReflexive(t *testing.T) {
	for _, tr := range Transpositions("abcd", "dcba") {
		assert.True(t, Covers(tr, tr))
	}
}

func TestMaximumOverlap(t *testing.T) {
	ts := Transpositions("abcdabda", "dabdacba")
	rest := maximumOverlap(ts)
	assert.Len(t, rest, 10)
}

func TestGreedyScore(t *testing.T) {
	ts := Transpositions("12345678", "56783421")
	assert.Equal(t, 4, GreedyScore(ts))
}

func TestGreedyScoreEmpty(t *testing.T) {
	assert.Equal(t, 1, GreedyScore(nil))
	assert.Equal(t, 1, GreedyScore([]Transposition{}))
}

func TestScoreIdentity(t *testing.T) {
	for _, s := range []string{"a", "abc", "listen", "stone age"} {
		assert.Equal(t, 1, Score(s, s), "input %q", s)
	}
}

func TestScorePermutationsAtLeastTwo(t *testing.T) {
	for _, p := range []string{"abdc", "bacd", "badc", "dcba", "cdab"} {
		score := Score("abcd", p)
		t.Logf("abcd vs %s scored %d", p, score)
		assert.GreaterOrEqual(t, score, 2, "permutation %q", p)
	}
}

func TestScoreIgnoresSpaces(t *testing.T) {
	base := Score("listen", "silent")
	assert.Equal(t, base, Score("lis ten", "silent"))
	assert.Equal(t, base, Score("listen", "sil ent"))
	assert.Equal(t, base, Score("l i s t e n", "s i l e n t"))
}

func TestScoreRanksScrambleAboveSharedRun(t *testing.T) {
	// keeping a long run shared with the goal should score lower than
	// scattering the letters
	long := Score("abcdefgh", "habcdefg")
	scattered := Score("abcdefgh", "hgfedcba")
	t.Logf("shared run %d, scattered %d", long, scattered)
	assert.Less(t, long, scattered)
}

func TestScoreReusesPooledBuffers(t *testing.T) {
	// repeated scoring must not bleed state between calls
	first := Score("12345678", "56783421")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score("12345678", "56783421"))
		assert.Equal(t, 1, Score("abc", "abc"))
	}
}

func BenchmarkScore(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Score("the morse code", "here come dots")
	}
}
