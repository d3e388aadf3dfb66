package poker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankString(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteByte(rankChars[c.Rank()])
	}
	return b.String()
}

func TestBestHandCombination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		want  []string
	}{
		{"two pair", "AcAsTd7s7h3s2c", []string{"TwoPair", "As", "Ac", "7s", "7h", "Td"}},
		{"full house", "KhKdKc2s2d3c3h", []string{"FlHouse", "Kc", "Kd", "Kh", "3c", "3h"}},
		{"wheel", "Ah2c3d4s5hKdKc", []string{"Straight", "5h", "4s", "3d", "2c", "Ah"}},
		{"steel wheel", "5h4h3h2hAh9c9d", []string{"StFlush", "5h", "4h", "3h", "2h", "Ah"}},
		{"broadway", "AsKdQcJhTs2c2d", []string{"Straight", "As", "Kd", "Qc", "Jh", "Ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			best, err := BestHand(MustParseCards(tt.cards), Hi)
			require.NoError(t, err)
			assert.Equal(t, tt.want, best.Combination())
			assert.True(t, best.Qualified())

			v, err := EvaluateHigh(MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, v, best.Value)
		})
	}
}

func TestBestLow(t *testing.T) {
	t.Parallel()

	best, err := BestHand(MustParseCards("Ah2c3d8s7hKdKc"), Lo)
	require.NoError(t, err)
	assert.Equal(t, []string{"NoPair", "8s", "7h", "3d", "2c", "Ah"}, best.Combination())

	best, err = BestHand(MustParseCards("Ah2c9dTsJhKdKc"), Lo)
	require.NoError(t, err)
	assert.False(t, best.Qualified())
	assert.Equal(t, []string{"Nothing"}, best.Combination())

	razz, err := BestLow(MustParseCards("AhAdAc2h2d2c3h"), AceToFive)
	require.NoError(t, err)
	assert.Equal(t, TwoPair, razz.Type)
	assert.Equal(t, "22AA3", rankString(razz.Cards))

	deuce, err := BestLow(MustParseCards("Ah2d3c4s5hKdKc"), DeuceToSeven)
	require.NoError(t, err)
	assert.Equal(t, NoPair, deuce.Type)
	assert.Equal(t, "K5432", rankString(deuce.Cards))
}

func TestBestOmaha(t *testing.T) {
	t.Parallel()

	hi, err := BestOmaha(MustParseCards("AhKh2c3d"), MustParseCards("Qh7h4h9cTs"), Hi)
	require.NoError(t, err)
	assert.Equal(t, []string{"Flush", "Ah", "Kh", "Qh", "7h", "4h"}, hi.Combination())

	lo, err := BestOmaha(MustParseCards("KhKdQcQs"), MustParseCards("2h3d4c5s6h"), Lo)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nothing"}, lo.Combination())

	_, err = BestOmaha(MustParseCards("Kh"), MustParseCards("2h3d4c5s6h"), Hi)
	require.ErrorIs(t, err, ErrInvalidHand)
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"hi", "high"} {
		side, err := ParseSide(s)
		require.NoError(t, err)
		assert.Equal(t, Hi, side)
	}
	for _, s := range []string{"lo", "low"} {
		side, err := ParseSide(s)
		require.NoError(t, err)
		assert.Equal(t, Lo, side)
	}
	_, err := ParseSide("both")
	require.Error(t, err)
	assert.Equal(t, "lo", Lo.String())
}
