package poker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func low(t *testing.T, cards string, d LowDiscipline) (HandValue, bool) {
	t.Helper()
	v, ok, err := EvaluateLow(MustParseCards(cards), d)
	require.NoError(t, err)
	return v, ok
}

func TestEightOrBetter(t *testing.T) {
	t.Parallel()

	wheel, ok := low(t, "Ah2c3d4s5hKdKc", EightOrBetter)
	require.True(t, ok)
	assert.Equal(t, encode(NoPair, 4, 3, 2, 1, 0), wheel.LowRaw())

	ascending := []string{
		"8h7c3d2sAh",
		"7h6c3d2sAh",
		"6h5c3d2sAh",
		"6h4c3d2sAh",
		"5h4c3d2sAc",
	}
	var prev HandValue
	for i, s := range ascending {
		v, ok := low(t, s, EightOrBetter)
		require.True(t, ok, s)
		if i > 0 {
			assert.Greater(t, v, prev, "%s should beat %s", s, ascending[i-1])
		}
		prev = v
	}

	// straights and flushes do not hurt a low
	suited, ok := low(t, "Ah2h3h4h5h", EightOrBetter)
	require.True(t, ok)
	assert.Equal(t, wheel, suited)

	tests := []struct {
		name  string
		cards string
		ok    bool
	}{
		{"nine is too high", "Ah2c3d4s9hTdJc", false},
		{"paired board", "Ah2c3d3s8hKdKc", false},
		{"pair skipped", "Ah2c3d4s8h8dKc", true},
	}
	for _, tt := range tests {
		_, ok := low(t, tt.cards, EightOrBetter)
		assert.Equal(t, tt.ok, ok, tt.name)
	}
}

func TestAceToFive(t *testing.T) {
	t.Parallel()

	v, ok := low(t, "AhAdAc2h2d2c3h", AceToFive)
	require.True(t, ok)
	assert.Equal(t, TwoPair, v.LowRaw().Type())

	kingLow, ok := low(t, "KsQdJh9c8s7d6h", AceToFive)
	require.True(t, ok)
	assert.Equal(t, NoPair, kingLow.LowRaw().Type())

	pair, _ := low(t, "AhAd2c3s4h", AceToFive)
	assert.Greater(t, kingLow, pair)
	assert.Greater(t, pair, v)
}

func TestDeuceToSeven(t *testing.T) {
	t.Parallel()

	number1, ok := low(t, "7h5d4c3s2h", DeuceToSeven)
	require.True(t, ok)

	ascending := []string{
		"2h3h4h5h7h", // flush
		"2h3d4c5s6h", // straight
		"2h2d3c4s5h", // pair
		"Ah5d4c3s2h", // ace high, not a straight
		"Kh5d4c3s2h",
		"8h6d4c3s2h",
		"7h6d4c3s2h",
		"7h5d4c3s2h",
	}
	var prev HandValue
	for i, s := range ascending {
		v, ok := low(t, s, DeuceToSeven)
		require.True(t, ok, s)
		if i > 0 {
			assert.Greater(t, v, prev, "%s should beat %s", s, ascending[i-1])
		}
		prev = v
	}

	best, ok := low(t, "7h5d4c3s2hKdKc", DeuceToSeven)
	require.True(t, ok)
	assert.Equal(t, number1, best)
}

func TestEvaluateLowNoDiscipline(t *testing.T) {
	t.Parallel()

	_, ok := low(t, "Ah2c3d4s5h", NoLow)
	assert.False(t, ok)

	_, _, err := EvaluateLow(MustParseCards("Ah2c3d4s"), AceToFive)
	require.ErrorIs(t, err, ErrInvalidHand)
}

func TestLowDisciplineString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", NoLow.String())
	assert.Equal(t, "ace-to-five", AceToFive.String())
	assert.Equal(t, "8-or-better", EightOrBetter.String())
	assert.Equal(t, "deuce-to-seven", DeuceToSeven.String())
	assert.Equal(t, "unknown", LowDiscipline(9).String())
}

func TestHandValueStringLows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		d     LowDiscipline
		want  string
	}{
		{"eight-or-better wheel", "Ah2c3d4s5h", EightOrBetter, "NoPair 5432A"},
		{"eight-or-better rough", "8h7c3d2sAh", EightOrBetter, "NoPair 8732A"},
		{"ace-to-five two pair", "AhAdAc2h2d2c3h", AceToFive, "TwoPair 2A3"},
		{"deuce-to-seven number one", "7h5d4c3s2h", DeuceToSeven, "NoPair 75432"},
		{"deuce-to-seven ace high", "Ah5d4c3s2h", DeuceToSeven, "NoPair A5432"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, ok := low(t, tt.cards, tt.d)
			require.True(t, ok)
			assert.NotPanics(t, func() { _ = v.String() })
			assert.NotContains(t, fmt.Sprint(v), "PANIC")
			assert.Equal(t, tt.want, v.LowString(tt.d))
		})
	}
}

func TestHandValueStringHigh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  string
	}{
		{"AhKhQhJhTh", "StFlush A"},
		{"KhKdKc2s2h", "FlHouse K2"},
		{"AhAdKcKs9h", "TwoPair AK9"},
		{"9h7d5c3s2h", "NoPair 97532"},
	}
	for _, tt := range tests {
		v, err := EvaluateHigh(MustParseCards(tt.cards))
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.String(), tt.cards)
	}
	assert.Equal(t, "HandValue(4294967295)", HandValue(0xFFFFFFFF).String())
	assert.Equal(t, "HandValue(0)", HandValue(0).LowString(AceToFive))
}
