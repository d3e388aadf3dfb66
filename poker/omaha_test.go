package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateOmaha(t *testing.T) {
	t.Parallel()

	res, err := EvaluateOmaha(MustParseCards("Ah5cQsQd"), MustParseCards("2h3d4cKsKd"), EightOrBetter)
	require.NoError(t, err)
	assert.Equal(t, Straight, res.High.Type())
	assert.Equal(t, Five, res.High.Ranks()[0])
	require.True(t, res.LowFound)
	assert.Equal(t, encode(NoPair, 4, 3, 2, 1, 0), res.Low.LowRaw())

	res, err = EvaluateOmaha(MustParseCards("Ah5cQsQd"), MustParseCards("2h3d4cKsKd"), NoLow)
	require.NoError(t, err)
	assert.False(t, res.LowFound)
}

func TestEvaluateOmahaTwoFromPocket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pocket string
		board  string
		want   HandType
	}{
		// a single ace of hearts cannot complete the board's four hearts
		{"no one-card flush", "Ah2c3d4s", "KhQhJhTh9c", NoPair},
		{"pocket pair plus board pair", "AhAdKcKd", "AsAc7h8h9h", Quads},
		{"board trips need two pocket cards", "2c3d8s9s", "KhKdKs5c6h", Trips},
		{"two pocket hearts flush", "AhKh2c3d", "Qh7h4h9cTs", Flush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := EvaluateOmaha(MustParseCards(tt.pocket), MustParseCards(tt.board), NoLow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.High.Type())
		})
	}
}

func TestEvaluateOmahaLowNeedsTwoPocketCards(t *testing.T) {
	t.Parallel()

	res, err := EvaluateOmaha(MustParseCards("AhKdKcQs"), MustParseCards("2h3d4c5s6h"), EightOrBetter)
	require.NoError(t, err)
	assert.False(t, res.LowFound)
}

func TestEvaluateOmahaErrors(t *testing.T) {
	t.Parallel()

	_, err := EvaluateOmaha(MustParseCards("Ah"), MustParseCards("2h3d4c"), NoLow)
	require.ErrorIs(t, err, ErrInvalidHand)

	_, err = EvaluateOmaha(MustParseCards("AhKd"), MustParseCards("2h3d"), NoLow)
	require.ErrorIs(t, err, ErrInvalidHand)

	_, err = EvaluateOmaha(MustParseCards("AhKdQcJs"), MustParseCards("Ah3d4c"), NoLow)
	require.ErrorIs(t, err, ErrInvalidHand)
}
