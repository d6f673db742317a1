package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewShoe(t *testing.T) {
	tests := []struct {
		name     string
		numDecks int
		want     int
	}{
		{"single deck", 1, 52},
		{"double deck", 2, 104},
		{"casino shoe", 6, 312},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shoe := NewShoe(tt.numDecks)
			require.Equal(t, tt.want, shoe.Remaining())
		})
	}
}

func TestShoeDraw(t *testing.T) {
	shoe := NewShoe(1)

	card := shoe.Draw()
	require.NotEmpty(t, card.Suit)
	require.NotEmpty(t, card.Value)
	require.Equal(t, 51, shoe.Remaining())
}

func TestShoeReshufflesWhenLow(t *testing.T) {
	shoe := NewShoe(1)

	// Drain down to the reshuffle threshold.
	for shoe.Remaining() >= DefaultReshuffleUnder {
		shoe.Draw()
	}
	require.Less(t, shoe.Remaining(), DefaultReshuffleUnder)

	// The next draw must rebuild the full shoe before dealing.
	shoe.Draw()
	require.Equal(t, 51, shoe.Remaining())
}

func TestShoeDrawNeverFails(t *testing.T) {
	shoe := NewShoe(1)

	// Far more draws than one deck holds; every draw must return a card
	// and the remaining count must never go negative.
	for i := 0; i < 500; i++ {
		card := shoe.Draw()
		require.NotEmpty(t, card.Value, "draw %d returned an empty card", i)
		require.GreaterOrEqual(t, shoe.Remaining(), 0)
	}
}

func TestShoeResetRebuildsFullMultiple(t *testing.T) {
	shoe := NewShoe(2)
	shoe.Draw()
	shoe.Draw()
	shoe.Reset()
	require.Equal(t, 104, shoe.Remaining())
}
