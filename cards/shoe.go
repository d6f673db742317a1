package cards

import (
	"math/rand"
	"time"
)

// DefaultReshuffleUnder is the card count below which a shoe rebuilds
// itself before the next draw.
const DefaultReshuffleUnder = 10

// Shoe represents multiple decks of cards drawn from across many rounds.
// It reshuffles in place once it runs low, so a draw never fails.
type Shoe struct {
	Cards          Stack
	NumDecks       int
	ReshuffleUnder int

	rng *rand.Rand
}

// NewShoe creates a new shoe with a given number of decks, shuffled.
func NewShoe(numDecks int) *Shoe {
	s := &Shoe{
		NumDecks:       numDecks,
		ReshuffleUnder: DefaultReshuffleUnder,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.Reset()
	return s
}

// Reset rebuilds the shoe as NumDecks full 52-card decks and shuffles it.
func (s *Shoe) Reset() {
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var stack Stack
	for i := 0; i < s.NumDecks; i++ {
		stack = append(stack, NewDeck52()...)
	}

	s.rng.Shuffle(len(stack), func(i, j int) {
		stack[i], stack[j] = stack[j], stack[i]
	})

	s.Cards = stack
}

// Draw removes and returns the top card of the shoe. When fewer than
// ReshuffleUnder cards remain, the shoe resets first.
func (s *Shoe) Draw() Card {
	if len(s.Cards) == 0 || len(s.Cards) < s.ReshuffleUnder {
		s.Reset()
	}

	card := s.Cards[len(s.Cards)-1]
	s.Cards = s.Cards[:len(s.Cards)-1]
	return card
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.Cards)
}
