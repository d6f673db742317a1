package cards

import (
	"math/rand"
	"time"
)

// Stack represents multiple cards
type Stack []Card

// NewDeck52 creates a standard deck of 52 cards
func NewDeck52() Stack {
	var deck Stack
	for _, suit := range Suits {
		for _, value := range Values {
			deck = append(deck, Card{Suit: suit, Value: value})
		}
	}
	return deck
}

// ShuffleCards shuffles a stack of cards randomly and returns a new stack,
// leaving the input untouched.
func ShuffleCards(stack Stack) Stack {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	shuffled := make(Stack, len(stack))
	copy(shuffled, stack)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
