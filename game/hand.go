package game

import (
	"strings"

	"github.com/lazharichir/blackjack/cards"
)

// blackjackTarget is the value a hand may not exceed.
const blackjackTarget = 21

// Hand holds one side's cards for a single round. Cards are append-only
// within a round; the value is computed on demand, never cached.
type Hand struct {
	Cards cards.Stack
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(card cards.Card) {
	h.Cards = append(h.Cards, card)
}

// Size returns the number of cards in the hand.
func (h *Hand) Size() int {
	return len(h.Cards)
}

// Value computes the blackjack value of the hand. Every ace starts at 11;
// while the total busts and soft aces remain, aces are demoted to 1 one
// at a time.
func (h *Hand) Value() int {
	total := 0
	aces := 0

	for _, card := range h.Cards {
		total += card.Points()
		if card.IsAce() {
			aces++
		}
	}

	for total > blackjackTarget && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// valuing 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == blackjackTarget
}

// IsBust reports whether the hand exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Value() > blackjackTarget
}

// Describe renders the hand as "[A♠] [K♥]". With maskFirst set, the first
// card is hidden, as for the dealer before their turn.
func (h *Hand) Describe(maskFirst bool) string {
	parts := make([]string, 0, len(h.Cards))
	for i, card := range h.Cards {
		if maskFirst && i == 0 {
			parts = append(parts, "[??]")
			continue
		}
		parts = append(parts, "["+card.String()+"]")
	}
	return strings.Join(parts, " ")
}
