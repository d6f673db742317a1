package events

import (
	"github.com/lazharichir/blackjack/cards"
)

// Seat identifies which side of the table a card went to.
type Seat string

const (
	SeatPlayer Seat = "player"
	SeatDealer Seat = "dealer"
)

// RoundStarted represents the event when a new round begins.
type RoundStarted struct {
	SessionID string
	RoundID   string
	Balance   int64
}

func (e RoundStarted) EventName() string { return "round-started" }

// BetPlaced represents the event when the player places their bet and the
// stake is debited from their balance.
type BetPlaced struct {
	SessionID string
	RoundID   string
	Amount    int64
}

func (e BetPlaced) EventName() string { return "bet-placed" }

// CardDealt represents the event when an initial card is dealt to a seat.
type CardDealt struct {
	SessionID string
	RoundID   string
	Seat      Seat
	Card      cards.Card
}

func (e CardDealt) EventName() string { return "card-dealt" }

// PlayerHit represents the event when the player takes another card.
type PlayerHit struct {
	SessionID string
	RoundID   string
	Card      cards.Card
	HandValue int
}

func (e PlayerHit) EventName() string { return "player-hit" }

// PlayerStood represents the event when the player ends their turn.
type PlayerStood struct {
	SessionID string
	RoundID   string
	HandValue int
}

func (e PlayerStood) EventName() string { return "player-stood" }

// PlayerDoubledDown represents the event when the player doubles their bet
// for exactly one more card. The extra stake equals the original bet.
type PlayerDoubledDown struct {
	SessionID  string
	RoundID    string
	ExtraStake int64
	Card       cards.Card
	HandValue  int
}

func (e PlayerDoubledDown) EventName() string { return "player-doubled-down" }

// DealerDrew represents the event when the dealer automaton draws a card.
type DealerDrew struct {
	SessionID string
	RoundID   string
	Card      cards.Card
	HandValue int
}

func (e DealerDrew) EventName() string { return "dealer-drew" }

// RoundSettled represents the event when a round ends and the payout, if
// any, has been credited back to the balance.
type RoundSettled struct {
	SessionID   string
	RoundID     string
	Outcome     string
	Bet         int64
	Payout      int64
	Balance     int64
	PlayerValue int
	DealerValue int
}

func (e RoundSettled) EventName() string { return "round-settled" }
