package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// Phase represents the current phase of a round
type Phase string

const (
	PhaseAwaitingBet Phase = "awaiting_bet"
	PhaseInitialDeal Phase = "initial_deal"
	PhasePlayerTurn  Phase = "player_turn"
	PhaseDealerTurn  Phase = "dealer_turn"
	PhaseSettled     Phase = "settled"
)

// Outcome represents how a settled round ended for the player.
type Outcome string

const (
	OutcomePlayerBlackjack Outcome = "player_blackjack"
	OutcomeDealerBlackjack Outcome = "dealer_blackjack"
	OutcomeBlackjackPush   Outcome = "blackjack_push"
	OutcomePlayerBust      Outcome = "player_bust"
	OutcomeDealerBust      Outcome = "dealer_bust"
	OutcomePlayerWin       Outcome = "player_win"
	OutcomeDealerWin       Outcome = "dealer_win"
	OutcomePush            Outcome = "push"
)

// IsWin reports whether the outcome pays the player more than their stake.
func (o Outcome) IsWin() bool {
	return o == OutcomePlayerBlackjack || o == OutcomeDealerBust || o == OutcomePlayerWin
}

// IsPush reports whether the outcome refunds the stake.
func (o Outcome) IsPush() bool {
	return o == OutcomePush || o == OutcomeBlackjackPush
}

// dealerStandsOn is the hand value at which the dealer stops drawing.
// The dealer stands on any 17, soft or hard.
const dealerStandsOn = 17

var (
	ErrWrongPhase      = errors.New("action not allowed in the current phase")
	ErrBetOutOfRange   = errors.New("bet must be positive and no larger than the balance")
	ErrCannotDouble    = errors.New("double down requires exactly two cards and a balance covering the bet")
	ErrSessionBankrupt = errors.New("balance is empty")
)

// DrawSource deals single cards. *cards.Shoe is the production source;
// tests substitute scripted sources.
type DrawSource interface {
	Draw() cards.Card
}

// Session owns the shoe and the player's balance across rounds. The shoe
// is shared between rounds and reshuffled in place, never recreated.
type Session struct {
	ID      string
	Shoe    DrawSource
	Balance Cents

	store events.EventStore
}

// NewSession creates a session with a starting balance.
func NewSession(shoe DrawSource, startingBalance Cents, store events.EventStore) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Shoe:    shoe,
		Balance: startingBalance,
		store:   store,
	}
}

// Events returns every event recorded for this session so far.
func (s *Session) Events() ([]events.Event, error) {
	return s.store.LoadEvents(s.ID)
}

// Round orchestrates one full hand of blackjack: bet placement, the
// initial deal, player decisions, the dealer automaton, and settlement.
type Round struct {
	ID      string
	Phase   Phase
	Bet     Cents
	Player  *Hand
	Dealer  *Hand
	Outcome Outcome
	Payout  Cents

	session *Session
}

// NewRound starts a new round in the session. The balance must be
// positive to sit down for a round.
func (s *Session) NewRound() (*Round, error) {
	if s.Balance <= 0 {
		return nil, ErrSessionBankrupt
	}

	round := &Round{
		ID:      uuid.NewString(),
		Phase:   PhaseAwaitingBet,
		Player:  NewHand(),
		Dealer:  NewHand(),
		session: s,
	}

	if err := s.store.Append(events.RoundStarted{
		SessionID: s.ID,
		RoundID:   round.ID,
		Balance:   int64(s.Balance),
	}); err != nil {
		return nil, fmt.Errorf("failed to append RoundStarted event: %w", err)
	}

	return round, nil
}

// PlaceBet debits the stake from the balance and moves to the initial
// deal. The bet must satisfy 0 < bet <= balance.
func (r *Round) PlaceBet(amount Cents) error {
	if r.Phase != PhaseAwaitingBet {
		return ErrWrongPhase
	}
	if amount <= 0 || amount > r.session.Balance {
		return ErrBetOutOfRange
	}

	r.Bet = amount
	r.session.Balance -= amount
	r.Phase = PhaseInitialDeal

	return r.emit(events.BetPlaced{
		SessionID: r.session.ID,
		RoundID:   r.ID,
		Amount:    int64(amount),
	})
}

// DealInitial deals two cards each, alternating player then dealer, and
// runs the natural-blackjack check. When either side holds a natural the
// round settles immediately; otherwise play passes to the player.
func (r *Round) DealInitial() error {
	if r.Phase != PhaseInitialDeal {
		return ErrWrongPhase
	}

	for i := 0; i < 2; i++ {
		if err := r.dealTo(r.Player, events.SeatPlayer); err != nil {
			return err
		}
		if err := r.dealTo(r.Dealer, events.SeatDealer); err != nil {
			return err
		}
	}

	playerNatural := r.Player.IsBlackjack()
	dealerNatural := r.Dealer.IsBlackjack()

	switch {
	case playerNatural && dealerNatural:
		return r.settle(OutcomeBlackjackPush)
	case playerNatural:
		return r.settle(OutcomePlayerBlackjack)
	case dealerNatural:
		return r.settle(OutcomeDealerBlackjack)
	}

	r.Phase = PhasePlayerTurn
	return nil
}

// Hit draws one card into the player's hand. Busting settles the round
// immediately; the dealer never plays against a busted player.
func (r *Round) Hit() error {
	if r.Phase != PhasePlayerTurn {
		return ErrWrongPhase
	}

	card := r.session.Shoe.Draw()
	r.Player.AddCard(card)

	if err := r.emit(events.PlayerHit{
		SessionID: r.session.ID,
		RoundID:   r.ID,
		Card:      card,
		HandValue: r.Player.Value(),
	}); err != nil {
		return err
	}

	if r.Player.IsBust() {
		return r.settle(OutcomePlayerBust)
	}
	return nil
}

// Stand ends the player's turn and hands play to the dealer.
func (r *Round) Stand() error {
	if r.Phase != PhasePlayerTurn {
		return ErrWrongPhase
	}

	r.Phase = PhaseDealerTurn
	return r.emit(events.PlayerStood{
		SessionID: r.session.ID,
		RoundID:   r.ID,
		HandValue: r.Player.Value(),
	})
}

// CanDoubleDown reports whether doubling down is currently legal: the
// player holds exactly two cards and the balance covers a second stake.
func (r *Round) CanDoubleDown() bool {
	return r.Phase == PhasePlayerTurn &&
		r.Player.Size() == 2 &&
		r.session.Balance >= r.Bet
}

// DoubleDown debits a second stake, doubles the bet, draws exactly one
// card, and ends the player's turn unconditionally.
func (r *Round) DoubleDown() error {
	if r.Phase != PhasePlayerTurn {
		return ErrWrongPhase
	}
	if !r.CanDoubleDown() {
		return ErrCannotDouble
	}

	extra := r.Bet
	r.session.Balance -= extra
	r.Bet += extra

	card := r.session.Shoe.Draw()
	r.Player.AddCard(card)

	if err := r.emit(events.PlayerDoubledDown{
		SessionID:  r.session.ID,
		RoundID:    r.ID,
		ExtraStake: int64(extra),
		Card:       card,
		HandValue:  r.Player.Value(),
	}); err != nil {
		return err
	}

	if r.Player.IsBust() {
		return r.settle(OutcomePlayerBust)
	}

	r.Phase = PhaseDealerTurn
	return nil
}

// PlayDealer runs the dealer automaton: draw while under 17, stand on any
// 17 including soft 17, then settle the round.
func (r *Round) PlayDealer() error {
	if r.Phase != PhaseDealerTurn {
		return ErrWrongPhase
	}

	for r.Dealer.Value() < dealerStandsOn {
		card := r.session.Shoe.Draw()
		r.Dealer.AddCard(card)

		if err := r.emit(events.DealerDrew{
			SessionID: r.session.ID,
			RoundID:   r.ID,
			Card:      card,
			HandValue: r.Dealer.Value(),
		}); err != nil {
			return err
		}
	}

	playerValue := r.Player.Value()
	dealerValue := r.Dealer.Value()

	switch {
	case r.Dealer.IsBust():
		return r.settle(OutcomeDealerBust)
	case playerValue > dealerValue:
		return r.settle(OutcomePlayerWin)
	case playerValue < dealerValue:
		return r.settle(OutcomeDealerWin)
	default:
		return r.settle(OutcomePush)
	}
}

func (r *Round) dealTo(hand *Hand, seat events.Seat) error {
	card := r.session.Shoe.Draw()
	hand.AddCard(card)

	return r.emit(events.CardDealt{
		SessionID: r.session.ID,
		RoundID:   r.ID,
		Seat:      seat,
		Card:      card,
	})
}

// settle credits the payout for the outcome and closes the round. The
// stake was debited at bet placement, so a loss pays nothing, a push pays
// the bet back, an even-money win pays twice the bet, and a natural
// blackjack pays two and a half times the bet (3:2).
func (r *Round) settle(outcome Outcome) error {
	var payout Cents
	switch outcome {
	case OutcomePlayerBlackjack:
		payout = r.Bet * 5 / 2
	case OutcomeDealerBust, OutcomePlayerWin:
		payout = r.Bet * 2
	case OutcomePush, OutcomeBlackjackPush:
		payout = r.Bet
	case OutcomePlayerBust, OutcomeDealerBlackjack, OutcomeDealerWin:
		payout = 0
	}

	r.session.Balance += payout
	r.Outcome = outcome
	r.Payout = payout
	r.Phase = PhaseSettled

	return r.emit(events.RoundSettled{
		SessionID:   r.session.ID,
		RoundID:     r.ID,
		Outcome:     string(outcome),
		Bet:         int64(r.Bet),
		Payout:      int64(payout),
		Balance:     int64(r.session.Balance),
		PlayerValue: r.Player.Value(),
		DealerValue: r.Dealer.Value(),
	})
}

func (r *Round) emit(event events.Event) error {
	if err := r.session.store.Append(event); err != nil {
		return fmt.Errorf("failed to append %s event: %w", event.EventName(), err)
	}
	return nil
}
