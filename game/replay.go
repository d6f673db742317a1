package game

import (
	"github.com/lazharichir/blackjack/events"
)

// ReplayBalance reconstructs a session's closing balance from its event
// log and the balance it started with. Only three event types move money:
// bets and double-down stakes debit, settlements credit the payout.
func ReplayBalance(log []events.Event, startingBalance Cents) Cents {
	balance := startingBalance

	for _, event := range log {
		switch e := event.(type) {
		case events.BetPlaced:
			balance -= Cents(e.Amount)
		case events.PlayerDoubledDown:
			balance -= Cents(e.ExtraStake)
		case events.RoundSettled:
			balance += Cents(e.Payout)
		}
	}

	return balance
}

// ReplayRounds counts settled rounds and wins in a session's event log.
func ReplayRounds(log []events.Event) (played, won int) {
	for _, event := range log {
		if settled, ok := event.(events.RoundSettled); ok {
			played++
			if Outcome(settled.Outcome).IsWin() {
				won++
			}
		}
	}
	return played, won
}
