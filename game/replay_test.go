package game

import (
	"testing"

	"github.com/lazharichir/blackjack/events"
	"github.com/stretchr/testify/require"
)

func TestReplayBalanceMatchesSession(t *testing.T) {
	// Three rounds on one shoe: a natural win, a bust, and a push.
	shoe := stackedShoe(t,
		"As", "9d", "Kh", "7c", // round 1: player natural
		"10s", "2d", "9h", "3c", "Kd", // round 2: player hits and busts
		"10s", "10d", "8h", "8c", // round 3: push
	)
	session := NewSession(shoe, 10000, events.NewInMemoryEventStore())

	playRound := func(bet Cents, act func(*Round)) {
		round, err := session.NewRound()
		require.NoError(t, err)
		require.NoError(t, round.PlaceBet(bet))
		require.NoError(t, round.DealInitial())
		if act != nil && round.Phase == PhasePlayerTurn {
			act(round)
		}
	}

	playRound(1000, nil)
	playRound(2000, func(r *Round) {
		require.NoError(t, r.Hit())
	})
	playRound(500, func(r *Round) {
		require.NoError(t, r.Stand())
		require.NoError(t, r.PlayDealer())
	})

	log, err := session.Events()
	require.NoError(t, err)

	require.Equal(t, session.Balance, ReplayBalance(log, 10000))

	played, won := ReplayRounds(log)
	require.Equal(t, 3, played)
	require.Equal(t, 1, won)
}

func TestReplayBalanceEmptyLog(t *testing.T) {
	require.Equal(t, Cents(4200), ReplayBalance(nil, 4200))
}
