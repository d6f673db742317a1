package events

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
)

func TestInMemoryEventStore(t *testing.T) {
	store := NewInMemoryEventStore()

	sessionID := "session-123"
	roundID := "round-456"

	t.Run("Append and load events", func(t *testing.T) {
		roundStarted := RoundStarted{
			SessionID: sessionID,
			RoundID:   roundID,
			Balance:   10000,
		}

		betPlaced := BetPlaced{
			SessionID: sessionID,
			RoundID:   roundID,
			Amount:    1000,
		}

		cardDealt := CardDealt{
			SessionID: sessionID,
			RoundID:   roundID,
			Seat:      SeatPlayer,
			Card:      cards.Card{Suit: cards.Spades, Value: cards.Ace},
		}

		if err := store.Append(roundStarted); err != nil {
			t.Errorf("Failed to append RoundStarted event: %v", err)
		}
		if err := store.Append(betPlaced); err != nil {
			t.Errorf("Failed to append BetPlaced event: %v", err)
		}
		if err := store.Append(cardDealt); err != nil {
			t.Errorf("Failed to append CardDealt event: %v", err)
		}

		events, err := store.LoadEvents(sessionID)
		if err != nil {
			t.Errorf("Failed to load events: %v", err)
		}

		if len(events) != 3 {
			t.Errorf("Expected 3 events, got %d", len(events))
		}

		// Check event types and ordering
		if events[0].EventName() != "round-started" {
			t.Errorf("Expected first event to be round-started, got %s", events[0].EventName())
		}
		if events[1].EventName() != "bet-placed" {
			t.Errorf("Expected second event to be bet-placed, got %s", events[1].EventName())
		}
		if events[2].EventName() != "card-dealt" {
			t.Errorf("Expected third event to be card-dealt, got %s", events[2].EventName())
		}
	})

	t.Run("Load events for non-existent session", func(t *testing.T) {
		events, err := store.LoadEvents("non-existent-session")
		if err != nil {
			t.Errorf("Expected no error for non-existent session, got %v", err)
		}
		if len(events) != 0 {
			t.Errorf("Expected 0 events for non-existent session, got %d", len(events))
		}
	})

	t.Run("Append event without session ID", func(t *testing.T) {
		err := store.Append(RoundStarted{RoundID: roundID})
		if err == nil {
			t.Error("Expected an error when appending an event without a session ID")
		}
	})
}
