package console

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
)

// UI drives the game on the terminal: prompt loops, hand rendering, the
// session loop, and the outer new-game loop.
type UI struct {
	cfg    config.Config
	logger *slog.Logger
}

// New creates a console UI for the given settings.
func New(cfg config.Config, logger *slog.Logger) *UI {
	return &UI{cfg: cfg, logger: logger}
}

// Run plays games until the player declines a fresh one.
func (ui *UI) Run() {
	renderTitle()
	pterm.Info.Printfln("Welcome to Blackjack! Starting balance: %s", game.Cents(ui.cfg.StartingBalanceCents))

	for {
		if err := ui.runSession(); err != nil {
			ui.logger.Error("session aborted", "error", err)
			return
		}
		if !ui.promptYesNo("Start a new game? (Y/N)") {
			pterm.Info.Println("Thanks for playing! Goodbye!")
			return
		}
	}
}

// runSession plays rounds with one bankroll until the player declines to
// continue or runs out of money.
func (ui *UI) runSession() error {
	shoe := cards.NewShoe(ui.cfg.NumDecks)
	shoe.ReshuffleUnder = ui.cfg.ReshuffleUnder

	store := events.NewInMemoryEventStore()
	session := game.NewSession(shoe, game.Cents(ui.cfg.StartingBalanceCents), store)

	ui.logger.Info("session started",
		"session_id", session.ID,
		"balance", session.Balance.String(),
		"decks", ui.cfg.NumDecks,
	)

	for session.Balance > 0 {
		if err := ui.playRound(session); err != nil {
			return err
		}
		if session.Balance <= 0 {
			pterm.Warning.Println("You're out of money! Better luck next time!")
			break
		}
		if !ui.promptYesNo("Play another hand? (Y/N)") {
			break
		}
	}

	return ui.finishSession(session)
}

// playRound runs one full hand: bet, deal, player decisions, dealer play,
// settlement.
func (ui *UI) playRound(session *game.Session) error {
	pterm.Println()
	pterm.Info.Printfln("Balance: %s", session.Balance)

	round, err := session.NewRound()
	if err != nil {
		return err
	}

	if err := ui.promptBet(round, session.Balance); err != nil {
		return err
	}
	if err := round.DealInitial(); err != nil {
		return err
	}

	if round.Phase != game.PhaseSettled {
		renderHands(round, true)
	}

	for round.Phase == game.PhasePlayerTurn {
		switch ui.promptAction(round) {
		case ActionHit:
			if err := round.Hit(); err != nil {
				return err
			}
			if round.Phase == game.PhasePlayerTurn {
				renderHands(round, true)
			}
		case ActionStand:
			if err := round.Stand(); err != nil {
				return err
			}
		case ActionDouble:
			if !round.CanDoubleDown() {
				pterm.Error.Println("Cannot double down! You need exactly two cards and a balance covering the bet.")
				continue
			}
			if err := round.DoubleDown(); err != nil {
				return err
			}
			pterm.Info.Println("Doubled down!")
		}
	}

	if round.Phase == game.PhaseDealerTurn {
		pterm.Info.Println("Dealer's turn...")
		if err := round.PlayDealer(); err != nil {
			return err
		}
	}

	renderHands(round, false)
	renderOutcome(round)
	pterm.Info.Printfln("Balance: %s", session.Balance)
	return nil
}

// promptBet asks for a stake until the round accepts one. Malformed or
// out-of-range amounts just re-prompt.
func (ui *UI) promptBet(round *game.Round, balance game.Cents) error {
	label := fmt.Sprintf("Place your bet (balance %s)", balance)
	for {
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(label).Show()

		amount, err := game.ParseCents(input)
		if err != nil {
			pterm.Error.Println("Please enter a valid number!")
			continue
		}

		err = round.PlaceBet(amount)
		if errors.Is(err, game.ErrBetOutOfRange) {
			pterm.Error.Println("Invalid bet amount!")
			continue
		}
		return err
	}
}

// promptAction asks for a decision until the answer parses. Eligibility
// of double down is checked by the caller.
func (ui *UI) promptAction(round *game.Round) Action {
	options := "[H]it, [S]tand"
	if round.CanDoubleDown() {
		options += ", [D]ouble Down"
	}

	for {
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Choose action: " + options).Show()

		action, err := ParseAction(input)
		if err != nil {
			pterm.Error.Println("Invalid choice! Please enter H, S, or D.")
			continue
		}
		return action
	}
}

func (ui *UI) promptYesNo(label string) bool {
	input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(label).Show()
	return ParseYesNo(input)
}

// finishSession prints the game-over summary and, in debug mode, dumps
// the session's event log with the balance replayed from it.
func (ui *UI) finishSession(session *game.Session) error {
	log, err := session.Events()
	if err != nil {
		return err
	}

	played, won := game.ReplayRounds(log)
	renderGameOver(session.Balance, played, won)

	ui.logger.Info("session ended",
		"session_id", session.ID,
		"balance", session.Balance.String(),
		"rounds", played,
	)

	if ui.cfg.Debug {
		replayed := game.ReplayBalance(log, game.Cents(ui.cfg.StartingBalanceCents))
		ui.logger.Debug("session event log",
			"replayed_balance", replayed.String(),
			"events", litter.Sdump(log),
		)
	}
	return nil
}
