package console

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/lazharichir/blackjack/game"
)

func renderTitle() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("BLACK", pterm.FgLightWhite.ToStyle()),
		putils.LettersFromStringWithStyle("JACK", pterm.FgRed.ToStyle()),
	).Render()
}

// renderHands draws both hands. While the round is still being played the
// dealer's first card and total stay hidden.
func renderHands(round *game.Round, maskDealer bool) {
	dealerValue := "?"
	if !maskDealer {
		dealerValue = strconv.Itoa(round.Dealer.Value())
	}

	box := pterm.DefaultBox.WithHorizontalPadding(2)

	dealerPanel := pterm.Panel{Data: box.WithTitle("DEALER").WithTitleTopLeft().
		Sprintf("%s\nValue: %s", round.Dealer.Describe(maskDealer), dealerValue)}
	playerPanel := pterm.Panel{Data: box.WithTitle("YOU").WithTitleTopLeft().
		Sprintf("%s\nValue: %d", round.Player.Describe(false), round.Player.Value())}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{dealerPanel},
		{playerPanel},
	}).Render()
}

// outcomeText returns the result banner line for a settled round.
func outcomeText(outcome game.Outcome) string {
	switch outcome {
	case game.OutcomePlayerBlackjack:
		return "BLACKJACK! You win 3:2!"
	case game.OutcomeBlackjackPush:
		return "Both have blackjack. Push!"
	case game.OutcomeDealerBlackjack:
		return "Dealer has blackjack. You lose!"
	case game.OutcomePlayerBust:
		return "BUST! You exceeded 21. You lose!"
	case game.OutcomeDealerBust:
		return "Dealer busted! You win!"
	case game.OutcomePlayerWin:
		return "You win!"
	case game.OutcomeDealerWin:
		return "Dealer wins. You lose!"
	case game.OutcomePush:
		return "Push. Your stake is returned."
	default:
		return string(outcome)
	}
}

func renderOutcome(round *game.Round) {
	text := outcomeText(round.Outcome)
	switch {
	case round.Outcome.IsWin():
		pterm.Success.Println(text)
	case round.Outcome.IsPush():
		pterm.Warning.Println(text)
	default:
		pterm.Error.Println(text)
	}
}

func renderGameOver(balance game.Cents, played, won int) {
	pterm.DefaultBox.WithTitle(pterm.LightYellow("GAME OVER")).WithTitleTopCenter().
		WithHorizontalPadding(4).
		Printfln("Final balance: %s\nHands played: %d\nHands won: %d", balance, played, won)
}
