package console

import (
	"fmt"
	"strings"
)

// Action is a player decision entered at the prompt.
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
)

// ParseAction maps a single-letter answer to an action. Letters are
// case-insensitive; anything else is a recoverable input error.
func ParseAction(input string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "H":
		return ActionHit, nil
	case "S":
		return ActionStand, nil
	case "D":
		return ActionDouble, nil
	default:
		return "", fmt.Errorf("unrecognized action %q", input)
	}
}

// ParseYesNo reports whether the answer is affirmative. Anything other
// than an explicit yes counts as no.
func ParseYesNo(input string) bool {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y", "YES":
		return true
	default:
		return false
	}
}
