package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is a currency amount in integer cents.
type Cents int64

// String formats the amount as dollars, e.g. 1050 -> "$10.50".
func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

// ParseCents parses free-form decimal dollar text ("10", "2.50", "$25")
// into cents, rounding to the nearest cent.
func ParseCents(s string) (Cents, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "$")

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return Cents(math.Round(f * 100)), nil
}
