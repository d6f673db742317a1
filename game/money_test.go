package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCentsString(t *testing.T) {
	tests := []struct {
		amount Cents
		want   string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
		{1050, "$10.50"},
		{10000, "$100.00"},
		{-250, "-$2.50"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.amount.String())
	}
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cents
		wantErr bool
	}{
		{"whole dollars", "10", 1000, false},
		{"dollars and cents", "2.50", 250, false},
		{"leading dollar sign", "$25", 2500, false},
		{"surrounding spaces", "  7.5 ", 750, false},
		{"zero", "0", 0, false},
		{"negative", "-5", -500, false},
		{"rounds sub-cent input", "0.005", 1, false},
		{"not a number", "ten", 0, true},
		{"empty", "", 0, true},
		{"just a dollar sign", "$", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCents(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
