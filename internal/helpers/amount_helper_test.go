package helpers_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechmarket/mech-api/internal/helpers"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      *big.Int
		errString string
	}{
		{name: "zero", input: "0", want: big.NewInt(0)},
		{name: "usdc amount", input: "4500000", want: big.NewInt(4500000)},
		{name: "beyond int64", input: "123456789012345678901234567890", want: mustBig(t, "123456789012345678901234567890")},
		{name: "empty", input: "", errString: "amount is required"},
		{name: "negative", input: "-1", errString: "must not be negative"},
		{name: "decimal point", input: "1.5", errString: "expected base-10 integer"},
		{name: "hex", input: "0x10", errString: "expected base-10 integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := helpers.ParseAmount(tt.input)
			if tt.errString != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, tt.want.Cmp(got))
		})
	}
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   *big.Int
		decimals int
		want     string
	}{
		{name: "nil", amount: nil, decimals: 6, want: "0"},
		{name: "no decimals", amount: big.NewInt(42), decimals: 0, want: "42"},
		{name: "whole units", amount: big.NewInt(2000000), decimals: 6, want: "2"},
		{name: "fractional", amount: big.NewInt(4500000), decimals: 6, want: "4.5"},
		{name: "sub-unit", amount: big.NewInt(500), decimals: 6, want: "0.0005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.FormatUnits(tt.amount, tt.decimals))
		})
	}
}

func mustBig(t *testing.T, value string) *big.Int {
	t.Helper()
	out, ok := new(big.Int).SetString(value, 10)
	require.True(t, ok)
	return out
}
