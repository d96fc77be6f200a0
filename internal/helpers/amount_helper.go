package helpers

import (
	"fmt"
	"math/big"
)

// ParseAmount parses a smallest-unit amount expressed as a base-10 integer
// string. Monetary values never pass through floating point, so anything
// that is not a plain non-negative integer is rejected.
func ParseAmount(value string) (*big.Int, error) {
	if value == "" {
		return nil, fmt.Errorf("amount is required")
	}

	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q: expected base-10 integer", value)
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q: must not be negative", value)
	}

	return amount, nil
}

// FormatUnits renders a smallest-unit amount as a decimal string for log and
// error messages, e.g. 2000000 with 6 decimals -> "2". Display only; all
// arithmetic stays on integers.
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	if decimals <= 0 {
		return amount.String()
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(amount, divisor, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String()
	}

	fracStr := fmt.Sprintf("%0*s", decimals, frac.String())
	for len(fracStr) > 0 && fracStr[len(fracStr)-1] == '0' {
		fracStr = fracStr[:len(fracStr)-1]
	}
	return whole.String() + "." + fracStr
}
