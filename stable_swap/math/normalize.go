package math

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

func decimalFactor(decimal uint8) (*uint256.Int, bool, error) {
	if decimal < shared.MinDecimal || decimal > shared.MaxDecimal {
		return nil, false, fmt.Errorf("decimal %d: %w", decimal, shared.ErrInvalidDecimal)
	}
	if decimal <= shared.TargetDecimal {
		return Pow10(shared.TargetDecimal - decimal), true, nil
	}
	return Pow10(decimal - shared.TargetDecimal), false, nil
}

// NormalizeAmount converts a native token amount into comparable precision.
// Tokens with more than TargetDecimal decimals lose their extra precision.
func NormalizeAmount(amount *uint256.Int, decimal uint8) (*uint256.Int, error) {
	factor, scaleUp, err := decimalFactor(decimal)
	if err != nil {
		return nil, err
	}
	if !scaleUp {
		return Div(amount, factor)
	}
	c, err := Mul(amount, factor)
	if err != nil {
		return nil, err
	}
	if !FitsU128(c) {
		return nil, fmt.Errorf("comparable amount exceeds u128: %w", shared.ErrArithmeticOverflow)
	}
	return c, nil
}

// DenormalizeAmount converts a comparable amount back into native precision, truncating.
func DenormalizeAmount(cAmount *uint256.Int, decimal uint8) (*uint256.Int, error) {
	factor, scaleUp, err := decimalFactor(decimal)
	if err != nil {
		return nil, err
	}
	if scaleUp {
		return Div(cAmount, factor)
	}
	amount, err := Mul(cAmount, factor)
	if err != nil {
		return nil, err
	}
	if !FitsU128(amount) {
		return nil, fmt.Errorf("native amount exceeds u128: %w", shared.ErrArithmeticOverflow)
	}
	return amount, nil
}

func NormalizeAmounts(amounts []*uint256.Int, decimals []uint8) ([]*uint256.Int, error) {
	if len(amounts) != len(decimals) {
		return nil, shared.ErrInvalidBalances
	}
	cAmounts := make([]*uint256.Int, len(amounts))
	for i, amount := range amounts {
		c, err := NormalizeAmount(amount, decimals[i])
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		cAmounts[i] = c
	}
	return cAmounts, nil
}
