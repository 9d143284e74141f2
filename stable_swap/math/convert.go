package math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToUiAmount renders a native integer amount as a decimal token amount.
func ToUiAmount(amount *big.Int, decimals uint8) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -int32(decimals))
}

// FromUiAmount converts a decimal token amount to native units, truncating extra digits.
func FromUiAmount(amount decimal.Decimal, decimals uint8) *big.Int {
	return amount.Shift(int32(decimals)).Truncate(0).BigInt()
}
