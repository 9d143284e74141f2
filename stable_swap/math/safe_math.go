package math

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

var (
	one = uint256.NewInt(1)
	two = uint256.NewInt(2)
)

func Add(a, b *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("SafeMath: addition overflow: %w", shared.ErrArithmeticOverflow)
	}
	return z, nil
}

func Sub(a, b *uint256.Int) (*uint256.Int, error) {
	z, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		return nil, fmt.Errorf("SafeMath: subtraction overflow: %w", shared.ErrArithmeticOverflow)
	}
	return z, nil
}

func Mul(a, b *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("SafeMath: multiplication overflow: %w", shared.ErrArithmeticOverflow)
	}
	return z, nil
}

func Div(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, fmt.Errorf("SafeMath: %w", shared.ErrDivisionByZero)
	}
	return new(uint256.Int).Div(a, b), nil
}

// MulDiv computes a*b/denominator rounding down. The product is held in 512 bits; only
// the quotient must fit in 256.
func MulDiv(a, b, denominator *uint256.Int) (*uint256.Int, error) {
	if denominator.IsZero() {
		return nil, fmt.Errorf("SafeMath: %w", shared.ErrDivisionByZero)
	}
	z, overflow := new(uint256.Int).MulDivOverflow(a, b, denominator)
	if overflow {
		return nil, fmt.Errorf("SafeMath: mulDiv overflow: %w", shared.ErrArithmeticOverflow)
	}
	return z, nil
}

func Sum(values []*uint256.Int) (*uint256.Int, error) {
	sum := new(uint256.Int)
	for _, v := range values {
		var err error
		if sum, err = Add(sum, v); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Pow10 returns 10^exp. exp must be below 78.
func Pow10(exp uint8) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(exp)))
}

func FitsU128(v *uint256.Int) bool {
	return v.BitLen() <= 128
}

// FromBig converts a non-negative integer of at most 128 bits. A nil value is rejected.
func FromBig(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return nil, fmt.Errorf("missing value: %w", shared.ErrInvalidBalances)
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return nil, fmt.Errorf("value %s is not a u128: %w", v, shared.ErrArithmeticOverflow)
	}
	z, _ := uint256.FromBig(v)
	return z, nil
}

func FromBigSlice(values []*big.Int) ([]*uint256.Int, error) {
	out := make([]*uint256.Int, len(values))
	for i, v := range values {
		z, err := FromBig(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = z
	}
	return out, nil
}

// ToBig converts back to the u128 boundary type.
func ToBig(v *uint256.Int) (*big.Int, error) {
	if !FitsU128(v) {
		return nil, fmt.Errorf("value %s exceeds u128: %w", v.Dec(), shared.ErrArithmeticOverflow)
	}
	return v.ToBig(), nil
}

func withinOne(a, b *uint256.Int) bool {
	diff := new(uint256.Int)
	if a.Gt(b) {
		diff.Sub(a, b)
	} else {
		diff.Sub(b, a)
	}
	return !diff.Gt(one)
}
