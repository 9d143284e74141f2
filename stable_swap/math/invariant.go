package math

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

// The StableSwap invariant D satisfies
//
//	Ann * S + D = Ann * D + D^(n+1) / (n^n * prod(x_i)),  Ann = A * n^n
//
// where S is the sum and prod the product of the n comparable balances.

func ann(amp uint64, nCoins int) (*uint256.Int, *uint256.Int, error) {
	n := uint256.NewInt(uint64(nCoins))
	nn := new(uint256.Int).Exp(n, n)
	a, err := Mul(uint256.NewInt(amp), nn)
	if err != nil {
		return nil, nil, err
	}
	if a.IsZero() {
		return nil, nil, fmt.Errorf("amp 0: %w", shared.ErrInvalidAmplification)
	}
	return a, nn, nil
}

// ComputeD solves the invariant for the given comparable balances with Newton's method.
func ComputeD(amp uint64, cAmounts []*uint256.Int) (*uint256.Int, error) {
	return computeD(amp, cAmounts, shared.MaxIterations)
}

func computeD(amp uint64, cAmounts []*uint256.Int, maxIterations int) (*uint256.Int, error) {
	sumX, err := Sum(cAmounts)
	if err != nil {
		return nil, err
	}
	if sumX.IsZero() {
		return new(uint256.Int), nil
	}

	nCoins := uint256.NewInt(uint64(len(cAmounts)))
	nPlusOne := new(uint256.Int).AddUint64(nCoins, 1)
	annValue, _, err := ann(amp, len(cAmounts))
	if err != nil {
		return nil, err
	}
	leverage, err := Mul(sumX, annValue)
	if err != nil {
		return nil, err
	}
	annMinusOne := new(uint256.Int).Sub(annValue, one)

	d := sumX.Clone()
	for i := 0; i < maxIterations; i++ {
		// dProd = D^(n+1) / (n^n * prod(x_i)); the +1 keeps an empty reserve from dividing by zero
		dProd := d.Clone()
		for _, cAmount := range cAmounts {
			scaled, err := Mul(cAmount, nCoins)
			if err != nil {
				return nil, err
			}
			if scaled, err = Add(scaled, one); err != nil {
				return nil, err
			}
			if dProd, err = MulDiv(dProd, d, scaled); err != nil {
				return nil, err
			}
		}
		dPrev := d

		// d = (ann * sumX + dProd * n) * dPrev / ((ann - 1) * dPrev + (n + 1) * dProd)
		numerator, err := Mul(dProd, nCoins)
		if err != nil {
			return nil, err
		}
		if numerator, err = Add(numerator, leverage); err != nil {
			return nil, err
		}
		left, err := Mul(dPrev, annMinusOne)
		if err != nil {
			return nil, err
		}
		right, err := Mul(dProd, nPlusOne)
		if err != nil {
			return nil, err
		}
		denominator, err := Add(left, right)
		if err != nil {
			return nil, err
		}
		if d, err = MulDiv(numerator, dPrev, denominator); err != nil {
			return nil, err
		}

		if withinOne(d, dPrev) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("compute d after %d iterations: %w", maxIterations, shared.ErrNotConverged)
}

// ComputeY returns the balance of token indexOut that keeps the invariant at d once the
// balance of token indexIn becomes x. All other balances are held fixed.
func ComputeY(amp uint64, x *uint256.Int, cAmounts []*uint256.Int, indexIn, indexOut int, d *uint256.Int) (*uint256.Int, error) {
	return computeY(amp, x, cAmounts, indexIn, indexOut, d, shared.MaxIterations)
}

func computeY(amp uint64, x *uint256.Int, cAmounts []*uint256.Int, indexIn, indexOut int, d *uint256.Int, maxIterations int) (*uint256.Int, error) {
	if indexIn == indexOut {
		return nil, shared.ErrDuplicateToken
	}
	if indexIn < 0 || indexIn >= len(cAmounts) || indexOut < 0 || indexOut >= len(cAmounts) {
		return nil, shared.ErrUnknownToken
	}

	annValue, nn, err := ann(amp, len(cAmounts))
	if err != nil {
		return nil, err
	}

	// c = D^(n+1) / (n^n * prod'(x) * ann), prod' skipping indexOut
	s := x.Clone()
	c, err := MulDiv(d, d, x)
	if err != nil {
		return nil, err
	}
	for idx, cAmount := range cAmounts {
		if idx == indexIn || idx == indexOut {
			continue
		}
		if s, err = Add(s, cAmount); err != nil {
			return nil, err
		}
		if c, err = MulDiv(c, d, cAmount); err != nil {
			return nil, err
		}
	}
	annNN, err := Mul(annValue, nn)
	if err != nil {
		return nil, err
	}
	if c, err = MulDiv(c, d, annNN); err != nil {
		return nil, err
	}

	// b = S' + D / ann; D is subtracted in the denominator below
	b, err := Div(d, annValue)
	if err != nil {
		return nil, err
	}
	if b, err = Add(b, s); err != nil {
		return nil, err
	}

	// y = (y^2 + c) / (2y + b - D)
	y := d.Clone()
	for i := 0; i < maxIterations; i++ {
		yPrev := y
		numerator, err := Mul(y, y)
		if err != nil {
			return nil, err
		}
		if numerator, err = Add(numerator, c); err != nil {
			return nil, err
		}
		denominator, err := Mul(y, two)
		if err != nil {
			return nil, err
		}
		if denominator, err = Add(denominator, b); err != nil {
			return nil, err
		}
		if denominator, err = Sub(denominator, d); err != nil {
			return nil, err
		}
		if y, err = Div(numerator, denominator); err != nil {
			return nil, err
		}

		if withinOne(y, yPrev) {
			return y, nil
		}
	}
	return nil, fmt.Errorf("compute y after %d iterations: %w", maxIterations, shared.ErrNotConverged)
}
