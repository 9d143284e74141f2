package math

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

func TestSafeMath(t *testing.T) {
	maxU256 := new(uint256.Int).SetAllOne()

	_, err := Add(maxU256, one)
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = Sub(one, two)
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = Mul(maxU256, two)
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = Div(one, new(uint256.Int))
	assert.ErrorIs(t, err, shared.ErrDivisionByZero)

	z, err := MulDiv(uint256.NewInt(10), uint256.NewInt(7), uint256.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, uint64(23), z.Uint64())

	// the product needs more than 256 bits, the quotient does not
	z, err = MulDiv(new(uint256.Int).Lsh(one, 200), new(uint256.Int).Lsh(one, 100), new(uint256.Int).Lsh(one, 100))
	require.NoError(t, err)
	assert.Equal(t, new(uint256.Int).Lsh(one, 200), z)

	_, err = MulDiv(maxU256, maxU256, two)
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = MulDiv(one, two, new(uint256.Int))
	assert.ErrorIs(t, err, shared.ErrDivisionByZero)

	_, err = MulDiv(new(uint256.Int), two, new(uint256.Int))
	assert.ErrorIs(t, err, shared.ErrDivisionByZero)

	assert.Equal(t, "1000000000000000000", Pow10(18).Dec())
}

func TestFromBig(t *testing.T) {
	maxU128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	z, err := FromBig(maxU128)
	require.NoError(t, err)
	assert.True(t, FitsU128(z))

	back, err := ToBig(z)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Cmp(maxU128))

	_, err = FromBig(new(big.Int).Add(maxU128, big.NewInt(1)))
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = FromBig(big.NewInt(-1))
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = FromBig(nil)
	assert.ErrorIs(t, err, shared.ErrInvalidBalances)

	_, err = FromBigSlice([]*big.Int{big.NewInt(1), nil})
	assert.ErrorIs(t, err, shared.ErrInvalidBalances)

	_, err = FromBigSlice([]*big.Int{big.NewInt(1), big.NewInt(-5)})
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = ToBig(new(uint256.Int).Lsh(one, 200))
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)
}

func TestWithinOne(t *testing.T) {
	assert.True(t, withinOne(uint256.NewInt(5), uint256.NewInt(5)))
	assert.True(t, withinOne(uint256.NewInt(5), uint256.NewInt(6)))
	assert.True(t, withinOne(uint256.NewInt(6), uint256.NewInt(5)))
	assert.False(t, withinOne(uint256.NewInt(7), uint256.NewInt(5)))
	assert.False(t, withinOne(uint256.NewInt(5), uint256.NewInt(7)))
}
