package stable_swap

import (
	"math/big"
	"strconv"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

// QuoteSwap builds the pool from cfg and quotes a single swap against native balances.
func QuoteSwap(
	cfg shared.PoolConfig,
	balances []*big.Int,
	indexIn int,
	amountIn *big.Int,
	indexOut int,
	adminFees shared.AdminFees,
	now uint64,
) (*big.Int, error) {
	pool, err := NewPool(cfg)
	if err != nil {
		return nil, err
	}
	return pool.GetReturn(indexIn, amountIn, indexOut, balances, adminFees, now)
}

// GetAmountOut quotes against a pool with a fixed amp and no admin fee. Token ids are
// synthesized as token_<index>.
//
// Example:
//
// out, _ := GetAmountOut([]uint8{6, 6, 18}, amounts, 240, 5, 0, 1, big.NewInt(10_000_000_000))
func GetAmountOut(
	decimals []uint8,
	amounts []*big.Int,
	amp uint64,
	totalFee uint32,
	indexIn int,
	indexOut int,
	amountIn *big.Int,
) (*big.Int, error) {
	return QuoteSwap(shared.PoolConfig{
		TokenIDs:  syntheticTokenIDs(len(decimals)),
		Decimals:  decimals,
		TotalFee:  totalFee,
		InitAmp:   amp,
		TargetAmp: amp,
	}, amounts, indexIn, amountIn, indexOut, shared.NewAdminFees(0), 1)
}

func syntheticTokenIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "token_" + strconv.Itoa(i)
	}
	return ids
}
