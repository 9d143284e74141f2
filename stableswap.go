package stableswap

import (
	stableSwap "github.com/krazyTry/stableswap-go/stable_swap"
)

// NewPool validates a pool configuration.
//
// Example:
//
// pool, _ := NewPool(shared.PoolConfig{TokenIDs: ids, Decimals: []uint8{6, 6, 18}, TotalFee: 5, InitAmp: 240, TargetAmp: 240})
//
// pool.Swap(0, amountIn, 1, balances, shared.NewAdminFees(0), now)
var NewPool = stableSwap.NewPool

// QuoteSwap quotes one swap without keeping the pool.
//
// Example:
//
// amountOut, _ := QuoteSwap(cfg, balances, 0, amountIn, 1, shared.NewAdminFees(0), now)
var QuoteSwap = stableSwap.QuoteSwap

// GetAmountOut quotes against a fixed amp pool with no admin fee.
var GetAmountOut = stableSwap.GetAmountOut

// PoolFromView parses a get_stable_pool json snapshot.
var PoolFromView = stableSwap.PoolFromView
