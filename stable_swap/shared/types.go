package shared

import (
	"math/big"

	"github.com/holiman/uint256"
)

// PoolConfig describes a stable pool. Slices are positionally aligned.
type PoolConfig struct {
	TokenIDs []string
	Decimals []uint8
	// TotalFee is charged on every swap, in basis points of FeeDivisor.
	TotalFee uint32

	InitAmp     uint64
	TargetAmp   uint64
	InitAmpTime uint64
	StopAmpTime uint64
}

// AdminFees is the share of the trade fee kept for the exchange and an optional referrer,
// both in basis points of FeeDivisor.
type AdminFees struct {
	ExchangeFee uint32
	ReferralFee uint32
}

func NewAdminFees(exchangeFee uint32) AdminFees {
	return AdminFees{ExchangeFee: exchangeFee}
}

func (f AdminFees) AdminFee() uint32 {
	return f.ExchangeFee + f.ReferralFee
}

func (f AdminFees) Validate() error {
	if uint64(f.ExchangeFee)+uint64(f.ReferralFee) > FeeDivisor {
		return ErrInvalidFee
	}
	return nil
}

// FeeResult splits a raw swap amount into what the swapper receives and the fee.
type FeeResult struct {
	Net      *uint256.Int
	Fee      *uint256.Int
	AdminFee *uint256.Int
}

// SwapResult amounts are in comparable precision except AmountOut.
type SwapResult struct {
	NewSourceAmount      *big.Int
	NewDestinationAmount *big.Int
	RawAmount            *big.Int
	AmountSwapped        *big.Int
	Fee                  *big.Int
	AdminFee             *big.Int

	// AmountOut is AmountSwapped in the output token's native precision.
	AmountOut *big.Int
}
