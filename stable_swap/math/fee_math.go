package math

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

var feeDivisor = uint256.NewInt(shared.FeeDivisor)

func ValidateFee(totalFee uint32) error {
	if totalFee >= shared.FeeDivisor {
		return fmt.Errorf("total fee %d: %w", totalFee, shared.ErrInvalidFee)
	}
	return nil
}

// TradeFee is amount * feeBps / FeeDivisor, rounded down.
func TradeFee(amount *uint256.Int, feeBps uint32) (*uint256.Int, error) {
	return MulDiv(amount, uint256.NewInt(uint64(feeBps)), feeDivisor)
}

// ApplyFee charges totalFee on raw and books the admin share of that fee. The remainder of
// the fee stays with liquidity providers.
func ApplyFee(raw *uint256.Int, totalFee uint32, adminFees shared.AdminFees) (shared.FeeResult, error) {
	if err := adminFees.Validate(); err != nil {
		return shared.FeeResult{}, err
	}
	fee, err := TradeFee(raw, totalFee)
	if err != nil {
		return shared.FeeResult{}, err
	}
	adminFee, err := TradeFee(fee, adminFees.AdminFee())
	if err != nil {
		return shared.FeeResult{}, err
	}
	net, err := Sub(raw, fee)
	if err != nil {
		return shared.FeeResult{}, err
	}
	return shared.FeeResult{
		Net:      net,
		Fee:      fee,
		AdminFee: adminFee,
	}, nil
}
