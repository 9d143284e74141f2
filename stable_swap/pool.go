package stable_swap

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/krazyTry/stableswap-go/stable_swap/math"
	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

// Pool is a validated, read-only stable pool configuration. Balances are supplied per call,
// so a Pool can be shared between goroutines.
type Pool struct {
	tokenIDs []string
	decimals []uint8
	totalFee uint32
	amp      math.AmpSchedule
}

func NewPool(cfg shared.PoolConfig) (*Pool, error) {
	if len(cfg.TokenIDs) < shared.MinTokens {
		return nil, fmt.Errorf("need at least %d tokens: %w", shared.MinTokens, shared.ErrInvalidPoolConfig)
	}
	if len(cfg.TokenIDs) != len(cfg.Decimals) {
		return nil, fmt.Errorf("%d tokens but %d decimals: %w", len(cfg.TokenIDs), len(cfg.Decimals), shared.ErrInvalidPoolConfig)
	}
	seen := make(map[string]struct{}, len(cfg.TokenIDs))
	for _, id := range cfg.TokenIDs {
		if id == "" {
			return nil, fmt.Errorf("empty token id: %w", shared.ErrInvalidPoolConfig)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("token %s listed twice: %w", id, shared.ErrInvalidPoolConfig)
		}
		seen[id] = struct{}{}
	}
	for _, decimal := range cfg.Decimals {
		if decimal < shared.MinDecimal || decimal > shared.MaxDecimal {
			return nil, fmt.Errorf("decimal %d: %w", decimal, shared.ErrInvalidDecimal)
		}
	}
	amp := math.AmpSchedule{
		InitAmp:   cfg.InitAmp,
		TargetAmp: cfg.TargetAmp,
		InitTime:  cfg.InitAmpTime,
		StopTime:  cfg.StopAmpTime,
	}
	if err := amp.Validate(); err != nil {
		return nil, err
	}
	if err := math.ValidateFee(cfg.TotalFee); err != nil {
		return nil, err
	}

	return &Pool{
		tokenIDs: append([]string(nil), cfg.TokenIDs...),
		decimals: append([]uint8(nil), cfg.Decimals...),
		totalFee: cfg.TotalFee,
		amp:      amp,
	}, nil
}

func (p *Pool) Config() shared.PoolConfig {
	return shared.PoolConfig{
		TokenIDs:    append([]string(nil), p.tokenIDs...),
		Decimals:    append([]uint8(nil), p.decimals...),
		TotalFee:    p.totalFee,
		InitAmp:     p.amp.InitAmp,
		TargetAmp:   p.amp.TargetAmp,
		InitAmpTime: p.amp.InitTime,
		StopAmpTime: p.amp.StopTime,
	}
}

func (p *Pool) TokenCount() int {
	return len(p.tokenIDs)
}

func (p *Pool) Decimal(index int) (uint8, error) {
	if index < 0 || index >= len(p.decimals) {
		return 0, fmt.Errorf("index %d: %w", index, shared.ErrUnknownToken)
	}
	return p.decimals[index], nil
}

func (p *Pool) AmpSchedule() math.AmpSchedule {
	return p.amp
}

// WithAmpSchedule returns a copy of the pool using schedule.
func (p *Pool) WithAmpSchedule(schedule math.AmpSchedule) (*Pool, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	cp := *p
	cp.amp = schedule
	return &cp, nil
}

// TokenIndex returns the position of the token id in the pool.
func (p *Pool) TokenIndex(tokenID string) (int, error) {
	for i, id := range p.tokenIDs {
		if id == tokenID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("token %s: %w", tokenID, shared.ErrUnknownToken)
}

// CAmounts converts native balances into comparable precision.
func (p *Pool) CAmounts(balances []*big.Int) ([]*uint256.Int, error) {
	if len(balances) != len(p.tokenIDs) {
		return nil, fmt.Errorf("%d balances for %d tokens: %w", len(balances), len(p.tokenIDs), shared.ErrInvalidBalances)
	}
	amounts, err := math.FromBigSlice(balances)
	if err != nil {
		return nil, err
	}
	return math.NormalizeAmounts(amounts, p.decimals)
}

// Swap quotes amountIn of token indexIn into token indexOut against native balances.
// Nothing passed in is modified.
func (p *Pool) Swap(indexIn int, amountIn *big.Int, indexOut int, balances []*big.Int, adminFees shared.AdminFees, now uint64) (*shared.SwapResult, error) {
	if indexIn == indexOut {
		return nil, shared.ErrDuplicateToken
	}
	if indexIn < 0 || indexIn >= len(p.tokenIDs) {
		return nil, fmt.Errorf("token in index %d: %w", indexIn, shared.ErrUnknownToken)
	}
	if indexOut < 0 || indexOut >= len(p.tokenIDs) {
		return nil, fmt.Errorf("token out index %d: %w", indexOut, shared.ErrUnknownToken)
	}

	cAmounts, err := p.CAmounts(balances)
	if err != nil {
		return nil, err
	}
	in, err := math.FromBig(amountIn)
	if err != nil {
		return nil, fmt.Errorf("amount in: %w", err)
	}
	cAmountIn, err := math.NormalizeAmount(in, p.decimals[indexIn])
	if err != nil {
		return nil, fmt.Errorf("amount in: %w", err)
	}

	return p.swapTo(indexIn, cAmountIn, indexOut, cAmounts, adminFees, now)
}

// SwapByID is Swap with tokens addressed by id.
func (p *Pool) SwapByID(tokenIn string, amountIn *big.Int, tokenOut string, balances []*big.Int, adminFees shared.AdminFees, now uint64) (*shared.SwapResult, error) {
	if tokenIn == tokenOut {
		return nil, shared.ErrDuplicateToken
	}
	indexIn, err := p.TokenIndex(tokenIn)
	if err != nil {
		return nil, err
	}
	indexOut, err := p.TokenIndex(tokenOut)
	if err != nil {
		return nil, err
	}
	return p.Swap(indexIn, amountIn, indexOut, balances, adminFees, now)
}

// GetReturn is the amount of token indexOut received for amountIn of token indexIn.
func (p *Pool) GetReturn(indexIn int, amountIn *big.Int, indexOut int, balances []*big.Int, adminFees shared.AdminFees, now uint64) (*big.Int, error) {
	result, err := p.Swap(indexIn, amountIn, indexOut, balances, adminFees, now)
	if err != nil {
		return nil, err
	}
	return result.AmountOut, nil
}

func (p *Pool) swapTo(indexIn int, cAmountIn *uint256.Int, indexOut int, cAmounts []*uint256.Int, adminFees shared.AdminFees, now uint64) (*shared.SwapResult, error) {
	amp := p.amp.CurrentAmp(now)

	d, err := math.ComputeD(amp, cAmounts)
	if err != nil {
		return nil, err
	}
	newSource, err := math.Add(cAmounts[indexIn], cAmountIn)
	if err != nil {
		return nil, err
	}
	y, err := math.ComputeY(amp, newSource, cAmounts, indexIn, indexOut, d)
	if err != nil {
		return nil, err
	}
	if cAmounts[indexOut].Lt(y) {
		return nil, fmt.Errorf("destination %s, solved %s: %w", cAmounts[indexOut].Dec(), y.Dec(), shared.ErrInconsistentState)
	}
	dy := new(uint256.Int).Sub(cAmounts[indexOut], y)

	fees, err := math.ApplyFee(dy, p.totalFee, adminFees)
	if err != nil {
		return nil, err
	}
	// the admin share leaves the pool on top of the swapped amount
	newDestination, err := math.Sub(cAmounts[indexOut], fees.Net)
	if err != nil {
		return nil, err
	}
	if newDestination, err = math.Sub(newDestination, fees.AdminFee); err != nil {
		return nil, err
	}
	amountOut, err := math.DenormalizeAmount(fees.Net, p.decimals[indexOut])
	if err != nil {
		return nil, err
	}

	result := &shared.SwapResult{}
	for _, f := range []struct {
		dst **big.Int
		src *uint256.Int
	}{
		{&result.NewSourceAmount, newSource},
		{&result.NewDestinationAmount, newDestination},
		{&result.RawAmount, dy},
		{&result.AmountSwapped, fees.Net},
		{&result.Fee, fees.Fee},
		{&result.AdminFee, fees.AdminFee},
		{&result.AmountOut, amountOut},
	} {
		if *f.dst, err = math.ToBig(f.src); err != nil {
			return nil, err
		}
	}
	return result, nil
}
