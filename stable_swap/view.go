package stable_swap

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
	"github.com/krazyTry/stableswap-go/u128"
)

// PoolView is a stable pool snapshot as returned by the exchange's get_stable_pool view:
//
//	{
//		"token_account_ids": ["usdt.tether-token.near", "a0b8...factory.bridge.near", "dai.factory.bridge.near"],
//		"decimals": [6, 6, 18],
//		"amounts": ["719240775791", "485261247671", "990759998116457852477754"],
//		"total_fee": 5,
//		"amp": 240
//	}
type PoolView struct {
	Pool     *Pool
	Amounts  []*big.Int
	CAmounts []*big.Int
}

// PoolFromView parses a pool snapshot. Numbers may be JSON numbers or decimal strings.
func PoolFromView(data []byte) (*PoolView, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("pool view is not valid json: %w", shared.ErrInvalidPoolConfig)
	}
	root := gjson.ParseBytes(data)

	cfg := shared.PoolConfig{}
	for _, id := range root.Get("token_account_ids").Array() {
		cfg.TokenIDs = append(cfg.TokenIDs, id.String())
	}
	for _, d := range root.Get("decimals").Array() {
		decimal, err := uintField("decimal", d)
		if err != nil {
			return nil, err
		}
		if decimal > shared.MaxDecimal {
			return nil, fmt.Errorf("decimal %s: %w", d.Raw, shared.ErrInvalidDecimal)
		}
		cfg.Decimals = append(cfg.Decimals, uint8(decimal))
	}

	totalFee, err := uintField("total_fee", root.Get("total_fee"))
	if err != nil {
		return nil, err
	}
	if totalFee >= shared.FeeDivisor {
		return nil, fmt.Errorf("total fee %d: %w", totalFee, shared.ErrInvalidFee)
	}
	cfg.TotalFee = uint32(totalFee)

	amp, err := uintField("amp", root.Get("amp"))
	if err != nil {
		return nil, err
	}
	cfg.InitAmp = amp
	cfg.TargetAmp = amp

	pool, err := NewPool(cfg)
	if err != nil {
		return nil, err
	}

	amounts, err := parseAmounts(root.Get("amounts"))
	if err != nil {
		return nil, fmt.Errorf("amounts: %w", err)
	}
	if len(amounts) != pool.TokenCount() {
		return nil, fmt.Errorf("%d amounts for %d tokens: %w", len(amounts), pool.TokenCount(), shared.ErrInvalidBalances)
	}
	view := &PoolView{Pool: pool, Amounts: amounts}

	if c := root.Get("c_amounts"); c.Exists() {
		if view.CAmounts, err = parseAmounts(c); err != nil {
			return nil, fmt.Errorf("c_amounts: %w", err)
		}
	}
	return view, nil
}

func parseAmounts(list gjson.Result) ([]*big.Int, error) {
	var out []*big.Int
	for _, v := range list.Array() {
		// u128 values exceed float precision; always go through the raw text
		raw := v.Raw
		if v.Type == gjson.String {
			raw = v.Str
		}
		amount, err := u128.ParseUint128(raw)
		if errors.Is(err, u128.ErrNegative) || errors.Is(err, u128.ErrOverflow) {
			return nil, fmt.Errorf("%w: %w", shared.ErrArithmeticOverflow, err)
		} else if err != nil {
			return nil, fmt.Errorf("%w: %w", shared.ErrInvalidPoolConfig, err)
		}
		out = append(out, u128.ToBig(amount))
	}
	return out, nil
}

// uintField reads a non-negative JSON integer. Fractions, exponents and strings are rejected
// rather than truncated.
func uintField(name string, v gjson.Result) (uint64, error) {
	if !v.Exists() {
		return 0, fmt.Errorf("missing %s: %w", name, shared.ErrInvalidPoolConfig)
	}
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%s %s is not a number: %w", name, v.Raw, shared.ErrInvalidPoolConfig)
	}
	n, err := strconv.ParseUint(v.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %s is not an unsigned integer: %w", name, v.Raw, shared.ErrInvalidPoolConfig)
	}
	return n, nil
}
