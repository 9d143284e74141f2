package stable_swap

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/stableswap-go/stable_swap/math"
	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

// USDT/USDC/DAI stable pool 1910 on mainnet.
func mainnetConfig() shared.PoolConfig {
	return shared.PoolConfig{
		TokenIDs:  []string{"usdt.tether-token.near", "usdc.near", "dai.near"},
		Decimals:  []uint8{6, 6, 18},
		TotalFee:  5,
		InitAmp:   240,
		TargetAmp: 240,
	}
}

func mainnetBalances() []*big.Int {
	dai, _ := new(big.Int).SetString("990759998116457852477754", 10)
	return []*big.Int{
		big.NewInt(719240775791),
		big.NewInt(485261247671),
		dai,
	}
}

func bigFromString(t *testing.T, v string) *big.Int {
	t.Helper()
	out, ok := new(big.Int).SetString(v, 10)
	require.True(t, ok, v)
	return out
}

func TestSwapMainnetPool(t *testing.T) {
	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)

	balances := mainnetBalances()
	result, err := pool.Swap(0, big.NewInt(10_000_000_000), 1, balances, shared.NewAdminFees(0), 1)
	require.NoError(t, err)

	assert.Equal(t, "9992301437", result.AmountOut.String())
	assert.Equal(t, "9997300088043579805682", result.RawAmount.String())
	assert.Equal(t, "9992301437999558015780", result.AmountSwapped.String())
	assert.Equal(t, "4998650044021789902", result.Fee.String())
	assert.Equal(t, "0", result.AdminFee.String())
	assert.Equal(t, "729240775791000000000000", result.NewSourceAmount.String())

	// quotes never touch caller state
	assert.Equal(t, mainnetBalances(), balances)
}

func TestSwapAdminFee(t *testing.T) {
	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)

	result, err := pool.Swap(0, big.NewInt(10_000_000_000), 1, mainnetBalances(), shared.NewAdminFees(2000), 1)
	require.NoError(t, err)

	assert.Equal(t, "9992301437", result.AmountOut.String())
	assert.Equal(t, "999730008804357980", result.AdminFee.String())
	assert.Equal(t, "475267946502991637626240", result.NewDestinationAmount.String())

	_, err = pool.Swap(0, big.NewInt(1), 1, mainnetBalances(), shared.NewAdminFees(shared.FeeDivisor+1), 1)
	assert.ErrorIs(t, err, shared.ErrInvalidFee)
}

func TestSwapHighDecimalToLow(t *testing.T) {
	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)

	out, err := pool.GetReturn(2, bigFromString(t, "10000000000000000000000"), 0, mainnetBalances(), shared.NewAdminFees(0), 1)
	require.NoError(t, err)
	assert.Equal(t, "9993479158", out.String())
}

func TestSwapByID(t *testing.T) {
	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)

	result, err := pool.SwapByID("usdt.tether-token.near", big.NewInt(10_000_000_000), "usdc.near", mainnetBalances(), shared.NewAdminFees(0), 1)
	require.NoError(t, err)
	assert.Equal(t, "9992301437", result.AmountOut.String())

	_, err = pool.SwapByID("usdc.near", big.NewInt(1), "usdc.near", mainnetBalances(), shared.NewAdminFees(0), 1)
	assert.ErrorIs(t, err, shared.ErrDuplicateToken)

	_, err = pool.SwapByID("wrap.near", big.NewInt(1), "usdc.near", mainnetBalances(), shared.NewAdminFees(0), 1)
	assert.ErrorIs(t, err, shared.ErrUnknownToken)

	index, err := pool.TokenIndex("dai.near")
	require.NoError(t, err)
	assert.Equal(t, 2, index)
}

func TestSwapFollowsAmpRamp(t *testing.T) {
	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)

	ramping, err := pool.WithAmpSchedule(math.AmpSchedule{InitAmp: 100, TargetAmp: 240, InitTime: 0, StopTime: 1400})
	require.NoError(t, err)

	testCases := []struct {
		now  uint64
		want string
	}{
		{0, "9988531552"},
		{700, "9991191668"},
		{1400, "9992301437"},
		{5000, "9992301437"},
	}
	for _, tc := range testCases {
		out, err := ramping.GetReturn(0, big.NewInt(10_000_000_000), 1, mainnetBalances(), shared.NewAdminFees(0), tc.now)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.String(), "now %d", tc.now)
	}

	// the original pool is untouched
	assert.Equal(t, uint64(240), pool.AmpSchedule().CurrentAmp(0))

	_, err = pool.WithAmpSchedule(math.NewAmpSchedule(0))
	assert.ErrorIs(t, err, shared.ErrInvalidAmplification)
}

func TestNewPoolValidation(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(cfg *shared.PoolConfig)
		err    error
	}{
		{"decimal 25", func(cfg *shared.PoolConfig) { cfg.Decimals[2] = 25 }, shared.ErrInvalidDecimal},
		{"decimal 0", func(cfg *shared.PoolConfig) { cfg.Decimals[0] = 0 }, shared.ErrInvalidDecimal},
		{"fee 10000", func(cfg *shared.PoolConfig) { cfg.TotalFee = shared.FeeDivisor }, shared.ErrInvalidFee},
		{"amp below minimum", func(cfg *shared.PoolConfig) { cfg.InitAmp = shared.MinAmp - 1 }, shared.ErrInvalidAmplification},
		{"amp above maximum", func(cfg *shared.PoolConfig) { cfg.TargetAmp = shared.MaxAmp + 1 }, shared.ErrInvalidAmplification},
		{"ramp ends before start", func(cfg *shared.PoolConfig) { cfg.InitAmpTime, cfg.StopAmpTime = 10, 5 }, shared.ErrInvalidRamp},
		{"single token", func(cfg *shared.PoolConfig) {
			cfg.TokenIDs, cfg.Decimals = cfg.TokenIDs[:1], cfg.Decimals[:1]
		}, shared.ErrInvalidPoolConfig},
		{"decimals mismatch", func(cfg *shared.PoolConfig) { cfg.Decimals = cfg.Decimals[:2] }, shared.ErrInvalidPoolConfig},
		{"duplicate token id", func(cfg *shared.PoolConfig) { cfg.TokenIDs[1] = cfg.TokenIDs[0] }, shared.ErrInvalidPoolConfig},
		{"empty token id", func(cfg *shared.PoolConfig) { cfg.TokenIDs[1] = "" }, shared.ErrInvalidPoolConfig},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := mainnetConfig()
			tc.modify(&cfg)
			pool, err := NewPool(cfg)
			assert.Nil(t, pool)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)
	assert.Equal(t, mainnetConfig(), pool.Config())
	assert.Equal(t, 3, pool.TokenCount())
}

func TestSwapCallErrors(t *testing.T) {
	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)
	fees := shared.NewAdminFees(0)

	for i := 0; i < 3; i++ {
		_, err = pool.Swap(i, big.NewInt(-1), i, nil, fees, 1)
		assert.ErrorIs(t, err, shared.ErrDuplicateToken)
	}

	_, err = pool.Swap(0, big.NewInt(1), 3, mainnetBalances(), fees, 1)
	assert.ErrorIs(t, err, shared.ErrUnknownToken)

	_, err = pool.Swap(-1, big.NewInt(1), 1, mainnetBalances(), fees, 1)
	assert.ErrorIs(t, err, shared.ErrUnknownToken)

	_, err = pool.Swap(0, big.NewInt(1), 1, mainnetBalances()[:2], fees, 1)
	assert.ErrorIs(t, err, shared.ErrInvalidBalances)

	missing := mainnetBalances()
	missing[1] = nil
	_, err = pool.Swap(0, big.NewInt(1), 2, missing, fees, 1)
	assert.ErrorIs(t, err, shared.ErrInvalidBalances)

	_, err = pool.Swap(0, nil, 1, mainnetBalances(), fees, 1)
	assert.ErrorIs(t, err, shared.ErrInvalidBalances)

	_, err = pool.Swap(0, new(big.Int).Lsh(big.NewInt(1), 128), 1, mainnetBalances(), fees, 1)
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	_, err = pool.Swap(0, big.NewInt(-1), 1, mainnetBalances(), fees, 1)
	assert.ErrorIs(t, err, shared.ErrArithmeticOverflow)

	drained := mainnetBalances()
	drained[2] = big.NewInt(0)
	_, err = pool.Swap(0, big.NewInt(1_000_000), 1, drained, fees, 1)
	assert.ErrorIs(t, err, shared.ErrNotConverged)

	empty := []*big.Int{big.NewInt(0), big.NewInt(0), big.NewInt(0)}
	_, err = pool.Swap(0, big.NewInt(1_000_000), 1, empty, fees, 1)
	assert.ErrorIs(t, err, shared.ErrDivisionByZero)

	_, err = pool.Decimal(3)
	assert.ErrorIs(t, err, shared.ErrUnknownToken)
}

func TestSwapMonotonicInAmountIn(t *testing.T) {
	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)

	prev := big.NewInt(0)
	for _, amountIn := range []int64{1_000_000, 100_000_000, 10_000_000_000, 100_000_000_000, 1_000_000_000_000, 10_000_000_000_000} {
		result, err := pool.Swap(0, big.NewInt(amountIn), 1, mainnetBalances(), shared.NewAdminFees(0), 1)
		require.NoError(t, err)
		assert.True(t, result.RawAmount.Cmp(prev) >= 0, "amount in %d", amountIn)
		prev = result.RawAmount
	}
}

func TestSwapNoValueCreation(t *testing.T) {
	cfg := mainnetConfig()
	cfg.TotalFee = 0
	pool, err := NewPool(cfg)
	require.NoError(t, err)
	fees := shared.NewAdminFees(0)

	for _, amountIn := range []int64{1, 1_000, 1_000_000, 1_000_000_000, 10_000_000_000, 100_000_000_000, 1_000_000_000_000} {
		balances := mainnetBalances()
		out, err := pool.GetReturn(0, big.NewInt(amountIn), 1, balances, fees, 1)
		require.NoError(t, err)

		balances[0].Add(balances[0], big.NewInt(amountIn))
		balances[1].Sub(balances[1], out)
		back, err := pool.GetReturn(1, out, 0, balances, fees, 1)
		require.NoError(t, err)
		assert.True(t, back.Cmp(big.NewInt(amountIn)) <= 0, "amount in %d came back as %s", amountIn, back)
	}
}

func TestSwapConcurrent(t *testing.T) {
	pool, err := NewPool(mainnetConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := pool.GetReturn(0, big.NewInt(10_000_000_000), 1, mainnetBalances(), shared.NewAdminFees(0), 1)
			if err == nil {
				results[i] = out.String()
			}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "9992301437", r)
	}
}

func BenchmarkSwap(b *testing.B) {
	pool, err := NewPool(mainnetConfig())
	if err != nil {
		b.Fatal(err)
	}
	balances := mainnetBalances()
	amountIn := big.NewInt(10_000_000_000)
	fees := shared.NewAdminFees(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pool.Swap(0, amountIn, 1, balances, fees, 1)
	}
}
