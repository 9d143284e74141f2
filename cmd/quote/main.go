package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/krazyTry/stableswap-go/internal/config"
	"github.com/krazyTry/stableswap-go/internal/logging"
	stableSwap "github.com/krazyTry/stableswap-go/stable_swap"
	"github.com/krazyTry/stableswap-go/stable_swap/math"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	poolFile := flag.String("pool", cfg.PoolFile, "pool snapshot (get_stable_pool json)")
	inTok := flag.String("in", "", "input token id")
	outTok := flag.String("out", "", "output token id")
	amt := flag.String("amt", "", "amount in human units (e.g. 100.5)")
	raw := flag.Bool("raw", false, "treat -amt as native units")
	now := flag.Uint64("now", uint64(time.Now().UnixNano()), "timestamp for the amp ramp, ns")
	flag.Parse()

	logger := logging.NewLogger(cfg.LogLevel)

	if *inTok == "" || *outTok == "" || *amt == "" {
		fmt.Println("usage: quote -pool pool.json -in <token> -out <token> -amt <amount>")
		os.Exit(2)
	}

	data, err := os.ReadFile(*poolFile)
	if err != nil {
		logger.WithError(err).Fatal("read pool file")
	}
	view, err := stableSwap.PoolFromView(data)
	if err != nil {
		logger.WithError(err).Fatal("parse pool")
	}
	pool := view.Pool
	checkCAmounts(logger, view)

	indexIn, err := pool.TokenIndex(*inTok)
	if err != nil {
		logger.WithError(err).Fatal("input token")
	}
	indexOut, err := pool.TokenIndex(*outTok)
	if err != nil {
		logger.WithError(err).Fatal("output token")
	}
	decimalIn, _ := pool.Decimal(indexIn)
	decimalOut, _ := pool.Decimal(indexOut)

	amountIn, err := parseAmount(*amt, *raw, decimalIn)
	if err != nil {
		logger.WithError(err).Fatal("invalid -amt")
	}

	logger.WithFields(logrus.Fields{
		"in":        *inTok,
		"out":       *outTok,
		"amount_in": amountIn.String(),
		"amp":       pool.AmpSchedule().CurrentAmp(*now),
	}).Debug("quoting swap")

	result, err := pool.Swap(indexIn, amountIn, indexOut, view.Amounts, cfg.AdminFees(), *now)
	if err != nil {
		logger.WithError(err).Fatal("quote failed")
	}

	logger.WithFields(logrus.Fields{
		"raw":       result.RawAmount.String(),
		"fee":       result.Fee.String(),
		"admin_fee": result.AdminFee.String(),
	}).Debug("swap computed")

	fmt.Printf("amount_in=%s (%s) amount_out=%s (%s)\n",
		amountIn, math.ToUiAmount(amountIn, decimalIn),
		result.AmountOut, math.ToUiAmount(result.AmountOut, decimalOut))
}

func parseAmount(v string, raw bool, decimals uint8) (*big.Int, error) {
	if raw {
		out, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("not an integer: %s", v)
		}
		return out, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, err
	}
	if !d.IsPositive() {
		return nil, fmt.Errorf("amount must be > 0")
	}
	return math.FromUiAmount(d, decimals), nil
}

// checkCAmounts warns when the snapshot's comparable amounts disagree with local normalization.
func checkCAmounts(logger *logrus.Logger, view *stableSwap.PoolView) {
	if view.CAmounts == nil {
		return
	}
	local, err := view.Pool.CAmounts(view.Amounts)
	if err != nil {
		logger.WithError(err).Warn("normalize amounts")
		return
	}
	for i, c := range local {
		if i >= len(view.CAmounts) || c.ToBig().Cmp(view.CAmounts[i]) != 0 {
			logger.WithField("index", i).Warn("c_amounts mismatch")
		}
	}
}
