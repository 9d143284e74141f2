package config

import (
	"os"
	"strconv"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

type Config struct {
	LogLevel string

	// Pool snapshot in get_stable_pool json form
	PoolFile string

	// Admin share of the trade fee, bps
	ExchangeFeeBps uint32
	ReferralFeeBps uint32
}

func Load() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		PoolFile: getEnv("STABLESWAP_POOL_FILE", "pool.json"),

		ExchangeFeeBps: getUint32Env("STABLESWAP_EXCHANGE_FEE_BPS", 0),
		ReferralFeeBps: getUint32Env("STABLESWAP_REFERRAL_FEE_BPS", 0),
	}
}

func (c *Config) AdminFees() shared.AdminFees {
	return shared.AdminFees{
		ExchangeFee: c.ExchangeFeeBps,
		ReferralFee: c.ReferralFeeBps,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getUint32Env(key string, defaultVal uint32) uint32 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseUint(val, 10, 32); err == nil {
			return uint32(i)
		}
	}
	return defaultVal
}
