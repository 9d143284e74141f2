package shared

import "errors"

// Construction-time errors. A pool configuration that triggers one is never usable.
var (
	ErrInvalidDecimal       = errors.New("token decimal out of range")
	ErrInvalidAmplification = errors.New("amplification coefficient out of range")
	ErrInvalidFee           = errors.New("fee must be less than fee divisor")
	ErrInvalidPoolConfig    = errors.New("invalid pool config")
	ErrInvalidRamp          = errors.New("invalid amplification ramp")
)

// Per-call errors.
var (
	ErrDuplicateToken     = errors.New("token in and token out are the same")
	ErrUnknownToken       = errors.New("unknown token")
	ErrInvalidBalances    = errors.New("balances do not match pool tokens")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrNotConverged       = errors.New("newton iteration did not converge")
	ErrInconsistentState  = errors.New("swap output exceeds destination balance")
)
