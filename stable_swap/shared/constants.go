package shared

const (
	MinDecimal    = 1
	MaxDecimal    = 24
	TargetDecimal = 18

	MinAmp = 1
	MaxAmp = 1_000_000

	// MaxAmpChange bounds future/current (or current/future) amp in a single ramp.
	MaxAmpChange = 10

	// MinRampDuration is one day in nanoseconds (block timestamps are ns).
	MinRampDuration = 86_400 * 1_000_000_000

	FeeDivisor = 10_000 // 100%

	MaxIterations = 256

	MinTokens = 2
)
