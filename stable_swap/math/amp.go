package math

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/krazyTry/stableswap-go/stable_swap/shared"
)

// AmpSchedule ramps the amplification coefficient linearly from InitAmp at InitTime
// to TargetAmp at StopTime.
type AmpSchedule struct {
	InitAmp   uint64
	TargetAmp uint64
	InitTime  uint64
	StopTime  uint64
}

func NewAmpSchedule(amp uint64) AmpSchedule {
	return AmpSchedule{InitAmp: amp, TargetAmp: amp}
}

func ValidateAmp(amp uint64) error {
	if amp < shared.MinAmp || amp > shared.MaxAmp {
		return fmt.Errorf("amp %d: %w", amp, shared.ErrInvalidAmplification)
	}
	return nil
}

func (s AmpSchedule) Validate() error {
	if err := ValidateAmp(s.InitAmp); err != nil {
		return err
	}
	if err := ValidateAmp(s.TargetAmp); err != nil {
		return err
	}
	if s.StopTime < s.InitTime {
		return fmt.Errorf("stop time before init time: %w", shared.ErrInvalidRamp)
	}
	return nil
}

// CurrentAmp returns the amplification coefficient at now. The interpolated value is
// computed with a single division and truncates toward InitAmp.
func (s AmpSchedule) CurrentAmp(now uint64) uint64 {
	if now >= s.StopTime {
		return s.TargetAmp
	}
	if now <= s.InitTime {
		return s.InitAmp
	}

	timeRange := uint256.NewInt(s.StopTime - s.InitTime)
	timeDelta := uint256.NewInt(now - s.InitTime)

	if s.TargetAmp >= s.InitAmp {
		ampDelta := new(uint256.Int).Mul(uint256.NewInt(s.TargetAmp-s.InitAmp), timeDelta)
		ampDelta.Div(ampDelta, timeRange)
		return s.InitAmp + ampDelta.Uint64()
	}
	ampDelta := new(uint256.Int).Mul(uint256.NewInt(s.InitAmp-s.TargetAmp), timeDelta)
	ampDelta.Div(ampDelta, timeRange)
	return s.InitAmp - ampDelta.Uint64()
}

// Ramp returns a schedule that moves from the amp in effect at now to futureAmp at futureTime.
func (s AmpSchedule) Ramp(futureAmp, futureTime, now uint64) (AmpSchedule, error) {
	if err := ValidateAmp(futureAmp); err != nil {
		return AmpSchedule{}, err
	}
	if futureTime < now || futureTime-now < shared.MinRampDuration {
		return AmpSchedule{}, fmt.Errorf("ramp shorter than minimum duration: %w", shared.ErrInvalidRamp)
	}

	current := s.CurrentAmp(now)
	if futureAmp >= current {
		if futureAmp > current*shared.MaxAmpChange {
			return AmpSchedule{}, fmt.Errorf("amp %d -> %d: %w", current, futureAmp, shared.ErrInvalidRamp)
		}
	} else if futureAmp*shared.MaxAmpChange < current {
		return AmpSchedule{}, fmt.Errorf("amp %d -> %d: %w", current, futureAmp, shared.ErrInvalidRamp)
	}

	return AmpSchedule{
		InitAmp:   current,
		TargetAmp: futureAmp,
		InitTime:  now,
		StopTime:  futureTime,
	}, nil
}

// StopRamp freezes the amp in effect at now.
func (s AmpSchedule) StopRamp(now uint64) AmpSchedule {
	current := s.CurrentAmp(now)
	return AmpSchedule{
		InitAmp:   current,
		TargetAmp: current,
		InitTime:  now,
		StopTime:  now,
	}
}
