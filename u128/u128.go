package u128

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	binary "github.com/gagliardetto/binary"
)

var (
	ErrNegative = errors.New("value cannot be negative")
	ErrOverflow = errors.New("value overflows Uint128")
	ErrSyntax   = errors.New("invalid u128 literal")
)

// Uint128 scans base-10 text into a binary.Uint128.
type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	}
	v, err := FromBig(i)
	if err != nil {
		return err
	}
	u.Lo = v.Lo
	u.Hi = v.Hi
	return nil
}

// ParseUint128 parses a base-10 u128. The whole string must be consumed.
func ParseUint128(num string) (binary.Uint128, error) {
	r := strings.NewReader(num)
	var u Uint128
	if _, err := fmt.Fscanf(r, "%d", &u); err != nil {
		if errors.Is(err, ErrNegative) || errors.Is(err, ErrOverflow) {
			return binary.Uint128{}, fmt.Errorf("%q: %w", num, err)
		}
		return binary.Uint128{}, fmt.Errorf("%q: %w", num, ErrSyntax)
	}
	if r.Len() != 0 {
		return binary.Uint128{}, fmt.Errorf("%q: %w", num, ErrSyntax)
	}
	return binary.Uint128(u), nil
}

func FromBig(v *big.Int) (binary.Uint128, error) {
	if v.Sign() < 0 {
		return binary.Uint128{}, ErrNegative
	} else if v.BitLen() > 128 {
		return binary.Uint128{}, ErrOverflow
	}
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return binary.Uint128{Lo: lo, Hi: hi}, nil
}

func ToBig(v binary.Uint128) *big.Int {
	out := new(big.Int).SetUint64(v.Hi)
	out.Lsh(out, 64)
	return out.Or(out, new(big.Int).SetUint64(v.Lo))
}
