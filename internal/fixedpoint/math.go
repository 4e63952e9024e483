package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

// ErrOutOfRange is returned when a value does not fit a signed 256-bit integer,
// the widest value the NUMERIC(78,0) columns and the API accept.
var ErrOutOfRange = errors.New("fixedpoint: value exceeds 256-bit range")

var (
	zero      = new(big.Int)
	minInt256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
)

// MulDiv returns a*b/c truncated toward zero. c must not be zero.
func MulDiv(a, b, c *big.Int) *big.Int {
	product := new(big.Int).Mul(orZero(a), orZero(b))
	return product.Quo(product, c)
}

// MulDivUnsigned returns a*b/c truncated, computed on 256-bit words with a
// 512-bit intermediate product. It falls back to arbitrary precision when an
// operand is negative or wider than 256 bits, or when the quotient overflows.
// A non-positive c is handed to MulDiv as well.
func MulDivUnsigned(a, b, c *big.Int) *big.Int {
	a, b = orZero(a), orZero(b)
	if a.Sign() < 0 || b.Sign() < 0 || c.Sign() <= 0 {
		return MulDiv(a, b, c)
	}

	x, overflowX := uint256.FromBig(a)
	y, overflowY := uint256.FromBig(b)
	d, overflowD := uint256.FromBig(c)
	if overflowX || overflowY || overflowD {
		return MulDiv(a, b, c)
	}

	result, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow {
		return MulDiv(a, b, c)
	}
	return result.ToBig()
}

// FitsInt256 reports whether v is representable as a signed 256-bit integer.
func FitsInt256(v *big.Int) bool {
	if v == nil {
		return true
	}
	if v.Sign() < 0 {
		return v.Cmp(minInt256) >= 0
	}
	u, overflow := uint256.FromBig(v)
	return !overflow && u.BitLen() < 256
}

// CheckInt256 returns ErrOutOfRange when v does not fit a signed 256-bit integer.
func CheckInt256(v *big.Int) error {
	if !FitsInt256(v) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, v.String())
	}
	return nil
}

// Min returns the smaller of a and b.
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}

// Max returns the larger of a and b.
func Max(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}

// IsZero reports whether v is nil or zero.
func IsZero(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}

// ToFloat converts value, scaled by 10^decimals, to the nearest float64. It
// is lossy and only meant for metrics. ok is false when the result overflows.
func ToFloat(value *big.Int, decimals uint) (float64, bool) {
	f := new(big.Float).SetInt(orZero(value))
	f.Quo(f, new(big.Float).SetInt(Pow10(decimals)))
	out, _ := f.Float64()
	return out, !math.IsInf(out, 0)
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return zero
	}
	return v
}
