package marketdata

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// MaxScale is the largest power-of-ten scale a PackedDecimal may carry.
	MaxScale = 28

	signMask  uint32 = 0x80000000
	scaleMask uint32 = 0x000000FF
)

var (
	ten          = big.NewInt(10)
	low64Mask    = new(big.Int).SetUint64(math.MaxUint64)
	maxMantissa  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))
	twoPow96Real = math.Ldexp(1, 96)
)

// PackedDecimal is the 128-bit fixed-point layout used on the wire: a 96-bit
// unsigned mantissa split across Lo (low 64 bits) and Hi (high 32 bits), and a
// sign/scale word whose low byte holds the scale and whose top bit holds the sign.
type PackedDecimal struct {
	Lo        uint64
	Hi        uint32
	SignScale uint32
}

// Scale returns the power-of-ten divisor exponent.
func (d PackedDecimal) Scale() uint32 {
	return d.SignScale & scaleMask
}

// Negative reports whether the sign bit is set.
func (d PackedDecimal) Negative() bool {
	return d.SignScale&signMask != 0
}

// IsZero reports whether the mantissa is zero, regardless of sign and scale.
func (d PackedDecimal) IsZero() bool {
	return d.Lo == 0 && d.Hi == 0
}

func (d PackedDecimal) mantissa() *big.Int {
	m := new(big.Int).SetUint64(uint64(d.Hi))
	m.Lsh(m, 64)
	return m.Or(m, new(big.Int).SetUint64(d.Lo))
}

// Decimal returns the exact decimal value.
func (d PackedDecimal) Decimal() (decimal.Decimal, error) {
	scale := d.Scale()
	if scale > MaxScale {
		return decimal.Zero, fmt.Errorf("%w: scale %d exceeds %d", ErrInvalidDecimal, scale, MaxScale)
	}
	value := decimal.NewFromBigInt(d.mantissa(), -int32(scale))
	if d.Negative() {
		value = value.Neg()
	}
	return value, nil
}

// Float64 converts the packed value to the nearest float64.
func (d PackedDecimal) Float64() (float64, error) {
	value, err := d.Decimal()
	if err != nil {
		return 0, err
	}
	f, _ := value.Float64()
	return f, nil
}

// String renders the exact decimal text, or a placeholder for invalid scales.
func (d PackedDecimal) String() string {
	value, err := d.Decimal()
	if err != nil {
		return fmt.Sprintf("PackedDecimal(lo=%d hi=%d sign_scale=%#x)", d.Lo, d.Hi, d.SignScale)
	}
	return value.String()
}

// NewPackedDecimal packs value using the smallest scale that represents it,
// rounding half to even when more than MaxScale fractional digits are present.
func NewPackedDecimal(value decimal.Decimal) (PackedDecimal, error) {
	if value.Exponent() < -MaxScale {
		value = value.RoundBank(MaxScale)
	}

	coef := value.Coefficient()
	exp := value.Exponent()
	negative := coef.Sign() < 0
	coef.Abs(coef)

	var scale uint32
	if exp > 0 {
		coef.Mul(coef, new(big.Int).Exp(ten, big.NewInt(int64(exp)), nil))
	} else {
		scale = uint32(-exp)
	}

	rem := new(big.Int)
	quo := new(big.Int)
	for scale > 0 && coef.Sign() != 0 {
		quo.QuoRem(coef, ten, rem)
		if rem.Sign() != 0 {
			break
		}
		coef.Set(quo)
		scale--
	}
	if coef.Sign() == 0 {
		scale = 0
		negative = false
	}

	return pack(coef, scale, negative)
}

func pack(coef *big.Int, scale uint32, negative bool) (PackedDecimal, error) {
	if coef.BitLen() > 96 {
		return PackedDecimal{}, fmt.Errorf("%w: mantissa %s needs %d bits", ErrRange, coef.String(), coef.BitLen())
	}
	packed := PackedDecimal{
		Lo:        new(big.Int).And(coef, low64Mask).Uint64(),
		Hi:        uint32(new(big.Int).Rsh(coef, 64).Uint64()),
		SignScale: scale,
	}
	if negative {
		packed.SignScale |= signMask
	}
	return packed, nil
}

// DecimalFromFloat64 packs the shortest decimal that round-trips v.
func DecimalFromFloat64(v float64) (PackedDecimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return PackedDecimal{}, fmt.Errorf("%w: %v is not finite", ErrRange, v)
	}
	// 2^96-1 rounds up to 2^96 as a float64; map it back onto the largest mantissa.
	if math.Abs(v) == twoPow96Real {
		return pack(new(big.Int).Set(maxMantissa), 0, v < 0)
	}
	return NewPackedDecimal(decimal.NewFromFloat(v))
}

// ParsePackedDecimal packs a decimal literal such as "100.50" keeping the
// digits as written, trailing zeros included.
func ParsePackedDecimal(text string) (PackedDecimal, error) {
	value, err := decimal.NewFromString(text)
	if err != nil {
		return PackedDecimal{}, fmt.Errorf("%w: parse %q: %v", ErrInvalidDecimal, text, err)
	}
	if value.Exponent() < -MaxScale || value.Exponent() > 0 {
		return NewPackedDecimal(value)
	}

	coef := value.Coefficient()
	negative := coef.Sign() < 0
	return pack(coef.Abs(coef), uint32(-value.Exponent()), negative)
}

// DecimalPacker converts a float to its wire form.
type DecimalPacker func(float64) (PackedDecimal, error)

// FixedScale returns a packer that writes exactly scale fractional digits,
// rounding half to even.
func FixedScale(scale int32) DecimalPacker {
	if scale < 0 {
		scale = 0
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	return func(v float64) (PackedDecimal, error) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return PackedDecimal{}, fmt.Errorf("%w: %v is not finite", ErrRange, v)
		}
		return ParsePackedDecimal(decimal.NewFromFloat(v).StringFixedBank(scale))
	}
}
