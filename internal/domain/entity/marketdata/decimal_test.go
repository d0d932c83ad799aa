package marketdata

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestPackedDecimalFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   PackedDecimal
		want float64
	}{
		{name: "zero", in: PackedDecimal{}, want: 0},
		{name: "integer", in: PackedDecimal{Lo: 1000}, want: 1000},
		{name: "scale two", in: PackedDecimal{Lo: 10050, SignScale: 2}, want: 100.50},
		{name: "negative", in: PackedDecimal{Lo: 9975, SignScale: 2 | 0x80000000}, want: -99.75},
		{name: "high word", in: PackedDecimal{Hi: 1}, want: 18446744073709551616},
		{name: "max scale", in: PackedDecimal{Lo: 1, SignScale: 28}, want: 1e-28},
		{name: "max mantissa", in: PackedDecimal{Lo: math.MaxUint64, Hi: math.MaxUint32}, want: math.Ldexp(1, 96)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Float64()
			if err != nil {
				t.Fatalf("Float64() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Float64() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackedDecimalFloat64InvalidScale(t *testing.T) {
	_, err := PackedDecimal{Lo: 1, SignScale: 29}.Float64()
	if !errors.Is(err, ErrInvalidDecimal) {
		t.Fatalf("Float64() error = %v, want ErrInvalidDecimal", err)
	}
}

func TestDecimalFromFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want PackedDecimal
	}{
		{name: "zero", in: 0, want: PackedDecimal{}},
		{name: "negative zero", in: math.Copysign(0, -1), want: PackedDecimal{}},
		{name: "integer", in: 100, want: PackedDecimal{Lo: 100}},
		{name: "fraction", in: 100.5, want: PackedDecimal{Lo: 1005, SignScale: 1}},
		{name: "negative fraction", in: -0.1, want: PackedDecimal{Lo: 1, SignScale: 1 | 0x80000000}},
		{name: "large integer", in: 1e20, want: PackedDecimal{Lo: 7766279631452241920, Hi: 5}},
		{name: "max scale", in: 1e-28, want: PackedDecimal{Lo: 1, SignScale: 28}},
		{name: "tie rounds to even down", in: 2.5e-28, want: PackedDecimal{Lo: 2, SignScale: 28}},
		{name: "tie rounds to even up", in: 3.5e-28, want: PackedDecimal{Lo: 4, SignScale: 28}},
		{name: "below max scale", in: 1e-30, want: PackedDecimal{}},
		{name: "saturated mantissa", in: math.Ldexp(1, 96), want: PackedDecimal{Lo: math.MaxUint64, Hi: math.MaxUint32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalFromFloat64(tt.in)
			if err != nil {
				t.Fatalf("DecimalFromFloat64(%v) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DecimalFromFloat64(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecimalFromFloat64Range(t *testing.T) {
	for _, v := range []float64{1e29, -1e29, math.Inf(1), math.Inf(-1), math.NaN(), math.MaxFloat64} {
		if _, err := DecimalFromFloat64(v); !errors.Is(err, ErrRange) {
			t.Errorf("DecimalFromFloat64(%v) error = %v, want ErrRange", v, err)
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		x := PackedDecimal{
			Lo:        rng.Uint64(),
			Hi:        rng.Uint32() >> uint(rng.Intn(33)),
			SignScale: uint32(rng.Intn(MaxScale + 1)),
		}
		if rng.Intn(2) == 1 {
			x.SignScale |= 0x80000000
		}

		want, err := x.Float64()
		if err != nil {
			t.Fatalf("Float64(%+v) error: %v", x, err)
		}
		encoded, err := DecimalFromFloat64(want)
		if err != nil {
			t.Fatalf("DecimalFromFloat64(%v) error: %v", want, err)
		}
		got, err := encoded.Float64()
		if err != nil {
			t.Fatalf("Float64(%+v) error: %v", encoded, err)
		}

		if diff := math.Abs(got - want); diff > 1e-9*math.Abs(want) {
			t.Fatalf("round trip of %+v: got %v, want %v", x, got, want)
		}
	}
}

func TestParsePackedDecimalKeepsScale(t *testing.T) {
	tests := []struct {
		in   string
		want PackedDecimal
	}{
		{in: "100.50", want: PackedDecimal{Lo: 10050, SignScale: 2}},
		{in: "1000.00", want: PackedDecimal{Lo: 100000, SignScale: 2}},
		{in: "-55.10", want: PackedDecimal{Lo: 5510, SignScale: 2 | 0x80000000}},
		{in: "7", want: PackedDecimal{Lo: 7}},
	}

	for _, tt := range tests {
		got, err := ParsePackedDecimal(tt.in)
		if err != nil {
			t.Fatalf("ParsePackedDecimal(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePackedDecimal(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	if _, err := ParsePackedDecimal("abc"); !errors.Is(err, ErrInvalidDecimal) {
		t.Errorf("ParsePackedDecimal(abc) error = %v, want ErrInvalidDecimal", err)
	}
}
