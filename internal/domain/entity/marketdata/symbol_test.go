package marketdata

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEncodeBase36(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{in: 0, want: ""},
		{in: 1, want: "1"},
		{in: 35, want: "Z"},
		{in: 36, want: "10"},
		{in: 1295, want: "ZZ"},
		{in: 1296, want: "100"},
		{in: math.MaxUint64, want: "3W5E11264SGSF"},
	}

	for _, tt := range tests {
		if got := EncodeBase36(tt.in); got != tt.want {
			t.Errorf("EncodeBase36(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeBase36Alphabet(t *testing.T) {
	for v := uint64(1); v < 50000; v += 7 {
		got := EncodeBase36(v)
		if strings.HasPrefix(got, "0") {
			t.Fatalf("EncodeBase36(%d) = %q has a leading zero", v, got)
		}
		if strings.Trim(got, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ") != "" {
			t.Fatalf("EncodeBase36(%d) = %q uses characters outside [0-9A-Z]", v, got)
		}
		back, err := DecodeBase36(got)
		if err != nil {
			t.Fatalf("DecodeBase36(%q) error: %v", got, err)
		}
		if back != v {
			t.Fatalf("DecodeBase36(EncodeBase36(%d)) = %d", v, back)
		}
	}
}

func TestDecodeBase36Invalid(t *testing.T) {
	for _, in := range []string{"abc", "1-2", " 10", "3W5E11264SGSG"} {
		if _, err := DecodeBase36(in); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("DecodeBase36(%q) error = %v, want ErrInvalidSymbol", in, err)
		}
	}
}

func TestNewSymbolID(t *testing.T) {
	sid := NewSymbolID("IBM", 36)
	if sid.Tag != "10" {
		t.Errorf("Tag = %q, want %q", sid.Tag, "10")
	}
	if sid.String() != "IBM 10" {
		t.Errorf("String() = %q, want %q", sid.String(), "IBM 10")
	}
}
