package marketdata

import (
	"errors"
	"fmt"
	"time"
)

// RequiredDecimal converts a decimal field that must be present on the wire.
func RequiredDecimal(field string, d *PackedDecimal) (float64, error) {
	if d == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	v, err := d.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

// TimeFromUnixNanos maps wire timestamps to UTC; zero stays the zero time.
func TimeFromUnixNanos(nanos int64) time.Time {
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}

// UnixNanos is the inverse of TimeFromUnixNanos.
func UnixNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

// DropReason classifies a per-event decode error for logs and metrics.
func DropReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownVariant):
		return "unknown_variant"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidDecimal):
		return "invalid_decimal"
	case errors.Is(err, ErrRange):
		return "range"
	default:
		return "other"
	}
}
