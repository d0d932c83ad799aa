package marketdata

import "errors"

var (
	ErrRange          = errors.New("decimal magnitude out of range")
	ErrInvalidDecimal = errors.New("invalid packed decimal")
	ErrInvalidSymbol  = errors.New("invalid symbol properties")
	ErrMalformedBatch = errors.New("malformed event batch")
	ErrUnknownVariant = errors.New("unknown event variant")
	ErrMissingField   = errors.New("missing event field")
)
