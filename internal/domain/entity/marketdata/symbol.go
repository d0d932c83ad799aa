package marketdata

import (
	"fmt"
	"strconv"
	"strings"
)

// SymbolID identifies an instrument: the display ticker plus the packed
// classification properties and their base-36 tag.
type SymbolID struct {
	Ticker     string
	Properties uint64
	Tag        string
}

// NewSymbolID builds a SymbolID and derives its property tag.
func NewSymbolID(ticker string, properties uint64) SymbolID {
	return SymbolID{
		Ticker:     ticker,
		Properties: properties,
		Tag:        EncodeBase36(properties),
	}
}

// String renders "<ticker> <tag>".
func (s SymbolID) String() string {
	return s.Ticker + " " + s.Tag
}

// EncodeBase36 renders properties with digits 0-9A-Z, most significant first.
// Zero encodes to the empty string.
func EncodeBase36(properties uint64) string {
	if properties == 0 {
		return ""
	}
	return strings.ToUpper(strconv.FormatUint(properties, 36))
}

// DecodeBase36 parses an upper-case alphanumeric tag back into properties.
func DecodeBase36(tag string) (uint64, error) {
	if tag == "" {
		return 0, nil
	}
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return 0, fmt.Errorf("%w: character %q in %q", ErrInvalidSymbol, c, tag)
		}
	}
	value, err := strconv.ParseUint(tag, 36, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSymbol, err)
	}
	return value, nil
}
