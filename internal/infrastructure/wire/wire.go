// Package wire selects the batch serialisation shared with the host.
package wire

import (
	"fmt"
	"strings"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"
	"interop/internal/infrastructure/wire/flatbuf"
	"interop/internal/infrastructure/wire/protomsg"

	"github.com/sirupsen/logrus"
)

// Format names a batch serialisation.
type Format string

const (
	FormatFlatBuffers Format = "flatbuffers"
	FormatProtobuf    Format = "protobuf"
)

// Formats lists every supported format.
var Formats = []Format{FormatFlatBuffers, FormatProtobuf}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatFlatBuffers, FormatProtobuf:
		return f, nil
	case "flatbuf", "fbs":
		return FormatFlatBuffers, nil
	case "proto", "pb":
		return FormatProtobuf, nil
	default:
		return "", fmt.Errorf("unknown wire format %q", s)
	}
}

func NewDecoder(format Format, logger logrus.FieldLogger, observer interfaces.DecodeObserver) (interfaces.BatchDecoder, error) {
	switch format {
	case FormatFlatBuffers:
		return flatbuf.NewDecoder(logger, observer), nil
	case FormatProtobuf:
		return protomsg.NewDecoder(logger, observer), nil
	default:
		return nil, fmt.Errorf("unknown wire format %q", format)
	}
}

func NewEncoder(format Format, pack marketdata.DecimalPacker) (interfaces.BatchEncoder, error) {
	switch format {
	case FormatFlatBuffers:
		return flatbuf.NewEncoder(pack), nil
	case FormatProtobuf:
		return protomsg.NewEncoder(pack), nil
	default:
		return nil, fmt.Errorf("unknown wire format %q", format)
	}
}
