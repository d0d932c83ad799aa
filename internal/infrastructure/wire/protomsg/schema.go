package protomsg

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers from batch.proto.
const (
	batchEvents protowire.Number = 1

	eventTradeBar protowire.Number = 1
	eventTick     protowire.Number = 2

	tradeBarOpen    protowire.Number = 1
	tradeBarVolume  protowire.Number = 5
	tradeBarSymbol  protowire.Number = 6
	tradeBarEndTime protowire.Number = 7
	tradeBarPeriod  protowire.Number = 8

	tickValue    protowire.Number = 1
	tickQuantity protowire.Number = 2
	tickSymbol   protowire.Number = 3
	tickEndTime  protowire.Number = 4

	decimalLo        protowire.Number = 1
	decimalHi        protowire.Number = 2
	decimalSignScale protowire.Number = 3

	symbolProperties protowire.Number = 1
	symbolTicker     protowire.Number = 2
)

var tradeBarDecimalNames = [...]string{"open", "high", "low", "close", "volume"}

// field is one decoded key/value pair. For BytesType, bytes aliases the
// input message.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	scalar uint64
	bytes  []byte
}

// framingError marks wire-level damage, which is fatal for the whole batch.
type framingError struct {
	err error
}

func (e framingError) Error() string { return e.err.Error() }
func (e framingError) Unwrap() error { return e.err }

func eachField(msg []byte, visit func(f field) error) error {
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return framingError{fmt.Errorf("tag: %w", protowire.ParseError(n))}
		}
		msg = msg[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.scalar, n = protowire.ConsumeVarint(msg)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(msg)
			f.scalar = uint64(v)
		case protowire.Fixed64Type:
			f.scalar, n = protowire.ConsumeFixed64(msg)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(msg)
		default:
			n = protowire.ConsumeFieldValue(num, typ, msg)
		}
		if n < 0 {
			return framingError{fmt.Errorf("field %d: %w", num, protowire.ParseError(n))}
		}
		msg = msg[n:]

		if err := visit(f); err != nil {
			return err
		}
	}
	return nil
}
