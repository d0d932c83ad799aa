package protomsg

import (
	"errors"
	"fmt"
	"time"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"
	"interop/internal/infrastructure/wire/assembler"

	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/encoding/protowire"
)

// Decoder walks the EventBatch message in place. Fields it does not know are
// skipped; a field whose wire type does not match the schema is treated the
// same way.
type Decoder struct {
	logger   logrus.FieldLogger
	observer interfaces.DecodeObserver
}

var _ interfaces.BatchDecoder = (*Decoder)(nil)

func NewDecoder(logger logrus.FieldLogger, observer interfaces.DecodeObserver) *Decoder {
	if logger != nil {
		logger = logger.WithField("decoder", "protobuf")
	}
	return &Decoder{logger: logger, observer: observer}
}

func (d *Decoder) Decode(payload []byte) (marketdata.EventBatch, error) {
	asm := assembler.New(d.logger, d.observer)

	index := 0
	err := eachField(payload, func(f field) error {
		if f.num != batchEvents || f.typ != protowire.BytesType {
			return nil
		}
		event, err := decodeEvent(f.bytes)
		switch {
		case err == nil:
			asm.Add(event)
		case isFraming(err):
			return fmt.Errorf("event %d: %w", index, err)
		default:
			asm.Drop(index, err)
		}
		index++
		return nil
	})
	if err != nil {
		return nil, asm.Reject(err)
	}
	return asm.Finish(), nil
}

func isFraming(err error) bool {
	var fe framingError
	return errors.As(err, &fe)
}

func decodeEvent(msg []byte) (marketdata.Event, error) {
	var (
		variant protowire.Number
		payload []byte
	)
	err := eachField(msg, func(f field) error {
		if f.typ == protowire.BytesType && (f.num == eventTradeBar || f.num == eventTick) {
			// last member of the oneof wins
			variant, payload = f.num, f.bytes
		}
		return nil
	})
	if err != nil {
		return marketdata.Event{}, err
	}

	switch variant {
	case eventTradeBar:
		return decodeTradeBar(payload)
	case eventTick:
		return decodeTick(payload)
	default:
		return marketdata.Event{}, fmt.Errorf("%w: event has neither trade_bar nor tick", marketdata.ErrUnknownVariant)
	}
}

func decodeTradeBar(msg []byte) (marketdata.Event, error) {
	var (
		decimals [len(tradeBarDecimalNames)]*marketdata.PackedDecimal
		out      marketdata.TradeBar
	)
	err := eachField(msg, func(f field) error {
		switch {
		case f.num >= tradeBarOpen && f.num <= tradeBarVolume && f.typ == protowire.BytesType:
			d, err := decodeDecimal(f.bytes)
			if err != nil {
				return err
			}
			decimals[f.num-tradeBarOpen] = &d
		case f.num == tradeBarSymbol && f.typ == protowire.BytesType:
			s, err := decodeSymbol(f.bytes)
			if err != nil {
				return err
			}
			out.Symbol = s
		case f.num == tradeBarEndTime && f.typ == protowire.VarintType:
			out.EndTime = marketdata.TimeFromUnixNanos(int64(f.scalar))
		case f.num == tradeBarPeriod && f.typ == protowire.VarintType:
			out.Period = time.Duration(int64(f.scalar))
		}
		return nil
	})
	if err != nil {
		return marketdata.Event{}, err
	}

	dst := [...]*float64{&out.Open, &out.High, &out.Low, &out.Close, &out.Volume}
	for i, name := range tradeBarDecimalNames {
		v, err := marketdata.RequiredDecimal(name, decimals[i])
		if err != nil {
			return marketdata.Event{}, fmt.Errorf("trade bar: %w", err)
		}
		*dst[i] = v
	}
	return marketdata.NewTradeBarEvent(out), nil
}

func decodeTick(msg []byte) (marketdata.Event, error) {
	var (
		value, quantity *marketdata.PackedDecimal
		symbol          *marketdata.SymbolID
		endTime         int64
	)
	err := eachField(msg, func(f field) error {
		switch {
		case (f.num == tickValue || f.num == tickQuantity) && f.typ == protowire.BytesType:
			d, err := decodeDecimal(f.bytes)
			if err != nil {
				return err
			}
			if f.num == tickValue {
				value = &d
			} else {
				quantity = &d
			}
		case f.num == tickSymbol && f.typ == protowire.BytesType:
			s, err := decodeSymbol(f.bytes)
			if err != nil {
				return err
			}
			symbol = &s
		case f.num == tickEndTime && f.typ == protowire.VarintType:
			endTime = int64(f.scalar)
		}
		return nil
	})
	if err != nil {
		return marketdata.Event{}, err
	}

	out := marketdata.Tick{EndTime: marketdata.TimeFromUnixNanos(endTime)}
	if out.Value, err = marketdata.RequiredDecimal("value", value); err != nil {
		return marketdata.Event{}, fmt.Errorf("tick: %w", err)
	}
	if out.Quantity, err = marketdata.RequiredDecimal("quantity", quantity); err != nil {
		return marketdata.Event{}, fmt.Errorf("tick: %w", err)
	}
	if symbol == nil {
		return marketdata.Event{}, fmt.Errorf("tick: %w: symbol", marketdata.ErrMissingField)
	}
	out.Symbol = *symbol
	return marketdata.NewTickEvent(out), nil
}

func decodeDecimal(msg []byte) (marketdata.PackedDecimal, error) {
	var d marketdata.PackedDecimal
	err := eachField(msg, func(f field) error {
		switch {
		case f.num == decimalLo && f.typ == protowire.Fixed64Type:
			d.Lo = f.scalar
		case f.num == decimalHi && f.typ == protowire.Fixed32Type:
			d.Hi = uint32(f.scalar)
		case f.num == decimalSignScale && f.typ == protowire.Fixed32Type:
			d.SignScale = uint32(f.scalar)
		}
		return nil
	})
	return d, err
}

func decodeSymbol(msg []byte) (marketdata.SymbolID, error) {
	var (
		properties uint64
		ticker     string
	)
	err := eachField(msg, func(f field) error {
		switch {
		case f.num == symbolProperties && f.typ == protowire.Fixed64Type:
			properties = f.scalar
		case f.num == symbolTicker && f.typ == protowire.BytesType:
			// string() copies out of the host buffer
			ticker = string(f.bytes)
		}
		return nil
	})
	if err != nil {
		return marketdata.SymbolID{}, err
	}
	return marketdata.NewSymbolID(ticker, properties), nil
}
