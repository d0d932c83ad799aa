package protomsg

import (
	"fmt"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"

	"google.golang.org/protobuf/encoding/protowire"
)

// Encoder serialises batches the way the host does before a delivery.
type Encoder struct {
	pack marketdata.DecimalPacker
}

var _ interfaces.BatchEncoder = (*Encoder)(nil)

// NewEncoder uses pack for every decimal field; nil selects the shortest
// round-tripping representation.
func NewEncoder(pack marketdata.DecimalPacker) *Encoder {
	if pack == nil {
		pack = marketdata.DecimalFromFloat64
	}
	return &Encoder{pack: pack}
}

func (e *Encoder) Encode(batch marketdata.EventBatch) ([]byte, error) {
	var out []byte
	for i, event := range batch {
		msg, err := e.encodeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("encode event %d: %w", i, err)
		}
		out = appendMessage(out, batchEvents, msg)
	}
	return out, nil
}

func (e *Encoder) encodeEvent(event marketdata.Event) ([]byte, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if event.Kind == marketdata.EventKindTradeBar {
		msg, err := e.encodeTradeBar(event.TradeBar)
		if err != nil {
			return nil, fmt.Errorf("trade bar: %w", err)
		}
		return appendMessage(nil, eventTradeBar, msg), nil
	}
	msg, err := e.encodeTick(event.Tick)
	if err != nil {
		return nil, fmt.Errorf("tick: %w", err)
	}
	return appendMessage(nil, eventTick, msg), nil
}

func (e *Encoder) encodeTradeBar(bar *marketdata.TradeBar) ([]byte, error) {
	var msg []byte
	for i, v := range []float64{bar.Open, bar.High, bar.Low, bar.Close, bar.Volume} {
		d, err := e.pack(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tradeBarDecimalNames[i], err)
		}
		msg = appendMessage(msg, tradeBarOpen+protowire.Number(i), encodeDecimal(d))
	}
	if bar.Symbol != (marketdata.SymbolID{}) {
		msg = appendMessage(msg, tradeBarSymbol, encodeSymbol(bar.Symbol))
	}
	msg = appendVarint(msg, tradeBarEndTime, marketdata.UnixNanos(bar.EndTime))
	msg = appendVarint(msg, tradeBarPeriod, int64(bar.Period))
	return msg, nil
}

func (e *Encoder) encodeTick(tick *marketdata.Tick) ([]byte, error) {
	value, err := e.pack(tick.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	quantity, err := e.pack(tick.Quantity)
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}

	var msg []byte
	msg = appendMessage(msg, tickValue, encodeDecimal(value))
	msg = appendMessage(msg, tickQuantity, encodeDecimal(quantity))
	msg = appendMessage(msg, tickSymbol, encodeSymbol(tick.Symbol))
	msg = appendVarint(msg, tickEndTime, marketdata.UnixNanos(tick.EndTime))
	return msg, nil
}

func encodeDecimal(d marketdata.PackedDecimal) []byte {
	var msg []byte
	if d.Lo != 0 {
		msg = protowire.AppendTag(msg, decimalLo, protowire.Fixed64Type)
		msg = protowire.AppendFixed64(msg, d.Lo)
	}
	if d.Hi != 0 {
		msg = protowire.AppendTag(msg, decimalHi, protowire.Fixed32Type)
		msg = protowire.AppendFixed32(msg, d.Hi)
	}
	if d.SignScale != 0 {
		msg = protowire.AppendTag(msg, decimalSignScale, protowire.Fixed32Type)
		msg = protowire.AppendFixed32(msg, d.SignScale)
	}
	return msg
}

func encodeSymbol(s marketdata.SymbolID) []byte {
	var msg []byte
	if s.Properties != 0 {
		msg = protowire.AppendTag(msg, symbolProperties, protowire.Fixed64Type)
		msg = protowire.AppendFixed64(msg, s.Properties)
	}
	if s.Ticker != "" {
		msg = protowire.AppendTag(msg, symbolTicker, protowire.BytesType)
		msg = protowire.AppendString(msg, s.Ticker)
	}
	return msg
}

// appendMessage writes a length-delimited sub-message; an empty sub-message
// is still written so that presence survives the round trip.
func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendVarint(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}
