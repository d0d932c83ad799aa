package flatbuf

import (
	"fmt"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"
	"interop/internal/infrastructure/wire/flatbuf/fbs"

	flatbuffers "github.com/google/flatbuffers/go"
)

const initialBuilderSize = 1024

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
	b := flatbuffers.NewBuilder(initialBuilderSize)

	offsets := make([]flatbuffers.UOffsetT, 0, len(batch))
	for i, event := range batch {
		off, err := e.encodeEvent(b, event)
		if err != nil {
			return nil, fmt.Errorf("encode event %d: %w", i, err)
		}
		offsets = append(offsets, off)
	}

	fbs.EventBatchStartEventsVector(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	events := b.EndVector(len(offsets))

	fbs.EventBatchStart(b)
	fbs.EventBatchAddEvents(b, events)
	b.Finish(fbs.EventBatchEnd(b))
	return b.FinishedBytes(), nil
}

func (e *Encoder) encodeEvent(b *flatbuffers.Builder, event marketdata.Event) (flatbuffers.UOffsetT, error) {
	if err := event.Validate(); err != nil {
		return 0, err
	}

	var (
		kind fbs.MarketData
		data flatbuffers.UOffsetT
		err  error
	)
	switch event.Kind {
	case marketdata.EventKindTradeBar:
		kind = fbs.MarketDataTradeBar
		data, err = e.encodeTradeBar(b, event.TradeBar)
	case marketdata.EventKindTick:
		kind = fbs.MarketDataTick
		data, err = e.encodeTick(b, event.Tick)
	}
	if err != nil {
		return 0, err
	}

	fbs.EventStart(b)
	fbs.EventAddDataType(b, kind)
	fbs.EventAddData(b, data)
	return fbs.EventEnd(b), nil
}

func (e *Encoder) encodeTradeBar(b *flatbuffers.Builder, bar *marketdata.TradeBar) (flatbuffers.UOffsetT, error) {
	values, err := e.packAll(bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
	if err != nil {
		return 0, fmt.Errorf("trade bar: %w", err)
	}

	var symbol flatbuffers.UOffsetT
	if bar.Symbol != (marketdata.SymbolID{}) {
		symbol = encodeSymbol(b, bar.Symbol)
	}

	// structs are written inline, immediately before their slot
	fbs.TradeBarStart(b)
	fbs.TradeBarAddOpen(b, createDecimal(b, values[0]))
	fbs.TradeBarAddHigh(b, createDecimal(b, values[1]))
	fbs.TradeBarAddLow(b, createDecimal(b, values[2]))
	fbs.TradeBarAddClose(b, createDecimal(b, values[3]))
	fbs.TradeBarAddVolume(b, createDecimal(b, values[4]))
	if symbol != 0 {
		fbs.TradeBarAddSymbol(b, symbol)
	}
	fbs.TradeBarAddEndTime(b, marketdata.UnixNanos(bar.EndTime))
	fbs.TradeBarAddPeriod(b, int64(bar.Period))
	return fbs.TradeBarEnd(b), nil
}

func (e *Encoder) encodeTick(b *flatbuffers.Builder, tick *marketdata.Tick) (flatbuffers.UOffsetT, error) {
	values, err := e.packAll(tick.Value, tick.Quantity)
	if err != nil {
		return 0, fmt.Errorf("tick: %w", err)
	}
	symbol := encodeSymbol(b, tick.Symbol)

	fbs.TickStart(b)
	fbs.TickAddValue(b, createDecimal(b, values[0]))
	fbs.TickAddQuantity(b, createDecimal(b, values[1]))
	fbs.TickAddSymbol(b, symbol)
	fbs.TickAddEndTime(b, marketdata.UnixNanos(tick.EndTime))
	return fbs.TickEnd(b), nil
}

func (e *Encoder) packAll(values ...float64) ([]marketdata.PackedDecimal, error) {
	out := make([]marketdata.PackedDecimal, len(values))
	for i, v := range values {
		p, err := e.pack(v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func encodeSymbol(b *flatbuffers.Builder, symbol marketdata.SymbolID) flatbuffers.UOffsetT {
	ticker := b.CreateString(symbol.Ticker)
	fbs.SymbolStart(b)
	fbs.SymbolAddProperties(b, symbol.Properties)
	fbs.SymbolAddTicker(b, ticker)
	return fbs.SymbolEnd(b)
}

func createDecimal(b *flatbuffers.Builder, d marketdata.PackedDecimal) flatbuffers.UOffsetT {
	return fbs.CreateDecimal(b, d.Lo, d.Hi, d.SignScale)
}
