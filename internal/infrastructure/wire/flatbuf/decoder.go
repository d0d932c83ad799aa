package flatbuf

import (
	"fmt"
	"time"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"
	"interop/internal/infrastructure/wire/assembler"
	"interop/internal/infrastructure/wire/flatbuf/fbs"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sirupsen/logrus"
)

// root offset plus the smallest possible vtable reference
const minBatchSize = 2 * flatbuffers.SizeUOffsetT

// Decoder reads EventBatch tables in place. Hosts may hand over a buffer
// larger than the serialised batch; bytes past the root are ignored.
type Decoder struct {
	logger   logrus.FieldLogger
	observer interfaces.DecodeObserver
}

var _ interfaces.BatchDecoder = (*Decoder)(nil)

func NewDecoder(logger logrus.FieldLogger, observer interfaces.DecodeObserver) *Decoder {
	if logger != nil {
		logger = logger.WithField("decoder", "flatbuffers")
	}
	return &Decoder{logger: logger, observer: observer}
}

func (d *Decoder) Decode(payload []byte) (batch marketdata.EventBatch, err error) {
	asm := assembler.New(d.logger, d.observer)

	// Generated accessors index the buffer without bounds checks, so a
	// corrupt offset surfaces as a runtime panic.
	defer func() {
		if r := recover(); r != nil {
			batch, err = nil, asm.Reject(r)
		}
	}()

	if len(payload) < minBatchSize {
		return nil, asm.Reject(fmt.Sprintf("%d bytes is shorter than a root table", len(payload)))
	}
	if off := flatbuffers.GetUOffsetT(payload); int64(off)+flatbuffers.SizeSOffsetT > int64(len(payload)) {
		return nil, asm.Reject(fmt.Sprintf("root offset %d outside %d bytes", off, len(payload)))
	}

	root := fbs.GetRootAsEventBatch(payload, 0)
	count := root.EventsLength()
	if count < 0 || count > len(payload)/flatbuffers.SizeUOffsetT {
		return nil, asm.Reject(fmt.Sprintf("event count %d exceeds %d bytes", count, len(payload)))
	}

	var event fbs.Event
	for i := 0; i < count; i++ {
		root.Events(&event, i)
		decoded, err := decodeEvent(&event)
		if err != nil {
			asm.Drop(i, err)
			continue
		}
		asm.Add(decoded)
	}
	return asm.Finish(), nil
}

func decodeEvent(event *fbs.Event) (marketdata.Event, error) {
	kind := event.DataType()
	if kind != fbs.MarketDataTradeBar && kind != fbs.MarketDataTick {
		return marketdata.Event{}, fmt.Errorf("%w: %s", marketdata.ErrUnknownVariant, kind)
	}

	var table flatbuffers.Table
	if !event.Data(&table) {
		return marketdata.Event{}, fmt.Errorf("%w: %s payload", marketdata.ErrMissingField, kind)
	}

	if kind == fbs.MarketDataTradeBar {
		var bar fbs.TradeBar
		bar.Init(table.Bytes, table.Pos)
		return decodeTradeBar(&bar)
	}
	var tick fbs.Tick
	tick.Init(table.Bytes, table.Pos)
	return decodeTick(&tick)
}

func decodeTradeBar(bar *fbs.TradeBar) (marketdata.Event, error) {
	out := marketdata.TradeBar{
		EndTime: marketdata.TimeFromUnixNanos(bar.EndTime()),
		Period:  time.Duration(bar.Period()),
	}

	fields := []struct {
		name string
		src  *fbs.Decimal
		dst  *float64
	}{
		{"open", bar.Open(nil), &out.Open},
		{"high", bar.High(nil), &out.High},
		{"low", bar.Low(nil), &out.Low},
		{"close", bar.Close(nil), &out.Close},
		{"volume", bar.Volume(nil), &out.Volume},
	}
	for _, f := range fields {
		v, err := marketdata.RequiredDecimal(f.name, packed(f.src))
		if err != nil {
			return marketdata.Event{}, fmt.Errorf("trade bar: %w", err)
		}
		*f.dst = v
	}

	if symbol := bar.Symbol(nil); symbol != nil {
		out.Symbol = symbolID(symbol)
	}
	return marketdata.NewTradeBarEvent(out), nil
}

func decodeTick(tick *fbs.Tick) (marketdata.Event, error) {
	value, err := marketdata.RequiredDecimal("value", packed(tick.Value(nil)))
	if err != nil {
		return marketdata.Event{}, fmt.Errorf("tick: %w", err)
	}
	quantity, err := marketdata.RequiredDecimal("quantity", packed(tick.Quantity(nil)))
	if err != nil {
		return marketdata.Event{}, fmt.Errorf("tick: %w", err)
	}
	symbol := tick.Symbol(nil)
	if symbol == nil {
		return marketdata.Event{}, fmt.Errorf("tick: %w: symbol", marketdata.ErrMissingField)
	}

	return marketdata.NewTickEvent(marketdata.Tick{
		Value:    value,
		Quantity: quantity,
		Symbol:   symbolID(symbol),
		EndTime:  marketdata.TimeFromUnixNanos(tick.EndTime()),
	}), nil
}

func packed(d *fbs.Decimal) *marketdata.PackedDecimal {
	if d == nil {
		return nil
	}
	return &marketdata.PackedDecimal{Lo: d.Lo(), Hi: d.Hi(), SignScale: d.SignScale()}
}

// string() copies the ticker out of the host buffer.
func symbolID(s *fbs.Symbol) marketdata.SymbolID {
	return marketdata.NewSymbolID(string(s.Ticker()), s.Properties())
}
