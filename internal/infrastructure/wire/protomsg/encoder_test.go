package protomsg

import (
	"errors"
	"math"
	"testing"

	marketdata "interop/internal/domain/entity/marketdata"
	"interop/internal/infrastructure/wire/wiretest"
)

func TestEncodeWritesScaledDecimals(t *testing.T) {
	bar := wiretest.ScenarioBatch()[0].TradeBar
	msg, err := NewEncoder(wiretest.ScenarioPacker).encodeTradeBar(bar)
	if err != nil {
		t.Fatalf("encodeTradeBar: %v", err)
	}

	var open *marketdata.PackedDecimal
	var sawSymbol bool
	if err := eachField(msg, func(f field) error {
		switch f.num {
		case tradeBarOpen:
			d, err := decodeDecimal(f.bytes)
			open = &d
			return err
		case tradeBarSymbol:
			sawSymbol = true
		}
		return nil
	}); err != nil {
		t.Fatalf("walk trade bar: %v", err)
	}

	want := marketdata.PackedDecimal{Lo: 10050, SignScale: 2}
	if open == nil || *open != want {
		t.Fatalf("open = %+v, want %+v", open, want)
	}
	if sawSymbol {
		t.Fatal("trade bar without a symbol was written with one")
	}
}

func TestEncodeKeepsZeroDecimalsPresent(t *testing.T) {
	buf, err := NewEncoder(nil).Encode(marketdata.EventBatch{
		marketdata.NewTickEvent(marketdata.Tick{Symbol: marketdata.NewSymbolID("IBM", 0)}),
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := NewDecoder(nil, nil).Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 1 || got[0].Tick.Value != 0 || got[0].Tick.Symbol.Tag != "" {
		t.Fatalf("Decode = %+v, want one zero tick", got)
	}
}

func TestEncodeRejectsUnrepresentableEvents(t *testing.T) {
	cases := []struct {
		name  string
		event marketdata.Event
		want  error
	}{
		{"unknown kind", marketdata.Event{}, marketdata.ErrUnknownVariant},
		{"kind without payload", marketdata.Event{Kind: marketdata.EventKindTradeBar}, marketdata.ErrMissingField},
		{"NaN quantity", marketdata.NewTickEvent(marketdata.Tick{Quantity: math.NaN()}), marketdata.ErrRange},
		{"value at 2^97", marketdata.NewTickEvent(marketdata.Tick{Value: math.Ldexp(1, 97)}), marketdata.ErrRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEncoder(nil).Encode(marketdata.EventBatch{tc.event})
			if !errors.Is(err, tc.want) {
				t.Fatalf("Encode error = %v, want %v", err, tc.want)
			}
		})
	}
}
