// Package wiretest provides fixtures shared by the wire format tests and the
// sample generator.
package wiretest

import (
	"time"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"
)

// ScenarioScale is the decimal scale the host uses for the scenario batch.
const ScenarioScale = 2

// ScenarioPacker packs decimals the way the scenario host does.
var ScenarioPacker = marketdata.FixedScale(ScenarioScale)

// ScenarioTime is the first market minute of the template algorithm's range.
var ScenarioTime = marketdata.TimeFromUnixNanos(time.Date(2013, 10, 7, 13, 31, 0, 0, time.UTC).UnixNano())

// ScenarioBatch is one trade bar followed by one IBM tick.
func ScenarioBatch() marketdata.EventBatch {
	return marketdata.EventBatch{
		marketdata.NewTradeBarEvent(marketdata.TradeBar{
			Open:    100.50,
			High:    101.00,
			Low:     99.75,
			Close:   100.25,
			Volume:  1000,
			EndTime: ScenarioTime,
			Period:  time.Minute,
		}),
		marketdata.NewTickEvent(marketdata.Tick{
			Value:    55.10,
			Quantity: 10,
			Symbol:   marketdata.NewSymbolID("IBM", 36),
			EndTime:  ScenarioTime,
		}),
	}
}

// Observer records decoder outcomes.
type Observer struct {
	Decoded  map[marketdata.EventKind]int
	Dropped  map[string]int
	Rejected int
}

var _ interfaces.DecodeObserver = (*Observer)(nil)

func NewObserver() *Observer {
	return &Observer{
		Decoded: make(map[marketdata.EventKind]int),
		Dropped: make(map[string]int),
	}
}

func (o *Observer) EventDecoded(kind marketdata.EventKind) { o.Decoded[kind]++ }
func (o *Observer) EventDropped(reason string)             { o.Dropped[reason]++ }
func (o *Observer) BatchRejected()                         { o.Rejected++ }
