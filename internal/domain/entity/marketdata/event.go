package marketdata

import (
	"fmt"
	"time"
)

// EventKind tags the variant carried by an Event.
type EventKind uint8

const (
	EventKindUnknown EventKind = iota
	EventKindTradeBar
	EventKindTick
)

func (k EventKind) String() string {
	switch k {
	case EventKindTradeBar:
		return "trade_bar"
	case EventKindTick:
		return "tick"
	default:
		return "unknown"
	}
}

// TradeBar is an aggregated OHLCV record for one interval.
type TradeBar struct {
	Open    float64
	High    float64
	Low     float64
	Close   float64
	Volume  float64
	Symbol  SymbolID
	EndTime time.Time
	Period  time.Duration
}

// Tick is a single price/quantity observation.
type Tick struct {
	Value    float64
	Quantity float64
	Symbol   SymbolID
	EndTime  time.Time
}

// Event is a tagged union; exactly one of TradeBar and Tick is set, matching Kind.
type Event struct {
	Kind     EventKind
	TradeBar *TradeBar
	Tick     *Tick
}

// NewTradeBarEvent wraps bar in an Event.
func NewTradeBarEvent(bar TradeBar) Event {
	return Event{Kind: EventKindTradeBar, TradeBar: &bar}
}

// NewTickEvent wraps tick in an Event.
func NewTickEvent(tick Tick) Event {
	return Event{Kind: EventKindTick, Tick: &tick}
}

// Validate checks that the variant payload agrees with Kind.
func (e Event) Validate() error {
	switch e.Kind {
	case EventKindTradeBar:
		if e.TradeBar == nil || e.Tick != nil {
			return fmt.Errorf("%w: trade bar payload", ErrMissingField)
		}
	case EventKindTick:
		if e.Tick == nil || e.TradeBar != nil {
			return fmt.Errorf("%w: tick payload", ErrMissingField)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownVariant, e.Kind)
	}
	return nil
}

// EventBatch holds events in wire order.
type EventBatch []Event

// Counts returns the number of trade bars and ticks in the batch.
func (b EventBatch) Counts() (tradeBars, ticks int) {
	for _, e := range b {
		switch e.Kind {
		case EventKindTradeBar:
			tradeBars++
		case EventKindTick:
			ticks++
		}
	}
	return tradeBars, ticks
}
