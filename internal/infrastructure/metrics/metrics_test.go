package metrics

import (
	"testing"

	marketdata "interop/internal/domain/entity/marketdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserverCounts(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m.EventDecoded(marketdata.EventKindTick)
	m.EventDecoded(marketdata.EventKindTick)
	m.EventDecoded(marketdata.EventKindTradeBar)
	m.EventDropped("unknown_variant")
	m.BatchRejected()
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"ticks", testutil.ToFloat64(m.EventsDecoded.WithLabelValues("tick")), 2},
		{"trade bars", testutil.ToFloat64(m.EventsDecoded.WithLabelValues("trade_bar")), 1},
		{"dropped", testutil.ToFloat64(m.EventsDropped.WithLabelValues("unknown_variant")), 1},
		{"rejected", testutil.ToFloat64(m.BatchesRejected), 1},
		{"sessions", testutil.ToFloat64(m.SessionsLive), 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatalf("first New: %v", err)
	}
	if _, err := New(reg); err == nil {
		t.Fatal("second New on the same registry succeeded")
	}
}

func TestNewWithoutRegistry(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	m.BatchRejected()
	if got := testutil.ToFloat64(m.BatchesRejected); got != 1 {
		t.Fatalf("rejected = %v, want 1", got)
	}
}

func TestSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.EventDecoded(marketdata.EventKindTick)
	m.SessionOpened()

	snap, err := Snapshot(reg)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if got := snap["interop_events_decoded_total{kind=tick}"]; got != 1 {
		t.Errorf("decoded tick = %v, want 1 (snapshot %v)", got, snap)
	}
	if got := snap["interop_sessions_live"]; got != 1 {
		t.Errorf("sessions = %v, want 1 (snapshot %v)", got, snap)
	}
	if got, ok := snap["interop_batches_rejected_total"]; !ok || got != 0 {
		t.Errorf("rejected = %v, %v; want 0, true", got, ok)
	}
}
