package metrics

import (
	"fmt"
	"sort"
	"strings"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "interop"

// Metrics counts decoder outcomes and live sessions.
type Metrics struct {
	EventsDecoded   *prometheus.CounterVec
	EventsDropped   *prometheus.CounterVec
	BatchesRejected prometheus.Counter
	SessionsLive    prometheus.Gauge
}

var (
	_ interfaces.DecodeObserver  = (*Metrics)(nil)
	_ interfaces.SessionObserver = (*Metrics)(nil)
)

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is what the shared library does when the host
// does not ask for a snapshot.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		EventsDecoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "events_decoded_total", Help: "Market events decoded from host batches"},
			[]string{"kind"},
		),
		EventsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "events_dropped_total", Help: "Market events skipped during decoding"},
			[]string{"reason"},
		),
		BatchesRejected: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "batches_rejected_total", Help: "Batches rejected as malformed"},
		),
		SessionsLive: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "sessions_live", Help: "Handles created and not yet destroyed"},
		),
	}
	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{m.EventsDecoded, m.EventsDropped, m.BatchesRejected, m.SessionsLive} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) EventDecoded(kind marketdata.EventKind) {
	m.EventsDecoded.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) EventDropped(reason string) {
	m.EventsDropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) BatchRejected() {
	m.BatchesRejected.Inc()
}

func (m *Metrics) SessionOpened() {
	m.SessionsLive.Inc()
}

func (m *Metrics) SessionClosed() {
	m.SessionsLive.Dec()
}

// Snapshot flattens counters and gauges gathered from g into
// "name{label=value}" keys, for logging.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var value float64
			switch {
			case metric.GetCounter() != nil:
				value = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				value = metric.GetGauge().GetValue()
			default:
				continue
			}

			labels := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)

			key := mf.GetName()
			if len(labels) > 0 {
				key += "{" + strings.Join(labels, ",") + "}"
			}
			out[key] = value
		}
	}
	return out, nil
}
