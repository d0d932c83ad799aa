// Package algorithmtest provides host and algorithm doubles for session and
// gateway tests.
package algorithmtest

import (
	"fmt"
	"sync"

	"interop/internal/application/service/algorithm"
	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Host records every control call as a formatted line.
type Host struct {
	mu    sync.Mutex
	calls []string
}

var _ interfaces.HostCallbacks = (*Host)(nil)

func (h *Host) SetStartDate(year, month, day int) {
	h.record("SetStartDate(%d, %d, %d)", year, month, day)
}

func (h *Host) SetEndDate(year, month, day int) {
	h.record("SetEndDate(%d, %d, %d)", year, month, day)
}

func (h *Host) AddEquity(ticker string, resolution interfaces.Resolution) {
	h.record("AddEquity(%s, %s)", ticker, resolution)
}

func (h *Host) History(ticker string, periods int, resolution interfaces.Resolution) {
	h.record("History(%s, %d, %s)", ticker, periods, resolution)
}

// Calls returns the recorded calls in order.
func (h *Host) Calls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.calls...)
}

func (h *Host) record(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, fmt.Sprintf(format, args...))
}

// Algorithm keeps every batch it receives.
type Algorithm struct {
	InitErr error
	Batches []marketdata.EventBatch
}

var _ algorithm.Algorithm = (*Algorithm)(nil)

func (a *Algorithm) Initialize(host interfaces.HostCallbacks) error {
	return a.InitErr
}

func (a *Algorithm) OnData(batch marketdata.EventBatch) {
	a.Batches = append(a.Batches, batch)
}

// Recorder is an algorithm.Factory that remembers what it built.
type Recorder struct {
	mu    sync.Mutex
	Built []*Algorithm
}

func (r *Recorder) New(logrus.FieldLogger) algorithm.Algorithm {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := &Algorithm{}
	r.Built = append(r.Built, a)
	return a
}

// Last returns the most recently built algorithm.
func (r *Recorder) Last() *Algorithm {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Built) == 0 {
		return nil
	}
	return r.Built[len(r.Built)-1]
}
