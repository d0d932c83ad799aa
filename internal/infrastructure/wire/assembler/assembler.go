package assembler

import (
	"fmt"
	"io"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Assembler collects decoded events for one batch, dropping bad ones.
type Assembler struct {
	logger   logrus.FieldLogger
	observer interfaces.DecodeObserver
	events   marketdata.EventBatch
	dropped  []string
}

// New prepares an assembler for one batch.
func New(logger logrus.FieldLogger, observer interfaces.DecodeObserver) *Assembler {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Assembler{
		logger:   logger,
		observer: observer,
	}
}

// Add appends a decoded event.
func (a *Assembler) Add(event marketdata.Event) {
	a.events = append(a.events, event)
}

// Drop records an event that could not be decoded; decoding carries on.
func (a *Assembler) Drop(index int, err error) {
	reason := marketdata.DropReason(err)
	a.logger.WithError(err).WithFields(logrus.Fields{
		"index":  index,
		"reason": reason,
	}).Warn("skip event")
	a.dropped = append(a.dropped, reason)
}

// Reject discards everything collected so far and reports a framing failure.
func (a *Assembler) Reject(cause any) error {
	a.events = nil
	a.dropped = nil
	if a.observer != nil {
		a.observer.BatchRejected()
	}
	return fmt.Errorf("%w: %v", marketdata.ErrMalformedBatch, cause)
}

// Finish reports the batch outcome to the observer and returns the events
// collected in arrival order.
func (a *Assembler) Finish() marketdata.EventBatch {
	if a.observer != nil {
		for _, e := range a.events {
			a.observer.EventDecoded(e.Kind)
		}
		for _, reason := range a.dropped {
			a.observer.EventDropped(reason)
		}
	}
	return a.events
}
