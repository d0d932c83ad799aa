package algorithm

import (
	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Algorithm is the strategy a Session drives.
//
// Initialize is the only place the algorithm may call back into the host.
// OnData receives every decoded batch in delivery order.
type Algorithm interface {
	Initialize(host interfaces.HostCallbacks) error
	OnData(batch marketdata.EventBatch)
}

// Factory builds a fresh algorithm for each session.
type Factory func(logger logrus.FieldLogger) Algorithm

// BasicTemplate is the Factory for BasicTemplateAlgorithm.
func BasicTemplate(logger logrus.FieldLogger) Algorithm {
	return NewBasicTemplateAlgorithm(logger)
}

// BasicTemplateAlgorithm subscribes to IBM ticks for one week in October 2013
// and writes every tick it receives to the log.
type BasicTemplateAlgorithm struct {
	logger logrus.FieldLogger
	points int
}

func NewBasicTemplateAlgorithm(logger logrus.FieldLogger) *BasicTemplateAlgorithm {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BasicTemplateAlgorithm{logger: logger}
}

func (a *BasicTemplateAlgorithm) Initialize(host interfaces.HostCallbacks) error {
	host.SetStartDate(2013, 10, 7)
	host.SetEndDate(2013, 10, 11)
	host.AddEquity("IBM", interfaces.ResolutionTick)

	a.logger.Info("Hello from Go")
	return nil
}

func (a *BasicTemplateAlgorithm) OnData(batch marketdata.EventBatch) {
	for _, event := range batch {
		a.points++

		switch event.Kind {
		case marketdata.EventKindTick:
			t := event.Tick
			a.logger.Infof("%s %s - Price: %f Qty: %f", t.Symbol.Ticker, t.Symbol.Tag, t.Value, t.Quantity)
		case marketdata.EventKindTradeBar:
			b := event.TradeBar
			a.logger.WithFields(logrus.Fields{
				"symbol": b.Symbol.Ticker,
				"end":    b.EndTime,
			}).Debugf("O: %f H: %f L: %f C: %f V: %f", b.Open, b.High, b.Low, b.Close, b.Volume)
		}
	}
}

// DataPoints is the number of events seen so far.
func (a *BasicTemplateAlgorithm) DataPoints() int {
	return a.points
}
