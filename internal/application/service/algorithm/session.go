package algorithm

import (
	"errors"
	"fmt"

	marketdata "interop/internal/domain/entity/marketdata"
	interfaces "interop/internal/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidStateTransition = errors.New("invalid session state transition")
	ErrNilHost                = errors.New("host callbacks are nil")
	ErrNilAlgorithm           = errors.New("algorithm is nil")
	ErrNilDecoder             = errors.New("batch decoder is nil")
)

// State is a Session lifecycle stage.
type State int32

const (
	StateUninitialized State = iota
	StateInitialized
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Session sequences host calls into one algorithm instance. It is not safe
// for concurrent use; the host drives each handle from one thread at a time.
type Session struct {
	id        uuid.UUID
	algorithm Algorithm
	decoder   interfaces.BatchDecoder
	logger    logrus.FieldLogger
	state     State

	batches int
	events  int
}

func NewSession(algorithm Algorithm, decoder interfaces.BatchDecoder, logger logrus.FieldLogger) (*Session, error) {
	if algorithm == nil {
		return nil, ErrNilAlgorithm
	}
	if decoder == nil {
		return nil, ErrNilDecoder
	}

	id := uuid.New()
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Session{
		id:        id,
		algorithm: algorithm,
		decoder:   decoder,
		logger:    logger.WithFields(logrus.Fields{"component": "session", "session": id.String()}),
	}, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// Initialize lets the algorithm declare its date range and subscriptions.
func (s *Session) Initialize(host interfaces.HostCallbacks) error {
	if s.state != StateUninitialized {
		return s.misuse("initialize")
	}
	if host == nil {
		return ErrNilHost
	}

	if err := s.algorithm.Initialize(host); err != nil {
		return fmt.Errorf("initialize algorithm: %w", err)
	}
	s.state = StateInitialized
	s.logger.Debug("session initialized")
	return nil
}

// Deliver decodes payload and hands the batch to the algorithm. A malformed
// payload is logged and counts as a delivery of zero events. The returned
// count is the number of events dispatched.
func (s *Session) Deliver(host interfaces.HostCallbacks, payload []byte) (int, error) {
	if s.state != StateInitialized {
		return 0, s.misuse("deliver")
	}

	batch, err := s.decoder.Decode(payload)
	if err != nil {
		s.logger.WithError(err).WithField("bytes", len(payload)).Error("discard batch")
		return 0, nil
	}
	if err := s.OnData(host, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// OnData dispatches an already decoded batch. The host table is accepted for
// symmetry with the boundary; no control callback is made during delivery.
func (s *Session) OnData(_ interfaces.HostCallbacks, batch marketdata.EventBatch) error {
	if s.state != StateInitialized {
		return s.misuse("on data")
	}

	s.algorithm.OnData(batch)
	s.batches++
	s.events += len(batch)
	return nil
}

// Finalize ends the session. It succeeds once.
func (s *Session) Finalize() error {
	if s.state == StateFinalized {
		return s.misuse("finalize")
	}

	s.state = StateFinalized
	s.logger.WithFields(logrus.Fields{
		"batches": s.batches,
		"events":  s.events,
	}).Debug("session finalized")
	return nil
}

func (s *Session) misuse(op string) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidStateTransition, op, s.state)
}
