package abi

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"interop/internal/application/service/algorithm"
	interfaces "interop/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Handle is the opaque token the host holds for one session.
type Handle uint64

// InvalidHandle is never issued; Create returns it on failure.
const InvalidHandle Handle = 0

var (
	ErrInvalidHandle  = errors.New("invalid handle")
	ErrHandleReleased = errors.New("handle already released")
)

// Gateway owns every live session, indexed by handle. Handles are issued in
// increasing order and never reused, so a released handle stays
// distinguishable from one that was never issued.
//
// The arena itself is safe for concurrent use. A single handle must not be
// driven from two goroutines at once.
type Gateway struct {
	mu       sync.Mutex
	last     Handle
	sessions map[Handle]*algorithm.Session

	newAlgorithm algorithm.Factory
	decoder      interfaces.BatchDecoder
	observer     interfaces.SessionObserver
	logger       logrus.FieldLogger
}

// NewGateway builds sessions with newAlgorithm, all sharing decoder.
// observer may be nil.
func NewGateway(newAlgorithm algorithm.Factory, decoder interfaces.BatchDecoder, observer interfaces.SessionObserver, logger logrus.FieldLogger) *Gateway {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Gateway{
		sessions:     make(map[Handle]*algorithm.Session),
		newAlgorithm: newAlgorithm,
		decoder:      decoder,
		observer:     observer,
		logger:       logger.WithField("component", "abi"),
	}
}

// Create allocates a session. The caller owns the handle until Destroy.
func (g *Gateway) Create() Handle {
	session, err := algorithm.NewSession(g.newAlgorithm(g.logger), g.decoder, g.logger)
	if err != nil {
		g.logger.WithError(err).Error("create session")
		return InvalidHandle
	}

	g.mu.Lock()
	g.last++
	h := g.last
	g.sessions[h] = session
	g.mu.Unlock()

	if g.observer != nil {
		g.observer.SessionOpened()
	}
	g.logger.WithFields(logrus.Fields{
		"handle":  uint64(h),
		"session": session.ID().String(),
	}).Debug("session created")
	return h
}

func (g *Gateway) Initialize(h Handle, host interfaces.HostCallbacks) error {
	session, err := g.lookup(h)
	if err != nil {
		return err
	}
	return session.Initialize(host)
}

// Deliver decodes payload for the session behind h. It reports the number of
// events dispatched; a malformed payload dispatches none and is not an error.
func (g *Gateway) Deliver(h Handle, host interfaces.HostCallbacks, payload []byte) (int, error) {
	session, err := g.lookup(h)
	if err != nil {
		return 0, err
	}
	return session.Deliver(host, payload)
}

// Destroy finalises the session and releases h. It succeeds once per handle.
func (g *Gateway) Destroy(h Handle) error {
	g.mu.Lock()
	session, err := g.lookupLocked(h)
	if err == nil {
		delete(g.sessions, h)
	}
	g.mu.Unlock()
	if err != nil {
		return err
	}

	if g.observer != nil {
		g.observer.SessionClosed()
	}
	return session.Finalize()
}

// Live is the number of handles created and not yet destroyed.
func (g *Gateway) Live() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}

// Close finalises every session the host never destroyed and returns how many
// there were. A leaked handle is the host's fault; it is only logged.
func (g *Gateway) Close() int {
	g.mu.Lock()
	leaked := make([]Handle, 0, len(g.sessions))
	for h := range g.sessions {
		leaked = append(leaked, h)
	}
	sessions := g.sessions
	g.sessions = make(map[Handle]*algorithm.Session)
	g.mu.Unlock()

	sort.Slice(leaked, func(i, j int) bool { return leaked[i] < leaked[j] })
	for _, h := range leaked {
		g.logger.WithField("handle", uint64(h)).Warn("handle was never destroyed")
		if err := sessions[h].Finalize(); err != nil {
			g.logger.WithError(err).WithField("handle", uint64(h)).Error("finalize leaked session")
		}
		if g.observer != nil {
			g.observer.SessionClosed()
		}
	}
	return len(leaked)
}

func (g *Gateway) lookup(h Handle) (*algorithm.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lookupLocked(h)
}

func (g *Gateway) lookupLocked(h Handle) (*algorithm.Session, error) {
	if session, ok := g.sessions[h]; ok {
		return session, nil
	}
	if h == InvalidHandle || h > g.last {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, uint64(h))
	}
	return nil, fmt.Errorf("%w: %w: %d", ErrHandleReleased, algorithm.ErrInvalidStateTransition, uint64(h))
}
