package algorithm_test

import (
	"errors"
	"reflect"
	"testing"

	"interop/internal/application/service/algorithm"
	"interop/internal/application/service/algorithm/algorithmtest"
	marketdata "interop/internal/domain/entity/marketdata"
	"interop/internal/infrastructure/wire/protomsg"
	"interop/internal/infrastructure/wire/wiretest"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newSession(t *testing.T, algo algorithm.Algorithm) (*algorithm.Session, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s, err := algorithm.NewSession(algo, protomsg.NewDecoder(logger, nil), logger)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, hook
}

func scenarioPayload(t *testing.T) []byte {
	t.Helper()

	buf, err := protomsg.NewEncoder(wiretest.ScenarioPacker).Encode(wiretest.ScenarioBatch())
	if err != nil {
		t.Fatalf("encode scenario: %v", err)
	}
	return buf
}

func TestSessionLifecycle(t *testing.T) {
	algo := &algorithmtest.Algorithm{}
	s, _ := newSession(t, algo)
	host := &algorithmtest.Host{}

	if s.State() != algorithm.StateUninitialized {
		t.Fatalf("new session state = %s", s.State())
	}
	if err := s.Initialize(host); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	n, err := s.Deliver(host, scenarioPayload(t))
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if n != 2 {
		t.Fatalf("Deliver dispatched %d events, want 2", n)
	}
	if len(algo.Batches) != 1 || !reflect.DeepEqual(algo.Batches[0], wiretest.ScenarioBatch()) {
		t.Fatalf("algorithm batches = %+v", algo.Batches)
	}
	if len(host.Calls()) != 0 {
		t.Fatalf("host calls during delivery: %v", host.Calls())
	}

	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if s.State() != algorithm.StateFinalized {
		t.Fatalf("state after Finalize = %s", s.State())
	}
}

func TestSessionRejectsMisuse(t *testing.T) {
	host := &algorithmtest.Host{}
	payload := scenarioPayload(t)

	cases := []struct {
		name string
		prep func(s *algorithm.Session)
		call func(s *algorithm.Session) error
	}{
		{
			name: "deliver before initialize",
			prep: func(*algorithm.Session) {},
			call: func(s *algorithm.Session) error {
				_, err := s.Deliver(host, payload)
				return err
			},
		},
		{
			name: "on data before initialize",
			prep: func(*algorithm.Session) {},
			call: func(s *algorithm.Session) error {
				return s.OnData(host, wiretest.ScenarioBatch())
			},
		},
		{
			name: "initialize twice",
			prep: func(s *algorithm.Session) { _ = s.Initialize(host) },
			call: func(s *algorithm.Session) error { return s.Initialize(host) },
		},
		{
			name: "deliver after finalize",
			prep: func(s *algorithm.Session) {
				_ = s.Initialize(host)
				_ = s.Finalize()
			},
			call: func(s *algorithm.Session) error {
				_, err := s.Deliver(host, payload)
				return err
			},
		},
		{
			name: "initialize after finalize",
			prep: func(s *algorithm.Session) { _ = s.Finalize() },
			call: func(s *algorithm.Session) error { return s.Initialize(host) },
		},
		{
			name: "finalize twice",
			prep: func(s *algorithm.Session) { _ = s.Finalize() },
			call: func(s *algorithm.Session) error { return s.Finalize() },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			algo := &algorithmtest.Algorithm{}
			s, _ := newSession(t, algo)
			tc.prep(s)

			if err := tc.call(s); !errors.Is(err, algorithm.ErrInvalidStateTransition) {
				t.Fatalf("error = %v, want ErrInvalidStateTransition", err)
			}
			if len(algo.Batches) != 0 {
				t.Fatalf("algorithm saw %d batches", len(algo.Batches))
			}
		})
	}
}

func TestSessionFinalizeFromUninitialized(t *testing.T) {
	s, _ := newSession(t, &algorithmtest.Algorithm{})
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
}

func TestSessionDiscardsMalformedBatch(t *testing.T) {
	algo := &algorithmtest.Algorithm{}
	s, hook := newSession(t, algo)
	host := &algorithmtest.Host{}
	if err := s.Initialize(host); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	n, err := s.Deliver(host, []byte{0x0a, 0x7f})
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if n != 0 || len(algo.Batches) != 0 {
		t.Fatalf("malformed batch reached the algorithm: n=%d batches=%d", n, len(algo.Batches))
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("last log entry = %+v, want an error", entry)
	}
	if err, _ := entry.Data[logrus.ErrorKey].(error); !errors.Is(err, marketdata.ErrMalformedBatch) {
		t.Fatalf("logged error = %v, want ErrMalformedBatch", entry.Data[logrus.ErrorKey])
	}

	// the session stays usable
	if n, err := s.Deliver(host, scenarioPayload(t)); err != nil || n != 2 {
		t.Fatalf("Deliver after malformed batch = %d, %v", n, err)
	}
}

func TestSessionInitializeFailureKeepsState(t *testing.T) {
	boom := errors.New("boom")
	s, _ := newSession(t, &algorithmtest.Algorithm{InitErr: boom})

	if err := s.Initialize(&algorithmtest.Host{}); !errors.Is(err, boom) {
		t.Fatalf("Initialize error = %v, want boom", err)
	}
	if s.State() != algorithm.StateUninitialized {
		t.Fatalf("state = %s, want uninitialized", s.State())
	}
}

func TestNewSessionValidates(t *testing.T) {
	if _, err := algorithm.NewSession(nil, protomsg.NewDecoder(nil, nil), nil); !errors.Is(err, algorithm.ErrNilAlgorithm) {
		t.Fatalf("nil algorithm error = %v", err)
	}
	if _, err := algorithm.NewSession(&algorithmtest.Algorithm{}, nil, nil); !errors.Is(err, algorithm.ErrNilDecoder) {
		t.Fatalf("nil decoder error = %v", err)
	}

	s, _ := newSession(t, &algorithmtest.Algorithm{})
	if err := s.Initialize(nil); !errors.Is(err, algorithm.ErrNilHost) {
		t.Fatalf("nil host error = %v", err)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, _ := newSession(t, &algorithmtest.Algorithm{})
	b, _ := newSession(t, &algorithmtest.Algorithm{})
	if a.ID() == b.ID() {
		t.Fatalf("two sessions share ID %s", a.ID())
	}
}
