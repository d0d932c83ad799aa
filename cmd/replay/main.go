// Command replay feeds recorded batch files through the gateway the way the
// host would, one session per file, and logs the resulting counters.
//
//	replay [file ...]
//
// With no arguments the files listed under replay.inputs in $INTEROP_CONFIG
// are used.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"interop/internal/application/service/algorithm"
	"interop/internal/config"
	interfaces "interop/internal/domain/interfaces"
	"interop/internal/infrastructure/metrics"
	"interop/internal/infrastructure/wire"
	"interop/internal/interfaces/abi"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stderr)

	inputs := os.Args[1:]
	if len(inputs) == 0 {
		inputs = cfg.Replay.Inputs
	}
	if len(inputs) == 0 {
		logger.Fatal("no input files")
	}

	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		logger.Fatalf("init metrics: %v", err)
	}
	decoder, err := wire.NewDecoder(cfg.Wire.Format, logger, m)
	if err != nil {
		logger.Fatalf("init decoder: %v", err)
	}
	gateway := abi.NewGateway(algorithm.BasicTemplate, decoder, m, logger)

	var g errgroup.Group
	g.SetLimit(cfg.Replay.Workers)
	for _, path := range inputs {
		path := path
		g.Go(func() error {
			return replayFile(gateway, path, logger.WithField("file", path))
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatalf("replay stopped with error: %v", err)
	}
	if leaked := gateway.Close(); leaked > 0 {
		logger.WithField("leaked", leaked).Warn("sessions left open")
	}

	snap, err := metrics.Snapshot(registry)
	if err != nil {
		logger.Fatalf("gather metrics: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"files":   len(inputs),
		"format":  cfg.Wire.Format,
		"metrics": snap,
	}).Info("replay finished")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("INTEROP_CONFIG"); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func replayFile(gateway *abi.Gateway, path string, logger logrus.FieldLogger) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	host := logHost{logger: logger}
	h := gateway.Create()
	if h == abi.InvalidHandle {
		return fmt.Errorf("create session for %s", path)
	}
	defer func() {
		if err := gateway.Destroy(h); err != nil {
			logger.WithError(err).Error("destroy session")
		}
	}()

	if err := gateway.Initialize(h, host); err != nil {
		return fmt.Errorf("initialize %s: %w", path, err)
	}
	n, err := gateway.Deliver(h, host, payload)
	if err != nil {
		return fmt.Errorf("deliver %s: %w", path, err)
	}
	logger.WithFields(logrus.Fields{"bytes": len(payload), "events": n}).Info("file replayed")
	return nil
}

// logHost stands in for the host runtime and records control calls.
type logHost struct {
	logger logrus.FieldLogger
}

var _ interfaces.HostCallbacks = logHost{}

func (h logHost) SetStartDate(year, month, day int) {
	h.logger.Infof("SetStartDate %04d-%02d-%02d", year, month, day)
}

func (h logHost) SetEndDate(year, month, day int) {
	h.logger.Infof("SetEndDate %04d-%02d-%02d", year, month, day)
}

func (h logHost) AddEquity(ticker string, resolution interfaces.Resolution) {
	h.logger.WithField("resolution", resolution.String()).Infof("AddEquity %s", ticker)
}

func (h logHost) History(ticker string, periods int, resolution interfaces.Resolution) {
	h.logger.WithFields(logrus.Fields{
		"periods":    periods,
		"resolution": resolution.String(),
	}).Infof("History %s", ticker)
}
