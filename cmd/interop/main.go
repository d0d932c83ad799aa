// Command interop is the native module loaded by the host runtime. Build it
// with -buildmode=c-shared; main is never run.
package main

/*
#include <stdint.h>
#include "callbacks.h"
*/
import "C"

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"interop/internal/application/service/algorithm"
	"interop/internal/config"
	"interop/internal/infrastructure/metrics"
	"interop/internal/infrastructure/wire"
	"interop/internal/interfaces/abi"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type module struct {
	gateway  *abi.Gateway
	registry *prometheus.Registry
	logger   *logrus.Logger
	strict   bool
}

var (
	setupOnce sync.Once
	mod       *module
)

// instance builds the module on first use; the host gives no init hook.
func instance() *module {
	setupOnce.Do(func() {
		cfg, cfgErr := config.Load()
		if cfgErr != nil {
			cfg = config.Default()
		}

		logger := cfg.Log.NewLogger(os.Stderr)
		if cfgErr != nil {
			logger.WithError(cfgErr).Error("config error, using defaults")
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

		mod = &module{
			gateway:  abi.NewGateway(algorithm.BasicTemplate, decoder, m, logger),
			registry: registry,
			logger:   logger,
			strict:   cfg.ABI.Strict,
		}
		logger.WithFields(logrus.Fields{
			"env":    cfg.Env,
			"wire":   cfg.Wire.Format,
			"strict": cfg.ABI.Strict,
		}).Info("interop module loaded")
	})
	return mod
}

// misuse reports a host programming error. In strict mode the process exits.
func (m *module) misuse(op string, h abi.Handle, err error) {
	entry := m.logger.WithError(err).WithFields(logrus.Fields{"op": op, "handle": uint64(h)})
	if m.strict {
		entry.Fatal("abi misuse")
	}
	entry.Error("abi misuse")
}

// recoverPanic keeps Go panics from unwinding into the host.
func (m *module) recoverPanic(op string, h abi.Handle) {
	if r := recover(); r != nil {
		m.misuse(op, h, fmt.Errorf("panic: %v", r))
	}
}

//export create
func create() C.uint64_t {
	m := instance()
	defer m.recoverPanic("create", abi.InvalidHandle)

	return C.uint64_t(m.gateway.Create())
}

//export initialize
func initialize(handle C.uint64_t, callbacks *C.qc_callbacks) {
	m := instance()
	h := abi.Handle(handle)
	defer m.recoverPanic("initialize", h)

	if err := m.gateway.Initialize(h, hostFrom(callbacks)); err != nil {
		m.misuse("initialize", h, err)
	}
}

//export deliver
func deliver(handle C.uint64_t, callbacks *C.qc_callbacks, buffer *C.uint8_t, length C.uint64_t) {
	m := instance()
	h := abi.Handle(handle)
	defer m.recoverPanic("deliver", h)

	var payload []byte
	if buffer != nil && length > 0 {
		payload = unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(length))
	}
	if _, err := m.gateway.Deliver(h, hostFrom(callbacks), payload); err != nil {
		m.misuse("deliver", h, err)
	}
}

//export destroy
func destroy(handle C.uint64_t) {
	m := instance()
	h := abi.Handle(handle)
	defer m.recoverPanic("destroy", h)

	if err := m.gateway.Destroy(h); err != nil {
		m.misuse("destroy", h, err)
		return
	}
	if m.gateway.Live() == 0 {
		m.logSnapshot()
	}
}

func (m *module) logSnapshot() {
	snap, err := metrics.Snapshot(m.registry)
	if err != nil {
		m.logger.WithError(err).Warn("metrics snapshot")
		return
	}
	m.logger.WithField("metrics", snap).Info("all sessions closed")
}

func main() {}
