// Command samplegen writes the reference trade bar and tick batch in every
// wire format, for replay and for host-side integration tests.
//
//	samplegen [dir]
package main

import (
	"os"
	"path/filepath"

	"interop/internal/config"
	"interop/internal/infrastructure/wire"
	"interop/internal/infrastructure/wire/wiretest"

	"github.com/sirupsen/logrus"
)

const defaultDir = "testdata"

func main() {
	logger := config.Default().Log.NewLogger(os.Stderr)

	dir := defaultDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Fatalf("create %s: %v", dir, err)
	}

	batch := wiretest.ScenarioBatch()
	for _, format := range wire.Formats {
		enc, err := wire.NewEncoder(format, wiretest.ScenarioPacker)
		if err != nil {
			logger.Fatalf("encoder: %v", err)
		}
		buf, err := enc.Encode(batch)
		if err != nil {
			logger.Fatalf("encode %s: %v", format, err)
		}

		path := filepath.Join(dir, "scenario."+string(format)+".bin")
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			logger.Fatalf("write %s: %v", path, err)
		}
		logger.WithFields(logrus.Fields{
			"format": format,
			"path":   path,
			"bytes":  len(buf),
			"events": len(batch),
		}).Info("sample written")
	}
}
