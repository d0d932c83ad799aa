package config

import (
	"errors"
	"fmt"

	"interop/internal/infrastructure/wire"

	"github.com/sirupsen/logrus"
)

// Validate checks that every value is one the module understands. The wire
// format is normalised in place.
func (c *Config) Validate() error {
	format, err := wire.ParseFormat(string(c.Wire.Format))
	if err != nil {
		return fmt.Errorf("wire.format: %w", err)
	}
	c.Wire.Format = format

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}

	if c.Replay.Workers < 1 {
		return errors.New("replay.workers must be >= 1")
	}
	return nil
}
