package config

import (
	"fmt"
	"os"
	"strconv"

	"interop/internal/infrastructure/wire"
)

const (
	defaultEnv           = "development"
	defaultWireFormat    = wire.FormatFlatBuffers
	defaultLogLevel      = "info"
	defaultLogFormat     = "json"
	defaultStrictABI     = true
	defaultReplayWorkers = 4
)

// Config keeps the runtime configuration for the native module and its tools.
type Config struct {
	Env    string       `yaml:"env"`
	Wire   WireConfig   `yaml:"wire"`
	Log    LogConfig    `yaml:"log"`
	ABI    ABIConfig    `yaml:"abi"`
	Replay ReplayConfig `yaml:"replay"`
}

// WireConfig selects the batch serialisation the host uses.
type WireConfig struct {
	Format wire.Format `yaml:"format"`
}

// LogConfig controls the diagnostic sink.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ABIConfig controls how the C boundary reacts to host misuse.
type ABIConfig struct {
	// Strict terminates the process on handle or state misuse instead of
	// logging it.
	Strict bool `yaml:"strict"`
}

// ReplayConfig drives cmd/replay.
type ReplayConfig struct {
	Workers int      `yaml:"workers"`
	Inputs  []string `yaml:"inputs"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Env:    defaultEnv,
		Wire:   WireConfig{Format: defaultWireFormat},
		Log:    LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		ABI:    ABIConfig{Strict: defaultStrictABI},
		Replay: ReplayConfig{Workers: defaultReplayWorkers},
	}
}

// Load builds Config from environment variables.
func Load() (*Config, error) {
	format, err := wire.ParseFormat(getString("INTEROP_WIRE_FORMAT", string(defaultWireFormat)))
	if err != nil {
		return nil, fmt.Errorf("parse INTEROP_WIRE_FORMAT: %w", err)
	}

	strict, err := getBool("INTEROP_STRICT_ABI", defaultStrictABI)
	if err != nil {
		return nil, fmt.Errorf("parse INTEROP_STRICT_ABI: %w", err)
	}

	workers, err := getInt("INTEROP_REPLAY_WORKERS", defaultReplayWorkers)
	if err != nil {
		return nil, fmt.Errorf("parse INTEROP_REPLAY_WORKERS: %w", err)
	}

	cfg := &Config{
		Env:  getString("INTEROP_ENV", defaultEnv),
		Wire: WireConfig{Format: format},
		Log: LogConfig{
			Level:  getString("INTEROP_LOG_LEVEL", defaultLogLevel),
			Format: getString("INTEROP_LOG_FORMAT", defaultLogFormat),
		},
		ABI:    ABIConfig{Strict: strict},
		Replay: ReplayConfig{Workers: workers},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}

func getBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("convert %s value %q to bool: %w", key, value, err)
	}
	return parsed, nil
}
