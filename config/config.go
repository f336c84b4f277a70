// Package config handles wordvm.toml configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wordvm"
	"github.com/wippyai/wordvm/errors"
	"github.com/wippyai/wordvm/inspect"
	"github.com/wippyai/wordvm/machine"
)

// FileName is the conventional configuration file name.
const FileName = "wordvm.toml"

// validate is shared; building a validator per call is expensive.
var validate = validator.New()

// Config represents a wordvm.toml configuration.
type Config struct {
	Log    Log    `toml:"log"`
	Engine Engine `toml:"engine"`
	Stack  Stack  `toml:"stack"`
	Dump   Dump   `toml:"dump"`
}

// Stack configures context stack geometry.
type Stack struct {
	WordBytes     int `toml:"word-bytes" validate:"min=2,max=4096"`
	CapacityBytes int `toml:"capacity-bytes" validate:"gt=0,max=16777216"`
}

// Engine configures the wazero runtime.
type Engine struct {
	// Entry is the guest export called by Run.
	Entry string `toml:"entry" validate:"required"`
	// MemoryLimitPages caps guest memory in 64 KiB pages. 0 keeps wazero's default.
	MemoryLimitPages uint32 `toml:"memory-limit-pages" validate:"max=65536"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `toml:"level" validate:"oneof=debug info warn error"`
	Development bool   `toml:"development"`
}

// Dump configures the diagnostic dump.
type Dump struct {
	Rows     int `toml:"rows" validate:"min=0"`
	RowBytes int `toml:"row-bytes" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Stack: Stack{
			WordBytes:     wordvm.WordSizeBytes,
			CapacityBytes: wordvm.StackSizeBytes,
		},
		Engine: Engine{
			Entry: "run",
		},
		Log: Log{
			Level: "info",
		},
		Dump: Dump{
			Rows:     wordvm.DumpRows,
			RowBytes: wordvm.DumpRowBytes,
		},
	}
}

// Load reads and validates the configuration file at path. Keys missing from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML configuration data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.InvalidConfig(undecoded[0], nil, fmt.Sprintf("unknown key %q", undecoded[0].String()))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and the stack geometry.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "validation failed")
	}
	if c.Stack.CapacityBytes%c.Stack.WordBytes != 0 {
		return errors.InvalidConfig([]string{"stack", "capacity-bytes"}, c.Stack.CapacityBytes,
			fmt.Sprintf("capacity must be a multiple of word-bytes (%d)", c.Stack.WordBytes))
	}
	return nil
}

// NewContext creates a machine context with the configured stack geometry.
func (c *Config) NewContext() (*machine.Context, error) {
	return machine.NewWithSize(c.Stack.WordBytes, c.Stack.CapacityBytes)
}

// NewDumper creates a dumper with the configured row geometry.
func (c *Config) NewDumper(counter *inspect.Counter) *inspect.Dumper {
	d := inspect.NewDumper(counter)
	d.Rows = c.Dump.Rows
	d.RowBytes = c.Dump.RowBytes
	return d
}

// NewLogger builds a zap logger for the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.InvalidConfig([]string{"log", "level"}, c.Log.Level, err.Error())
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
