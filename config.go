package colecs

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes a store in TOML:
//
//	capacity   = 100000
//	slot_check = false
//	backend    = "dense" # or "sparse"
//
//	[logging]
//	level  = "info"
//	format = "console" # or "json"
type Config struct {
	Capacity  int           `toml:"capacity"`
	SlotCheck bool          `toml:"slot_check"`
	Backend   string        `toml:"backend"`
	Logging   LoggingConfig `toml:"logging"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DefaultConfig returns the values LoadConfig starts from.
func DefaultConfig() Config {
	return Config{
		Capacity: 1024,
		Backend:  "dense",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the capacity and backend name.
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if _, ok := bitsetBackendByName(c.Backend); !ok {
		return fmt.Errorf("unknown bitset backend %q", c.Backend)
	}
	return nil
}

// Options converts the config into store options, building the logger.
func (c Config) Options() ([]Option, error) {
	backend, ok := bitsetBackendByName(c.Backend)
	if !ok {
		return nil, fmt.Errorf("unknown bitset backend %q", c.Backend)
	}
	log, err := c.Logging.Build()
	if err != nil {
		return nil, err
	}
	return []Option{
		WithLogger(log),
		WithBitsetBackend(backend),
		WithSlotCheck(c.SlotCheck),
	}, nil
}

// NewStoreFromConfig creates a store from cfg. The store is not built:
// register components, then call Build(cfg.Capacity).
func NewStoreFromConfig(cfg Config, extra ...Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return NewStore(append(opts, extra...)...), nil
}

// Build creates a zap logger: "json" gives the production encoder, anything
// else the development console encoder.
func (c LoggingConfig) Build() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
	}
	var zcfg zap.Config
	if c.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
