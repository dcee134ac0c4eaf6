package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the runtime configuration of the memtable tools.
type Config struct {
	Log  LogConfig `toml:"log"`
	Seed string    `toml:"seed"` // optional seed file loaded at startup
}

type LogConfig struct {
	Level            string        `toml:"level"`  // debug, info, warn, error
	Format           string        `toml:"format"` // text or json
	AddSource        bool          `toml:"add_source"`
	SeqURL           string        `toml:"seq_url"` // empty disables Seq
	SeqBatchSize     int           `toml:"seq_batch_size"`
	SeqFlushInterval time.Duration `toml:"seq_flush_interval"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:            "info",
			Format:           "text",
			SeqBatchSize:     1,
			SeqFlushInterval: 500 * time.Millisecond,
		},
	}
}

// Load reads a TOML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be caught by decoding.
func (c Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}
	if c.Log.SeqBatchSize < 1 {
		return fmt.Errorf("seq_batch_size must be at least 1, got %d", c.Log.SeqBatchSize)
	}
	if c.Log.SeqFlushInterval <= 0 {
		return fmt.Errorf("seq_flush_interval must be positive, got %s", c.Log.SeqFlushInterval)
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
