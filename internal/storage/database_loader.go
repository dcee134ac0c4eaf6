package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/leengari/memtable/internal/domain/schema"
)

// ReadSeed parses a seed file. The format follows the extension: .toml or .json.
func ReadSeed(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(raw), &seed); err != nil {
			return nil, fmt.Errorf("failed to parse seed %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &seed); err != nil {
			return nil, fmt.Errorf("failed to parse seed %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed format %q", ext)
	}
	return &seed, nil
}

// LoadDatabase reads a seed file into a new database.
func LoadDatabase(path string, logger *slog.Logger, opts ...schema.Option) (*schema.Database, *SeedFile, error) {
	if logger == nil {
		logger = slog.Default()
	}

	seed, err := ReadSeed(path)
	if err != nil {
		return nil, nil, err
	}

	db := schema.NewDatabase(append([]schema.Option{schema.WithLogger(logger)}, opts...)...)
	if err := Apply(db, seed, logger); err != nil {
		return nil, nil, err
	}

	logger.Info("Database seeded successfully",
		slog.String("path", path),
		slog.Int("table_count", len(seed.Tables)),
	)
	return db, seed, nil
}

// Apply creates every seeded table in db and inserts its rows.
func Apply(db *schema.Database, seed *SeedFile, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	for _, ts := range seed.Tables {
		if err := LoadTable(db, ts, logger); err != nil {
			return fmt.Errorf("failed to load table %s: %w", ts.Name, err)
		}
	}
	return nil
}
