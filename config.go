package coredb

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/dreamware/coredb/internal/exec"
	"github.com/dreamware/coredb/internal/hostkv"
	"github.com/dreamware/coredb/internal/indexstore"
	"github.com/dreamware/coredb/internal/key"
)

// DataMapOpener opens the backing ordered map for a data store declared
// with the given path and host memory id. Engine calls this once per
// declared data store, at LoadSchema time.
type DataMapOpener func(storePath string, memoryID uint32) hostkv.Map[key.DataKey, []byte]

// IndexMapOpener opens the backing ordered map for an index store.
type IndexMapOpener func(storePath string, memoryID uint32) hostkv.Map[key.IndexKey, indexstore.Entry]

// Config is coredb's process-startup configuration: ambient concerns
// (logging, default pagination) plus the hooks that bind a declared
// store to its actual backing memory. The zero Config is valid and
// opens every store as an in-process github.com/google/btree map, which
// is adequate for local development and for hosts that don't (yet) hand
// out distinct persistent memory regions.
type Config struct {
	// LogLevel names a zapcore level ("debug", "info", "warn", "error").
	// Empty defaults to "info". Ignored if Logger is set directly.
	LogLevel string `yaml:"log_level"`

	// DefaultPageSize is parsed and carried on Config, but no executor
	// reads it: a LoadQuery with no explicit Limit returns every matching
	// row whatever this field holds.
	DefaultPageSize uint32 `yaml:"default_page_size"`

	// Logger, Clock, OpenDataMap, and OpenIndexMap are caller-supplied
	// hooks, filled in by withDefaults (run by New and LoadSchema) when left
	// unset; they are not themselves serializable and are left unset by
	// ParseConfig.
	Logger       *zap.Logger      `yaml:"-"`
	Clock        exec.Clock       `yaml:"-"`
	OpenDataMap  DataMapOpener    `yaml:"-"`
	OpenIndexMap IndexMapOpener   `yaml:"-"`
}

// ParseConfig parses raw YAML bytes into a Config. The runtime hooks
// (Logger, Clock, OpenDataMap, OpenIndexMap) are left nil; New fills in
// their defaults.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse coredb config: %w", err)
	}
	return cfg, nil
}

// withDefaults returns a copy of cfg with every unset field replaced by
// its default: an info-level zap.Logger built from LogLevel, a
// exec.SystemClock, and btree-backed map openers.
func (cfg Config) withDefaults() (Config, error) {
	out := cfg

	if out.Logger == nil {
		level := zapcore.InfoLevel
		if out.LogLevel != "" {
			if err := level.UnmarshalText([]byte(out.LogLevel)); err != nil {
				return Config{}, fmt.Errorf("coredb config: %w", err)
			}
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err := zc.Build()
		if err != nil {
			return Config{}, fmt.Errorf("coredb config: build logger: %w", err)
		}
		out.Logger = logger
	}

	if out.Clock == nil {
		out.Clock = exec.SystemClock{}
	}

	if out.OpenDataMap == nil {
		out.OpenDataMap = func(string, uint32) hostkv.Map[key.DataKey, []byte] {
			return hostkv.NewBTreeMap[key.DataKey, []byte](key.CmpDataKey)
		}
	}
	if out.OpenIndexMap == nil {
		out.OpenIndexMap = func(string, uint32) hostkv.Map[key.IndexKey, indexstore.Entry] {
			return hostkv.NewBTreeMap[key.IndexKey, indexstore.Entry](key.CmpIndexKey)
		}
	}

	return out, nil
}
