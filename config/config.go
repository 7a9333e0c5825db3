// Package config loads the ramsey runtime configuration.
//
// Priority: environment > YAML file > defaults. The merged result is
// checked with struct tags before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ramsey/builder"
	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/game"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "RAMSEY_"

// Config is the merged runtime configuration.
type Config struct {
	// Pattern names the goal graph (see builder.Named). With PatternEdges set
	// it is only a label.
	Pattern string `yaml:"pattern" validate:"required"`
	// PatternEdges lists goal edges over local indices 0..n-1.
	PatternEdges [][2]int `yaml:"pattern_edges" validate:"omitempty,min=1"`

	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// StoreConfig locates the save-slot database.
type StoreConfig struct {
	Path     string `yaml:"path" validate:"required_unless=InMemory true"`
	InMemory bool   `yaml:"in_memory"`
}

// MetricsConfig toggles the prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"omitempty,metric_name"`
	// Addr, when set, serves /metrics over HTTP while a game runs.
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pattern: game.DefaultPattern,
		Log:     LogConfig{Level: "info"},
		Store:   StoreConfig{Path: "ramsey.db"},
		Metrics: MetricsConfig{Namespace: "ramsey"},
	}
}

// Load merges defaults, the YAML file at path (optional, may be empty or
// missing) and RAMSEY_* environment overrides, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	loadConfigFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func loadConfigFromEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "PATTERN"); v != "" {
		cfg.Pattern = v
		cfg.PatternEdges = nil
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPrefix + "LOG_DEVELOPMENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Development = b
		}
	}
	if v := os.Getenv(EnvPrefix + "STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv(EnvPrefix + "STORE_IN_MEMORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Store.InMemory = b
		}
	}
	if v := os.Getenv(EnvPrefix + "METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv(EnvPrefix + "METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
}

var (
	validate   = newValidator()
	metricName = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Only fails on an empty tag or nil func.
	_ = v.RegisterValidation("metric_name", func(fl validator.FieldLevel) bool {
		return metricName.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks struct tags, then that the goal pattern actually builds.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	if _, err := c.PatternGraph(); err != nil {
		return fmt.Errorf("%w: pattern: %v", ErrInvalidConfig, err)
	}
	return nil
}

// formatValidationError flattens validator errors into one readable line.
func formatValidationError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Namespace())
		switch fe.Tag() {
		case "required", "required_unless":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s entries", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

// PatternGraph builds the configured goal graph.
func (c Config) PatternGraph() (*core.Graph, error) {
	if len(c.PatternEdges) == 0 {
		return builder.Pattern(c.Pattern)
	}

	n := 0
	for _, e := range c.PatternEdges {
		n = max(n, e[0]+1, e[1]+1)
	}
	return builder.BuildGraph(nil, builder.FromEdges(n, c.PatternEdges))
}

// EngineOptions translates the goal settings into game options.
func (c Config) EngineOptions() ([]game.Option, error) {
	if len(c.PatternEdges) == 0 {
		return []game.Option{game.WithPattern(c.Pattern)}, nil
	}
	g, err := c.PatternGraph()
	if err != nil {
		return nil, err
	}
	return []game.Option{game.WithPatternGraph(c.Pattern, g)}, nil
}

// NewLogger builds a zap logger from the log section.
func NewLogger(lc LogConfig) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, lc.Level)
	}

	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
