package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/ramsey/builder"
	"github.com/katalvlaran/ramsey/core"
)

// DefaultPattern is the goal when no pattern option is given: the 4-cycle.
const DefaultPattern = "c4"

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	log         *zap.Logger
	obs         Observer
	patternName string
	pattern     *core.Graph
	session     uuid.UUID
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		log:         zap.NewNop(),
		obs:         nopObserver{},
		patternName: DefaultPattern,
	}
}

// WithLogger sets the engine logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("game: WithLogger(nil)")
	}
	return func(c *engineConfig) { c.log = l }
}

// WithObserver installs an event observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("game: WithObserver(nil)")
	}
	return func(c *engineConfig) { c.obs = o }
}

// WithPattern selects the goal by name (see builder.Named).
func WithPattern(name string) Option {
	return func(c *engineConfig) {
		c.patternName, c.pattern = name, nil
	}
}

// WithPatternGraph uses g as the goal; the engine keeps its own copy.
func WithPatternGraph(name string, g *core.Graph) Option {
	return func(c *engineConfig) {
		c.patternName, c.pattern = name, g
	}
}

// WithSession fixes the session ID instead of generating a random one.
func WithSession(id uuid.UUID) Option {
	return func(c *engineConfig) { c.session = id }
}

// resolvePattern returns a private copy of the configured goal.
func (c engineConfig) resolvePattern() (*core.Graph, error) {
	if c.pattern != nil {
		return c.pattern.Clone(), nil
	}
	return builder.Pattern(c.patternName)
}
