package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/game"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ramsey.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, game.DefaultPattern, cfg.Pattern)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
pattern: k4
log:
  level: debug
  development: true
store:
  in_memory: true
  path: ""
metrics:
  enabled: true
  namespace: ramsey_test
  addr: localhost:9464
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "k4", cfg.Pattern)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.True(t, cfg.Store.InMemory)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "ramsey_test", cfg.Metrics.Namespace)
	assert.Equal(t, "localhost:9464", cfg.Metrics.Addr)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "patern: c4\n"))
	require.Error(t, err)
}

func TestPatternEdges(t *testing.T) {
	path := writeFile(t, `
pattern: bowtie
pattern_edges: [[0,1],[1,2],[2,0],[2,3],[3,4],[4,2]]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	g, err := cfg.PatternGraph()
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())

	opts, err := cfg.EngineOptions()
	require.NoError(t, err)
	e, err := game.New(opts...)
	require.NoError(t, err)
	name, pg := e.Pattern()
	assert.Equal(t, "bowtie", name)
	assert.Equal(t, 6, pg.EdgeCount())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "pattern: k4\nlog:\n  level: debug\n")
	t.Setenv("RAMSEY_PATTERN", "triangle")
	t.Setenv("RAMSEY_LOG_LEVEL", "WARN")
	t.Setenv("RAMSEY_STORE_IN_MEMORY", "true")
	t.Setenv("RAMSEY_METRICS_ENABLED", "1")
	t.Setenv("RAMSEY_STORE_PATH", "/tmp/elsewhere")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "triangle", cfg.Pattern)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Store.InMemory)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/elsewhere", cfg.Store.Path)
}

func TestEnvPatternDropsFileEdges(t *testing.T) {
	path := writeFile(t, "pattern: custom\npattern_edges: [[0,1]]\n")
	t.Setenv("RAMSEY_PATTERN", "c5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.PatternEdges)
	g, err := cfg.PatternGraph()
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
}

func TestEnvIgnoresMalformedBool(t *testing.T) {
	t.Setenv("RAMSEY_METRICS_ENABLED", "maybe")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty pattern":        func(c *Config) { c.Pattern = "" },
		"unknown pattern":      func(c *Config) { c.Pattern = "dodecahedron" },
		"pattern too small":    func(c *Config) { c.Pattern = "c2" },
		"bad level":            func(c *Config) { c.Log.Level = "loud" },
		"no store path":        func(c *Config) { c.Store.Path = "" },
		"bad metric namespace": func(c *Config) { c.Metrics.Namespace = "ramsey-game" },
		"bad metrics addr":     func(c *Config) { c.Metrics.Addr = "not an address" },
		"self loop edge":       func(c *Config) { c.PatternEdges = [][2]int{{1, 1}} },
		"negative edge":        func(c *Config) { c.PatternEdges = [][2]int{{-1, 0}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	t.Run("in-memory store needs no path", func(t *testing.T) {
		cfg := Default()
		cfg.Store = StoreConfig{InMemory: true}
		require.NoError(t, cfg.Validate())
	})
}

func TestNewLogger(t *testing.T) {
	for _, lc := range []LogConfig{{Level: "debug", Development: true}, {Level: "error"}} {
		l, err := NewLogger(lc)
		require.NoError(t, err)
		require.NotNil(t, l)
	}

	_, err := NewLogger(LogConfig{Level: "chatty"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}
