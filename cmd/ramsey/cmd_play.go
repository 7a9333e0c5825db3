package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ramsey/config"
	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/game"
	"github.com/katalvlaran/ramsey/metrics"
	"github.com/katalvlaran/ramsey/store"
)

var (
	playPattern string
	playResume  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game",
	Long: `Start a line-oriented game session on stdin/stdout.

Type 'help' inside the session for the command list.

Examples:
  ramsey play
  ramsey play --pattern k4
  ramsey play --resume game_state`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playPattern, "pattern", "p", "",
		"Goal pattern name, overriding the configuration (see 'ramsey patterns')")
	playCmd.Flags().StringVar(&playResume, "resume", "",
		"Load this save slot before the first prompt")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	run := cfg
	if playPattern != "" {
		run.Pattern, run.PatternEdges = playPattern, nil
		if err := run.Validate(); err != nil {
			return err
		}
	}

	opts, err := run.EngineOptions()
	if err != nil {
		return err
	}
	opts = append(opts, game.WithLogger(logger))

	var reg *prometheus.Registry
	if run.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		opts = append(opts, game.WithObserver(metrics.New(reg, run.Metrics.Namespace)))
	}

	eng, err := game.New(opts...)
	if err != nil {
		return err
	}
	if reg != nil && run.Metrics.Addr != "" {
		defer serveMetrics(run.Metrics.Addr, newRouter(reg, eng))()
	}

	slots, err := openStore(run.Store)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := slots.Close(); cerr != nil {
			logger.Warn("closing store", zap.Error(cerr))
		}
	}()

	s := newSession(eng, slots, cmd.OutOrStdout(), logger)
	if playResume != "" {
		if err = s.load(ctx, playResume); err != nil {
			return err
		}
	}

	return s.run(ctx, cmd.InOrStdin())
}

func openStore(sc config.StoreConfig) (*store.Store, error) {
	sconf := store.DefaultConfig(sc.Path)
	if sc.InMemory {
		sconf = store.InMemoryConfig()
	}
	sconf.Logger = logger.Named("store")
	return store.Open(sconf)
}

// stateSource is the read side of *game.Engine used by GET /state.
type stateSource interface {
	State() game.State
	Copies(ctx context.Context, limit int) (map[core.Color]int, error)
}

// serveMetrics starts the HTTP side channel and returns its shutdown func.
func serveMetrics(addr string, h http.Handler) func() {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func newRouter(reg *prometheus.Registry, src stateSource) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	router.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		doc := newStateDoc(src.State())
		copies, err := src.Copies(r.Context(), copyLimit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		doc.setCopies(copies)

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(doc); err != nil {
			logger.Debug("writing state", zap.Error(err))
		}
	})

	return router
}
