package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ramsey/config"
)

var (
	configPath string

	// cfg and logger are populated by the root PersistentPreRunE.
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ramsey",
	Short: "Builder/Painter graph game",
	Long: `Builder adds vertices and edges; Painter colors each new edge red or blue.
Builder wins once a single color class contains a copy of the goal pattern.

Configuration is read from --config (YAML), then RAMSEY_* environment
variables override it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if logger, err = config.NewLogger(cfg.Log); err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("path", configPath), zap.String("pattern", cfg.Pattern))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "ramsey.yaml",
		"Path to the YAML configuration file (missing file means defaults)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(patternsCmd)
}
