package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/favorite/config"
	"github.com/agiangrant/favorite/internal/logging"
)

const version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "favbtn",
	Short:         "favbtn plays and inspects the favorite button animation.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "config file (TOML)")
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the config and builds a logger whose console output goes to
// console.
func setup(console io.Writer) (*config.Config, *zap.Logger, func() error, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	logCfg := cfg.Logging()
	logCfg.Console = console
	logger, closeLog, err := logging.New(logCfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	logger.Debug("config loaded", zap.String("path", configPath))
	return cfg, logger, closeLog, nil
}
