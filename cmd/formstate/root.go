package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formstate/pkg/config"
	"github.com/goliatone/go-formstate/pkg/engine"
)

type app struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "formstate",
		Short:         "Compute form field presentation state and validate typed values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("formstate: initialise logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a JSON or YAML engine configuration")

	root.AddCommand(
		newAnnotateCmd(a),
		newCheckCmd(a),
		newFormatsCmd(a),
		newInspectCmd(a),
	)
	return root
}

func (a *app) config() (config.Config, error) {
	if a.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return config.Config{}, err
	}
	a.logger.Debug("configuration loaded", zap.String("path", a.configPath))
	return cfg, nil
}

func (a *app) engineOptions() ([]engine.Option, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	return []engine.Option{engine.WithConfig(cfg), engine.WithLogger(a.logger)}, nil
}
