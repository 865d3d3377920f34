// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/internal/logging"
	"github.com/katalvlaran/campusnav/internal/metrics"
	"github.com/katalvlaran/campusnav/planner"
)

// app is the state shared by every subcommand once the root pre-run is done.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Registry
	planner *planner.Planner
}

// rootFlags are the persistent flags; empty values defer to the config.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	metrics    bool
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     = &app{}
	)

	root := &cobra.Command{
		Use:           "campusnav",
		Short:         "Plan walking routes through a multi-floor campus",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.Route.Metrics {
				return nil
			}
			return a.metrics.WriteText(cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to a YAML configuration file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&flags.metrics, "metrics", false, "print Prometheus metrics after the command")

	root.AddCommand(
		newRouteCmd(a),
		newNodesCmd(a),
		newCheckCmd(a),
	)

	return root
}

// setup loads configuration, builds the logger, the map and the planner.
func (a *app) setup(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if flags.metrics {
		cfg.Route.Metrics = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Format, cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	con, opts := cfg.Campus.Builder()
	m, err := builder.BuildWith(opts, con)
	if err != nil {
		return fmt.Errorf("build campus: %w", err)
	}
	logger.Debug("campus loaded", "source", cfg.Campus.Source, "nodes", m.Len(), "edges", m.EdgeCount())

	a.cfg = cfg
	a.logger = logger
	a.metrics = metrics.NewRegistry()
	a.planner = planner.New(m,
		planner.WithLogger(logger),
		planner.WithMetrics(a.metrics),
		planner.WithTrace(cfg.Route.Trace),
	)

	return nil
}
