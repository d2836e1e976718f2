package main

import (
	"log/slog"
	"strings"

	"github.com/albertocavalcante/go-solvexplain/internal/config"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand once the persistent flags
// have been resolved.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "solvexplain",
		Short: "Explain unsatisfiable dependency problems",
		Long: `Explain why a dependency solve failed.

Input documents describe a problems graph: the requested packages, the
packages they depend on and the groups of versions that conflict. Starlark
(.bzl, .star, .bazel) and YAML (.yaml, .yml, .json) documents are accepted.

Examples:
  solvexplain explain problems.bzl
  solvexplain graph --format dot problems.yaml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a TOML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	cmd.AddCommand(
		newExplainCmd(a),
		newRootsCmd(a),
		newPathsCmd(a),
		newGraphCmd(a),
	)
	return cmd
}

// setup loads the configuration file, applies flag overrides and builds
// the logger. Diagnostics go to stderr so stdout stays pipeable.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(a.logLevel))
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = strings.ToLower(strings.TrimSpace(a.logFormat))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded", "path", a.configPath, "level", cfg.Log.Level)
	return nil
}
