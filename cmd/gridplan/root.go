package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/planner"
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	// FormatText prints key: value lines.
	FormatText OutputFormat = "text"
	// FormatYAML prints the report as a YAML document.
	FormatYAML OutputFormat = "yaml"
	// FormatGeoJSON prints a FeatureCollection in world coordinates.
	FormatGeoJSON OutputFormat = "geojson"
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	output     string

	cfg    planner.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridplan",
		Short: "Plan obstacle-free paths on occupancy grids",
		Long: `gridplan reads a top-down intensity image (text, PGM or PNG), grows
every dark obstacle by a safety margin and searches the remaining free cells
for a path with A*, greedy best-first, beam search or Dijkstra.

Settings come from an optional YAML file (--config); command-line flags
override individual keys.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML planner config (default: built-in defaults)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", string(FormatText), "Output format (text|yaml|geojson)")

	root.AddCommand(newPlanCmd(a))
	root.AddCommand(newInflateCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads configuration and builds the logger before any subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch OutputFormat(a.output) {
	case FormatText, FormatYAML, FormatGeoJSON:
	default:
		return fmt.Errorf("%w: --output %q (want text|yaml|geojson)", errUsage, a.output)
	}

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level)

	if a.configPath == "" {
		a.cfg = planner.DefaultConfig()
		return nil
	}
	cfg, err := planner.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.logger.Debug("config loaded", "path", a.configPath)
	a.cfg = cfg
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridplan %s\n", version)
		},
	}
}
