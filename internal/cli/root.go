// Package cli implements the centra command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/centra/centrality"
	"github.com/katalvlaran/centra/internal/config"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger

	newLogger func(verbose bool) (*zap.Logger, error)
}

// flagKeys maps persistent flag names to their viper keys.
var flagKeys = map[string]string{
	"verbose":        "verbose",
	"metric":         "metric",
	"format":         "format",
	"normalized":     "normalized",
	"directed-paths": "directed_paths",
	"top":            "top",
	"workers":        "workers",
}

// NewRootCommand builds the centra command tree.
func NewRootCommand() *cobra.Command {
	a := &app{newLogger: newLogger}

	root := &cobra.Command{
		Use:   "centra",
		Short: "Degree, closeness and betweenness centrality for graph files",
		Long: "Centra loads a graph document (TOML, YAML or JSON), computes degree, " +
			"closeness and betweenness centrality for every node and prints the result.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(*cobra.Command, []string) { a.sync() },
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .centra.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.StringP("metric", "m", config.MetricAll, "metric to show: all|degree|closeness|betweenness")
	pf.StringP("format", "f", config.FormatTable, "output format: table|json|yaml|toml")
	pf.Bool("normalized", false, "normalize closeness and betweenness by graph size")
	pf.Bool("directed-paths", false, "follow edge direction for closeness on directed graphs")
	pf.Int("top", 0, "show only the top N nodes (0 = all)")
	pf.Int("workers", 1, "goroutines used for the per-node searches (0 = all CPUs)")

	root.AddCommand(a.computeCmd(), a.validateCmd(), a.sampleCmd(), a.watchCmd())
	return root
}

// Execute runs the command tree until completion or SIGINT/SIGTERM and
// returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	cfgFile, _ := flags.GetString("config")
	home, _ := os.UserHomeDir()

	v, err := config.NewViper(cfgFile, home)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := a.newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.v, a.cfg, a.log = v, cfg, log
	a.log.Debug("configuration loaded",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("metric", cfg.Metric),
		zap.String("format", cfg.Format),
		zap.Bool("normalized", cfg.Normalized),
		zap.Bool("directed_paths", cfg.DirectedPaths),
		zap.Int("workers", cfg.Workers),
	)
	return nil
}

func (a *app) sync() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// centralityOptions translates the configuration into engine options.
func (a *app) centralityOptions(ctx context.Context) []centrality.Option {
	opts := []centrality.Option{
		centrality.WithContext(ctx),
		centrality.WithWorkers(a.cfg.Workers),
	}
	if a.cfg.Normalized {
		opts = append(opts, centrality.WithNormalized())
	}
	if a.cfg.DirectedPaths {
		opts = append(opts, centrality.WithDirectedPaths())
	}
	return opts
}

// newLogger returns a development console logger when verbose, otherwise a
// production JSON logger that only reports warnings and errors.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zc.Build()
}
