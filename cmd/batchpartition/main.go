// Command batchpartition is the CLI front end for the batchpartition
// library: it loads a pruning matrix, runs Partition, and writes the
// resulting batches, following the teacher's root/subcommand cobra
// layout (see the perf-analysis example's cmd/cli/cmd package).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matrix-profile-foundation/go-batchpartition"
)

var (
	configPath  string
	matrixPath  string
	cacheCap    int
	outputPath  string
	outputFmt   string
	logLevel    string
	metricsAddr string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "batchpartition",
		Short: "Split a pruning matrix into cache-sized batches via FM min-cut",
		Long: `batchpartition splits a symmetric boolean pruning matrix into disjoint,
cache-sized batches by recursively applying Fiduccia-Mattheyses 2-way
balanced min-cut bisection, targeting ceil(2n/B) batches for n series
and cache capacity B.`,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (optional)")
	root.AddCommand(runCmd())
	return root
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Partition a pruning matrix and write the resulting batches",
		Example: "  batchpartition run --matrix ./p.csv --cache-capacity 64 --output ./batches.json",
		RunE:    runRun,
	}
	cmd.Flags().StringVar(&matrixPath, "matrix", "", "Path to the pruning matrix CSV file (required)")
	cmd.Flags().IntVar(&cacheCap, "cache-capacity", 0, "Cache capacity B (overrides config)")
	cmd.Flags().StringVar(&outputPath, "output", "./batches.json", "Path to write the resulting batches")
	cmd.Flags().StringVar(&outputFmt, "output-format", "", "Output format (overrides config; only json supported)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "If set, serve Prometheus metrics on this address during the run")
	cmd.MarkFlagRequired("matrix")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if matrixPath != "" {
		cfg.Matrix.Path = matrixPath
	}
	if cacheCap > 0 {
		cfg.CacheCap = cacheCap
	}
	if outputFmt != "" {
		cfg.Output.Format = outputFmt
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}
	cfg.Output.Path = outputPath
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level)

	P, n, err := loadMatrix(cfg.Matrix.Path)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := newMetricsCollector(reg)

	var srv interface{ Close() error }
	if cfg.MetricsAddr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		server := serveMetrics(ctx, cfg.MetricsAddr, reg)
		srv = closerFunc(server.Close)
	}

	opts := &batchpartition.Options{
		DiagnosticSink: func(s batchpartition.LevelStat) {
			logLevelStat(logger, s)
			metrics.observe(s)
		},
	}

	result, err := batchpartition.Partition(P, n, cfg.CacheCap, opts)
	if err != nil {
		return fmt.Errorf("batchpartition: partitioning failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output.Path), 0755); err != nil && filepath.Dir(cfg.Output.Path) != "." {
		return fmt.Errorf("batchpartition: failed to create output directory: %w", err)
	}
	if err := result.Save(cfg.Output.Path, cfg.Output.Format); err != nil {
		return fmt.Errorf("batchpartition: failed to save result: %w", err)
	}

	nonEmpty := 0
	for _, b := range result.Batches {
		if len(b) > 0 {
			nonEmpty++
		}
	}
	fmt.Printf("partitioned %d nodes into %d batches (%d isolated), written to %s\n",
		n, nonEmpty, len(result.Isolated), cfg.Output.Path)

	if srv != nil {
		_ = srv.Close()
	}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
