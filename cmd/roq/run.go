package main

import (
	"fmt"

	"github.com/drakos74/roq/infra/config"
	"github.com/drakos74/roq/internal/experiment"
	"github.com/drakos74/roq/internal/metrics"
	"github.com/drakos74/roq/internal/report"
	"github.com/drakos74/roq/internal/storage"
	"github.com/drakos74/roq/internal/storage/file/json"
	"github.com/spf13/cobra"
)

var (
	configFile string
	outDir     string
	plotFile   string
	withMetric bool
)

func init() {
	runCmd.Flags().StringVar(&configFile, "config", "infra/config/line.json", "experiment config file (json or yaml)")
	runCmd.Flags().StringVar(&outDir, "out", "", "directory to store the result in")
	runCmd.Flags().StringVar(&plotFile, "plot", "", "file to save the validation scatter plot in")
	runCmd.Flags().BoolVar(&withMetric, "metrics", false, "print the greedy metrics")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build and validate a reduced basis",
	RunE:  runExperiment,
}

func runExperiment(cmd *cobra.Command, args []string) error {
	var cfg experiment.Config
	if err := config.Load(configFile, &cfg); err != nil {
		return err
	}

	m := metrics.NewMetrics()
	result, err := experiment.Run(cfg, experiment.WithObserver(m.Greedy(cfg.Name)))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.Summary(out, result)
	report.Bases(out, result)
	fmt.Fprintln(out, report.History(result.Errors, fmt.Sprintf("%s: log10 max projection error", cfg.Name)))

	shard := storage.VoidShard()
	if outDir != "" {
		shard = json.FileShard(outDir)
	}
	p, err := shard(storage.ResultDir)
	if err != nil {
		return fmt.Errorf("could not create storage: %w", err)
	}
	if err := experiment.Save(p, result); err != nil {
		return err
	}

	if plotFile != "" {
		if err := report.Scatter(plotFile, cfg.Name, result.Validation); err != nil {
			return err
		}
	}

	if withMetric {
		if err := m.WriteText(out); err != nil {
			return err
		}
	}
	return nil
}
