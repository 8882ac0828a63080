// Package main provides the roq CLI entry point.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var debug bool

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every greedy step")
}

var rootCmd = &cobra.Command{
	Use:   "roq",
	Short: "Reduced basis and reduced order quadrature toolkit",
	Long: `roq builds greedy reduced bases for sampled signal families,
selects empirical interpolation nodes and compares reduced order quadrature
likelihoods against the full inner products.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
