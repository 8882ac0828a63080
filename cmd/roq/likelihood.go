package main

import (
	"github.com/drakos74/roq/infra/config"
	"github.com/drakos74/roq/internal/experiment"
	"github.com/drakos74/roq/internal/model"
	"github.com/drakos74/roq/internal/report"
	"github.com/spf13/cobra"
)

var (
	likelihoodConfig string
	params           []float64
	seed             int64
)

func init() {
	likelihoodCmd.Flags().StringVar(&likelihoodConfig, "config", "infra/config/tone.yaml", "experiment config file (json or yaml)")
	likelihoodCmd.Flags().Float64SliceVar(&params, "params", nil, "model parameters, drawn from the validation ranges if empty")
	likelihoodCmd.Flags().Int64Var(&seed, "seed", 1, "seed of the gaussian noise data")
	rootCmd.AddCommand(likelihoodCmd)
}

var likelihoodCmd = &cobra.Command{
	Use:   "likelihood",
	Short: "Compare the full and the reduced order quadrature likelihood",
	RunE:  runLikelihood,
}

func runLikelihood(cmd *cobra.Command, args []string) error {
	var cfg experiment.Config
	if err := config.Load(likelihoodConfig, &cfg); err != nil {
		return err
	}
	cfg.Interpolate = true

	result, err := experiment.Run(cfg)
	if err != nil {
		return err
	}

	p := params
	if len(p) == 0 {
		p = model.NewUniform(seed, cfg.Validation.Ranges...).Sample(1)[0]
	}

	c, err := experiment.Likelihood(result, p, seed)
	if err != nil {
		return err
	}
	report.Likelihood(cmd.OutOrStdout(), c)
	return nil
}
