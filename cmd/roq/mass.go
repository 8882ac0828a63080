package main

import (
	"encoding/json"
	"fmt"

	"github.com/drakos74/roq/internal/astro"
	"github.com/spf13/cobra"
)

var m1, m2, x1, x2 float64

func init() {
	massCmd.Flags().Float64Var(&m1, "m1", 1.4, "first component mass in solar masses")
	massCmd.Flags().Float64Var(&m2, "m2", 1.4, "second component mass in solar masses")
	massCmd.Flags().Float64Var(&x1, "x1", 0, "first component dimensionless spin")
	massCmd.Flags().Float64Var(&x2, "x2", 0, "second component dimensionless spin")
	rootCmd.AddCommand(massCmd)
}

var massCmd = &cobra.Command{
	Use:   "mass",
	Short: "Print the derived mass and spin parameters of a binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := astro.NewBinary(m1, m2, x1, x2)
		if err != nil {
			return err
		}
		bb, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("could not encode binary: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bb))
		return nil
	},
}
