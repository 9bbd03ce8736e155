package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filemytax/tax-engine/internal/config"
)

var regimeCmd = &cobra.Command{
	Use:   "regime",
	Short: "Inspect and validate regime configuration files",
}

var regimeValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a regime configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := config.NewRegimeParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		for _, r := range file.Regimes {
			fmt.Printf("regime %q: %d slabs, cess %s, TDS threshold %s — ok\n",
				r.Name, len(r.Slabs), r.CessRate, r.TDSExemptionThreshold)
		}
		return nil
	},
}

func init() {
	regimeCmd.AddCommand(regimeValidateCmd)
}
