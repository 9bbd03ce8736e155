package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/filemytax/tax-engine/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a starter income snapshot to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(config.ExampleSnapshot())
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
