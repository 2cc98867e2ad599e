package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/setsubun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.setsubun/configs/setsubun.yaml or ./configs/setsubun.yaml to customise it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
