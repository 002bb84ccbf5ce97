package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/svg-snake/internal/config"
)

var flagInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default config",
	Long: `Print the built-in default configuration, or write it to
~/.snakesvg/config.yaml with --init.

Examples:
  snakesvg config > configs/snakesvg.yaml
  snakesvg config --init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default config to ~/.snakesvg/config.yaml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagInit {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	path, err := config.SaveDefault()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
