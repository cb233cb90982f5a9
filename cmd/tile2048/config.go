package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
	Long: `Inspect the configuration.

The configuration is searched in this order:
  --config <path>
  ~/.tile2048/config.yaml
  ./configs/tile2048.yaml
  built-in defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, err := loadConfig(cmd)
		exitOnError(err)

		data, err := config.Marshal(cfg)
		exitOnError(err)
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Long: `Write the built-in default configuration to path,
or to ~/.tile2048/config.yaml when no path is given.
An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.UserConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			exitOnError(errors.New("cannot determine home directory; pass a path"))
		}

		exitOnError(config.WriteDefault(path))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
