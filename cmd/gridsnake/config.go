package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration gridsnake would use, after the config file
search and any flags on the command line.

Config files are searched in this order:
  1. --config <path>
  2. ~/.gridsnake/config.yaml
  3. configs/snake.yaml
  4. Built-in defaults

Examples:
  gridsnake config
  gridsnake config --default > ~/.gridsnake/config.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if flagShowDefault {
			fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
			return
		}

		cfg, source, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, data)
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config")
}
