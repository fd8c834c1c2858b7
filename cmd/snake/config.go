package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML after the search path and any
--config file have been applied. Save the output to ~/.snake/snake.yaml
and edit it to change tiers, food weights or the board.

Examples:
  snake config
  snake config --defaults > ~/.snake/snake.yaml
  snake config --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig("", 0)
	exitOnErr("loading config", err)

	data, err := config.Marshal(cfg)
	exitOnErr("encoding config", err)
	os.Stdout.Write(data)
}
