// Package app implements the command line entry points.
package app

import (
	"github.com/spf13/cobra"
)

var (
	configPath string // Path to the configuration file
	devMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "pantrypulse",
	Short: "Pantry Pulse tracks household inventory across storage areas",
	Long: `Pantry Pulse is the API behind a household inventory tracker.
It can run as a long-lived HTTP server or as a stateless function host.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
