// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var configPath string // directory holding main.toml

var rootCmd = &cobra.Command{
	Use:   "metropolitan-backend",
	Short: "Metropolitan website backend",
	Long: `Metropolitan website backend serves the public content API of the corporate
website and the authenticated admin API used to manage it.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
