package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as JSON with secrets masked",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.ReadConfig(configPath)
		if err != nil {
			return err //nolint:wrapcheck
		}

		out, err := config.DumpConfigJSON(&c)
		if err != nil {
			return err //nolint:wrapcheck
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

		return err //nolint:wrapcheck
	},
}
