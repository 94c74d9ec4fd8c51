package app

import (
	"github.com/spf13/cobra"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	"github.com/metropolitan-website/metropolitan-backend/internal/daemon"
	"github.com/metropolitan-website/metropolitan-backend/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")
	startCmd.Flags().BoolVar(&seed, "seed", false, "Insert demo content into an empty database")

	rootCmd.AddCommand(startCmd)
}

var (
	cfg     config.Config
	devMode bool
	seed    bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err //nolint:wrapcheck
			}

			if devMode {
				cfg.DevMode = true
			}

			if seed {
				cfg.DB.Seed = true
			}

			return logger.Init(cfg.Log) //nolint:wrapcheck
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start() //nolint:wrapcheck
		},
	}
)
