package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/controldoc/web/internal/config"
	"github.com/controldoc/web/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "controldoc",
	Short: "ControlDoc web front-end",
	Long: `ControlDoc serves the login screen and the document status dashboard,
backed by the ControlDoc API.

Available commands:
  serve      Start the web server
  health     Check that the API is reachable
  version    Print the version

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads configuration and installs the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)
	return cfg, nil
}
