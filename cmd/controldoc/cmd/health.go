package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/controldoc/web/internal/upstream"
)

var healthTimeout time.Duration

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the ControlDoc API is reachable",
	Long: `Probe GET {API_BASE_URL}/health and exit non-zero unless it reports ok.
API_BASE_URL must be an absolute URL for this command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		client := upstream.New(cfg.APIBaseURL, healthTimeout)
		if err := client.Health(ctx); err != nil {
			return fmt.Errorf("API at %q is not healthy: %w", client.BaseURL(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "API at %s is healthy\n", client.BaseURL())
		return nil
	},
}

func init() {
	healthCmd.Flags().DurationVar(&healthTimeout, "timeout", 5*time.Second, "how long to wait for the API")
	rootCmd.AddCommand(healthCmd)
}
