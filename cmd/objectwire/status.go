package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/objectwire/objectwire/internal/service/ui"
	"github.com/objectwire/objectwire/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and chain API health",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)
		out := ui.NewRenderer(os.Stdout)

		out.Status(session.StatusReport{
			OpenAIConfigured: app.openAICfg.Configured(),
			ChainURL:         app.publisher.BaseURL(),
			HealthErr:        app.publisher.CheckHealth(ctx),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
