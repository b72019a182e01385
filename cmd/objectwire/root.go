package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/objectwire/objectwire/internal/config"
	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/internal/service/ui"
	"github.com/objectwire/objectwire/internal/session"
	"github.com/objectwire/objectwire/internal/transport/cli"
	"github.com/objectwire/objectwire/pkg/log"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "objectwire",
	Short: core.AppName + " — turn web pages and feeds into prediction events",
	Long: core.AppName + ` scrapes a web page or RSS/Atom feed, synthesizes a
prediction-market event from it, and can publish the event to a chain API.
Run without arguments for an interactive session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		app := newApp(ctx)

		rl, err := cli.NewReadLine(app.cfg)
		if err != nil {
			return err
		}
		defer rl.Shutdown(ctx)

		ctrl := session.NewController(session.Deps{
			Scraper:          app.scraper,
			Synth:            app.synth,
			Feeds:            app.feeds,
			Publisher:        app.publisher,
			Clip:             app.clip,
			Out:              ui.NewRenderer(rl.Stdout()),
			Confirm:          rl.Confirm,
			OpenAIConfigured: app.openAICfg.Configured(),
		})

		return rl.Run(ctx, ctrl)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	rootCmd.SilenceUsage = true
	CustomizeHelp(rootCmd)
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DimStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{.UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
