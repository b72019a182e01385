package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/objectwire/objectwire/internal/service/ui"
)

var (
	postJSON bool
	postXML  bool
	postYes  bool
)

var postCmd = &cobra.Command{
	Use:   "post <url>",
	Short: "Scrape a page and post the resulting event to the chain API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)
		out := ui.NewRenderer(os.Stdout)

		ev, err := runScrape(ctx, app, args[0], out, postJSON, postXML)
		if err != nil {
			return err
		}
		return postEvent(ctx, app, ev, out, postYes)
	},
}

func init() {
	postCmd.Flags().BoolVar(&postJSON, "json", false, "print the event as JSON")
	postCmd.Flags().BoolVar(&postXML, "xml", false, "print the event as XML")
	postCmd.Flags().BoolVarP(&postYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(postCmd)
}
