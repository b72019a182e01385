package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/internal/service/ui"
)

var (
	scrapePost bool
	scrapeJSON bool
	scrapeXML  bool
	scrapeYes  bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a page and synthesize a prediction event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)
		out := ui.NewRenderer(os.Stdout)

		ev, err := runScrape(ctx, app, args[0], out, scrapeJSON, scrapeXML)
		if err != nil {
			return err
		}

		if scrapePost {
			return postEvent(ctx, app, ev, out, scrapeYes)
		}
		return nil
	},
}

func runScrape(ctx context.Context, app *app, url string, out *ui.Renderer, asJSON, asXML bool) (core.PredictionEvent, error) {
	page, err := app.scraper.Scrape(ctx, url)
	if err != nil {
		return core.PredictionEvent{}, err
	}
	ev := app.synth.Synthesize(ctx, page)

	switch {
	case asJSON || asXML:
		if asJSON {
			out.JSON("JSON", ev)
		}
		if asXML {
			out.XML("XML", "prediction_event", ev)
		}
	default:
		out.Event(ev)
	}
	return ev, nil
}

func postEvent(ctx context.Context, app *app, ev core.PredictionEvent, out *ui.Renderer, yes bool) error {
	if !yes {
		payload := app.publisher.BuildPayload(ev)
		out.JSON("JSON Preview", payload)
		out.XML("XML Preview", "chain_payload", payload)
		if !askConfirm("Post to chain API? (y/n): ") {
			out.Info("cancelled")
			return nil
		}
	}

	receipt, err := app.publisher.Publish(ctx, ev)
	if err != nil {
		return err
	}
	if receipt.EventID != "" {
		out.Success("posted, event id: %s", receipt.EventID)
	} else {
		out.Success("posted")
	}
	return nil
}

func init() {
	scrapeCmd.Flags().BoolVar(&scrapePost, "post", false, "publish the event to the chain API")
	scrapeCmd.Flags().BoolVar(&scrapeJSON, "json", false, "print the event as JSON")
	scrapeCmd.Flags().BoolVar(&scrapeXML, "xml", false, "print the event as XML")
	scrapeCmd.Flags().BoolVarP(&scrapeYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(scrapeCmd)
}
