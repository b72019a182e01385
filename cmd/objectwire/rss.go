package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/objectwire/objectwire/internal/service/ui"
)

var (
	rssLimit int
	rssJSON  bool
	rssXML   bool
)

var rssCmd = &cobra.Command{
	Use:   "rss <feed_url>",
	Short: "List the articles of an RSS/Atom feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := newApp(ctx)
		out := ui.NewRenderer(os.Stdout)

		parsed, err := app.feeds.Read(ctx, args[0])
		if err != nil {
			return err
		}

		limit := rssLimit
		if limit <= 0 {
			limit = app.cfg.FeedLimit
		}
		if len(parsed.Items) > limit {
			parsed.Items = parsed.Items[:limit]
		}

		switch {
		case rssJSON || rssXML:
			if rssJSON {
				out.JSON("JSON", parsed)
			}
			if rssXML {
				out.XML("XML", "feed", parsed)
			}
		default:
			out.FeedListing(parsed.Title, parsed.Items, "")
		}
		return nil
	},
}

func init() {
	rssCmd.Flags().IntVar(&rssLimit, "limit", 0, "maximum number of articles to show")
	rssCmd.Flags().BoolVar(&rssJSON, "json", false, "print the feed as JSON")
	rssCmd.Flags().BoolVar(&rssXML, "xml", false, "print the feed as XML")
	rootCmd.AddCommand(rssCmd)
}
