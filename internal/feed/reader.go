package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/pkg/log"
)

const maxSummaryChars = 200

// Reader parses RSS/Atom resources. A single parse attempt is made; any
// parser failure is reported as core.ErrNotAFeed, which is the signal other
// components use to fall back to treating the same URL as a web page.
type Reader struct {
	parser *gofeed.Parser
}

func NewReader() *Reader {
	p := gofeed.NewParser()
	p.UserAgent = core.UserAgent
	return &Reader{parser: p}
}

// Read accepts either a feed URL or raw feed text.
func (r *Reader) Read(ctx context.Context, input string) (core.Feed, error) {
	var (
		parsed *gofeed.Feed
		err    error
	)
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		parsed, err = r.parser.ParseURLWithContext(input, ctx)
	} else {
		parsed, err = r.parser.ParseString(input)
	}
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Msg("feed parse failed")
		return core.Feed{}, fmt.Errorf("%w: %v", core.ErrNotAFeed, err)
	}

	out := core.Feed{
		Title: parsed.Title,
		Link:  parsed.Link,
		Items: make([]core.FeedItem, 0, len(parsed.Items)),
	}
	if out.Title == "" {
		out.Title = "Unknown Feed"
	}
	if out.Link == "" && strings.HasPrefix(input, "http") {
		out.Link = input
	}

	for _, entry := range parsed.Items {
		title := entry.Title
		if title == "" {
			title = "Untitled"
		}
		summary := entry.Description
		if summary == "" {
			summary = entry.Content
		}
		out.Items = append(out.Items, core.FeedItem{
			Title:     title,
			Link:      entry.Link,
			Summary:   truncate(strings.TrimSpace(summary), maxSummaryChars),
			Published: entry.Published,
		})
	}
	return out, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
