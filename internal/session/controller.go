package session

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/internal/publish"
	"github.com/objectwire/objectwire/pkg/xmlenc"
)

// Feed listings stored for numeric follow-up: explicit `rss` keeps more
// items than the bare-URL auto-detect branch.
const (
	rssListLimit        = 15
	autoDetectListLimit = 3
)

type Scraper interface {
	Scrape(ctx context.Context, url string) (core.ScrapedPage, error)
}

type EventSynthesizer interface {
	Synthesize(ctx context.Context, page core.ScrapedPage) core.PredictionEvent
}

type FeedReader interface {
	Read(ctx context.Context, input string) (core.Feed, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev core.PredictionEvent) (publish.Receipt, error)
	BuildPayload(ev core.PredictionEvent) publish.Payload
	CheckHealth(ctx context.Context) error
	BaseURL() string
}

type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Renderer is the presentation collaborator; the controller never writes
// to the terminal itself.
type Renderer interface {
	Event(ev core.PredictionEvent)
	FeedListing(title string, items []core.FeedItem, hint string)
	JSON(label string, v any)
	XML(label, root string, v any)
	Status(report StatusReport)
	Help()
	Success(format string, args ...any)
	Info(format string, args ...any)
	Errorf(format string, args ...any)
}

// Confirmer asks the operator a yes/no question before an irreversible
// action.
type Confirmer func(prompt string) bool

type StatusReport struct {
	OpenAIConfigured bool
	ChainURL         string
	HealthErr        error
}

type Deps struct {
	Scraper          Scraper
	Synth            EventSynthesizer
	Feeds            FeedReader
	Publisher        EventPublisher
	Clip             Clipboard
	Out              Renderer
	Confirm          Confirmer
	OpenAIConfigured bool
}

// Controller dispatches one line of operator input at a time and keeps the
// session state between commands. Failures are reported and leave the
// session alive; only exit/quit/q (or end of input) ends the loop.
type Controller struct {
	state *State
	deps  Deps
}

func NewController(deps Deps) *Controller {
	return &Controller{
		state: NewState(),
		deps:  deps,
	}
}

func (c *Controller) State() *State {
	return c.state
}

// Handle classifies one input line and runs the matching flow. It returns
// false when the session should end.
func (c *Controller) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	parts := strings.Fields(line)
	action := strings.ToLower(parts[0])
	args := parts[1:]

	// Numeric article selection takes priority, but only when a prior
	// feed listing exists.
	if isDigits(action) && len(c.state.LastFeedItems) > 0 {
		n, _ := strconv.Atoi(action)
		c.handleSelection(ctx, n, args)
		return true
	}

	switch action {
	case "exit", "quit", "q":
		c.deps.Out.Info("Goodbye!")
		return false
	case "help":
		c.deps.Out.Help()
	case "status":
		c.handleStatus(ctx)
	case "scrape":
		if len(args) == 0 {
			c.deps.Out.Errorf("usage: scrape <url>")
			return true
		}
		c.handleScrape(ctx, args[0])
	case "rss":
		if len(args) == 0 {
			c.deps.Out.Errorf("usage: rss <feed_url>")
			return true
		}
		c.handleRSS(ctx, args[0])
	case "post":
		c.handlePost(ctx)
	case "copy", "c":
		c.handleCopy(args)
	case "paste", "v", "pv":
		c.handlePaste(ctx)
	default:
		if isURL(line) {
			c.autoDetect(ctx, line)
			return true
		}
		c.deps.Out.Errorf("unknown command: %s", action)
		c.deps.Out.Info("type 'help' for available commands, or paste a URL/RSS feed")
	}
	return true
}

func (c *Controller) handleSelection(ctx context.Context, n int, args []string) {
	items := c.state.LastFeedItems
	if n < 1 || n > len(items) {
		c.deps.Out.Errorf("invalid article number, choose 1-%d", len(items))
		return
	}
	item := items[n-1]

	wantJSON := hasToken(args, "json")
	wantXML := hasToken(args, "xml")

	c.deps.Out.Info("scraping article %d: %s", n, firstRunes(item.Title, 50))
	page, err := c.deps.Scraper.Scrape(ctx, item.Link)
	if err != nil {
		c.deps.Out.Errorf("failed to scrape article: %v", err)
		return
	}

	ev := c.deps.Synth.Synthesize(ctx, page)
	c.state.SetEvent(ev)

	switch {
	case wantJSON || wantXML:
		if wantJSON {
			c.deps.Out.JSON("JSON", ev)
		}
		if wantXML {
			c.deps.Out.XML("XML", "prediction_event", ev)
		}
	default:
		c.deps.Out.Event(ev)
	}
	c.deps.Out.Info("tip: 'post' to publish, 'copy' to copy, or '%d json xml' for both formats", n)
}

func (c *Controller) handleScrape(ctx context.Context, url string) {
	page, err := c.deps.Scraper.Scrape(ctx, url)
	if err != nil {
		c.deps.Out.Errorf("failed to scrape URL: %v", err)
		return
	}

	ev := c.deps.Synth.Synthesize(ctx, page)
	c.state.SetEvent(ev)
	c.deps.Out.Event(ev)
	c.autoPublish(ctx, ev)
}

func (c *Controller) handleRSS(ctx context.Context, url string) {
	feed, err := c.deps.Feeds.Read(ctx, url)
	if err != nil {
		c.deps.Out.Errorf("failed to parse RSS feed: %v", err)
		return
	}

	items := capItems(feed.Items, rssListLimit)
	c.state.SetFeedItems(items)
	c.deps.Out.FeedListing(feed.Title, items,
		"type a number (1-"+strconv.Itoa(len(items))+") to scrape that article; add 'json' or 'xml' for formatted output")
}

func (c *Controller) handlePost(ctx context.Context) {
	if c.state.LastEvent == nil {
		c.deps.Out.Errorf("no event to post; scrape a URL first")
		return
	}

	payload := c.deps.Publisher.BuildPayload(*c.state.LastEvent)
	c.deps.Out.JSON("JSON Preview", payload)
	c.deps.Out.XML("XML Preview", "chain_payload", payload)

	if !c.deps.Confirm("Post to chain API? (y/n): ") {
		c.deps.Out.Info("cancelled")
		return
	}

	receipt, err := c.deps.Publisher.Publish(ctx, *c.state.LastEvent)
	if err != nil {
		c.deps.Out.Errorf("failed to publish: %v", err)
		return
	}
	c.deps.Out.Success("posted, event id: %s", receipt.EventID)
}

func (c *Controller) handleCopy(args []string) {
	if c.state.LastEvent == nil {
		c.deps.Out.Errorf("no event to copy; scrape a URL first")
		return
	}

	format := "json"
	if hasToken(args, "xml") {
		format = "xml"
	}

	var (
		text string
		err  error
	)
	if format == "xml" {
		text, err = xmlenc.Pretty("prediction_event", *c.state.LastEvent)
	} else {
		var data []byte
		data, err = json.MarshalIndent(*c.state.LastEvent, "", "  ")
		text = string(data)
	}
	if err != nil {
		c.deps.Out.Errorf("failed to serialize event: %v", err)
		return
	}

	if err := c.deps.Clip.WriteAll(text); err != nil {
		c.deps.Out.Errorf("failed to copy to clipboard: %v", err)
		return
	}
	c.deps.Out.Success("copied to clipboard as %s", strings.ToUpper(format))
}

func (c *Controller) handlePaste(ctx context.Context) {
	text, err := c.deps.Clip.ReadAll()
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		c.deps.Out.Errorf("clipboard is empty or could not be read")
		return
	}

	if !isURL(text) {
		c.deps.Out.Errorf("clipboard content is not a URL: %s", firstRunes(text, 50))
		return
	}
	c.deps.Out.Info("pasted: %s", firstRunes(text, 60))
	c.autoDetect(ctx, text)
}

// autoDetect tries the input as a feed first; a feed with at least one item
// wins, anything else falls through to the scrape pipeline.
func (c *Controller) autoDetect(ctx context.Context, url string) {
	feed, err := c.deps.Feeds.Read(ctx, url)
	if err == nil && len(feed.Items) > 0 {
		items := capItems(feed.Items, autoDetectListLimit)
		c.state.SetFeedItems(items)
		c.deps.Out.FeedListing(feed.Title, items,
			"type 1, 2, or 3 to scrape an article; add 'json' or 'xml' for formatted output")
		return
	}

	page, err := c.deps.Scraper.Scrape(ctx, url)
	if err != nil {
		c.deps.Out.Errorf("failed to parse URL (not RSS or scrapeable webpage)")
		return
	}

	ev := c.deps.Synth.Synthesize(ctx, page)
	c.state.SetEvent(ev)
	c.deps.Out.Event(ev)
	c.autoPublish(ctx, ev)
}

func (c *Controller) autoPublish(ctx context.Context, ev core.PredictionEvent) {
	receipt, err := c.deps.Publisher.Publish(ctx, ev)
	if err != nil {
		c.deps.Out.Errorf("could not publish event: %v", err)
		return
	}
	if receipt.EventID != "" {
		c.deps.Out.Success("published to chain, event id: %s", receipt.EventID)
	} else {
		c.deps.Out.Success("published to chain")
	}
}

func (c *Controller) handleStatus(ctx context.Context) {
	c.deps.Out.Status(StatusReport{
		OpenAIConfigured: c.deps.OpenAIConfigured,
		ChainURL:         c.deps.Publisher.BaseURL(),
		HealthErr:        c.deps.Publisher.CheckHealth(ctx),
	})
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasToken(args []string, token string) bool {
	for _, a := range args {
		if strings.EqualFold(a, token) {
			return true
		}
	}
	return false
}

func capItems(items []core.FeedItem, max int) []core.FeedItem {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
