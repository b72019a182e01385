package scrape

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/objectwire/objectwire/internal/core"
)

const (
	maxContentChars = 5000
	minContentChars = 100
)

// Noise elements are stripped before any text extraction; they are never
// part of the returned content.
var noiseSelector = "script, style, nav, header, footer, aside"

// Extractor converts raw HTML into a normalized ScrapedPage. Pages whose
// visible text falls below minContentChars are rejected with
// core.ErrContentTooShort so near-empty pages never reach synthesis.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(raw []byte, pageURL string) (core.ScrapedPage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return core.ScrapedPage{}, fmt.Errorf("parse document: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "Untitled"
	}

	main := doc.Find("article").First()
	if main.Length() == 0 {
		main = doc.Find("main").First()
	}
	if main.Length() == 0 {
		main = doc.Find("body").First()
	}

	content := truncate(visibleText(main), maxContentChars)
	if len([]rune(content)) < minContentChars {
		return core.ScrapedPage{}, core.ErrContentTooShort
	}

	return core.ScrapedPage{
		Title:   title,
		Content: content,
		URL:     pageURL,
		Domain:  hostOf(pageURL),
	}, nil
}

// visibleText joins the trimmed text nodes under sel with newlines.
func visibleText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func hostOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Host
}
