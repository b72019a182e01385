package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/internal/session"
	"github.com/objectwire/objectwire/pkg/xmlenc"
)

// Renderer writes all operator-facing output. It implements
// session.Renderer; the controller stays terminal-agnostic.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) Event(ev core.PredictionEvent) {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(ev.Title) + "\n\n")
	b.WriteString(LabelStyle.Render("Description: ") + ValueStyle.Render(ev.Description) + "\n")
	b.WriteString(LabelStyle.Render("Category:    ") + ValueStyle.Render(ev.Category) + "\n")
	b.WriteString(LabelStyle.Render("Options:     ") + ValueStyle.Render(strings.Join(ev.Options, " | ")) + "\n")
	b.WriteString(LabelStyle.Render("Confidence:  ") + ValueStyle.Render(fmt.Sprintf("%.2f", ev.Confidence)) + "\n")
	b.WriteString(LabelStyle.Render("Resolves:    ") + ValueStyle.Render(ev.ResolutionDate) + "\n")
	b.WriteString(DimStyle.Render(ev.SourceURL))

	fmt.Fprintln(r.w, PanelStyle.Render(b.String()))
}

func (r *Renderer) FeedListing(title string, items []core.FeedItem, hint string) {
	fmt.Fprintln(r.w, TitleStyle.Render(title))

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"#", "Title", "Published"})
	table.SetAutoWrapText(false)
	table.SetColWidth(70)
	for i, item := range items {
		table.Append([]string{
			strconv.Itoa(i + 1),
			truncate(item.Title, 70),
			truncate(item.Published, 25),
		})
	}
	table.Render()

	if hint != "" {
		fmt.Fprintln(r.w, DimStyle.Render(hint))
	}
}

func (r *Renderer) JSON(label string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		r.Errorf("failed to render JSON: %v", err)
		return
	}
	fmt.Fprintln(r.w, LabelStyle.Render(label+":"))
	fmt.Fprintln(r.w, string(data))
}

func (r *Renderer) XML(label, root string, v any) {
	text, err := xmlenc.Pretty(root, v)
	if err != nil {
		r.Errorf("failed to render XML: %v", err)
		return
	}
	fmt.Fprintln(r.w, LabelStyle.Render(label+":"))
	fmt.Fprintln(r.w, text)
}

func (r *Renderer) Status(report session.StatusReport) {
	fmt.Fprintln(r.w, TitleStyle.Render(core.AppName+" status"))

	table := tablewriter.NewWriter(r.w)
	table.SetAutoWrapText(false)
	table.Append([]string{"Version", core.AppVersion})
	table.Append([]string{"Chain API", report.ChainURL})
	table.Append([]string{"Chain health", healthCell(report.HealthErr)})
	table.Append([]string{"OpenAI", openAICell(report.OpenAIConfigured)})
	table.Render()
}

func (r *Renderer) Help() {
	fmt.Fprintln(r.w, TitleStyle.Render(core.AppName+" commands"))
	rows := [][2]string{
		{"<url>", "auto-detect: RSS feed listing, or scrape + publish"},
		{"scrape <url>", "scrape a page, synthesize an event, publish it"},
		{"rss <url>", "list feed articles; pick one by number"},
		{"<number> [json|xml]", "scrape the numbered article from the last listing"},
		{"post", "preview the last event and post it to the chain API"},
		{"copy [xml] / c", "copy the last event to the clipboard"},
		{"paste / v / pv", "read a URL from the clipboard"},
		{"status", "configuration and chain API health"},
		{"help", "this listing"},
		{"exit / quit / q", "leave the session"},
	}
	for _, row := range rows {
		fmt.Fprintf(r.w, "  %s  %s\n",
			LabelStyle.Render(fmt.Sprintf("%-20s", row[0])),
			DimStyle.Render(row[1]))
	}
}

func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintln(r.w, SuccessStyle.Render("✓ ")+fmt.Sprintf(format, args...))
}

func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintln(r.w, DimStyle.Render(fmt.Sprintf(format, args...)))
}

func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(r.w, ErrorStyle.Render("✗ ")+fmt.Sprintf(format, args...))
}

func healthCell(err error) string {
	if err != nil {
		return ErrorStyle.Render("unreachable") + " (" + err.Error() + ")"
	}
	return SuccessStyle.Render("ok")
}

func openAICell(configured bool) string {
	if configured {
		return "configured"
	}
	return "not configured (rule-based fallback only)"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
