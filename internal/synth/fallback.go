package synth

import (
	"context"
	"fmt"

	"github.com/objectwire/objectwire/internal/core"
)

// RuleBased is the deterministic synthesis path. It cannot fail, which is
// what lets the Synthesizer promise a fully populated event on every run.
type RuleBased struct {
	resolutionDate string
}

func NewRuleBased(resolutionDate string) *RuleBased {
	return &RuleBased{resolutionDate: resolutionDate}
}

func (r *RuleBased) Name() string {
	return "rule-based"
}

func (r *RuleBased) Synthesize(_ context.Context, page core.ScrapedPage) (core.PredictionEvent, error) {
	return r.Build(page), nil
}

func (r *RuleBased) Build(page core.ScrapedPage) core.PredictionEvent {
	return core.PredictionEvent{
		Title:          fmt.Sprintf("Will '%s' predictions come true?", firstRunes(page.Title, 50)),
		Description:    "Based on: " + page.Title,
		Category:       "general",
		Options:        []string{"Yes", "No", "Partially"},
		Confidence:     0.5,
		SourceURL:      page.URL,
		ResolutionDate: r.resolutionDate,
	}
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
