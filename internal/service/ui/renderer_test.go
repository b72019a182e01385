package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/internal/session"
)

func sampleEvent() core.PredictionEvent {
	return core.PredictionEvent{
		Title:          "Will it rain tomorrow?",
		Description:    "Forecast discussion",
		Category:       "weather",
		Options:        []string{"Yes", "No"},
		Confidence:     0.6,
		SourceURL:      "https://example.com/w",
		ResolutionDate: "2025-12-31T23:59:00-05:00",
	}
}

func TestRenderer_Event(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Event(sampleEvent())

	out := buf.String()
	assert.Contains(t, out, "Will it rain tomorrow?")
	assert.Contains(t, out, "Yes | No")
	assert.Contains(t, out, "0.60")
	assert.Contains(t, out, "https://example.com/w")
}

func TestRenderer_FeedListing(t *testing.T) {
	var buf bytes.Buffer
	items := []core.FeedItem{
		{Title: "First story", Published: "2025-08-20"},
		{Title: "Second story"},
	}
	NewRenderer(&buf).FeedListing("Daily News", items, "pick a number")

	out := buf.String()
	assert.Contains(t, out, "Daily News")
	assert.Contains(t, out, "First story")
	assert.Contains(t, out, "Second story")
	assert.Contains(t, out, "pick a number")
}

func TestRenderer_JSONAndXML(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.JSON("JSON", sampleEvent())
	r.XML("XML", "prediction_event", sampleEvent())

	out := buf.String()
	assert.Contains(t, out, `"title": "Will it rain tomorrow?"`)
	assert.Contains(t, out, "<prediction_event>")
	assert.Contains(t, out, "<option>Yes</option>")
}

func TestRenderer_Status(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Status(session.StatusReport{
		OpenAIConfigured: false,
		ChainURL:         "http://localhost:8080",
		HealthErr:        errors.New("connection refused"),
	})

	out := buf.String()
	assert.Contains(t, out, "http://localhost:8080")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "rule-based fallback")
}
