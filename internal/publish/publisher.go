package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/objectwire/objectwire/internal/config"
	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/pkg/log"
)

const (
	healthPath  = "/health"
	eventsPath  = "/ai/events"
	maxBodyEcho = 200

	healthTimeout  = 5 * time.Second
	publishTimeout = 30 * time.Second
)

// Payload is the wire shape of POST /ai/events.
type Payload struct {
	Source SourceRef `json:"source" xml:"source"`
	Event  EventBody `json:"event" xml:"event"`
}

type SourceRef struct {
	Domain string `json:"domain" xml:"domain"`
	URL    string `json:"url" xml:"url"`
}

type EventBody struct {
	Title          string   `json:"title" xml:"title"`
	Description    string   `json:"description" xml:"description"`
	Category       string   `json:"category" xml:"category"`
	Options        []string `json:"options" xml:"options>option"`
	Confidence     float64  `json:"confidence" xml:"confidence"`
	SourceURL      string   `json:"source_url" xml:"source_url"`
	ResolutionDate string   `json:"resolution_date,omitempty" xml:"resolution_date,omitempty"`
}

type Receipt struct {
	EventID string
}

// Publisher submits events to the chain API. The "health" variant runs a
// pre-flight GET /health and stamps the payload with the page's own domain;
// the "direct" variant posts immediately under the agent identifier and
// drops the resolution date. One variant is chosen at construction and
// applied consistently.
type Publisher struct {
	baseURL string
	variant string
	client  *http.Client
	health  *http.Client
}

func NewPublisher(baseURL, variant string) *Publisher {
	return &Publisher{
		baseURL: baseURL,
		variant: variant,
		client:  &http.Client{Timeout: publishTimeout},
		health:  &http.Client{Timeout: healthTimeout},
	}
}

func (p *Publisher) BaseURL() string {
	return p.baseURL
}

func (p *Publisher) BuildPayload(ev core.PredictionEvent) Payload {
	body := EventBody{
		Title:          ev.Title,
		Description:    ev.Description,
		Category:       ev.Category,
		Options:        ev.Options,
		Confidence:     ev.Confidence,
		SourceURL:      ev.SourceURL,
		ResolutionDate: ev.ResolutionDate,
	}
	src := SourceRef{Domain: hostOf(ev.SourceURL), URL: ev.SourceURL}

	if p.variant == config.PublishVariantDirect {
		src.Domain = core.AgentDomain
		body.ResolutionDate = ""
	}
	return Payload{Source: src, Event: body}
}

// ToEvent reverses BuildPayload. The resolution date survives only in the
// health variant; the direct variant never puts it on the wire.
func (p Payload) ToEvent() core.PredictionEvent {
	return core.PredictionEvent{
		Title:          p.Event.Title,
		Description:    p.Event.Description,
		Category:       p.Event.Category,
		Options:        p.Event.Options,
		Confidence:     p.Event.Confidence,
		SourceURL:      p.Event.SourceURL,
		ResolutionDate: p.Event.ResolutionDate,
	}
}

// CheckHealth requires an exact 200 from GET /health.
func (p *Publisher) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}
	resp, err := p.health.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &core.HealthError{Status: resp.StatusCode}
	}
	return nil
}

func (p *Publisher) Publish(ctx context.Context, ev core.PredictionEvent) (Receipt, error) {
	if p.variant != config.PublishVariantDirect {
		if err := p.CheckHealth(ctx); err != nil {
			return Receipt{}, err
		}
	}

	data, err := json.Marshal(p.BuildPayload(ev))
	if err != nil {
		return Receipt{}, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+eventsPath, bytes.NewReader(data))
	if err != nil {
		return Receipt{}, fmt.Errorf("create publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("post event: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Receipt{}, fmt.Errorf("read publish response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Receipt{}, &core.ServerError{
			Status: resp.StatusCode,
			Body:   firstBytes(string(body), maxBodyEcho),
		}
	}

	receipt := Receipt{EventID: extractID(body)}
	log.FromCtx(ctx).Debug().Str("event_id", receipt.EventID).Msg("event published")
	return receipt, nil
}

// extractID checks id, then market_id, then event_id, in that priority
// order, and returns the first present.
func extractID(body []byte) string {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	for _, key := range []string{"id", "market_id", "event_id"} {
		if v, ok := data[key]; ok && v != nil {
			return fmt.Sprint(v)
		}
	}
	return ""
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func firstBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
