package publish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objectwire/objectwire/internal/config"
	"github.com/objectwire/objectwire/internal/core"
)

var testEvent = core.PredictionEvent{
	Title:          "Will the launch happen this quarter?",
	Description:    "Based on: Launch announcement",
	Category:       "technology",
	Options:        []string{"Yes", "No"},
	Confidence:     0.6,
	SourceURL:      "https://news.example.com/launch",
	ResolutionDate: "2025-12-31T23:59:00-05:00",
}

func chainServer(t *testing.T, healthStatus int, respond func(w http.ResponseWriter, payload Payload)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(healthStatus)
		case "/ai/events":
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var payload Payload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			respond(w, payload)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestPublisher_HealthVariant(t *testing.T) {
	var got Payload
	srv := chainServer(t, http.StatusOK, func(w http.ResponseWriter, payload Payload) {
		got = payload
		json.NewEncoder(w).Encode(map[string]any{"id": "evt-1"})
	})
	defer srv.Close()

	p := NewPublisher(srv.URL, config.PublishVariantHealth)
	receipt, err := p.Publish(context.Background(), testEvent)
	require.NoError(t, err)
	assert.Equal(t, "evt-1", receipt.EventID)

	// Health variant: page domain and resolution date on the wire.
	assert.Equal(t, "news.example.com", got.Source.Domain)
	assert.Equal(t, testEvent.SourceURL, got.Source.URL)
	assert.Equal(t, testEvent.ResolutionDate, got.Event.ResolutionDate)
}

func TestPublisher_DirectVariant(t *testing.T) {
	var got Payload
	srv := chainServer(t, http.StatusInternalServerError, func(w http.ResponseWriter, payload Payload) {
		got = payload
		json.NewEncoder(w).Encode(map[string]any{"event_id": "evt-2"})
	})
	defer srv.Close()

	// Direct variant must not call /health (the server would 500 it).
	p := NewPublisher(srv.URL, config.PublishVariantDirect)
	receipt, err := p.Publish(context.Background(), testEvent)
	require.NoError(t, err)
	assert.Equal(t, "evt-2", receipt.EventID)

	assert.Equal(t, core.AgentDomain, got.Source.Domain)
	assert.Empty(t, got.Event.ResolutionDate)
}

func TestPublisher_UnhealthyAborts(t *testing.T) {
	posted := false
	srv := chainServer(t, http.StatusServiceUnavailable, func(w http.ResponseWriter, payload Payload) {
		posted = true
	})
	defer srv.Close()

	p := NewPublisher(srv.URL, config.PublishVariantHealth)
	_, err := p.Publish(context.Background(), testEvent)

	var healthErr *core.HealthError
	require.ErrorAs(t, err, &healthErr)
	assert.Equal(t, http.StatusServiceUnavailable, healthErr.Status)
	assert.False(t, posted, "no POST after failed health check")
}

func TestPublisher_ServerError(t *testing.T) {
	srv := chainServer(t, http.StatusOK, func(w http.ResponseWriter, payload Payload) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"bad category"}`))
	})
	defer srv.Close()

	p := NewPublisher(srv.URL, config.PublishVariantHealth)
	_, err := p.Publish(context.Background(), testEvent)

	var srvErr *core.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusUnprocessableEntity, srvErr.Status)
	assert.Contains(t, srvErr.Body, "bad category")
}

func TestPublisher_IDPriority(t *testing.T) {
	srv := chainServer(t, http.StatusOK, func(w http.ResponseWriter, payload Payload) {
		json.NewEncoder(w).Encode(map[string]any{
			"event_id":  "low",
			"market_id": "mid",
			"id":        "top",
		})
	})
	defer srv.Close()

	p := NewPublisher(srv.URL, config.PublishVariantHealth)
	receipt, err := p.Publish(context.Background(), testEvent)
	require.NoError(t, err)
	assert.Equal(t, "top", receipt.EventID)
}

func TestPublisher_NetworkErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := NewPublisher(srv.URL, config.PublishVariantDirect)
	_, err := p.Publish(context.Background(), testEvent)
	assert.Error(t, err)
}

func TestPayload_RoundTrip(t *testing.T) {
	health := NewPublisher("http://chain", config.PublishVariantHealth)
	assert.Equal(t, testEvent, health.BuildPayload(testEvent).ToEvent())

	// The direct variant intentionally drops the resolution date.
	direct := NewPublisher("http://chain", config.PublishVariantDirect)
	got := direct.BuildPayload(testEvent).ToEvent()
	want := testEvent
	want.ResolutionDate = ""
	assert.Equal(t, want, got)
}
