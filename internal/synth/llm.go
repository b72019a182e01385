package synth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/objectwire/objectwire/internal/core"
)

const extractionPrompt = "Extract a prediction market question from this article. " +
	"Return JSON with: title (question), description, category, options (list of 2-3 choices), " +
	"confidence (0-1), resolution_date (ISO format)."

const promptContentChars = 2000

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LLM asks a chat model for a JSON event description. The response is
// untrusted text: the first balanced JSON object is located and parsed,
// and every missing field gets a default.
type LLM struct {
	client         chatCompleter
	model          string
	resolutionDate string
}

func NewLLM(apiKey, model, resolutionDate string) *LLM {
	return &LLM{
		client:         openai.NewClient(apiKey),
		model:          model,
		resolutionDate: resolutionDate,
	}
}

func (l *LLM) Name() string {
	return "llm"
}

func (l *LLM) Synthesize(ctx context.Context, page core.ScrapedPage) (core.PredictionEvent, error) {
	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       l.model,
		Temperature: 0.3,
		MaxTokens:   400,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: extractionPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Title: %s\n\nContent: %s", page.Title, firstRunes(page.Content, promptContentChars)),
			},
		},
	})
	if err != nil {
		return core.PredictionEvent{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return core.PredictionEvent{}, errors.New("chat completion returned no choices")
	}

	raw, err := firstJSONObject(resp.Choices[0].Message.Content)
	if err != nil {
		return core.PredictionEvent{}, err
	}

	var ev llmEvent
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		return core.PredictionEvent{}, fmt.Errorf("decode model response: %w", err)
	}
	return l.withDefaults(ev, page), nil
}

type llmEvent struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Options        []string `json:"options"`
	Confidence     *float64 `json:"confidence"`
	ResolutionDate string   `json:"resolution_date"`
}

// withDefaults guarantees a fully populated event no matter which fields
// the model omitted.
func (l *LLM) withDefaults(ev llmEvent, page core.ScrapedPage) core.PredictionEvent {
	out := core.PredictionEvent{
		Title:          ev.Title,
		Description:    ev.Description,
		Category:       ev.Category,
		Options:        ev.Options,
		Confidence:     0.7,
		SourceURL:      page.URL,
		ResolutionDate: ev.ResolutionDate,
	}
	if out.Title == "" {
		out.Title = fmt.Sprintf("Prediction: %s?", firstRunes(page.Title, 60))
	}
	if out.Description == "" {
		out.Description = firstRunes(page.Content, 200)
	}
	if out.Category == "" {
		out.Category = "general"
	}
	if len(out.Options) < 2 {
		out.Options = []string{"Yes", "No"}
	}
	if ev.Confidence != nil {
		out.Confidence = clamp01(*ev.Confidence)
	}
	if out.ResolutionDate == "" {
		out.ResolutionDate = l.resolutionDate
	}
	return out
}

// firstJSONObject returns the first balanced {...} span in text, skipping
// braces that appear inside JSON strings.
func firstJSONObject(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if start == -1 {
			if r == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], nil
				}
			}
		}
	}
	return "", errors.New("no JSON object in model response")
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
