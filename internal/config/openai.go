package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/objectwire/objectwire/pkg/log"
)

// OpenAIConfig is deliberately optional: without a key the synthesizer runs
// on the rule-based fallback alone.
type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
	Model  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}

func (c OpenAIConfig) Configured() bool {
	return c.APIKey != ""
}
