package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig(context.Background())

	assert.Equal(t, "http://localhost:8080", cfg.ChainURL)
	assert.Equal(t, PublishVariantHealth, cfg.PublishVariant)
	assert.Equal(t, "2025-12-31T23:59:00-05:00", cfg.DefaultResolutionDate)
	assert.Equal(t, 15, cfg.FeedLimit)
}

func TestNewAppConfig_Env(t *testing.T) {
	t.Setenv("BLOCKCHAIN_API_URL", "http://chain.example:3000")
	t.Setenv("OBJECTWIRE_PUBLISH_VARIANT", PublishVariantDirect)
	t.Setenv("OBJECTWIRE_RUNTIME_PATH", "/tmp/ow")

	cfg := NewAppConfig(context.Background())

	assert.Equal(t, "http://chain.example:3000", cfg.ChainURL)
	assert.Equal(t, PublishVariantDirect, cfg.PublishVariant)
	assert.Equal(t, "/tmp/ow/history", cfg.GetHistoryPath())
}

func TestNewOpenAIConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg := NewOpenAIConfig(context.Background())
	require.NotNil(t, cfg)
	assert.False(t, cfg.Configured())
	assert.Equal(t, "gpt-4o-mini", cfg.Model)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg = NewOpenAIConfig(context.Background())
	assert.True(t, cfg.Configured())
}
