package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/objectwire/objectwire/pkg/log"
)

// Publish variants. "health" runs a pre-flight GET /health and stamps the
// payload with the source page's domain; "direct" posts immediately under
// the fixed agent identifier and omits the resolution date.
const (
	PublishVariantHealth = "health"
	PublishVariantDirect = "direct"
)

type AppConfig struct {
	RuntimePath string `env:"OBJECTWIRE_RUNTIME_PATH" envDefault:".objectwire"`

	// Downstream event-ingestion API
	ChainURL       string `env:"BLOCKCHAIN_API_URL" envDefault:"http://localhost:8080"`
	PublishVariant string `env:"OBJECTWIRE_PUBLISH_VARIANT" envDefault:"health"`

	// Used whenever a synthesis path supplies no resolution date.
	DefaultResolutionDate string `env:"OBJECTWIRE_RESOLUTION_DATE" envDefault:"2025-12-31T23:59:00-05:00"`

	FeedLimit int `env:"OBJECTWIRE_FEED_LIMIT" envDefault:"15"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "history")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
