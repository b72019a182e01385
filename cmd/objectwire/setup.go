package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/objectwire/objectwire/internal/config"
	"github.com/objectwire/objectwire/internal/feed"
	"github.com/objectwire/objectwire/internal/publish"
	"github.com/objectwire/objectwire/internal/scrape"
	"github.com/objectwire/objectwire/internal/synth"
	"github.com/objectwire/objectwire/pkg/clip"
	"github.com/objectwire/objectwire/pkg/log"
)

// app bundles the wired pipeline shared by the REPL and the one-shot
// subcommands.
type app struct {
	cfg       *config.AppConfig
	openAICfg *config.OpenAIConfig

	scraper   *scrape.Service
	synth     *synth.Synthesizer
	feeds     *feed.Reader
	publisher *publish.Publisher
	clip      *clip.Clipboard
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	// 1. Configuration (a .env in the runtime dir takes effect first)
	cfg := config.NewAppConfig(ctx)
	if err := initEnv(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}
	// Re-parse so .env values reach the config structs.
	cfg = config.NewAppConfig(ctx)
	openAICfg := config.NewOpenAIConfig(ctx)

	// 2. Synthesis: LLM primary when a key is present, rule-based always
	fallback := synth.NewRuleBased(cfg.DefaultResolutionDate)
	var primary synth.Strategy
	if openAICfg.Configured() {
		primary = synth.NewLLM(openAICfg.APIKey, openAICfg.Model, cfg.DefaultResolutionDate)
	} else {
		logger.Debug().Msg("OPENAI_API_KEY not set, using rule-based synthesis only")
	}

	return &app{
		cfg:       cfg,
		openAICfg: openAICfg,
		scraper:   scrape.NewService(),
		synth:     synth.NewSynthesizer(primary, fallback),
		feeds:     feed.NewReader(),
		publisher: publish.NewPublisher(cfg.ChainURL, cfg.PublishVariant),
		clip:      clip.New(),
	}
}

func initEnv(ctx context.Context, cfg *config.AppConfig) error {
	logger := log.FromCtx(ctx)
	envFile := cfg.GetEnvPath()

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

// askConfirm prompts on stdin for the one-shot commands; the REPL has its
// own readline-backed prompt.
func askConfirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
