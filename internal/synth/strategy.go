package synth

import (
	"context"

	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/pkg/log"
)

// Strategy derives a PredictionEvent from a scraped page. Implementations
// may fail; the Synthesizer turns that into a guaranteed result.
type Strategy interface {
	Name() string
	Synthesize(ctx context.Context, page core.ScrapedPage) (core.PredictionEvent, error)
}

// Synthesizer always holds a rule-based fallback and optionally an
// LLM-backed primary. Synthesize is total: any primary failure falls back,
// so the pipeline never fails at this stage.
type Synthesizer struct {
	primary  Strategy
	fallback *RuleBased
}

func NewSynthesizer(primary Strategy, fallback *RuleBased) *Synthesizer {
	return &Synthesizer{
		primary:  primary,
		fallback: fallback,
	}
}

func (s *Synthesizer) Synthesize(ctx context.Context, page core.ScrapedPage) core.PredictionEvent {
	if s.primary != nil {
		ev, err := s.primary.Synthesize(ctx, page)
		if err == nil {
			return ev
		}
		log.FromCtx(ctx).Warn().
			Err(err).
			Str("strategy", s.primary.Name()).
			Msg("synthesis fell back to rule-based")
	}
	return s.fallback.Build(page)
}
