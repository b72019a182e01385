package scrape

import (
	"context"

	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/pkg/log"
)

// Service runs the fetch and extract steps back to back.
type Service struct {
	fetcher   *Fetcher
	extractor *Extractor
}

func NewService() *Service {
	return &Service{
		fetcher:   NewFetcher(),
		extractor: NewExtractor(),
	}
}

func (s *Service) Scrape(ctx context.Context, pageURL string) (core.ScrapedPage, error) {
	raw, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return core.ScrapedPage{}, err
	}

	page, err := s.extractor.Extract(raw, pageURL)
	if err != nil {
		return core.ScrapedPage{}, err
	}

	log.FromCtx(ctx).Debug().
		Str("url", pageURL).
		Str("title", page.Title).
		Int("content_len", len(page.Content)).
		Msg("scraped page")
	return page, nil
}
