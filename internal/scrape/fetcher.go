package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/pkg/log"
	"github.com/objectwire/objectwire/pkg/retry"
)

const (
	fetchTimeout    = 20 * time.Second
	fetchAttempts   = 3
	fetchRetryDelay = time.Second

	maxResponseSize = 4 << 20
)

// Fetcher retrieves raw page bytes with a browser-like header set. Any
// network failure or non-2xx status is retried up to fetchAttempts total
// attempts with a fixed delay in between.
type Fetcher struct {
	client  *http.Client
	retrier *retry.Retrier
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: fetchTimeout,
		},
		retrier: retry.NewRetrier(retry.NewFixedConfig(fetchAttempts, fetchRetryDelay)),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	var body []byte

	err := f.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", core.UserAgent)
		req.Header.Set("Accept", core.AcceptHeader)

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch url: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		return nil
	})

	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Str("url", pageURL).Msg("fetch exhausted retries")
		return nil, fmt.Errorf("fetch %s after %d attempts: %w", pageURL, fetchAttempts, err)
	}
	return body, nil
}
