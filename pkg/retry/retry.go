package retry

import (
	"context"
	"time"
)

type Operation = func() error

// Config controls the retry loop. Attempts counts the first try; a zero
// BackoffFactor keeps the delay fixed between attempts.
type Config struct {
	Attempts      int
	Delay         time.Duration
	BackoffFactor float64
	MaxDelay      time.Duration
}

func NewFixedConfig(attempts int, delay time.Duration) *Config {
	return &Config{
		Attempts: attempts,
		Delay:    delay,
	}
}

type Retrier struct {
	config *Config
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
	}
}

// Do runs op until it succeeds, the configured attempts are exhausted, or
// ctx is cancelled. The last operation error is returned on exhaustion.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	var err error
	delay := r.config.Delay

	for attempt := 1; attempt <= r.config.Attempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		if attempt == r.config.Attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		if r.config.BackoffFactor > 1 {
			delay = time.Duration(float64(delay) * r.config.BackoffFactor)
			if r.config.MaxDelay > 0 && delay > r.config.MaxDelay {
				delay = r.config.MaxDelay
			}
		}
	}
	return err
}
