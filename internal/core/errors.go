package core

import (
	"errors"
	"fmt"
)

// ErrContentTooShort marks a page whose extracted text is below the quality
// gate. Permanent: the scrape is not retried.
var ErrContentTooShort = errors.New("content too short")

// ErrNotAFeed marks input that could not be parsed as RSS/Atom. Callers use
// it to fall back to treating the same URL as a plain web page.
var ErrNotAFeed = errors.New("not an RSS/Atom feed")

// HealthError aborts a publish before the POST is attempted.
type HealthError struct {
	Status int
}

func (e *HealthError) Error() string {
	return fmt.Sprintf("chain API unhealthy: status %d", e.Status)
}

// ServerError is a non-2xx response from the publish endpoint.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("chain API returned %d: %s", e.Status, e.Body)
}
