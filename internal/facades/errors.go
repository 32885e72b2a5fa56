package facades

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when a provider answers 2xx without usable content.
var ErrEmptyResponse = errors.New("ai provider returned no content")

// UpstreamError is a non-2xx answer from an AI provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s responded with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// truncate keeps upstream bodies short enough to log.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
