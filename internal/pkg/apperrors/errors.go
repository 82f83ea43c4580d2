package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable covers any failed call to a remote provider
	// (embedding model, vector index, chat completion).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrNotFound is returned when a passage id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalid is returned for malformed client input.
	ErrInvalid = errors.New("invalid")
)

func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Upstream wraps a provider error so callers can match it with errors.Is
// while keeping the original cause in the chain.
func Upstream(provider string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, provider, err)
}
