package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("request has no messages")
	ErrProviderTimeout       = errors.New("provider timeout")
	ErrProviderRateLimited   = errors.New("provider rate limited")
)

// ProviderError tags an upstream error with the provider that returned it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

const LogPrefixGenerate = "pkg.llmprovider.GenerateContent"
