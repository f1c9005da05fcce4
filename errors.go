// Package tripmate - errors.go
// Fault taxonomy for capability invocations and registry configuration.
package tripmate

import (
	"errors"
	"fmt"
)

// Configuration-time faults. These indicate a programming or wiring mistake
// and are surfaced immediately instead of being degraded into a Failure
// result.
var (
	ErrUnknownCapability   = errors.New("capability not found")
	ErrDuplicateCapability = errors.New("capability already registered")
)

// TransportError is a network-level fault: the provider never produced a
// response (connection refused, DNS failure, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProviderError is a non-success HTTP status from the provider.
type ProviderError struct {
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

// ParseError is a provider response missing an expected field.
type ParseError struct {
	Field string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("response missing field %q", e.Field)
}
