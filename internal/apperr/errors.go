package apperr

import (
	"errors"
	"fmt"
)

// ErrNoResults indicates a provider answered successfully but had nothing to
// return (zero geocoding matches, zero photo matches). Distinct from a hard
// failure so handlers can surface "no results" guidance.
var ErrNoResults = errors.New("no results")

// ValidationError reports missing or invalid caller input, including a missing
// provider credential. Surfaced as a blocking message, never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validation builds a ValidationError with a formatted reason.
func Validation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// UpstreamError reports a non-success response from a provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Upstream builds an UpstreamError. statusCode may be zero when the request
// never produced a response (transport failure, open circuit).
func Upstream(provider string, statusCode int, err error) error {
	return &UpstreamError{Provider: provider, StatusCode: statusCode, Err: err}
}

// MalformedResponseError reports a provider payload whose shape violates
// expectations. Fatal to the current request only.
type MalformedResponseError struct {
	Provider string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Provider, e.Reason)
}

// Malformed builds a MalformedResponseError with a formatted reason.
func Malformed(provider, format string, args ...any) error {
	return &MalformedResponseError{Provider: provider, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var u *UpstreamError
	return errors.As(err, &u)
}

// IsMalformed reports whether err is (or wraps) a MalformedResponseError.
func IsMalformed(err error) bool {
	var m *MalformedResponseError
	return errors.As(err, &m)
}
