package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent request-level failures.
// These are distinct from upstream failures.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryRequired indicates neither a query nor an action was given.
	ErrQueryRequired = errors.New("Query required")

	// ErrInvalidSource indicates an unrecognised source parameter.
	ErrInvalidSource = errors.New("Invalid source. Use: notion, slack")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("AI not configured. Set ANTHROPIC_API_KEY to enable answers.")
)

// NotConfiguredMessage is the payload error for a source without credentials.
func NotConfiguredMessage(s Source) string {
	return s.DisplayName() + " not configured"
}

// UpstreamError is a structured error reported by an external service.
// Services convert it into an error payload instead of failing the request.
type UpstreamError struct {
	// Service names the upstream ("notion", "slack", "drive", "anthropic").
	Service string

	// Code is the upstream error code, if any.
	Code string

	// Message is the upstream human-readable message.
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Service, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// AsUpstreamError unwraps err to an UpstreamError if it contains one.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var uerr *UpstreamError
	if errors.As(err, &uerr) {
		return uerr, true
	}
	return nil, false
}
