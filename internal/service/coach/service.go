// Package coach talks to the external coaching chat collaborator.
package coach

import (
	"context"
	"errors"
	"fmt"

	"github.com/janisto/corerestore/internal/service/prescription"
)

// Service errors
var (
	ErrRateLimited = errors.New("coach rate limit exceeded")
	ErrUnavailable = errors.New("coach unavailable")
	ErrUpstream    = errors.New("coach upstream error")
)

// UpstreamErrorKind classifies coach upstream failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindRateLimited UpstreamErrorKind = "rate_limited"
	UpstreamErrorKindUnavailable UpstreamErrorKind = "unavailable"
	UpstreamErrorKindUpstream    UpstreamErrorKind = "upstream"
)

// UpstreamError includes coach response metadata for error mapping.
type UpstreamError struct {
	Kind       UpstreamErrorKind
	Status     int
	RetryAfter string
	cause      error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "coach upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("coach upstream error (kind=%s status=%d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("coach upstream error (kind=%s status=%d): %v", e.Kind, e.Status, e.cause)
}

// Unwrap enables errors.Is/As against sentinel service errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Request is one user message plus the engine-derived context.
type Request struct {
	Message string                `json:"message"`
	Context prescription.Snapshot `json:"context"`
}

// Reply is the coach's answer.
type Reply struct {
	Reply string `json:"reply"`
}

// Service defines the coaching chat operation.
type Service interface {
	Reply(ctx context.Context, req Request) (*Reply, error)
}
