package contentful

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by NewClient when credentials are missing.
// It is terminal: there is no retry path that can succeed without
// reconfiguration, checked once before any network attempt.
var ErrNotConfigured = errors.New("contentful credentials not configured")

// ErrorKind classifies remote fetch failures for the UI.
type ErrorKind int

const (
	// SourceUnavailable covers network failures and server errors.
	// Retryable by explicit user action.
	SourceUnavailable ErrorKind = iota

	// Unauthorized means the credentials were rejected. Retrying only helps
	// after reconfiguration, but it is surfaced with the same retry
	// affordance as SourceUnavailable.
	Unauthorized

	// SchemaMismatch means the configured content type does not exist in the
	// space. Carries a remediation hint instead of a retry suggestion.
	SchemaMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case SchemaMismatch:
		return "schema mismatch"
	default:
		return "source unavailable"
	}
}

// APIError is the single error shape fetch failures are converted to. Raw
// transport errors never cross this boundary.
type APIError struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d", e.Kind, e.Status)
	}
	return e.Kind.String()
}

func (e *APIError) Unwrap() error { return e.Err }

// Message is the user-facing description of the failure.
func (e *APIError) Message() string {
	switch e.Kind {
	case Unauthorized:
		return "The content source rejected the access credentials."
	case SchemaMismatch:
		return "The expected content type was not found in the space."
	default:
		return "Could not reach the content source."
	}
}

// Hint suggests what to do about it.
func (e *APIError) Hint() string {
	switch e.Kind {
	case Unauthorized:
		return "Check CONTENTFUL_SPACE_ID and CONTENTFUL_ACCESS_TOKEN, then retry."
	case SchemaMismatch:
		return "Create the content type in your space or adjust content_type in the config file."
	default:
		return "Press r to retry."
	}
}
