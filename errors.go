package acculynx

import (
	"errors"
	"fmt"
	"time"

	"github.com/acculynx/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks. These are shared with the internal
// transport so matching works regardless of which layer produced the error.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = apierrors.ErrClientClosed

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = apierrors.ErrJobNotFound

	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = apierrors.ErrLeadNotFound

	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = apierrors.ErrCustomerNotFound

	// ErrInvalidRequest is returned when the server rejects the request data.
	ErrInvalidRequest = apierrors.ErrInvalidRequest

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType = apierrors.ResourceType

// Resource type constants for APIError.ResourceType.
const (
	ResourceUnknown  = apierrors.ResourceUnknown
	ResourceJob      = apierrors.ResourceJob
	ResourceLead     = apierrors.ResourceLead
	ResourceCustomer = apierrors.ResourceCustomer
	ResourceDocument = apierrors.ResourceDocument
)

// AccuLynxError is implemented by all SDK errors.
type AccuLynxError interface {
	error
	AccuLynxError() // marker method
}

// APIError represents an HTTP error from the AccuLynx API.
type APIError struct {
	StatusCode   int
	Message      string
	RequestID    string // if returned by server
	ResourceType ResourceType
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// AccuLynxError implements the AccuLynxError interface.
func (e *APIError) AccuLynxError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		switch e.ResourceType {
		case ResourceJob:
			return target == ErrJobNotFound
		case ResourceLead:
			return target == ErrLeadNotFound
		case ResourceCustomer:
			return target == ErrCustomerNotFound
		case ResourceDocument:
			// Documents and photos hang off a job.
			return target == ErrJobNotFound
		default:
			// Untagged 404s match any of the not-found sentinels.
			return target == ErrJobNotFound || target == ErrLeadNotFound || target == ErrCustomerNotFound
		}
	case 422:
		return target == ErrInvalidRequest
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AccuLynxError implements the AccuLynxError interface.
func (e *NetworkError) AccuLynxError() {}

// TimeoutError represents an operation that exceeded its deadline.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %v", e.Operation, e.Timeout)
}

// AccuLynxError implements the AccuLynxError interface.
func (e *TimeoutError) AccuLynxError() {}

// ValidationError contains client-side validation failures detected before a
// request is sent.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Errors)
}

// AccuLynxError implements the AccuLynxError interface.
func (e *ValidationError) AccuLynxError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Message:      apiErr.Message,
			RequestID:    apiErr.RequestID,
			ResourceType: apiErr.ResourceType,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}

// wrapResourceError tags an error with the resource type before wrapping, so
// 404s map to the right sentinel.
func wrapResourceError(err error, rt ResourceType) error {
	return wrapError(apierrors.WithResourceType(err, rt))
}
