package apierrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "message only",
			err:  &APIError{StatusCode: 404, Message: "job not found"},
			want: "API error 404: job not found",
		},
		{
			name: "message and request id",
			err:  &APIError{StatusCode: 429, Message: "rate limit exceeded", RequestID: "req-1"},
			want: "API error 429: rate limit exceeded (request_id: req-1)",
		},
		{
			name: "status only",
			err:  &APIError{StatusCode: 500},
			want: "API error 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    *APIError
		target error
		want   bool
	}{
		{"401 is unauthorized", &APIError{StatusCode: 401}, ErrUnauthorized, true},
		{"404 job resource", &APIError{StatusCode: 404, ResourceType: ResourceJob}, ErrJobNotFound, true},
		{"404 job resource is not lead", &APIError{StatusCode: 404, ResourceType: ResourceJob}, ErrLeadNotFound, false},
		{"404 lead resource", &APIError{StatusCode: 404, ResourceType: ResourceLead}, ErrLeadNotFound, true},
		{"404 customer resource", &APIError{StatusCode: 404, ResourceType: ResourceCustomer}, ErrCustomerNotFound, true},
		{"404 document resource is a job 404", &APIError{StatusCode: 404, ResourceType: ResourceDocument}, ErrJobNotFound, true},
		{"404 document resource is not lead", &APIError{StatusCode: 404, ResourceType: ResourceDocument}, ErrLeadNotFound, false},
		{"404 document resource is not customer", &APIError{StatusCode: 404, ResourceType: ResourceDocument}, ErrCustomerNotFound, false},
		{"404 unknown matches job", &APIError{StatusCode: 404}, ErrJobNotFound, true},
		{"404 unknown matches lead", &APIError{StatusCode: 404}, ErrLeadNotFound, true},
		{"422 invalid request", &APIError{StatusCode: 422}, ErrInvalidRequest, true},
		{"429 rate limited", &APIError{StatusCode: 429}, ErrRateLimited, true},
		{"500 matches nothing", &APIError{StatusCode: 500}, ErrRateLimited, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithResourceType(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "not found"}

	tagged := WithResourceType(err, ResourceLead)
	if !errors.Is(tagged, ErrLeadNotFound) {
		t.Error("tagged error should match ErrLeadNotFound")
	}
	if errors.Is(tagged, ErrJobNotFound) {
		t.Error("tagged error should not match ErrJobNotFound")
	}

	// Original untouched
	if err.ResourceType != ResourceUnknown {
		t.Error("WithResourceType mutated the original error")
	}
}

func TestWithResourceType_PassthroughNonAPIErrors(t *testing.T) {
	if got := WithResourceType(nil, ResourceJob); got != nil {
		t.Errorf("WithResourceType(nil) = %v, want nil", got)
	}

	plain := errors.New("boom")
	if got := WithResourceType(plain, ResourceJob); got != plain {
		t.Errorf("WithResourceType(plain) = %v, want original error", got)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &NetworkError{Err: inner, URL: "https://api.acculynx.com/api/v2/jobs"}

	if !errors.Is(err, inner) {
		t.Error("NetworkError should unwrap to inner error")
	}
	if want := fmt.Sprintf("network error: %v", inner); err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
