package acculynx

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("New(\"\") error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := client.BaseURL(); got != "https://api.acculynx.com/api/v2" {
		t.Errorf("BaseURL() = %s, want https://api.acculynx.com/api/v2", got)
	}
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("https://example.com/api/v2/"),
		WithTimeout(5*time.Second),
		WithRetries(1),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := client.BaseURL(); got != "https://example.com/api/v2" {
		t.Errorf("BaseURL() = %s, want trailing slash stripped", got)
	}
}

func TestClient_Close(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected after Close")
	}))

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := client.GetJob(context.Background(), "job-1"); !errors.Is(err, ErrClientClosed) {
		t.Errorf("GetJob() after Close error = %v, want ErrClientClosed", err)
	}
	if _, err := client.ListCustomers(context.Background(), 0, 0); !errors.Is(err, ErrClientClosed) {
		t.Errorf("ListCustomers() after Close error = %v, want ErrClientClosed", err)
	}
	if _, err := client.CreateLead(context.Background(), &CreateLeadRequest{FirstName: "A", LastName: "B"}); !errors.Is(err, ErrClientClosed) {
		t.Errorf("CreateLead() after Close error = %v, want ErrClientClosed", err)
	}
}

func TestClient_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid API key"}`))
	}))

	_, err := client.ListJobs(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Message != "invalid API key" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "invalid API key")
	}
}

func TestClient_RateLimited(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message": "rate limit exceeded"}`))
	}))

	_, err := client.ListJobs(context.Background())
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("error = %v, want ErrRateLimited", err)
	}
}
