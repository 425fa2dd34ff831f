package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/acculynx/client-go/internal/apierrors"
)

// Default transport settings.
const (
	// DefaultBaseURL is the v2 production API endpoint.
	DefaultBaseURL = "https://api.acculynx.com/api/v2"
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      *RetryConfig
	logger     *log.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. A trailing slash is stripped.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the maximum number of retry attempts.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
func WithRetryOn(statusCodes []int) Option {
	return func(c *Client) {
		codes := make(map[int]struct{}, len(statusCodes))
		for _, code := range statusCodes {
			codes[code] = struct{}{}
		}
		c.retry.RetryableOn = func(statusCode int) bool {
			_, ok := codes[statusCode]
			return ok
		}
	}
}

// WithRetryBaseDelay sets the initial delay between retry attempts.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retry.BaseDelay = delay
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets a logger for debug-level request logging.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry: DefaultRetryConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// V1BaseURL returns the base URL rewritten to the v1 API family.
// Lead creation lives on v1 while everything else uses v2.
func (c *Client) V1BaseURL() string {
	return strings.Replace(c.baseURL, "/api/v2", "/api/v1", 1)
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do performs a JSON request against the v2 API and decodes the response
// into result (which may be nil for empty responses).
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	return c.doURL(ctx, method, c.baseURL+path, query, body, result)
}

// DoV1 performs a JSON request against the v1 API family.
func (c *Client) DoV1(ctx context.Context, method, path string, query url.Values, body, result any) error {
	return c.doURL(ctx, method, c.V1BaseURL()+path, query, body, result)
}

func (c *Client) doURL(ctx context.Context, method, fullURL string, query url.Values, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		c.setHeaders(req)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = &apierrors.NetworkError{Err: err, URL: fullURL, Attempt: attempt}
			if attempt >= c.retry.MaxRetries || ctx.Err() != nil {
				return lastErr
			}
			c.logRequest(method, fullURL, 0, attempt, err)
			if werr := c.retry.Wait(ctx, c.retry.Delay(attempt)); werr != nil {
				return werr
			}
			continue
		}

		c.logRequest(method, fullURL, resp.StatusCode, attempt, nil)

		if resp.StatusCode >= 400 {
			if c.retry.ShouldRetry(attempt, resp.StatusCode) {
				delay := c.retry.DelayFor(attempt, resp)
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				if werr := c.retry.Wait(ctx, delay); werr != nil {
					return werr
				}
				continue
			}
			defer resp.Body.Close()
			return parseErrorResponse(resp)
		}

		defer resp.Body.Close()
		return decodeResult(resp, result)
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
}

func (c *Client) logRequest(method, url string, status, attempt int, err error) {
	if c.logger == nil {
		return
	}
	if err != nil {
		c.logger.Debug("api request failed", "method", method, "url", url, "attempt", attempt, "err", err)
		return
	}
	c.logger.Debug("api request", "method", method, "url", url, "status", status, "attempt", attempt)
}

func decodeResult(resp *http.Response, result any) error {
	if result == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseErrorResponse maps an HTTP error response to an *apierrors.APIError.
// AccuLynx error bodies are not uniform across endpoints, so both "message"
// and "error" keys are accepted; anything else falls back to the raw body.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Message   string `json:"message"`
		Error     string `json:"error"`
		RequestID string `json:"requestId"`
	}

	apiErr := &apierrors.APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.RequestID = errResp.RequestID
		switch {
		case errResp.Message != "":
			apiErr.Message = errResp.Message
		case errResp.Error != "":
			apiErr.Message = errResp.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
