package acculynx

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// dateOnly is the wire format for date filters and payment dates.
const dateOnly = "2006-01-02"

// ListJobs retrieves a single page of jobs with filtering and sorting options.
func (c *Client) ListJobs(ctx context.Context, opts ...JobListOption) ([]*Job, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := &jobListConfig{pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.pageSize <= 0 {
		cfg.pageSize = defaultPageSize
	}

	var result struct {
		Items []*Job `json:"items"`
	}
	if err := c.apiClient.Do(ctx, "GET", "/jobs", cfg.queryValues(), nil, &result); err != nil {
		return nil, wrapResourceError(err, ResourceJob)
	}
	return result.Items, nil
}

// Jobs returns an iterator over all jobs matching the given options, fetching
// pages lazily. Iteration stops at the first empty page, at the API's start
// index cap, or when the yield function returns false. Errors are yielded
// with a nil job and end the sequence.
func (c *Client) Jobs(ctx context.Context, opts ...JobListOption) iter.Seq2[*Job, error] {
	return func(yield func(*Job, error) bool) {
		cfg := &jobListConfig{pageSize: defaultPageSize}
		for _, opt := range opts {
			opt(cfg)
		}
		if cfg.pageSize <= 0 {
			cfg.pageSize = defaultPageSize
		}
		startIndex := cfg.pageStartIndex

		for {
			pageOpts := append(opts, WithPageSize(cfg.pageSize), WithPageStartIndex(startIndex))
			jobs, err := c.ListJobs(ctx, pageOpts...)
			if err != nil {
				yield(nil, err)
				return
			}
			if len(jobs) == 0 {
				return
			}

			for _, job := range jobs {
				if !yield(job, nil) {
					return
				}
			}

			startIndex += cfg.pageSize
			if startIndex >= maxPageStartIndex {
				return
			}
		}
	}
}

// GetJob retrieves a specific job by ID. Related resources named in includes
// (for example "contact") are embedded in the response.
func (c *Client) GetJob(ctx context.Context, jobID string, includes ...string) (*Job, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if len(includes) > 0 {
		query.Set("includes", strings.Join(includes, ","))
	}

	var job Job
	path := fmt.Sprintf("/jobs/%s", url.PathEscape(jobID))
	if err := c.apiClient.Do(ctx, "GET", path, query, nil, &job); err != nil {
		return nil, wrapResourceError(err, ResourceJob)
	}
	return &job, nil
}

// CreateJobMessage creates a new message (comment) on a job.
func (c *Client) CreateJobMessage(ctx context.Context, jobID, message string) (*JobMessage, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, &ValidationError{Errors: []string{"message is required"}}
	}

	payload := map[string]string{"message": message}

	var result JobMessage
	path := fmt.Sprintf("/jobs/%s/messages", url.PathEscape(jobID))
	if err := c.apiClient.Do(ctx, "POST", path, nil, payload, &result); err != nil {
		return nil, wrapResourceError(err, ResourceJob)
	}
	return &result, nil
}

// PaymentParams describes a payment to record against a job.
type PaymentParams struct {
	Amount      float64
	PaymentDate time.Time
	PaymentType string
	CheckNumber string // optional
	Notes       string // optional
}

// Validate checks the payment before it is sent to the API.
func (p *PaymentParams) Validate() error {
	var problems []string
	if p.Amount <= 0 {
		problems = append(problems, "amount must be positive")
	}
	if p.PaymentDate.IsZero() {
		problems = append(problems, "paymentDate is required")
	}
	if p.PaymentType == "" {
		problems = append(problems, "paymentType is required")
	}
	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}

type paymentRequest struct {
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
	PaymentType string  `json:"paymentType"`
	CheckNumber string  `json:"checkNumber,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// CreatePaymentReceived records a payment received on a job.
func (c *Client) CreatePaymentReceived(ctx context.Context, jobID string, params PaymentParams) (*PaymentResult, error) {
	return c.createPayment(ctx, jobID, "received", params)
}

// CreatePaymentPaid records a payment paid out on a job.
func (c *Client) CreatePaymentPaid(ctx context.Context, jobID string, params PaymentParams) (*PaymentResult, error) {
	return c.createPayment(ctx, jobID, "paid", params)
}

func (c *Client) createPayment(ctx context.Context, jobID, direction string, params PaymentParams) (*PaymentResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	payload := paymentRequest{
		Amount:      params.Amount,
		PaymentDate: params.PaymentDate.Format(dateOnly),
		PaymentType: params.PaymentType,
		CheckNumber: params.CheckNumber,
		Notes:       params.Notes,
	}

	var result PaymentResult
	path := fmt.Sprintf("/jobs/%s/payments/%s", url.PathEscape(jobID), direction)
	if err := c.apiClient.Do(ctx, "POST", path, nil, payload, &result); err != nil {
		return nil, wrapResourceError(err, ResourceJob)
	}
	return &result, nil
}

// DocumentUpload describes a document to attach to a job.
type DocumentUpload struct {
	Content     io.Reader
	Filename    string // derived from the reader when it is an *os.File
	FolderID    string // optional
	Description string // optional
}

// MediaUpload describes a photo or video to attach to a job.
type MediaUpload struct {
	Content     io.Reader
	Filename    string   // derived from the reader when it is an *os.File
	TagIDs      []string // optional
	Description string   // optional
}

// UploadDocument uploads a document to a job.
func (c *Client) UploadDocument(ctx context.Context, jobID string, doc DocumentUpload) (*UploadResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	filename, err := resolveFilename(doc.Filename, doc.Content)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if doc.FolderID != "" {
		fields["folderId"] = doc.FolderID
	}
	if doc.Description != "" {
		fields["description"] = doc.Description
	}

	var result UploadResult
	path := fmt.Sprintf("/jobs/%s/documents", url.PathEscape(jobID))
	if err := c.apiClient.DoMultipart(ctx, path, filename, doc.Content, fields, &result); err != nil {
		return nil, wrapResourceError(err, ResourceDocument)
	}
	return &result, nil
}

// UploadPhotoOrVideo uploads a photo or video to a job.
func (c *Client) UploadPhotoOrVideo(ctx context.Context, jobID string, media MediaUpload) (*UploadResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	filename, err := resolveFilename(media.Filename, media.Content)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if len(media.TagIDs) > 0 {
		fields["tagIds"] = strings.Join(media.TagIDs, ",")
	}
	if media.Description != "" {
		fields["description"] = media.Description
	}

	var result UploadResult
	path := fmt.Sprintf("/jobs/%s/photos-videos", url.PathEscape(jobID))
	if err := c.apiClient.DoMultipart(ctx, path, filename, media.Content, fields, &result); err != nil {
		return nil, wrapResourceError(err, ResourceDocument)
	}
	return &result, nil
}

// resolveFilename returns the explicit filename, or derives one from readers
// that expose a name (such as *os.File).
func resolveFilename(filename string, content io.Reader) (string, error) {
	if filename != "" {
		return filename, nil
	}
	if named, ok := content.(interface{ Name() string }); ok {
		if name := named.Name(); name != "" {
			return filepath.Base(name), nil
		}
	}
	return "", &ValidationError{Errors: []string{"filename must be provided if the reader has no name"}}
}

// queryValues encodes the listing configuration as URL query parameters.
func (cfg *jobListConfig) queryValues() url.Values {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(cfg.pageSize))
	query.Set("pageStartIndex", strconv.Itoa(cfg.pageStartIndex))

	if len(cfg.includes) > 0 {
		query.Set("includes", strings.Join(cfg.includes, ","))
	}
	if cfg.filterByDate != "" {
		query.Set("filterByDate", string(cfg.filterByDate))
	}
	if !cfg.startDate.IsZero() {
		query.Set("startDate", cfg.startDate.Format(dateOnly))
	}
	if !cfg.endDate.IsZero() {
		query.Set("endDate", cfg.endDate.Format(dateOnly))
	}
	if len(cfg.milestones) > 0 {
		query.Set("milestones", strings.Join(cfg.milestones, ","))
	}
	if cfg.sortBy != "" {
		query.Set("sortBy", string(cfg.sortBy))
	}
	if cfg.sortOrder != "" {
		query.Set("sortOrder", string(cfg.sortOrder))
	}
	if cfg.query != "" {
		query.Set("query", cfg.query)
	}
	return query
}
