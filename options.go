package acculynx

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultPageSize = 25

	// maxPageStartIndex is the highest start index the API accepts for job
	// listings. Pagination stops once this cap is reached.
	maxPageStartIndex = 100000
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retriesSet bool
	retryOn    []int
	logger     *log.Logger
}

// jobListConfig holds configuration for job listings.
type jobListConfig struct {
	pageSize       int
	pageStartIndex int
	includes       []string
	filterByDate   DateFilterType
	startDate      time.Time
	endDate        time.Time
	milestones     []string
	sortBy         DateFilterType
	sortOrder      SortOrder
	query          string
}

// Option configures the client.
type Option func(*clientConfig)

// JobListOption configures job listings.
type JobListOption func(*jobListConfig)

// WithBaseURL sets the API base URL. The default is the v2 production API.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for API calls. Zero disables
// retrying entirely.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
		c.retriesSet = true
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithLogger sets a logger for debug-level request logging.
func WithLogger(logger *log.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithPageSize sets the number of jobs per page. Default: 25.
func WithPageSize(size int) JobListOption {
	return func(c *jobListConfig) {
		c.pageSize = size
	}
}

// WithPageStartIndex sets the zero-based index of the first job to return.
func WithPageStartIndex(index int) JobListOption {
	return func(c *jobListConfig) {
		c.pageStartIndex = index
	}
}

// WithIncludes requests related resources to be embedded in the response
// (for example "contact" or "initialAppointment").
func WithIncludes(includes ...string) JobListOption {
	return func(c *jobListConfig) {
		c.includes = includes
	}
}

// WithFilterByDate selects which date field the start/end date range applies to.
func WithFilterByDate(filter DateFilterType) JobListOption {
	return func(c *jobListConfig) {
		c.filterByDate = filter
	}
}

// WithStartDate sets the inclusive lower bound of the date filter.
// Only the date portion is sent.
func WithStartDate(t time.Time) JobListOption {
	return func(c *jobListConfig) {
		c.startDate = t
	}
}

// WithEndDate sets the exclusive upper bound of the date filter.
// Only the date portion is sent.
func WithEndDate(t time.Time) JobListOption {
	return func(c *jobListConfig) {
		c.endDate = t
	}
}

// WithMilestones filters jobs to those currently at one of the given milestones.
func WithMilestones(milestones ...string) JobListOption {
	return func(c *jobListConfig) {
		c.milestones = milestones
	}
}

// WithSortBy selects the date field to sort by.
func WithSortBy(field DateFilterType) JobListOption {
	return func(c *jobListConfig) {
		c.sortBy = field
	}
}

// WithSortOrder sets the sort direction.
func WithSortOrder(order SortOrder) JobListOption {
	return func(c *jobListConfig) {
		c.sortOrder = order
	}
}

// WithQuery filters jobs by a free-text search (job name or number).
func WithQuery(query string) JobListOption {
	return func(c *jobListConfig) {
		c.query = query
	}
}
