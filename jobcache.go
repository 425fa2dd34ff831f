package acculynx

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Job cache defaults.
const (
	// DefaultRefreshInterval is how often a started cache re-walks all jobs.
	DefaultRefreshInterval = time.Hour
	// DefaultCacheConcurrency is the number of page fetches in flight
	// during a refresh.
	DefaultCacheConcurrency = 8
)

// JobCache keeps an in-memory index of all jobs, keyed by ID and job number,
// for fast lookups and substring search without hitting the API.
//
// A cache is populated with Refresh and optionally kept fresh with Start,
// which runs periodic refreshes in the background until Stop is called or
// the context is cancelled. All lookup methods are safe for concurrent use.
type JobCache struct {
	client *Client

	refreshInterval time.Duration
	pageSize        int
	concurrency     int
	onError         func(error)

	mu          sync.RWMutex
	byID        map[string]*Job
	byNumber    map[string]*Job
	lastRefresh time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// CacheOption configures a JobCache.
type CacheOption func(*JobCache)

// WithRefreshInterval sets how often a started cache refreshes. Default: 1 hour.
func WithRefreshInterval(interval time.Duration) CacheOption {
	return func(jc *JobCache) {
		jc.refreshInterval = interval
	}
}

// WithCachePageSize sets the page size used during refresh walks. Default: 25.
func WithCachePageSize(size int) CacheOption {
	return func(jc *JobCache) {
		jc.pageSize = size
	}
}

// WithCacheConcurrency sets the number of concurrent page fetches during a
// refresh. Default: 8.
func WithCacheConcurrency(n int) CacheOption {
	return func(jc *JobCache) {
		jc.concurrency = n
	}
}

// WithCacheErrorHandler sets a callback invoked when a background refresh fails.
func WithCacheErrorHandler(fn func(error)) CacheOption {
	return func(jc *JobCache) {
		jc.onError = fn
	}
}

// NewJobCache creates a job cache backed by the given client.
func NewJobCache(client *Client, opts ...CacheOption) *JobCache {
	jc := &JobCache{
		client:          client,
		refreshInterval: DefaultRefreshInterval,
		pageSize:        defaultPageSize,
		concurrency:     DefaultCacheConcurrency,
		byID:            make(map[string]*Job),
		byNumber:        make(map[string]*Job),
	}
	for _, opt := range opts {
		opt(jc)
	}
	if jc.pageSize <= 0 {
		jc.pageSize = defaultPageSize
	}
	if jc.concurrency <= 0 {
		jc.concurrency = 1
	}
	return jc
}

// Refresh walks all jobs and swaps the index in atomically. The previous
// index stays available to readers until the walk completes successfully.
func (jc *JobCache) Refresh(ctx context.Context) error {
	jobs, err := jc.fetchAll(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]*Job, len(jobs))
	byNumber := make(map[string]*Job, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
		if job.JobNumber != "" {
			byNumber[job.JobNumber] = job
		}
	}

	jc.mu.Lock()
	jc.byID = byID
	jc.byNumber = byNumber
	jc.lastRefresh = time.Now()
	jc.mu.Unlock()
	return nil
}

// fetchAll pages through every job, fetching concurrency pages per wave.
// A wave with no results means the listing is exhausted.
func (jc *JobCache) fetchAll(ctx context.Context) ([]*Job, error) {
	type pageResult struct {
		jobs []*Job
		err  error
	}

	var all []*Job
	start := 0

	for {
		results := make([]pageResult, jc.concurrency)
		var wg sync.WaitGroup
		for i := range jc.concurrency {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				jobs, err := jc.client.ListJobs(ctx,
					WithPageSize(jc.pageSize),
					WithPageStartIndex(start+i*jc.pageSize),
				)
				results[i] = pageResult{jobs: jobs, err: err}
			}(i)
		}
		wg.Wait()

		found := false
		for _, r := range results {
			if r.err != nil {
				return nil, r.err
			}
			if len(r.jobs) > 0 {
				all = append(all, r.jobs...)
				found = true
			}
		}
		if !found {
			return all, nil
		}

		start += jc.concurrency * jc.pageSize
		if start >= maxPageStartIndex {
			return all, nil
		}
	}
}

// Start begins a background refresh loop: one refresh immediately, then one
// per refresh interval. It returns immediately; failures are reported through
// the error handler, if any. Start is a no-op if the cache is already running.
func (jc *JobCache) Start(ctx context.Context) {
	jc.mu.Lock()
	if jc.cancel != nil {
		jc.mu.Unlock()
		return
	}
	ctx, jc.cancel = context.WithCancel(ctx)
	jc.done = make(chan struct{})
	done := jc.done
	jc.mu.Unlock()

	go func() {
		defer close(done)
		jc.refreshAndReport(ctx)

		ticker := time.NewTicker(jc.refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				jc.refreshAndReport(ctx)
			}
		}
	}()
}

func (jc *JobCache) refreshAndReport(ctx context.Context) {
	if err := jc.Refresh(ctx); err != nil && jc.onError != nil && ctx.Err() == nil {
		jc.onError(err)
	}
}

// Stop halts the background refresh loop and waits for it to exit.
// Stop is a no-op if the cache was never started.
func (jc *JobCache) Stop() {
	jc.mu.Lock()
	cancel, done := jc.cancel, jc.done
	jc.cancel, jc.done = nil, nil
	jc.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// GetByID returns a job by its ID.
func (jc *JobCache) GetByID(jobID string) (*Job, bool) {
	jc.mu.RLock()
	defer jc.mu.RUnlock()
	job, ok := jc.byID[jobID]
	return job, ok
}

// GetByNumber returns a job by its job number.
func (jc *JobCache) GetByNumber(jobNumber string) (*Job, bool) {
	jc.mu.RLock()
	defer jc.mu.RUnlock()
	job, ok := jc.byNumber[jobNumber]
	return job, ok
}

// Search returns jobs whose name or number contains the query,
// case-insensitively.
func (jc *JobCache) Search(query string) []*Job {
	query = strings.ToLower(query)

	jc.mu.RLock()
	defer jc.mu.RUnlock()

	var matches []*Job
	for _, job := range jc.byID {
		if strings.Contains(strings.ToLower(job.JobNumber), query) ||
			strings.Contains(strings.ToLower(job.JobName), query) {
			matches = append(matches, job)
		}
	}
	return matches
}

// Len returns the number of cached jobs.
func (jc *JobCache) Len() int {
	jc.mu.RLock()
	defer jc.mu.RUnlock()
	return len(jc.byID)
}

// LastRefresh returns when the cache was last refreshed successfully,
// or the zero time if it never was.
func (jc *JobCache) LastRefresh() time.Time {
	jc.mu.RLock()
	defer jc.mu.RUnlock()
	return jc.lastRefresh
}
