//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	acculynx "github.com/acculynx/client-go"
	"github.com/joho/godotenv"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("ACCULYNX_API_KEY")
	baseURL = os.Getenv("ACCULYNX_BASE_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: ACCULYNX_API_KEY not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Exit(m.Run())
}

func newClient(t *testing.T) *acculynx.Client {
	t.Helper()

	opts := []acculynx.Option{
		acculynx.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, acculynx.WithBaseURL(baseURL))
	}

	client, err := acculynx.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestIntegration_ListJobs(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	jobs, err := client.ListJobs(ctx, acculynx.WithPageSize(5))
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}

	t.Logf("Fetched %d job(s)", len(jobs))
	for _, job := range jobs {
		if job.ID == "" {
			t.Error("job has empty ID")
		}
	}
}

func TestIntegration_JobsIterator(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	count := 0
	for job, err := range client.Jobs(ctx, acculynx.WithPageSize(25)) {
		if err != nil {
			t.Fatalf("Jobs() error = %v", err)
		}
		if job.ID == "" {
			t.Error("job has empty ID")
		}
		count++
		if count >= 100 {
			break
		}
	}

	t.Logf("Walked %d job(s)", count)
}

func TestIntegration_GetJob(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	jobs, err := client.ListJobs(ctx, acculynx.WithPageSize(1))
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(jobs) == 0 {
		t.Skip("account has no jobs")
	}

	job, err := client.GetJob(ctx, jobs[0].ID, "contact")
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if job.ID != jobs[0].ID {
		t.Errorf("GetJob() ID = %s, want %s", job.ID, jobs[0].ID)
	}
}

func TestIntegration_ListCustomers(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	customers, err := client.ListCustomers(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListCustomers() error = %v", err)
	}

	t.Logf("Fetched %d customer(s)", len(customers))
}

func TestIntegration_JobCache(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	cache := acculynx.NewJobCache(client, acculynx.WithCachePageSize(25))
	if err := cache.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	t.Logf("Cached %d job(s)", cache.Len())
	if cache.LastRefresh().IsZero() {
		t.Error("LastRefresh() is zero after refresh")
	}
}
