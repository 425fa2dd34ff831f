// Package acculynx provides a Go client SDK for the AccuLynx API,
// the job and lead management platform for roofing contractors.
//
// The SDK wraps the v2 REST API (and the v1 lead-creation endpoint) with
// typed models, automatic retries with exponential backoff, and a lazy
// pagination iterator for job listings.
//
// Basic usage:
//
//	client, err := acculynx.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// List recent jobs
//	jobs, err := client.ListJobs(ctx,
//	    acculynx.WithSortBy(acculynx.FilterModifiedDate),
//	    acculynx.WithSortOrder(acculynx.SortDescending),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or walk every job lazily
//	for job, err := range client.Jobs(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(job.JobNumber, job.CurrentMilestone)
//	}
package acculynx
