package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	acculynx "github.com/acculynx/client-go"
)

// jobListOpts holds the flags for "jobs list".
type jobListOpts struct {
	pageSize   int
	limit      int
	milestones []string
	includes   []string
	sortBy     string
	descending bool
	query      string
}

func newJobsCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List, inspect, and search jobs",
	}

	cmd.AddCommand(newJobsListCmd(root))
	cmd.AddCommand(newJobsGetCmd(root))
	cmd.AddCommand(newJobsSearchCmd(root))

	return cmd
}

func newJobsListCmd(root *rootOpts) *cobra.Command {
	opts := jobListOpts{pageSize: 25, limit: 100}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobsList(cmd.Context(), root, &opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.pageSize, "page-size", opts.pageSize, "jobs per API page")
	cmd.Flags().IntVar(&opts.limit, "limit", opts.limit, "maximum jobs to print (0 for all)")
	cmd.Flags().StringSliceVar(&opts.milestones, "milestones", nil, "filter by current milestone")
	cmd.Flags().StringSliceVar(&opts.includes, "includes", nil, "related resources to embed")
	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "date field to sort by (CreatedDate, ModifiedDate, MilestoneDate)")
	cmd.Flags().BoolVar(&opts.descending, "desc", false, "sort descending")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "free-text search on job name or number")

	return cmd
}

func runJobsList(ctx context.Context, root *rootOpts, opts *jobListOpts, cmd *cobra.Command) error {
	client, err := root.newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	listOpts := []acculynx.JobListOption{
		acculynx.WithPageSize(opts.pageSize),
	}
	if len(opts.milestones) > 0 {
		listOpts = append(listOpts, acculynx.WithMilestones(opts.milestones...))
	}
	if len(opts.includes) > 0 {
		listOpts = append(listOpts, acculynx.WithIncludes(opts.includes...))
	}
	if opts.sortBy != "" {
		listOpts = append(listOpts, acculynx.WithSortBy(acculynx.DateFilterType(opts.sortBy)))
		order := acculynx.SortAscending
		if opts.descending {
			order = acculynx.SortDescending
		}
		listOpts = append(listOpts, acculynx.WithSortOrder(order))
	}
	if opts.query != "" {
		listOpts = append(listOpts, acculynx.WithQuery(opts.query))
	}

	var jobs []*acculynx.Job
	for job, err := range client.Jobs(ctx, listOpts...) {
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
		if opts.limit > 0 && len(jobs) >= opts.limit {
			break
		}
	}

	loggerFromContext(ctx).Debugf("fetched %d jobs", len(jobs))
	return printJSON(cmd.OutOrStdout(), jobs)
}

func newJobsGetCmd(root *rootOpts) *cobra.Command {
	var includes []string

	cmd := &cobra.Command{
		Use:   "get <job-id>",
		Short: "Show a single job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			job, err := client.GetJob(cmd.Context(), args[0], includes...)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), job)
		},
	}

	cmd.Flags().StringSliceVar(&includes, "includes", nil, "related resources to embed")

	return cmd
}

func newJobsSearchCmd(root *rootOpts) *cobra.Command {
	var pageSize, concurrency int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search jobs by name or number",
		Long: `Search walks the full job listing into an in-memory index and matches the
query against job names and numbers, case-insensitively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := root.newClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			cache := acculynx.NewJobCache(client,
				acculynx.WithCachePageSize(pageSize),
				acculynx.WithCacheConcurrency(concurrency),
			)
			if err := cache.Refresh(ctx); err != nil {
				return fmt.Errorf("build job index: %w", err)
			}
			loggerFromContext(ctx).Debugf("indexed %d jobs", cache.Len())

			return printJSON(cmd.OutOrStdout(), cache.Search(args[0]))
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 25, "jobs per API page")
	cmd.Flags().IntVar(&concurrency, "concurrency", acculynx.DefaultCacheConcurrency, "concurrent page fetches")

	return cmd
}
