// Package cli implements the acculynx command-line interface.
//
// The CLI wraps the client library with commands for listing and inspecting
// jobs, searching the job index, reading lead history, and listing customers.
// Output is JSON on stdout; logs go to stderr.
//
// The API key is resolved from --api-key, the ACCULYNX_API_KEY environment
// variable (a .env file is honored), or ~/.config/acculynx/config.toml, in
// that order.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	acculynx "github.com/acculynx/client-go"
)

var version = "dev"

// SetVersion sets the version string displayed by --version. Typically
// injected via ldflags at build time.
func SetVersion(v string) {
	version = v
}

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	apiKey  string
	baseURL string
	verbose bool
}

// newClient builds a library client from the resolved configuration.
func (o *rootOpts) newClient(ctx context.Context) (*acculynx.Client, error) {
	apiKey, baseURL, err := resolveConfig(o.apiKey, o.baseURL)
	if err != nil {
		return nil, err
	}

	opts := []acculynx.Option{
		acculynx.WithLogger(loggerFromContext(ctx)),
	}
	if baseURL != "" {
		opts = append(opts, acculynx.WithBaseURL(baseURL))
	}
	return acculynx.New(apiKey, opts...)
}

// Execute runs the acculynx CLI.
func Execute(ctx context.Context) error {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "acculynx",
		Short:        "acculynx interacts with the AccuLynx API",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "AccuLynx API key (overrides env and config file)")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API base URL (overrides env and config file)")

	root.AddCommand(newJobsCmd(opts))
	root.AddCommand(newLeadsCmd(opts))
	root.AddCommand(newCustomersCmd(opts))

	return root.ExecuteContext(ctx)
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
