package cli

import (
	"github.com/spf13/cobra"
)

func newLeadsCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Inspect leads",
	}

	cmd.AddCommand(newLeadsHistoryCmd(root))

	return cmd
}

func newLeadsHistoryCmd(root *rootOpts) *cobra.Command {
	var includes []string

	cmd := &cobra.Command{
		Use:   "history <lead-id>",
		Short: "Show the action history of a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			history, err := client.GetLeadHistory(cmd.Context(), args[0], includes...)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), history)
		},
	}

	cmd.Flags().StringSliceVar(&includes, "includes", nil, "related resources to embed (for example createdBy)")

	return cmd
}
