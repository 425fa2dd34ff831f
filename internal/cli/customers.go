package cli

import (
	"github.com/spf13/cobra"
)

func newCustomersCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List customers",
	}

	cmd.AddCommand(newCustomersListCmd(root))

	return cmd
}

func newCustomersListCmd(root *rootOpts) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			customers, err := client.ListCustomers(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customers)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum customers to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "records to skip")

	return cmd
}
