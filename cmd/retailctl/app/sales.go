package app

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/retailkit/retailkit/retail"
)

// newSalesCommand creates the sales command group.
func newSalesCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List and inspect sales",
	}
	cmd.AddCommand(newSalesListCommand(opts), newSalesGetCommand(opts))
	return cmd
}

func newSalesListCommand(opts *GlobalOptions) *cobra.Command {
	var status, outlet string
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sales",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.Client()
			if err != nil {
				return err
			}
			defer client.Close()

			sales, err := client.Sales.List(cmd.Context(), &retail.ListParams{
				Page:     page,
				PageSize: pageSize,
				Status:   status,
				OutletID: outlet,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tTOTAL\tCREATED")
			for _, s := range sales {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n",
					s.ID, s.Number, s.Status, s.TotalPrice, s.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by sale status")
	cmd.Flags().StringVar(&outlet, "outlet", "", "filter by outlet ID")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")
	return cmd
}

func newSalesGetCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one sale as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.Client()
			if err != nil {
				return err
			}
			defer client.Close()

			sale, err := client.Sales.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sale)
		},
	}
}
