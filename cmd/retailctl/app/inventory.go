package app

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/retailkit/retailkit/retail"
)

// newInventoryCommand creates the inventory command group.
func newInventoryCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inspect stock levels",
	}
	cmd.AddCommand(newInventoryLevelsCommand(opts))
	return cmd
}

func newInventoryLevelsCommand(opts *GlobalOptions) *cobra.Command {
	var outlet string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.Client()
			if err != nil {
				return err
			}
			defer client.Close()

			levels, err := client.Inventory.Levels(cmd.Context(), &retail.ListParams{OutletID: outlet})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tOUTLET\tON HAND\tCOMMITTED\tAVAILABLE")
			for _, l := range levels {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
					l.ProductID, l.OutletID, l.OnHand, l.Committed, l.Available)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&outlet, "outlet", "", "filter by outlet ID")
	return cmd
}
