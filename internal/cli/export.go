package cli

import (
	"fmt"
	"os"

	"github.com/jmallard/storefront/internal/export"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <order-id>",
	Short: "Export one order as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		order, ok := a.Store.Order(args[0])
		if !ok {
			return fmt.Errorf("no order with id %s", args[0])
		}

		csv := export.OrderCSV(order)
		if exportOut == "" {
			fmt.Print(csv)
			return nil
		}
		if err := os.WriteFile(exportOut, []byte(csv), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		fmt.Printf("Wrote order #%s to %s\n", order.OrderNumber, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
