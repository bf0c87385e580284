package cli

import (
	"fmt"
	"strconv"

	"github.com/jmallard/storefront/internal/export"
	"github.com/jmallard/storefront/internal/models"
	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Build and inspect the working cart",
}

var cartAddQty int

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Fetch a product from the catalog and add it to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		product, err := a.Catalog.Product(ctx, id)
		if err != nil {
			return fmt.Errorf("fetch product: %w", err)
		}

		return a.Store.AddToCart(ctx, models.OrderItem{
			Product:  *product,
			Quantity: cartAddQty,
		})
	},
}

var cartRmCmd = &cobra.Command{
	Use:   "rm <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Store.RemoveFromCart(ctx, id)
	},
}

var cartQtyCmd = &cobra.Command{
	Use:   "qty <product-id> <quantity>",
	Short: "Set the quantity for a product (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}

		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Store.UpdateQuantity(ctx, id, qty)
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Store.ClearCart(ctx)
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cart with totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		items := a.Store.Cart()
		if len(items) == 0 {
			fmt.Println("Cart is empty")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%4d  %-50s x%-3d %10s\n",
				item.Product.ID, item.Product.Title, item.Quantity,
				export.FormatCurrency(item.LineTotal()))
		}
		fmt.Printf("\n%d items, subtotal %s\n",
			a.Store.TotalItems(), export.FormatCurrency(a.Store.Subtotal()))
		return nil
	},
}

func init() {
	cartAddCmd.Flags().IntVar(&cartAddQty, "qty", 1, "quantity to add")

	cartCmd.AddCommand(cartAddCmd, cartRmCmd, cartQtyCmd, cartClearCmd, cartShowCmd)
	rootCmd.AddCommand(cartCmd)
}
