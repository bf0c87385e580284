package cli

import (
	"fmt"
	"strconv"

	"github.com/jmallard/storefront/internal/export"
	"github.com/jmallard/storefront/internal/models"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the remote product catalog",
}

var productsCategory string

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var products []models.Product
		if productsCategory != "" {
			products, err = a.Catalog.ProductsByCategory(ctx, productsCategory)
		} else {
			products, err = a.Catalog.Products(ctx)
		}
		if err != nil {
			return fmt.Errorf("fetch products: %w", err)
		}

		for _, p := range products {
			fmt.Printf("%4d  %-60s %10s  %s\n",
				p.ID, p.Title, export.FormatCurrency(p.Price), p.Category)
		}
		return nil
	},
}

var productsShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Print one product in full",
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

		p, err := a.Catalog.Product(ctx, id)
		if err != nil {
			return fmt.Errorf("fetch product: %w", err)
		}

		fmt.Printf("%s\n\n%s\n\n", p.Title, p.Description)
		fmt.Printf("Price:    %s\n", export.FormatCurrency(p.Price))
		fmt.Printf("Category: %s\n", p.Category)
		fmt.Printf("Rating:   %.1f (%d reviews)\n", p.Rating.Rate, p.Rating.Count)
		return nil
	},
}

var productsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		categories, err := a.Catalog.Categories(ctx)
		if err != nil {
			return fmt.Errorf("fetch categories: %w", err)
		}
		for _, c := range categories {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	productsListCmd.Flags().StringVar(&productsCategory, "category", "", "filter by category")

	productsCmd.AddCommand(productsListCmd, productsShowCmd, productsCategoriesCmd)
	rootCmd.AddCommand(productsCmd)
}
