package cli

import (
	"fmt"
	"sort"

	"github.com/jmallard/storefront/internal/export"
	"github.com/jmallard/storefront/internal/models"
	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Create and manage orders",
}

var orderDetails struct {
	name     string
	phone    string
	bag      string
	line     string
	building string
	street   string
	postcode string
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Check out the cart into a new order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		details := models.DefaultCustomerDetails()
		details.Name = orderDetails.name
		details.Phone = orderDetails.phone
		if orderDetails.bag != "" {
			details.BagOption = orderDetails.bag
		}
		details.DeliveryAddress = models.DeliveryAddress{
			Line:         orderDetails.line,
			BuildingName: orderDetails.building,
			StreetName:   orderDetails.street,
			Postcode:     orderDetails.postcode,
		}

		order, err := a.Store.CreateOrder(ctx, details)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s (#%s) total %s\n",
			order.ID, order.OrderNumber, export.FormatCurrency(order.Total))
		return nil
	},
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List order history, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		orders := a.Store.Orders()
		if len(orders) == 0 {
			fmt.Println("No orders yet")
			return nil
		}

		sort.Slice(orders, func(i, j int) bool {
			return orders[i].Date.After(orders[j].Date)
		})
		for _, o := range orders {
			fmt.Printf("#%s  %s %s  %-10s %10s  %s\n",
				o.OrderNumber,
				export.FormatDate(o.Date), export.FormatTime(o.Date),
				o.Status,
				export.FormatCurrency(o.Total),
				o.ID)
		}
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Print one order in full",
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

		fmt.Printf("Order #%s (%s)\n", order.OrderNumber, order.Status)
		fmt.Printf("Placed %s at %s\n\n",
			export.FormatDate(order.Date), export.FormatTime(order.Date))
		for _, item := range order.Items {
			fmt.Printf("  %-50s x%-3d %10s\n",
				item.Product.Title, item.Quantity,
				export.FormatCurrency(item.LineTotal()))
		}
		fmt.Printf("\nSubtotal     %s\n", export.FormatCurrency(order.Subtotal))
		fmt.Printf("Delivery Fee %s\n", export.FormatCurrency(order.DeliveryFee))
		fmt.Printf("Total        %s\n", export.FormatCurrency(order.Total))
		fmt.Printf("\nCustomer: %s, %s\n", order.CustomerDetails.Name, order.CustomerDetails.Phone)
		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Set an order's status (pending, on-the-way, delivered, cancelled)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := models.OrderStatus(args[1])
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", args[1])
		}

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
		order.Status = status
		return a.Store.UpdateOrder(ctx, order)
	},
}

var ordersRmCmd = &cobra.Command{
	Use:   "rm <order-id>",
	Short: "Delete an order from history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Store.DeleteOrder(ctx, args[0])
	},
}

func init() {
	f := ordersCreateCmd.Flags()
	f.StringVar(&orderDetails.name, "name", "", "customer name")
	f.StringVar(&orderDetails.phone, "phone", "", "customer phone")
	f.StringVar(&orderDetails.bag, "bag", "", "bag option")
	f.StringVar(&orderDetails.line, "line", "", "address line")
	f.StringVar(&orderDetails.building, "building", "", "building name")
	f.StringVar(&orderDetails.street, "street", "", "street name")
	f.StringVar(&orderDetails.postcode, "postcode", "", "postcode")
	_ = ordersCreateCmd.MarkFlagRequired("name")
	_ = ordersCreateCmd.MarkFlagRequired("phone")

	ordersCmd.AddCommand(ordersCreateCmd, ordersListCmd, ordersShowCmd, ordersStatusCmd, ordersRmCmd)
	rootCmd.AddCommand(ordersCmd)
}
