// Package export produces the one-way order CSV the dashboard offered
// for download. The layout is a fixed literal contract (mixed quoting,
// summary and customer blocks), so the file is assembled by hand rather
// than through encoding/csv.
package export

import (
	"fmt"
	"strings"

	"github.com/jmallard/storefront/internal/models"
)

// OrderCSV renders one order: an item table, totals, then the customer
// information block.
func OrderCSV(order models.Order) string {
	var b strings.Builder

	b.WriteString("Product,Quantity,Price Each,Total Price\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "\"%s\",%d,%s,%s\n",
			item.Product.Title,
			item.Quantity,
			FormatCurrency(item.Product.Price),
			FormatCurrency(item.LineTotal()),
		)
	}

	fmt.Fprintf(&b, "\nSubtotal,,,\"%s\"\n", FormatCurrency(order.Subtotal))
	fmt.Fprintf(&b, "Delivery Fee,,,\"%s\"\n", FormatCurrency(order.DeliveryFee))
	fmt.Fprintf(&b, "Total,,,\"%s\"\n", FormatCurrency(order.Total))

	addr := order.CustomerDetails.DeliveryAddress
	b.WriteString("\nCustomer Information\n")
	fmt.Fprintf(&b, "Name:,\"%s\"\n", order.CustomerDetails.Name)
	fmt.Fprintf(&b, "Phone:,\"%s\"\n", order.CustomerDetails.Phone)
	fmt.Fprintf(&b, "Address:,\"%s\"\n", strings.Join([]string{
		addr.Line, addr.BuildingName, addr.StreetName, addr.Postcode,
	}, ", "))

	return b.String()
}
