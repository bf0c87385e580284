package export

import (
	"testing"
	"time"

	"github.com/jmallard/storefront/internal/models"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	require.Equal(t, "£25.50", FormatCurrency(25.5))
	require.Equal(t, "£0.00", FormatCurrency(0))
	require.Equal(t, "£1,234.50", FormatCurrency(1234.5))
	require.Equal(t, "£10.00", FormatCurrency(10))
}

func TestFormatDateAndTime(t *testing.T) {
	ts := time.Date(2025, time.March, 14, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "14 Mar 2025", FormatDate(ts))
	require.Equal(t, "02:30 pm", FormatTime(ts))

	morning := time.Date(2025, time.March, 3, 9, 5, 0, 0, time.UTC)
	require.Equal(t, "3 Mar 2025", FormatDate(morning))
	require.Equal(t, "09:05 am", FormatTime(morning))
}

func TestOrderCSV(t *testing.T) {
	order := models.Order{
		ID:          "o-1",
		OrderNumber: "123456",
		Items: []models.OrderItem{
			{Product: models.Product{ID: 1, Title: "ProductA", Price: 10.00}, Quantity: 2},
			{Product: models.Product{ID: 2, Title: "ProductB", Price: 5.50}, Quantity: 1},
		},
		CustomerDetails: models.CustomerDetails{
			Name:      "Jo",
			Phone:     "123",
			BagOption: "No Bag",
			DeliveryAddress: models.DeliveryAddress{
				Line:     "1 Rd",
				Postcode: "AB1",
			},
		},
		Date:        time.Date(2025, time.March, 14, 14, 30, 0, 0, time.UTC),
		Status:      models.StatusPending,
		Subtotal:    25.50,
		DeliveryFee: 0,
		Total:       25.50,
	}

	want := `Product,Quantity,Price Each,Total Price
"ProductA",2,£10.00,£20.00
"ProductB",1,£5.50,£5.50

Subtotal,,,"£25.50"
Delivery Fee,,,"£0.00"
Total,,,"£25.50"

Customer Information
Name:,"Jo"
Phone:,"123"
Address:,"1 Rd, , , AB1"
`
	require.Equal(t, want, OrderCSV(order))
}
