package models

import "time"

// Product mirrors the catalog payload. The store never mutates products,
// it only keeps value copies of them inside cart and order items.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// OrderItem is a product plus a quantity. Quantity is always >= 1 inside
// a cart; an item that would drop to zero is removed instead.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i OrderItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

type DeliveryAddress struct {
	Line         string `json:"line"`
	BuildingName string `json:"building_name"`
	StreetName   string `json:"street_name"`
	Postcode     string `json:"postcode"`
}

type CustomerDetails struct {
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	BagOption       string          `json:"bag_option"`
	DeliveryAddress DeliveryAddress `json:"delivery_address"`
}

// DefaultCustomerDetails returns the blank checkout form.
func DefaultCustomerDetails() CustomerDetails {
	return CustomerDetails{BagOption: "No Bag"}
}

// Order is immutable once created. Subtotal is frozen at creation time and
// never recomputed, even if catalog prices move afterwards.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Items           []OrderItem     `json:"items"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	Date            time.Time       `json:"date"`
	Status          OrderStatus     `json:"status"`
	Subtotal        float64         `json:"subtotal"`
	DeliveryFee     float64         `json:"delivery_fee"`
	Total           float64         `json:"total"`
}
