package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jmallard/storefront/internal/kvstore"
	"github.com/jmallard/storefront/internal/models"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

type failingKV struct {
	*kvstore.MemoryStore
	fail bool
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.fail {
		return errors.New("quota exceeded")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func product(id int, title string, price float64) models.Product {
	return models.Product{ID: id, Title: title, Price: price, Category: "groceries"}
}

func newTestStore(t *testing.T) (*OrderStore, *kvstore.MemoryStore, *recordingNotifier) {
	t.Helper()
	kv := kvstore.NewMemory()
	n := &recordingNotifier{}
	return New(context.Background(), kv, n, nil), kv, n
}

func TestAddToCartDistinctProducts(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.AddToCart(ctx, models.OrderItem{
			Product:  product(i, fmt.Sprintf("item %d", i), 1.0),
			Quantity: i,
		}))
	}

	require.Len(t, s.Cart(), 5)
	require.Equal(t, 1+2+3+4+5, s.TotalItems())
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	apples := product(7, "Apples", 2.5)
	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: apples, Quantity: 2}))
	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: apples, Quantity: 3}))

	cart := s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, 5, cart[0].Quantity)
	require.Equal(t, []string{"Added Apples to cart", "Updated quantity of Apples"}, n.successes)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	s, _, _ := newTestStore(t)

	require.NoError(t, s.AddToCart(context.Background(), models.OrderItem{Product: product(1, "Tea", 3)}))
	require.Equal(t, 1, s.TotalItems())
}

func TestRemoveFromCart(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 1}))
	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(2, "Coffee", 4), Quantity: 1}))

	require.NoError(t, s.RemoveFromCart(ctx, 1))
	cart := s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, 2, cart[0].Product.ID)
	require.Contains(t, n.successes, "Removed Tea from cart")
}

func TestRemoveFromCartUnknownProductIsNoop(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 2}))
	before := s.Cart()

	require.NoError(t, s.RemoveFromCart(ctx, 99))
	require.Equal(t, before, s.Cart())
	require.Len(t, n.successes, 1) // only the add
}

func TestUpdateQuantity(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 2}))
	require.NoError(t, s.UpdateQuantity(ctx, 1, 7))

	cart := s.Cart()
	require.Equal(t, 7, cart[0].Quantity)
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		s, _, _ := newTestStore(t)
		ctx := context.Background()

		require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 2}))
		require.NoError(t, s.UpdateQuantity(ctx, 1, qty))
		require.Empty(t, s.Cart())
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 2}))
	require.NoError(t, s.UpdateQuantity(ctx, 42, 5))
	require.Equal(t, 2, s.Cart()[0].Quantity)
}

func TestClearCart(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 2}))
	require.NoError(t, s.ClearCart(ctx))
	require.Empty(t, s.Cart())
	require.Contains(t, n.successes, "Cart cleared")
}

func TestSubtotal(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	require.Zero(t, s.Subtotal())

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "A", 10.00), Quantity: 2}))
	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(2, "B", 5.50), Quantity: 1}))

	require.Equal(t, 25.50, s.Subtotal())
	require.Equal(t, 3, s.TotalItems())
}

func TestCreateOrderEmptyCart(t *testing.T) {
	s, _, n := newTestStore(t)

	order, err := s.CreateOrder(context.Background(), models.DefaultCustomerDetails())
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Nil(t, order)
	require.Empty(t, s.Orders())
	require.Empty(t, s.Cart())
	require.Equal(t, []string{"Cannot create an order with empty cart"}, n.errors)
}

func TestCreateOrder(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "ProductA", 10.00), Quantity: 2}))
	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(2, "ProductB", 5.50), Quantity: 1}))
	cartBefore := s.Cart()

	details := models.CustomerDetails{
		Name:      "Jo",
		Phone:     "123",
		BagOption: "No Bag",
		DeliveryAddress: models.DeliveryAddress{
			Line:     "1 Rd",
			Postcode: "AB1",
		},
	}
	order, err := s.CreateOrder(ctx, details)
	require.NoError(t, err)
	require.NotNil(t, order)

	require.Equal(t, 25.50, order.Subtotal)
	require.Zero(t, order.DeliveryFee)
	require.Equal(t, 25.50, order.Total)
	require.Equal(t, models.StatusPending, order.Status)
	require.Equal(t, details, order.CustomerDetails)
	require.Equal(t, cartBefore, order.Items)
	require.NotEmpty(t, order.ID)
	require.Regexp(t, `^[1-9]\d{5}$`, order.OrderNumber)
	require.False(t, order.Date.IsZero())

	require.Empty(t, s.Cart())
	require.Len(t, s.Orders(), 1)
	require.Contains(t, n.successes, fmt.Sprintf("Order #%s created successfully", order.OrderNumber))
}

func TestCreateOrderItemsAreFrozen(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 2}))
	order, err := s.CreateOrder(ctx, models.DefaultCustomerDetails())
	require.NoError(t, err)

	// later cart activity must not touch the snapshot
	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 5}))
	stored, ok := s.Order(order.ID)
	require.True(t, ok)
	require.Equal(t, 2, stored.Items[0].Quantity)
}

func TestUpdateOrder(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 1}))
	order, err := s.CreateOrder(ctx, models.DefaultCustomerDetails())
	require.NoError(t, err)

	updated := *order
	updated.Status = models.StatusOnTheWay
	require.NoError(t, s.UpdateOrder(ctx, updated))

	stored, ok := s.Order(order.ID)
	require.True(t, ok)
	require.Equal(t, models.StatusOnTheWay, stored.Status)
	require.Contains(t, n.successes, fmt.Sprintf("Order #%s updated", order.OrderNumber))
}

func TestUpdateOrderUnknownIDIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 1}))
	_, err := s.CreateOrder(ctx, models.DefaultCustomerDetails())
	require.NoError(t, err)
	before := s.Orders()

	ghost := models.Order{ID: "missing", OrderNumber: "000000", Status: models.StatusDelivered}
	require.NoError(t, s.UpdateOrder(ctx, ghost))
	require.Equal(t, before, s.Orders())
}

func TestUpdateOrderValidationHook(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.ValidateUpdate = func(old, updated models.Order) error {
		if !models.CanTransition(old.Status, updated.Status) {
			return fmt.Errorf("illegal transition %s -> %s", old.Status, updated.Status)
		}
		return nil
	}

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 1}))
	order, err := s.CreateOrder(ctx, models.DefaultCustomerDetails())
	require.NoError(t, err)

	// pending -> delivered skips on-the-way
	bad := *order
	bad.Status = models.StatusDelivered
	err = s.UpdateOrder(ctx, bad)
	require.ErrorIs(t, err, ErrValidation)

	stored, ok := s.Order(order.ID)
	require.True(t, ok)
	require.Equal(t, models.StatusPending, stored.Status)

	good := *order
	good.Status = models.StatusOnTheWay
	require.NoError(t, s.UpdateOrder(ctx, good))
}

func TestDeleteOrder(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 1}))
	order, err := s.CreateOrder(ctx, models.DefaultCustomerDetails())
	require.NoError(t, err)

	require.NoError(t, s.DeleteOrder(ctx, order.ID))
	require.Empty(t, s.Orders())
	require.Contains(t, n.successes, fmt.Sprintf("Order #%s deleted", order.OrderNumber))

	// deleting again is a silent no-op
	require.NoError(t, s.DeleteOrder(ctx, order.ID))
}

func TestHydrationRoundTrip(t *testing.T) {
	kv := kvstore.NewMemory()
	ctx := context.Background()

	first := New(ctx, kv, nil, nil)
	require.NoError(t, first.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3.25), Quantity: 2}))
	require.NoError(t, first.AddToCart(ctx, models.OrderItem{Product: product(2, "Coffee", 4.75), Quantity: 1}))
	order, err := first.CreateOrder(ctx, models.CustomerDetails{Name: "Jo", Phone: "123", BagOption: "No Bag"})
	require.NoError(t, err)
	require.NoError(t, first.AddToCart(ctx, models.OrderItem{Product: product(3, "Milk", 1.10), Quantity: 4}))

	// simulated restart over the same substrate
	second := New(ctx, kv, nil, nil)
	require.Equal(t, first.Cart(), second.Cart())

	orders := second.Orders()
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
	require.Equal(t, order.OrderNumber, orders[0].OrderNumber)
	require.Equal(t, order.Items, orders[0].Items)
	require.Equal(t, order.Subtotal, orders[0].Subtotal)
	require.True(t, order.Date.Equal(orders[0].Date))
}

func TestHydrationToleratesMalformedRecords(t *testing.T) {
	kv := kvstore.NewMemory()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, kvstore.KeyCart, []byte("{not json")))
	require.NoError(t, kv.Set(ctx, kvstore.KeyOrders, []byte("also not json")))

	s := New(ctx, kv, nil, nil)
	require.Empty(t, s.Cart())
	require.Empty(t, s.Orders())
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	kv := &failingKV{MemoryStore: kvstore.NewMemory()}
	ctx := context.Background()
	s := New(ctx, kv, nil, nil)

	kv.fail = true
	err := s.AddToCart(ctx, models.OrderItem{Product: product(1, "Tea", 3), Quantity: 2})
	require.Error(t, err)

	// the mutation stands even though the write failed
	require.Len(t, s.Cart(), 1)
	require.Equal(t, 2, s.TotalItems())
}
