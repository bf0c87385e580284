// Package store owns the cart and order collections for the session.
// Every mutation builds a whole new collection value, swaps it in, then
// writes the affected record(s) through the persistence substrate in the
// same step. A failed write is reported but never rolls back the applied
// in-memory change; there is no cross-record transaction underneath.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmallard/storefront/internal/kvstore"
	"github.com/jmallard/storefront/internal/models"
	"github.com/jmallard/storefront/internal/notify"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with nothing
	// in the cart.
	ErrEmptyCart = errors.New("cannot create order from empty cart")
	// ErrValidation wraps refused order updates from the validation hook.
	ErrValidation = errors.New("validation")
)

type OrderStore struct {
	mu     sync.Mutex
	cart   []models.OrderItem
	orders []models.Order

	kv     kvstore.Store
	notify notify.Notifier
	log    *slog.Logger

	// ValidateUpdate, when set, is consulted before UpdateOrder replaces
	// a record. Nil means any replacement is accepted, which matches the
	// historical behavior of the dashboard.
	ValidateUpdate func(old, updated models.Order) error
}

// New hydrates a store from the substrate. A missing or malformed record
// yields an empty collection; hydration problems are logged and never
// fatal.
func New(ctx context.Context, kv kvstore.Store, n notify.Notifier, log *slog.Logger) *OrderStore {
	if n == nil {
		n = notify.Discard{}
	}
	if log == nil {
		log = slog.Default()
	}
	s := &OrderStore{kv: kv, notify: n, log: log}
	s.cart = hydrate[models.OrderItem](ctx, kv, kvstore.KeyCart, log)
	s.orders = hydrate[models.Order](ctx, kv, kvstore.KeyOrders, log)
	return s
}

// AddToCart merges the item into the cart. An existing entry for the same
// product has its quantity incremented; otherwise the item is appended.
func (s *OrderStore) AddToCart(ctx context.Context, item models.OrderItem) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.OrderItem, len(s.cart))
	copy(updated, s.cart)

	merged := false
	for i := range updated {
		if updated[i].Product.ID == item.Product.ID {
			updated[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		updated = append(updated, item)
	}
	s.cart = updated

	if merged {
		s.notify.Success(fmt.Sprintf("Updated quantity of %s", item.Product.Title))
	} else {
		s.notify.Success(fmt.Sprintf("Added %s to cart", item.Product.Title))
	}
	return s.persistCart(ctx)
}

// RemoveFromCart drops the entry for the product if present. An unknown
// product id is a silent no-op.
func (s *OrderStore) RemoveFromCart(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.OrderItem, 0, len(s.cart))
	var removed *models.OrderItem
	for _, it := range s.cart {
		if it.Product.ID == productID {
			it := it
			removed = &it
			continue
		}
		updated = append(updated, it)
	}
	s.cart = updated

	if removed != nil {
		s.notify.Success(fmt.Sprintf("Removed %s from cart", removed.Product.Title))
	}
	return s.persistCart(ctx)
}

// UpdateQuantity replaces the quantity for the product. A quantity of
// zero or less removes the entry, exactly like RemoveFromCart.
func (s *OrderStore) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.OrderItem, len(s.cart))
	copy(updated, s.cart)
	for i := range updated {
		if updated[i].Product.ID == productID {
			updated[i].Quantity = quantity
			break
		}
	}
	s.cart = updated

	return s.persistCart(ctx)
}

func (s *OrderStore) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	s.notify.Success("Cart cleared")
	return s.persistCart(ctx)
}

// TotalItems sums quantities across the cart.
func (s *OrderStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.cart {
		total += it.Quantity
	}
	return total
}

// Subtotal sums price times quantity across the cart, using the prices
// captured when the items were added.
func (s *OrderStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.cart)
}

// CreateOrder snapshots the cart into a new pending order, appends it,
// then clears the cart. Both records are persisted. An empty cart refuses
// the whole operation: no order, no mutation.
func (s *OrderStore) CreateOrder(ctx context.Context, details models.CustomerDetails) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		s.notify.Error("Cannot create an order with empty cart")
		return nil, ErrEmptyCart
	}

	sub := subtotal(s.cart)
	const deliveryFee = 0 // free delivery

	items := make([]models.OrderItem, len(s.cart))
	copy(items, s.cart)

	order := models.Order{
		ID:              uuid.NewString(),
		OrderNumber:     generateOrderNumber(),
		Items:           items,
		CustomerDetails: details,
		Date:            time.Now().UTC(),
		Status:          models.StatusPending,
		Subtotal:        sub,
		DeliveryFee:     deliveryFee,
		Total:           sub + deliveryFee,
	}

	updated := make([]models.Order, len(s.orders), len(s.orders)+1)
	copy(updated, s.orders)
	s.orders = append(updated, order)
	s.cart = nil

	s.notify.Success(fmt.Sprintf("Order #%s created successfully", order.OrderNumber))

	if err := s.persistOrders(ctx); err != nil {
		return &order, err
	}
	return &order, s.persistCart(ctx)
}

// UpdateOrder replaces the stored order with the same id by full value.
// An unknown id is a silent no-op. When a validation hook is installed it
// can refuse the replacement before anything changes.
func (s *OrderStore) UpdateOrder(ctx context.Context, updated models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	next := make([]models.Order, len(s.orders))
	copy(next, s.orders)
	for i := range next {
		if next[i].ID != updated.ID {
			continue
		}
		if s.ValidateUpdate != nil {
			if err := s.ValidateUpdate(next[i], updated); err != nil {
				s.notify.Error(fmt.Sprintf("Order #%s update refused: %v", updated.OrderNumber, err))
				return fmt.Errorf("%w: %v", ErrValidation, err)
			}
		}
		next[i] = updated
		replaced = true
		break
	}
	s.orders = next

	if replaced {
		s.notify.Success(fmt.Sprintf("Order #%s updated", updated.OrderNumber))
	}
	return s.persistOrders(ctx)
}

// DeleteOrder removes the order with the id if present; no-op otherwise.
func (s *OrderStore) DeleteOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.Order, 0, len(s.orders))
	var deleted *models.Order
	for _, o := range s.orders {
		if o.ID == orderID {
			o := o
			deleted = &o
			continue
		}
		updated = append(updated, o)
	}
	s.orders = updated

	if deleted != nil {
		s.notify.Success(fmt.Sprintf("Order #%s deleted", deleted.OrderNumber))
	}
	return s.persistOrders(ctx)
}

// Cart returns a copy of the current cart.
func (s *OrderStore) Cart() []models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.OrderItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Orders returns a copy of the order history in creation order.
func (s *OrderStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Order looks up a single order by id.
func (s *OrderStore) Order(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

func subtotal(items []models.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// generateOrderNumber draws a 6-digit number for human display. It is not
// checked for collisions and must never be used as a key.
func generateOrderNumber() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
