package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmallard/storefront/internal/kvstore"
)

// hydrate loads one collection record. Absence and corruption both come
// back as an empty collection so a bad substrate can never stop startup.
func hydrate[T any](ctx context.Context, kv kvstore.Store, key string, log *slog.Logger) []T {
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		log.Error("hydrate failed, starting empty", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Error("hydrate failed, starting empty", "key", key, "error", err)
		return nil
	}
	return out
}

func (s *OrderStore) persistCart(ctx context.Context) error {
	return s.persist(ctx, kvstore.KeyCart, s.cart)
}

func (s *OrderStore) persistOrders(ctx context.Context) error {
	return s.persist(ctx, kvstore.KeyOrders, s.orders)
}

// persist re-serializes a whole collection. On failure the in-memory
// state keeps the already-applied change; the error is logged and handed
// to the caller.
func (s *OrderStore) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.log.Error("persist failed, in-memory state kept", "key", key, "error", err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
