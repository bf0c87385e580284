package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func initTestStore(t *testing.T) *GormStore {
	t.Helper()
	s, err := Open(context.Background(), ":memory:", "")
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	return s
}

func TestGormStoreGetMissing(t *testing.T) {
	s := initTestStore(t)

	_, ok, err := s.Get(context.Background(), "cart")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGormStoreSetGet(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cart", []byte(`[{"quantity":2}]`)))

	got, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[{"quantity":2}]`), got)
}

func TestGormStoreSetOverwrites(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "orders", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "orders", []byte(`[{"id":"a"}]`)))

	got, ok, err := s.Get(ctx, "orders")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[{"id":"a"}]`), got)
}

func TestGormStoreDelete(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user", []byte(`{"id":"0"}`)))
	require.NoError(t, s.Delete(ctx, "user"))

	_, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	require.False(t, ok)

	// deleting an absent key is fine
	require.NoError(t, s.Delete(ctx, "user"))
}

func TestGormStoreKeysAreIndependent(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cart", []byte("a")))
	require.NoError(t, s.Set(ctx, "orders", []byte("b")))
	require.NoError(t, s.Delete(ctx, "cart"))

	got, ok, err := s.Get(ctx, "orders")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("b"), got)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "cart", []byte("payload")))
	got, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("payload"), got)

	// mutating the returned slice must not leak into the store
	got[0] = 'X'
	again, _, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), again)

	require.NoError(t, s.Delete(ctx, "cart"))
	_, ok, err = s.Get(ctx, "cart")
	require.NoError(t, err)
	require.False(t, ok)
}
