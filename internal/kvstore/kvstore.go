// Package kvstore is the persistence substrate: named opaque byte records
// under string keys. It knows nothing about the shapes serialized into it.
//
// The substrate is shared state with last-writer-wins semantics. Two
// processes pointed at the same file or database can race; there is no
// locking or versioning here.
package kvstore

import "context"

// Well-known record keys.
const (
	KeyCart   = "cart"
	KeyOrders = "orders"
	KeyUser   = "user"
	KeyUsers  = "users"
)

// Store is the key-value persistence contract. Get reports absence via
// the second return value rather than an error, so a missing record never
// looks like a failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
