// Package ports defines the outbound contracts of the application core:
// the order store, the courier client, and the dispatch scheduler.
// Adapters implement these interfaces; the application layer depends on
// nothing more concrete.
package ports

import (
	"context"

	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/core/domain/model/order"
)

// OrderStore defines the persistence contract for order records.
//
// The store is a durable keyed collection. Implementations must serialize all
// mutating operations (Put, Patch) in a single critical section end to end:
// persistence is a read-state/mutate/write-state cycle and concurrent writers
// would otherwise lose each other's updates. Get may race with an in-flight
// mutation but must observe either the state strictly before or strictly
// after it, never a partially written record.
type OrderStore interface {
	// Put inserts or overwrites the full record under its identifier.
	// Overwriting an existing id is not an error (last write wins).
	// Returns an error only on a persistence fault.
	Put(ctx context.Context, aggregate *order.Order) error

	// Patch merges the non-nil patch fields into the existing record.
	// Existing fields are never removed, only overwritten. Returns false
	// (without error) when no record exists under the id. When the patch
	// carries a dispatch-sequence fence that no longer matches the stored
	// record, the patch is a no-op and Patch still returns true: the record
	// exists, the outcome is merely stale.
	Patch(ctx context.Context, id kernel.UUID, patch order.Patch) (bool, error)

	// Get retrieves the record by its identifier.
	// Returns an error satisfying errors.Is(err, errs.ErrObjectNotFound)
	// when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountByStatus returns the number of stored orders per status.
	// Statuses with no orders may be absent from the map.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}
