package ports

import (
	"context"

	"github.com/utxo-foundation/entries-publisher/internal/domain"
)

// EntrySource defines the interface for loading entries from a source tree.
type EntrySource interface {
	// LoadEntries loads every entry found in the source tree. The returned
	// slice preserves discovery order, which is also publish order.
	LoadEntries(ctx context.Context) ([]*domain.Entry, error)
}
