package ports

import (
	"context"

	"github.com/utxo-foundation/entries-publisher/internal/domain"
)

// SearchIndex defines the interface for the optional search export backend.
type SearchIndex interface {
	// BulkIndex indexes the given records into the named index
	BulkIndex(ctx context.Context, indexName string, records []domain.SearchRecord) error

	// DeleteIndex removes an index; a missing index is not an error
	DeleteIndex(ctx context.Context, indexName string) error

	// CreateIndex creates an index with the given mapping
	CreateIndex(ctx context.Context, indexName string, mapping string) error

	// IndexExists checks if an index exists
	IndexExists(ctx context.Context, indexName string) (bool, error)
}
