package ports

import (
	"context"

	"github.com/utxo-foundation/entries-publisher/internal/domain"
)

// SchemaSource defines the interface for reading JSON Schema definitions.
type SchemaSource interface {
	// LoadSchemas reads every schema definition for the given version,
	// sorted ascending by schema name.
	LoadSchemas(ctx context.Context, version string) ([]domain.Schema, error)
}
