package ports

import "context"

// Publisher defines the two operations of the pipeline.
// This is implemented by the app layer PublisherService.
type Publisher interface {
	// Load populates the in-memory entries from the source tree
	Load(ctx context.Context) error

	// Build materializes the full publish tree under outDir. It requires a
	// prior successful Load.
	Build(ctx context.Context, outDir string) error
}
