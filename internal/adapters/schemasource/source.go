package schemasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/utxo-foundation/entries-publisher/internal/config"
	"github.com/utxo-foundation/entries-publisher/internal/domain"
)

// Source implements the SchemaSource interface on a directory of JSON Schema
// definition files, laid out as <root>/<version>/<name>.json.
type Source struct {
	root   string
	logger *slog.Logger
}

// New creates a new schema Source, retrieving configuration from context.
func New(ctx context.Context) *Source {
	cfg := config.GetConfig(ctx)
	return NewWithRoot(cfg.Schema.Dir)
}

// NewWithRoot creates a new schema Source with an explicit root directory.
// This constructor is primarily intended for testing purposes.
func NewWithRoot(root string) *Source {
	return &Source{
		root:   root,
		logger: slog.Default().With("component", "schemasource"),
	}
}

// LoadSchemas reads every schema definition file for the given version,
// sorted ascending by schema name. A missing version directory is fatal.
func (s *Source) LoadSchemas(ctx context.Context, version string) ([]domain.Schema, error) {
	dir := filepath.Join(s.root, version)

	dirents, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingSpecFile, dir)
		}
		return nil, fmt.Errorf("failed to read schema directory %s: %w", dir, err)
	}

	var schemas []domain.Schema
	for _, dirent := range dirents {
		if dirent.IsDir() || !strings.HasSuffix(dirent.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, dirent.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
		}

		var definition map[string]any
		if err := json.Unmarshal(data, &definition); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedSpec, path, err)
		}

		schemas = append(schemas, domain.Schema{
			Name:       strings.TrimSuffix(dirent.Name(), ".json"),
			Definition: definition,
		})
	}

	sort.Slice(schemas, func(i, j int) bool {
		return schemas[i].Name < schemas[j].Name
	})

	s.logger.InfoContext(ctx, "loaded schema definitions",
		"version", version,
		"count", len(schemas),
	)

	return schemas, nil
}
