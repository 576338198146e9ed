package schemasource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utxo-foundation/entries-publisher/internal/domain"
)

func writeSchema(t *testing.T, root, version, name, content string) {
	t.Helper()
	dir := filepath.Join(root, version)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadSchemas(t *testing.T) {
	t.Run("sorted ascending by name", func(t *testing.T) {
		root := t.TempDir()
		writeSchema(t, root, "1", "speakers.json", `{"type": "array"}`)
		writeSchema(t, root, "1", "index.json", `{"type": "object"}`)
		writeSchema(t, root, "1", "notes.txt", "not a schema")

		schemas, err := NewWithRoot(root).LoadSchemas(context.Background(), "1")
		require.NoError(t, err)

		require.Len(t, schemas, 2)
		assert.Equal(t, "index", schemas[0].Name)
		assert.Equal(t, "object", schemas[0].Definition["type"])
		assert.Equal(t, "speakers", schemas[1].Name)
		assert.Equal(t, "array", schemas[1].Definition["type"])
	})

	t.Run("missing version directory is fatal", func(t *testing.T) {
		_, err := NewWithRoot(t.TempDir()).LoadSchemas(context.Background(), "1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingSpecFile)
	})

	t.Run("malformed schema is fatal", func(t *testing.T) {
		root := t.TempDir()
		writeSchema(t, root, "1", "broken.json", `{"type":`)

		_, err := NewWithRoot(root).LoadSchemas(context.Background(), "1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedSpec)
	})

	t.Run("empty version directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "1"), 0o755))

		schemas, err := NewWithRoot(root).LoadSchemas(context.Background(), "1")
		require.NoError(t, err)
		assert.Empty(t, schemas)
	})
}
