package sitestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	store := New()

	t.Run("pretty prints with two-space indent and trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "doc.json")

		err := store.WriteDocument(path, map[string]any{"id": "e1", "name": "Intro"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"id\": \"e1\",\n  \"name\": \"Intro\"\n}\n", string(data))
	})

	t.Run("does not escape html characters", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.json")

		err := store.WriteDocument(path, map[string]string{"url": "https://utxo.cz/?a=1&b=2"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "a=1&b=2")
		assert.NotContains(t, string(data), `\u0026`)
	})

	t.Run("unmarshalable value", func(t *testing.T) {
		err := store.WriteDocument(filepath.Join(t.TempDir(), "doc.json"), func() {})
		assert.Error(t, err)
	})
}

func TestEnsureEmptyDir(t *testing.T) {
	store := New()

	t.Run("creates missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "api")
		require.NoError(t, store.EnsureEmptyDir(path))
		assert.DirExists(t, path)
	})

	t.Run("removes previous contents", func(t *testing.T) {
		path := t.TempDir()
		stale := filepath.Join(path, "stale.json")
		require.NoError(t, os.WriteFile(stale, []byte("{}"), 0o644))

		require.NoError(t, store.EnsureEmptyDir(path))

		assert.DirExists(t, path)
		assert.NoFileExists(t, stale)
	})
}

func TestCopyTree(t *testing.T) {
	store := New()

	t.Run("copies nested trees and overwrites", func(t *testing.T) {
		src := t.TempDir()
		dst := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(src, "speakers"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(src, "speakers", "42-web.png"), []byte("new"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dst, "top.txt"), []byte("old"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(src, "top.txt"), []byte("fresh"), 0o644))

		require.NoError(t, store.CopyTree(src, dst))

		data, err := os.ReadFile(filepath.Join(dst, "speakers", "42-web.png"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		data, err = os.ReadFile(filepath.Join(dst, "top.txt"))
		require.NoError(t, err)
		assert.Equal(t, "fresh", string(data))
	})

	t.Run("missing source is an error", func(t *testing.T) {
		err := store.CopyTree(filepath.Join(t.TempDir(), "nope"), t.TempDir())
		assert.Error(t, err)
	})
}

func TestExists(t *testing.T) {
	store := New()
	dir := t.TempDir()

	assert.True(t, store.Exists(dir))
	assert.False(t, store.Exists(filepath.Join(dir, "nope")))
}
