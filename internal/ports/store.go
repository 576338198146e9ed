package ports

// SiteStore defines the filesystem operations the publisher needs to
// materialize the output tree.
type SiteStore interface {
	// EnsureEmptyDir creates path as an empty directory, removing any
	// previous contents.
	EnsureEmptyDir(path string) error

	// WriteDocument writes v as pretty-printed JSON to path, creating
	// parent directories as needed.
	WriteDocument(path string, v any) error

	// CopyTree recursively copies the directory tree at src to dst,
	// overwriting existing files.
	CopyTree(src, dst string) error

	// Exists reports whether path exists.
	Exists(path string) bool
}
