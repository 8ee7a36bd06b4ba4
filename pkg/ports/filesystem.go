package ports

// FileSystem abstracts the file operations the pipeline needs: reading the
// input animation and writing rendered outputs.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it and any missing parent
	// directories.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// FileSize returns the size of a file in bytes.
	FileSize(path string) (int64, error)
}
