package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultLogFile is the log path used while the painter owns the terminal.
func DefaultLogFile() (string, error) {
	return xdg.StateFile(filepath.Join("gitfiti", "gitfiti.log"))
}

// OpenFile opens path for appending, creating parent directories as needed.
// An empty path resolves to DefaultLogFile.
func OpenFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		var err error
		if path, err = DefaultLogFile(); err != nil {
			return nil, nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
