package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores each key as a JSON document in a state directory.
type FileBackend struct {
	dir string
}

// OpenFile creates a file backend rooted at the given directory, expanding
// a leading ~ and creating the directory if needed.
func OpenFile(dir string) (*FileBackend, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

// Get reads the value for a key. A missing key is (nil, nil).
func (b *FileBackend) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: cannot read %s: %w", key, err)
	}
	return data, nil
}

// Put writes the value for a key atomically (write to temp, then rename).
func (b *FileBackend) Put(key string, value []byte) error {
	tmp := b.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return fmt.Errorf("scores: cannot write %s: %w", key, err)
	}
	if err := os.Rename(tmp, b.path(key)); err != nil {
		return fmt.Errorf("scores: cannot replace %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// expandHome resolves a leading ~ to the user's home directory. Only the
// bare "~" and "~/..." forms are expanded; "~user" paths are an error
// rather than silently becoming $HOME/user.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return "", fmt.Errorf("scores: unsupported path %q: ~user expansion is not supported", path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("scores: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

var _ Backend = (*FileBackend)(nil)
