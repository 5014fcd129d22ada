package scores

import (
	"path/filepath"
)

// Open creates the backend named by the configuration. For "sqlite" the
// path may be a directory, in which case the database lives at
// <path>/scores.db; anything else is treated as the file backend's state
// directory.
func Open(backend, path string) (Backend, error) {
	switch backend {
	case "sqlite":
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, "scores.db")
		}
		return OpenSQLite(path)
	default:
		return OpenFile(path)
	}
}
