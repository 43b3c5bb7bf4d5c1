package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Open selects the concrete backend for the given name. Selection is an
// explicit startup decision; callers only ever see the Store interface.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case "file":
		return NewFileStore(filepath.Join(dataDir, "kv"))
	case "sqlite":
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create data dir: %w", err)
		}
		return OpenSQLite(filepath.Join(dataDir, "dayplan.db"))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
