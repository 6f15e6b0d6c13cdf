package store

import (
	"os"
	"path/filepath"
)

// SeedSource serves the read-only question sets shipped with the app,
// consulted when a certification has no stored bank yet.
type SeedSource interface {
	Fetch(certID string) ([]byte, error)
}

// DirSeedSource reads seeds from a directory of JSON files, one per
// certification id. The id is reduced to its base name so a crafted id
// cannot reach outside the directory.
type DirSeedSource struct {
	Dir string
}

func (s DirSeedSource) Fetch(certID string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, filepath.Base(certID)))
}
