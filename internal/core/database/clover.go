package database

import (
	"fmt"

	"github.com/ostafen/clover"
)

// Open opens (or creates) the CloverDB document store at path.
func Open(path string) (*clover.DB, error) {
	db, err := clover.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store at %q: %w", path, err)
	}
	return db, nil
}

// EnsureCollections creates any of the named collections that do not exist yet.
func EnsureCollections(db *clover.DB, names ...string) error {
	for _, name := range names {
		exists, err := db.HasCollection(name)
		if err != nil {
			return fmt.Errorf("failed to check collection %q: %w", name, err)
		}
		if exists {
			continue
		}
		if err := db.CreateCollection(name); err != nil {
			return fmt.Errorf("failed to create collection %q: %w", name, err)
		}
	}
	return nil
}
