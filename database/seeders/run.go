// Package seeders provides a registry of database seed functions. Seeders
// are idempotent: each one checks for existing rows before inserting, so
// Run is safe on every boot.
package seeders

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(db *gorm.DB) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// Run executes every registered seeder in registration order.
// It stops on the first error.
func Run(db *gorm.DB) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		if err := e.fn(db); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
	}
	return nil
}
