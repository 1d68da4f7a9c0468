// Package migrations contains the schema migration files. RegisterAll wires
// them into the migration registry; the server and the CLI both call it
// before running the migration runner.
package migrations

import "sync"

var registerOnce sync.Once

// RegisterAll registers every migration exactly once, in schema order.
func RegisterAll() {
	registerOnce.Do(func() {
		registerInitial()
	})
}
