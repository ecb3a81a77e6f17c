package storage

import (
	"errors"

	"github.com/mongle/monglectl/internal/entry"
)

// Sentinel errors for storage and repository operations.
var (
	ErrNotFound = errors.New("entry not found")
	ErrStorage  = errors.New("storage error")
)

// Store persists the diary collection as a single unit. Every Save replaces
// the previous state; there are no incremental writes.
type Store interface {
	// Load returns the persisted collection. Missing prior data is not an
	// error: it yields an empty collection.
	Load() ([]entry.Entry, error)

	// Save serializes the full collection and atomically replaces the
	// previous blob. A failed Save must be reported, never swallowed.
	Save(entries []entry.Entry) error

	// Close releases any underlying resources.
	Close() error
}
