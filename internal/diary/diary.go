// Package diary holds the in-memory reflection of the diary store and
// enforces its invariants: the collection is always sorted by date
// descending, no two entries share an id, and every mutation persists the
// full collection before returning. Mutations addressed at ids that no
// longer exist are silent no-ops, because the owning entry may have been
// deleted concurrently (e.g. while a classification was in flight).
package diary

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/storage"
)

// Repository mediates all reads and writes of the diary collection.
type Repository struct {
	mu      sync.Mutex
	store   storage.Store
	entries []entry.Entry
}

// NewRepository loads the persisted collection into memory.
func NewRepository(store storage.Store) (*Repository, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading diary collection: %w", err)
	}
	sortByDateDesc(entries)
	return &Repository{store: store, entries: entries}, nil
}

// sortByDateDesc orders entries newest first. Ties keep their relative
// order so same-day entries stay in insertion order.
func sortByDateDesc(entries []entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

// persist sorts the working copy, saves it, and only then replaces the
// in-memory snapshot. A failed save leaves the previous snapshot intact.
func (r *Repository) persist(next []entry.Entry) error {
	sortByDateDesc(next)
	if err := r.store.Save(next); err != nil {
		return fmt.Errorf("saving diary collection: %w", err)
	}
	r.entries = next
	return nil
}

// snapshot returns a copy of the current collection for mutation.
func (r *Repository) snapshot() []entry.Entry {
	next := make([]entry.Entry, len(r.entries))
	copy(next, r.entries)
	return next
}

// Create adds a new entry with a fresh id, unlocked and unclassified.
func (r *Repository) Create(text string, date time.Time) (entry.Entry, error) {
	if err := entry.ValidateText(text); err != nil {
		return entry.Entry{}, err
	}
	id, err := entry.NewID()
	if err != nil {
		return entry.Entry{}, fmt.Errorf("generating entry ID: %w", err)
	}

	e := entry.Entry{
		ID:     id,
		Text:   strings.TrimSpace(text),
		Date:   date,
		Locked: false,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.persist(append(r.snapshot(), e)); err != nil {
		return entry.Entry{}, err
	}
	return e, nil
}

// Update replaces the text and date of the matching entry.
// Unknown ids are a no-op.
func (r *Repository) Update(id string, text string, date time.Time) error {
	if err := entry.ValidateText(text); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snapshot()
	for i := range next {
		if next[i].ID == id {
			next[i].Text = strings.TrimSpace(text)
			next[i].Date = date
			return r.persist(next)
		}
	}
	return nil
}

// ToggleLock flips the locked flag of the matching entry.
// Unknown ids are a no-op.
func (r *Repository) ToggleLock(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snapshot()
	for i := range next {
		if next[i].ID == id {
			next[i].Locked = !next[i].Locked
			return r.persist(next)
		}
	}
	return nil
}

// Delete removes the matching entry permanently. Unknown ids are a no-op.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snapshot()
	for i := range next {
		if next[i].ID == id {
			return r.persist(append(next[:i], next[i+1:]...))
		}
	}
	return nil
}

// SetEmotion sets only the emotion field of the matching entry. Unknown ids
// are a no-op: the entry may have been deleted while its classification was
// still in flight, and the stray completion must be discardable.
func (r *Repository) SetEmotion(id string, emotion entry.Emotion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snapshot()
	for i := range next {
		if next[i].ID == id {
			next[i].Emotion = emotion
			return r.persist(next)
		}
	}
	return nil
}

// Get returns the matching entry or storage.ErrNotFound.
func (r *Repository) Get(id string) (entry.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return entry.Entry{}, storage.ErrNotFound
}

// Entries returns a copy of the full collection in date-descending order.
func (r *Repository) Entries() []entry.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Search returns entries whose text contains query as a case-sensitive
// substring. The empty query matches everything. Order is preserved.
func (r *Repository) Search(query string) []entry.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if query == "" {
		return r.snapshot()
	}
	var results []entry.Entry
	for _, e := range r.entries {
		if strings.Contains(e.Text, query) {
			results = append(results, e)
		}
	}
	return results
}

// FilterByMonth keeps entries whose date falls in the same calendar month
// and year as ref, preserving order.
func FilterByMonth(entries []entry.Entry, ref time.Time) []entry.Entry {
	var results []entry.Entry
	for _, e := range entries {
		if e.SameMonth(ref) {
			results = append(results, e)
		}
	}
	return results
}
