package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/storage"
)

const blobName = "diaries.json"

// Store implements storage.Store as a single JSON array blob on disk.
type Store struct {
	path string
}

// New creates a JSON file storage backend rooted at dataDir.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}
	return &Store{path: filepath.Join(dataDir, blobName)}, nil
}

// Close is a no-op for the JSON file backend.
func (s *Store) Close() error {
	return nil
}

// Load reads the diary collection. A missing blob yields an empty collection.
func (s *Store) Load() ([]entry.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entry.Entry{}, nil
		}
		return nil, fmt.Errorf("%w: reading blob: %v", storage.ErrStorage, err)
	}

	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parsing blob: %v", storage.ErrStorage, err)
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return entries, nil
}

// Save serializes the full collection and replaces the blob atomically.
func (s *Store) Save(entries []entry.Entry) error {
	if entries == nil {
		entries = []entry.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializing collection: %v", storage.ErrStorage, err)
	}
	return s.atomicWrite(data)
}

// atomicWrite writes data to a temp file then renames it over the blob path.
func (s *Store) atomicWrite(data []byte) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}
