package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"weather-term/models"
)

// FileName is the cache file name inside the temp directory
const FileName = "weather-term-forecast.json"

var (
	// ErrNotFound is returned when there is no usable cache record. A record
	// that decodes but fails validation is reported the same way.
	ErrNotFound = errors.New("cache: no forecast stored")

	// ErrStale marks a readable record that no longer passes IsValid
	ErrStale = errors.New("cache: stored forecast is stale")
)

// CorruptError is returned when the cache file exists but cannot be read or decoded
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("cache: corrupt record at %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// Store persists the last forecast document
type Store interface {
	Load() (*models.ForecastDocument, error)
	Store(doc *models.ForecastDocument) error
}

// DefaultPath returns the well-known cache location in the temp directory
func DefaultPath() string {
	return filepath.Join(os.TempDir(), FileName)
}

// FileStore keeps the forecast document as JSON in a single file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and validates the cached document
func (s *FileStore) Load() (*models.ForecastDocument, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}

	var doc models.ForecastDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	doc.Raw = b
	return &doc, nil
}

// Store overwrites the cache file with the document's raw response body, or
// its JSON encoding when there is none. The bytes go to a sibling temp file
// first and are renamed into place.
func (s *FileStore) Store(doc *models.ForecastDocument) error {
	b := doc.Raw
	if len(b) == 0 {
		var err error
		if b, err = json.Marshal(doc); err != nil {
			return fmt.Errorf("failed to encode forecast: %w", err)
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, FileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace cache: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store, used by tests and tools
type MemoryStore struct {
	doc   *models.ForecastDocument
	err   error
	saves int
	mutex sync.RWMutex
}

// NewMemoryStore creates a store holding doc (which may be nil)
func NewMemoryStore(doc *models.ForecastDocument) *MemoryStore {
	return &MemoryStore{doc: doc}
}

// FailWrites makes every following Store call return err
func (m *MemoryStore) FailWrites(err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.err = err
}

// Load returns the held document
func (m *MemoryStore) Load() (*models.ForecastDocument, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.doc == nil {
		return nil, ErrNotFound
	}
	return m.doc, nil
}

// Store replaces the held document
func (m *MemoryStore) Store(doc *models.ForecastDocument) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.err != nil {
		return m.err
	}
	m.doc = doc
	m.saves++
	return nil
}

// Saves returns how many successful Store calls were made
func (m *MemoryStore) Saves() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.saves
}

// Ensure both stores implement Store
var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
