package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned when no record has the requested ID
	ErrNotFound = errors.New("record not found")
	// ErrIncomplete is returned when a record does not cover every angle slot
	ErrIncomplete = errors.New("diagram is not fully measured")
)

const fileVersion = "1.0"

// fileData is the JSON layout of the store file
type fileData struct {
	Version  string   `json:"version"`
	NextID   int      `json:"nextId"`
	Diagrams []Record `json:"diagrams"`
}

// Store is a set of records backed by one JSON file. It is safe for
// concurrent use.
type Store struct {
	path string

	mu      sync.RWMutex
	records map[int]Record
	nextID  int
}

// Open loads the store at path. A missing file yields an empty store; the
// file is created on the first write.
func Open(path string) (*Store, error) {
	s := &Store{path: path, records: map[int]Record{}, nextID: 1}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file, discarding the in-memory state
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.mu.Lock()
		s.records = map[int]Record{}
		s.nextID = 1
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}

	var fd fileData
	if err := json.Unmarshal(data, &fd); err != nil {
		return fmt.Errorf("failed to parse store %s: %w", s.path, err)
	}

	records := make(map[int]Record, len(fd.Diagrams))
	next := fd.NextID
	for _, r := range fd.Diagrams {
		if _, dup := records[r.ID]; dup {
			return fmt.Errorf("store %s: duplicate id %d", s.path, r.ID)
		}
		records[r.ID] = r
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	if next < 1 {
		next = 1
	}

	s.mu.Lock()
	s.records = records
	s.nextID = next
	s.mu.Unlock()
	return nil
}

// List returns all records ordered by ID
func (s *Store) List() []Record {
	return s.Search("")
}

// Search returns the records whose name, owner, state or city contains
// text, ignoring case, ordered by ID
func (s *Store) Search(text string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if r.Matches(text) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the record with the given ID
func (s *Store) Get(id int) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return r, nil
}

// Add validates r, assigns it the next ID and writes the store. The stored
// record is returned.
func (s *Store) Add(r Record) (Record, error) {
	if err := r.Validate(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextID
	r.Measurements = r.Sorted()
	s.records[r.ID] = r
	s.nextID++

	if err := s.writeLocked(); err != nil {
		delete(s.records, r.ID)
		s.nextID--
		return Record{}, err
	}
	return r, nil
}

// Delete removes the records with the given IDs. Unknown IDs fail the whole
// call without changes.
func (s *Store) Delete(ids ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.records[id]; !ok {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
	}

	removed := make([]Record, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.records[id]; ok {
			removed = append(removed, r)
			delete(s.records, id)
		}
	}

	if err := s.writeLocked(); err != nil {
		for _, r := range removed {
			s.records[r.ID] = r
		}
		return err
	}
	return nil
}

// writeLocked saves the store through a temporary file so readers never see
// a partial file. The caller holds the write lock.
func (s *Store) writeLocked() error {
	fd := fileData{
		Version:  fileVersion,
		NextID:   s.nextID,
		Diagrams: make([]Record, 0, len(s.records)),
	}
	for _, r := range s.records {
		fd.Diagrams = append(fd.Diagrams, r)
	}
	sort.Slice(fd.Diagrams, func(i, j int) bool { return fd.Diagrams[i].ID < fd.Diagrams[j].ID })

	data, err := json.MarshalIndent(fd, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}
