package palette

import (
	"errors"
	"sort"
)

// ErrEntryNotFound indicates the palette entry does not exist.
var ErrEntryNotFound = errors.New("palette entry not found")

// Store is an in-memory palette with CRUD operations. Single-threaded by
// contract, like the rest of the editor.
type Store struct {
	entries map[string]Entry
}

// NewStore creates an empty palette store.
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// DefaultStore returns a store seeded with the stock whiteboard palette.
func DefaultStore() *Store {
	s := NewStore()
	stock := []struct{ name, css string }{
		{"red", "#ff4136"},
		{"orange", "#ff851b"},
		{"yellow", "#ffdc00"},
		{"green", "#2ecc40"},
		{"blue", "#0074d9"},
		{"violet", "#b10dc9"},
		{"black", "#111111"},
		{"white", "#ffffff"},
	}
	for _, c := range stock {
		entry, err := NewEntry(c.name, c.css)
		if err != nil {
			// Stock values are static hex literals; a parse failure is
			// a programming error.
			panic(err)
		}
		s.entries[entry.ID] = entry
	}
	return s
}

// Add inserts an entry.
func (s *Store) Add(e Entry) {
	s.entries[e.ID] = e
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (Entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	return e, nil
}

// Update replaces an existing entry.
func (s *Store) Update(e Entry) error {
	if _, ok := s.entries[e.ID]; !ok {
		return ErrEntryNotFound
	}
	s.entries[e.ID] = e
	return nil
}

// Remove deletes the entry with the given id.
func (s *Store) Remove(id string) error {
	if _, ok := s.entries[id]; !ok {
		return ErrEntryNotFound
	}
	delete(s.entries, id)
	return nil
}

// List returns all entries sorted by name.
func (s *Store) List() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindByName returns the first entry with the given name.
func (s *Store) FindByName(name string) (Entry, error) {
	for _, e := range s.List() {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, ErrEntryNotFound
}
