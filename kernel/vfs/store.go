package vfs

import (
	"fmt"
	"unicode/utf8"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/names"
)

const (
	// MaxFiles is the number of slots in a store.
	MaxFiles = 64

	// MaxName bounds file names; a stored name holds at most MaxName-1 bytes.
	MaxName = 64

	// MaxContent bounds file contents; stored content holds at most
	// MaxContent-1 bytes.
	MaxContent = 2048
)

// FileInfo describes one stored file.
type FileInfo struct {
	Slot int
	Name string
	Len  int
}

type slot struct {
	name    string
	content string
	used    bool
}

// Store is a virtual file store. It is not safe for concurrent use.
type Store struct {
	slots [MaxFiles]slot
}

// New returns an empty store.
func New() *Store { return &Store{} }

// Reset removes every file.
func (s *Store) Reset() {
	s.slots = [MaxFiles]slot{}
}

// Find returns the slot holding name. The name is normalised the way Create
// stores it, so a name that Create trimmed or cut still finds its file.
func (s *Store) Find(name string) (int, bool) {
	key := names.Clamp(name, MaxName-1)
	if key == "" {
		return -1, false
	}
	for i := range s.slots {
		if s.slots[i].used && names.Equal(s.slots[i].name, key) {
			return i, true
		}
	}
	return -1, false
}

// Create adds an empty file in the first free slot and returns the slot.
func (s *Store) Create(name string) (int, error) {
	name = names.Clamp(name, MaxName-1)
	if name == "" {
		return -1, ErrInvalidName
	}
	if _, ok := s.Find(name); ok {
		return -1, fmt.Errorf("%w: %s", ErrExists, name)
	}
	for i := range s.slots {
		if !s.slots[i].used {
			s.slots[i] = slot{name: name, used: true}
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w (limit %d)", ErrFull, MaxFiles)
}

// Write replaces the content of an existing file. Content beyond
// MaxContent-1 bytes is dropped.
func (s *Store) Write(name, content string) error {
	i, ok := s.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s.slots[i].content = truncate(content, MaxContent-1)
	return nil
}

// Read returns the content of a file.
func (s *Store) Read(name string) (string, error) {
	i, ok := s.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s.slots[i].content, nil
}

// Delete removes a file, freeing its slot.
func (s *Store) Delete(name string) error {
	i, ok := s.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s.slots[i] = slot{}
	return nil
}

// List returns the stored files in slot order.
func (s *Store) List() []FileInfo {
	var out []FileInfo
	for i, sl := range s.slots {
		if sl.used {
			out = append(out, FileInfo{Slot: i, Name: sl.name, Len: len(sl.content)})
		}
	}
	return out
}

// Len returns the number of stored files.
func (s *Store) Len() int {
	n := 0
	for _, sl := range s.slots {
		if sl.used {
			n++
		}
	}
	return n
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
