// Package memory provides an in-memory document sink for tests.
package memory

import (
	"fmt"
	"sync"

	"todoseed/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.DocumentSink = (*Store)(nil)

// Store keeps written documents in a map.
type Store struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// New returns an empty in-memory document store.
func New() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// Write stores a copy of data under name, replacing any previous document.
func (s *Store) Write(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("empty document name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.docs[name] = buf
	return nil
}

// Load returns the document stored under name.
func (s *Store) Load(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("document %s not found", name)
	}
	return data, nil
}
