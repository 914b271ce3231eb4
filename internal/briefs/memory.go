package briefs

import (
	"fmt"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store. Contents are lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	briefs []SavedBrief // newest first
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save puts the brief at the front, dropping any older copy with the same id.
func (m *MemoryStore) Save(b SavedBrief) error {
	if b.ID == "" {
		return fmt.Errorf("briefs: save: empty id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	updated := make([]SavedBrief, 0, len(m.briefs)+1)
	updated = append(updated, b)
	for _, existing := range m.briefs {
		if existing.ID != b.ID {
			updated = append(updated, existing)
		}
	}
	m.briefs = updated
	return nil
}

func (m *MemoryStore) List() ([]SavedBrief, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]SavedBrief{}, m.briefs...), nil
}

func (m *MemoryStore) Get(id string) (*SavedBrief, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.briefs {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, fmt.Errorf("briefs: get %s: %w", id, ErrNotFound)
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.briefs {
		if b.ID == id {
			m.briefs = append(m.briefs[:i:i], m.briefs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("briefs: delete %s: %w", id, ErrNotFound)
}

// Search returns briefs whose title or content contains every query word,
// case-insensitively. An empty query returns the most recent briefs.
func (m *MemoryStore) Search(query string, limit int) ([]SavedBrief, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	words := strings.Fields(strings.ToLower(query))
	results := []SavedBrief{}
	for _, b := range m.briefs {
		if limit > 0 && len(results) >= limit {
			break
		}
		haystack := strings.ToLower(b.Title + "\n" + b.Content)
		if matchesAll(haystack, words) {
			results = append(results, b)
		}
	}
	return results, nil
}

func matchesAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}
