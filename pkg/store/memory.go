package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps clouds in a map. Saved clouds are copied on the way in
// and out, so callers cannot mutate stored state.
type MemoryStore struct {
	mu     sync.RWMutex
	clouds map[string]Cloud
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{clouds: make(map[string]Cloud)}
}

func (s *MemoryStore) Save(_ context.Context, c *Cloud) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clouds[c.ID] = clone(*c)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Cloud, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clouds[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := clone(c)
	return &out, nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]Summary, error) {
	s.mu.RLock()
	out := make([]Summary, 0, len(s.clouds))
	for _, c := range s.clouds {
		out = append(out, c.Summarize())
	}
	s.mu.RUnlock()

	sortNewestFirst(out)
	return out[:min(len(out), listLimit(limit))], nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clouds[id]; !ok {
		return ErrNotFound
	}
	delete(s.clouds, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func clone(c Cloud) Cloud {
	c.Words = slices.Clone(c.Words)
	c.Layout.Words = slices.Clone(c.Layout.Words)
	c.Layout.Config.Palette = slices.Clone(c.Layout.Config.Palette)
	return c
}

// sortNewestFirst orders by creation time, newest first, then by ID.
func sortNewestFirst(s []Summary) {
	slices.SortFunc(s, func(a, b Summary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

var _ Store = (*MemoryStore)(nil)
