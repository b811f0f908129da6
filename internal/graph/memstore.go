package graph

import (
	"context"
	"sync"

	"github.com/dusk-indust/pedigree/internal/model"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
// Used in tests and as the sink when no database export is requested.
type MemStore struct {
	mu        sync.RWMutex
	profiles  map[string]model.Profile
	families  map[string]model.Family
	relations []Relation
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{
		profiles: make(map[string]model.Profile),
		families: make(map[string]model.Family),
	}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddProfile stores a profile keyed by its id.
func (m *MemStore) AddProfile(_ context.Context, p model.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID] = p
	return nil
}

// AddFamily stores a family keyed by its id.
func (m *MemStore) AddFamily(_ context.Context, f model.Family) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.families[f.ID] = f
	return nil
}

// AddRelation appends a relation to the internal slice.
func (m *MemStore) AddRelation(_ context.Context, rel Relation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.relations = append(m.relations, rel)
	return nil
}

// Relations returns a copy of all stored relations, optionally filtered by
// kind. An empty kind returns everything.
func (m *MemStore) Relations(kind RelationKindEdge) []Relation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Relation
	for _, r := range m.relations {
		if kind == "" || r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Stats returns counts of persisted records.
func (m *MemStore) Stats(_ context.Context) (*StoreStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &StoreStats{
		ProfileCount:  len(m.profiles),
		FamilyCount:   len(m.families),
		RelationCount: len(m.relations),
	}, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}
