// Package localstore provides the disconnected record store: an ephemeral,
// thread-safe, in-memory implementation of storage.Store.
//
// Records are plain maps keyed by "<entityType>/<id>"; Update merges the
// payload into the stored record key by key under a single RWMutex (the
// write path here is record-granular and low-frequency, so lock contention
// is not a concern). State lives for the process and is never persisted —
// synchronization back to the platform is the platform's own concern, not
// this client's.
package localstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/formbridge/internal/storage"
)

// Store is the in-memory disconnected record store.
type Store struct {
	mu      sync.RWMutex
	records map[string]map[string]any
}

var _ storage.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{records: make(map[string]map[string]any)}
}

// Seed inserts a record wholesale, replacing any existing one. Intended for
// populating the store when the platform hands over its offline data set.
func (s *Store) Seed(entityType, id string, record map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[recordKey(entityType, id)] = cloneRecord(record)
}

// Retrieve implements storage.Store. The query argument is accepted for
// interface parity and ignored: local records are returned whole.
func (s *Store) Retrieve(ctx context.Context, entityType, id, query string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[recordKey(entityType, id)]
	if !ok {
		return nil, fmt.Errorf("no local record %s(%s)", entityType, id)
	}
	return cloneRecord(record), nil
}

// Update implements storage.Store, merging payload into the stored record.
// Updating a record that was never seeded creates it.
func (s *Store) Update(ctx context.Context, entityType, id string, payload map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := recordKey(entityType, id)
	record, ok := s.records[key]
	if !ok {
		record = make(map[string]any, len(payload))
		s.records[key] = record
	}
	for k, v := range payload {
		record[k] = v
	}
	return nil
}

func recordKey(entityType, id string) string {
	return entityType + "/" + id
}

// cloneRecord copies a record one level deep so callers never share the
// stored map.
func cloneRecord(record map[string]any) map[string]any {
	clone := make(map[string]any, len(record))
	for k, v := range record {
		clone[k] = v
	}
	return clone
}
