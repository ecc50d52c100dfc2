// Package storage declares the record storage surface the client writes
// through. Two implementations exist: the connected Web API path (package
// webapi) and the disconnected local path (package localstore); the offline
// capability resolver picks between them per write.
package storage

import "context"

// Store retrieves and updates records of a given entity type by id.
type Store interface {
	// Retrieve fetches a record. query is passed to the backing endpoint
	// verbatim (e.g. an OData-style option string); it may be empty.
	Retrieve(ctx context.Context, entityType, id, query string) (map[string]any, error)
	// Update applies payload to a record. Absent keys are left untouched.
	Update(ctx context.Context, entityType, id string, payload map[string]any) error
}
