package params

import (
	"fmt"

	"github.com/vk/formbridge/internal/wiretype"
)

// Parameter is one named, kinded value for a remote operation. It is built
// by the caller, consumed once per invocation and never persisted.
type Parameter struct {
	Name  string
	Kind  wiretype.Kind
	Value any
}

// EntityRef identifies one record: its type and its id. Name is an optional
// display name and plays no part in validation.
type EntityRef struct {
	ID         string `json:"id"`
	EntityType string `json:"entityType"`
	Name       string `json:"name,omitempty"`
}

// InvalidValueError reports a parameter whose value does not match the
// runtime shape its kind demands.
type InvalidValueError struct {
	Name   string
	Kind   wiretype.Kind
	Value  any
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("parameter %q has invalid value %v for kind %s: %s", e.Name, e.Value, e.Kind, e.Reason)
}
