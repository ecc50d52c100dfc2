// Package form declares the surface of the platform's form data model as
// this client consumes it: attribute and control lookup by name, value
// access, change notification and the UI-state mutators. The platform (or
// an in-memory stand-in, see package memform) provides the implementation.
package form

// RequiredLevel is an attribute's requirement level on the form.
type RequiredLevel string

const (
	RequiredLevelNone        RequiredLevel = "none"
	RequiredLevelRecommended RequiredLevel = "recommended"
	RequiredLevelRequired    RequiredLevel = "required"
)

// Form is the live form data model. Lookups return false when the form has
// no attribute or control with the given name.
type Form interface {
	GetAttribute(name string) (Attribute, bool)
	GetControl(name string) (Control, bool)
}

// Attribute is one data field on the form.
type Attribute interface {
	// Value returns the attribute's current value.
	Value() any
	// SetValue replaces the attribute's value and fires change listeners.
	SetValue(v any)
	// OnChange registers a listener invoked with the new value after every
	// SetValue.
	OnChange(fn func(v any))
	// SetRequiredLevel changes the attribute's requirement level.
	SetRequiredLevel(level RequiredLevel)
	// SetValid marks the attribute valid or invalid; message accompanies
	// the invalid state and is ignored otherwise.
	SetValid(valid bool, message string)
}

// Control is the visual counterpart of an attribute.
type Control interface {
	SetVisible(visible bool)
	SetDisabled(disabled bool)
	// SetNotification attaches a message to the control under the given id
	// and reports whether the platform accepted it.
	SetNotification(message, id string) bool
	// ClearNotification removes the message registered under id.
	ClearNotification(id string)
}
