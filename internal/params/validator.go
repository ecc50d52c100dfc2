package params

import (
	"strconv"
	"time"

	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/formbridge/internal/wiretype"
)

// Validator checks parameter values against a wire-type registry.
type Validator struct {
	registry *wiretype.Registry
}

// NewValidator returns a validator bound to the given registry.
func NewValidator(registry *wiretype.Registry) *Validator {
	return &Validator{registry: registry}
}

// Validate checks p's value against the registry entry for p.Kind and
// returns the wire descriptor the request should carry for it. For
// reference kinds the returned descriptor is a per-call copy specialized to
// the referenced entity type; the registry itself is never mutated.
func (v *Validator) Validate(p Parameter) (wiretype.Descriptor, error) {
	desc, err := v.registry.Lookup(p.Kind)
	if err != nil {
		return wiretype.Descriptor{}, err
	}

	switch {
	case desc.IsReference():
		ref, err := refValue(p)
		if err != nil {
			return wiretype.Descriptor{}, err
		}
		return v.registry.Specialize(desc, ref.EntityType), nil

	case p.Kind == wiretype.KindEntityCollection:
		if err := validateCollection(p); err != nil {
			return wiretype.Descriptor{}, err
		}
		return desc, nil

	case p.Kind == wiretype.KindDateTime:
		if _, ok := p.Value.(time.Time); !ok {
			return wiretype.Descriptor{}, &InvalidValueError{
				Name: p.Name, Kind: p.Kind, Value: p.Value,
				Reason: "value must be a time.Time",
			}
		}
		return desc, nil

	default:
		implied, err := gocty.ImpliedType(p.Value)
		if err != nil || !implied.Equals(desc.Runtime) {
			return wiretype.Descriptor{}, &InvalidValueError{
				Name: p.Name, Kind: p.Kind, Value: p.Value,
				Reason: "runtime type must be " + desc.Runtime.FriendlyName(),
			}
		}
		return desc, nil
	}
}

// refValue extracts the EntityRef from a reference-kind parameter value,
// accepting both the value and pointer forms.
func refValue(p Parameter) (EntityRef, error) {
	var ref EntityRef
	switch val := p.Value.(type) {
	case EntityRef:
		ref = val
	case *EntityRef:
		if val == nil {
			return EntityRef{}, &InvalidValueError{
				Name: p.Name, Kind: p.Kind, Value: p.Value,
				Reason: "reference must not be nil",
			}
		}
		ref = *val
	default:
		return EntityRef{}, &InvalidValueError{
			Name: p.Name, Kind: p.Kind, Value: p.Value,
			Reason: "value must be an entity reference",
		}
	}
	if ref.ID == "" || ref.EntityType == "" {
		return EntityRef{}, &InvalidValueError{
			Name: p.Name, Kind: p.Kind, Value: p.Value,
			Reason: "reference must carry both an id and an entity type",
		}
	}
	return ref, nil
}

// validateCollection checks an EntityCollection value: an array whose every
// element is a well-formed reference. One bad element fails the whole
// parameter.
func validateCollection(p Parameter) error {
	check := func(i int, ref EntityRef) error {
		if ref.ID == "" || ref.EntityType == "" {
			return &InvalidValueError{
				Name: p.Name, Kind: p.Kind, Value: p.Value,
				Reason: "collection element " + strconv.Itoa(i) + " must carry both an id and an entity type",
			}
		}
		return nil
	}

	switch val := p.Value.(type) {
	case []EntityRef:
		for i, ref := range val {
			if err := check(i, ref); err != nil {
				return err
			}
		}
		return nil
	case []*EntityRef:
		for i, ref := range val {
			if ref == nil {
				return &InvalidValueError{
					Name: p.Name, Kind: p.Kind, Value: p.Value,
					Reason: "collection element " + strconv.Itoa(i) + " must not be nil",
				}
			}
			if err := check(i, *ref); err != nil {
				return err
			}
		}
		return nil
	default:
		return &InvalidValueError{
			Name: p.Name, Kind: p.Kind, Value: p.Value,
			Reason: "value must be a slice of entity references",
		}
	}
}
