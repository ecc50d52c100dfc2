package wiretype

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// DefaultNamespace is the wire namespace used when the client configuration
// does not override it. Reference wire type names are formed as
// "<namespace>.<entityType>".
const DefaultNamespace = "mscrm"

// Kind identifies a parameter kind as the caller names it.
type Kind string

// The full set of kinds the registry knows about.
const (
	KindString           Kind = "String"
	KindInteger          Kind = "Integer"
	KindBoolean          Kind = "Boolean"
	KindDecimal          Kind = "Decimal"
	KindFloat            Kind = "Float"
	KindMoney            Kind = "Money"
	KindPicklist         Kind = "Picklist"
	KindDateTime         Kind = "DateTime"
	KindEntity           Kind = "Entity"
	KindEntityReference  Kind = "EntityReference"
	KindEntityCollection Kind = "EntityCollection"
)

// Structural is the wire protocol's structural code for a parameter value.
type Structural int

const (
	// Primitive marks a single scalar value.
	Primitive Structural = 1
	// Collection marks an array of references.
	Collection Structural = 4
	// Reference marks a single entity reference.
	Reference Structural = 5
)

// Descriptor is the wire metadata for one parameter kind. Runtime is the
// cty type a value of this kind presents at runtime; for reference and
// collection kinds it is cty.EmptyObject as a stand-in for "object-shaped",
// and the validator applies structural checks instead.
type Descriptor struct {
	WireName  string
	Struct    Structural
	Runtime   cty.Type
	reference bool
}

// IsReference reports whether the descriptor belongs to a specializable
// reference kind (Entity, EntityReference).
func (d Descriptor) IsReference() bool {
	return d.reference
}

// ErrUnsupportedKind is returned by Lookup for kinds absent from the
// registry.
var ErrUnsupportedKind = errors.New("unsupported parameter kind")

// Registry maps parameter kinds to their wire descriptors. Construct it
// with New; the table never changes afterwards.
type Registry struct {
	namespace string
	table     map[Kind]Descriptor
}

// New builds a registry for the given wire namespace. An empty namespace
// selects DefaultNamespace.
func New(namespace string) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	base := namespace + ".crmbaseentity"
	return &Registry{
		namespace: namespace,
		table: map[Kind]Descriptor{
			KindString:           {WireName: "Edm.String", Struct: Primitive, Runtime: cty.String},
			KindInteger:          {WireName: "Edm.Int32", Struct: Primitive, Runtime: cty.Number},
			KindBoolean:          {WireName: "Edm.Boolean", Struct: Primitive, Runtime: cty.Bool},
			KindDecimal:          {WireName: "Edm.Decimal", Struct: Primitive, Runtime: cty.Number},
			KindFloat:            {WireName: "Edm.Double", Struct: Primitive, Runtime: cty.Number},
			KindMoney:            {WireName: "Edm.Decimal", Struct: Primitive, Runtime: cty.Number},
			KindPicklist:         {WireName: "Edm.Int32", Struct: Primitive, Runtime: cty.Number},
			KindDateTime:         {WireName: "Edm.DateTimeOffset", Struct: Primitive, Runtime: cty.String},
			KindEntity:           {WireName: base, Struct: Reference, Runtime: cty.EmptyObject, reference: true},
			KindEntityReference:  {WireName: base, Struct: Reference, Runtime: cty.EmptyObject, reference: true},
			KindEntityCollection: {WireName: "Collection(" + base + ")", Struct: Collection, Runtime: cty.EmptyObject},
		},
	}
}

// Namespace returns the wire namespace the registry was built with.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Lookup returns a copy of the descriptor for kind. The copy is the
// caller's to specialize; the shared table is never handed out by
// reference.
func (r *Registry) Lookup(kind Kind) (Descriptor, error) {
	desc, ok := r.table[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	return desc, nil
}

// Specialize returns a copy of desc whose wire name carries the concrete
// entity type, e.g. "mscrm.account". Non-reference descriptors are
// returned unchanged: the collection wire name is fixed by the protocol.
func (r *Registry) Specialize(desc Descriptor, entityType string) Descriptor {
	if !desc.reference || entityType == "" {
		return desc
	}
	desc.WireName = r.namespace + "." + entityType
	return desc
}
