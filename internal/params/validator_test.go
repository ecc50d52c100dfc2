package params

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/formbridge/internal/wiretype"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(wiretype.New(""))
}

func TestValidatePrimitives(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		name  string
		kind  wiretype.Kind
		value any
		ok    bool
	}{
		{"integer accepts number", wiretype.KindInteger, 5, true},
		{"integer accepts int64", wiretype.KindInteger, int64(5), true},
		{"integer rejects string", wiretype.KindInteger, "5", false},
		{"integer rejects bool", wiretype.KindInteger, true, false},
		{"string accepts string", wiretype.KindString, "hello", true},
		{"string rejects number", wiretype.KindString, 7, false},
		{"boolean accepts bool", wiretype.KindBoolean, false, true},
		{"boolean rejects string", wiretype.KindBoolean, "true", false},
		{"decimal accepts float", wiretype.KindDecimal, 1.25, true},
		{"float accepts float", wiretype.KindFloat, 3.5, true},
		{"money accepts float", wiretype.KindMoney, 10.0, true},
		{"money rejects string", wiretype.KindMoney, "10", false},
		{"picklist accepts int", wiretype.KindPicklist, 2, true},
		{"picklist rejects string", wiretype.KindPicklist, "2", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(Parameter{Name: "p", Kind: tc.kind, Value: tc.value})
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "p", invalid.Name)
			assert.Equal(t, tc.kind, invalid.Kind)
		})
	}
}

func TestValidateDateTime(t *testing.T) {
	v := newValidator(t)

	desc, err := v.Validate(Parameter{Name: "when", Kind: wiretype.KindDateTime, Value: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "Edm.DateTimeOffset", desc.WireName)

	// Strings and numbers are not dates, even when they look like one.
	_, err = v.Validate(Parameter{Name: "when", Kind: wiretype.KindDateTime, Value: "2026-01-02T15:04:05Z"})
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)

	_, err = v.Validate(Parameter{Name: "when", Kind: wiretype.KindDateTime, Value: 1760000000})
	require.ErrorAs(t, err, &invalid)
}

func TestValidateReference(t *testing.T) {
	v := newValidator(t)

	desc, err := v.Validate(Parameter{
		Name:  "target",
		Kind:  wiretype.KindEntityReference,
		Value: EntityRef{ID: "5f2c", EntityType: "account"},
	})
	require.NoError(t, err)
	assert.Equal(t, "mscrm.account", desc.WireName)
	assert.Equal(t, wiretype.Reference, desc.Struct)

	ptrDesc, err := v.Validate(Parameter{
		Name:  "target",
		Kind:  wiretype.KindEntity,
		Value: &EntityRef{ID: "5f2c", EntityType: "contact"},
	})
	require.NoError(t, err)
	assert.Equal(t, "mscrm.contact", ptrDesc.WireName)
}

func TestValidateReferenceRejectsMalformedValues(t *testing.T) {
	v := newValidator(t)

	bad := []any{
		nil,
		(*EntityRef)(nil),
		EntityRef{EntityType: "account"},
		EntityRef{ID: "5f2c"},
		map[string]any{"id": "5f2c", "entityType": "account"},
		"5f2c:account",
	}
	for _, value := range bad {
		_, err := v.Validate(Parameter{Name: "target", Kind: wiretype.KindEntityReference, Value: value})
		var invalid *InvalidValueError
		assert.ErrorAs(t, err, &invalid, "value %v must be rejected", value)
	}
}

func TestValidateCollection(t *testing.T) {
	v := newValidator(t)

	desc, err := v.Validate(Parameter{
		Name: "targets",
		Kind: wiretype.KindEntityCollection,
		Value: []EntityRef{
			{ID: "1", EntityType: "account"},
			{ID: "2", EntityType: "contact"},
		},
	})
	require.NoError(t, err)
	// The collection wire name stays generic regardless of element types.
	assert.Equal(t, "Collection(mscrm.crmbaseentity)", desc.WireName)
	assert.Equal(t, wiretype.Collection, desc.Struct)

	// An empty collection is still a collection.
	_, err = v.Validate(Parameter{Name: "targets", Kind: wiretype.KindEntityCollection, Value: []EntityRef{}})
	assert.NoError(t, err)
}

func TestValidateCollectionIsAllOrNothing(t *testing.T) {
	v := newValidator(t)

	var invalid *InvalidValueError

	_, err := v.Validate(Parameter{
		Name: "targets",
		Kind: wiretype.KindEntityCollection,
		Value: []EntityRef{
			{ID: "1", EntityType: "account"},
			{ID: "2"}, // malformed element fails the whole parameter
		},
	})
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "element 1")

	_, err = v.Validate(Parameter{
		Name:  "targets",
		Kind:  wiretype.KindEntityCollection,
		Value: []*EntityRef{{ID: "1", EntityType: "account"}, nil},
	})
	require.ErrorAs(t, err, &invalid)

	_, err = v.Validate(Parameter{Name: "targets", Kind: wiretype.KindEntityCollection, Value: "not a slice"})
	require.ErrorAs(t, err, &invalid)
}

func TestValidateUnknownKind(t *testing.T) {
	v := newValidator(t)
	_, err := v.Validate(Parameter{Name: "p", Kind: wiretype.Kind("Blob"), Value: 1})
	assert.True(t, errors.Is(err, wiretype.ErrUnsupportedKind))
}

func TestValidateDoesNotMutateRegistry(t *testing.T) {
	registry := wiretype.New("")
	v := NewValidator(registry)

	_, err := v.Validate(Parameter{
		Name:  "target",
		Kind:  wiretype.KindEntityReference,
		Value: EntityRef{ID: "5f2c", EntityType: "account"},
	})
	require.NoError(t, err)

	desc, err := registry.Lookup(wiretype.KindEntityReference)
	require.NoError(t, err)
	assert.Equal(t, "mscrm.crmbaseentity", desc.WireName)
}
