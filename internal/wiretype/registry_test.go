package wiretype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestLookupKnownKinds(t *testing.T) {
	r := New("")

	cases := []struct {
		kind     Kind
		wireName string
		strct    Structural
		runtime  cty.Type
	}{
		{KindString, "Edm.String", Primitive, cty.String},
		{KindInteger, "Edm.Int32", Primitive, cty.Number},
		{KindBoolean, "Edm.Boolean", Primitive, cty.Bool},
		{KindDecimal, "Edm.Decimal", Primitive, cty.Number},
		{KindFloat, "Edm.Double", Primitive, cty.Number},
		{KindMoney, "Edm.Decimal", Primitive, cty.Number},
		{KindPicklist, "Edm.Int32", Primitive, cty.Number},
		{KindDateTime, "Edm.DateTimeOffset", Primitive, cty.String},
		{KindEntity, "mscrm.crmbaseentity", Reference, cty.EmptyObject},
		{KindEntityReference, "mscrm.crmbaseentity", Reference, cty.EmptyObject},
		{KindEntityCollection, "Collection(mscrm.crmbaseentity)", Collection, cty.EmptyObject},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			desc, err := r.Lookup(tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.wireName, desc.WireName)
			assert.Equal(t, tc.strct, desc.Struct)
			assert.True(t, desc.Runtime.Equals(tc.runtime))
		})
	}
}

func TestLookupUnknownKind(t *testing.T) {
	r := New("")
	_, err := r.Lookup(Kind("Blob"))
	require.ErrorIs(t, err, ErrUnsupportedKind)
	assert.Contains(t, err.Error(), "Blob")
}

func TestSpecializeReturnsCopy(t *testing.T) {
	r := New("")
	desc, err := r.Lookup(KindEntityReference)
	require.NoError(t, err)

	specialized := r.Specialize(desc, "account")
	assert.Equal(t, "mscrm.account", specialized.WireName)

	// The shared table must not observe the specialization.
	again, err := r.Lookup(KindEntityReference)
	require.NoError(t, err)
	assert.Equal(t, "mscrm.crmbaseentity", again.WireName)
	assert.Equal(t, "mscrm.crmbaseentity", desc.WireName)
}

func TestSpecializeIgnoresNonReferenceKinds(t *testing.T) {
	r := New("")
	desc, err := r.Lookup(KindEntityCollection)
	require.NoError(t, err)

	specialized := r.Specialize(desc, "account")
	assert.Equal(t, "Collection(mscrm.crmbaseentity)", specialized.WireName)

	intDesc, err := r.Lookup(KindInteger)
	require.NoError(t, err)
	assert.Equal(t, "Edm.Int32", r.Specialize(intDesc, "account").WireName)
}

func TestCustomNamespace(t *testing.T) {
	r := New("acme")
	desc, err := r.Lookup(KindEntity)
	require.NoError(t, err)
	assert.Equal(t, "acme.crmbaseentity", desc.WireName)
	assert.Equal(t, "acme.contact", r.Specialize(desc, "contact").WireName)
	assert.Equal(t, "acme", r.Namespace())
}
