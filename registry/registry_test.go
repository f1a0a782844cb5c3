package registry_test

import (
	"testing"

	"github.com/katalvlaran/auxil/attrmap"
	"github.com/katalvlaran/auxil/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codec interface{ Name() string }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

// TestRegistry_RegisterAndNew verifies the register → instantiate cycle.
func TestRegistry_RegisterAndNew(t *testing.T) {
	r := registry.New[codec]()
	require.NoError(t, r.Register("json", func() codec { return jsonCodec{} }))
	require.NoError(t, r.Register("yaml", func() codec { return yamlCodec{} }))

	c, err := r.New("json")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())

	assert.True(t, r.Has("yaml"))
	assert.Equal(t, 2, r.Len())
}

// TestRegistry_Duplicate verifies re-registration fails and keeps the
// original factory.
func TestRegistry_Duplicate(t *testing.T) {
	r := registry.New[codec]()
	require.NoError(t, r.Register("json", func() codec { return jsonCodec{} }))

	err := r.Register("json", func() codec { return yamlCodec{} })
	assert.ErrorIs(t, err, registry.ErrDuplicate)

	c, err := r.New("json")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name(), "original factory must survive a duplicate attempt")
}

// TestRegistry_Unknown verifies New of an unregistered name.
func TestRegistry_Unknown(t *testing.T) {
	r := registry.New[codec]()

	_, err := r.New("msgpack")
	assert.ErrorIs(t, err, registry.ErrUnknown)

	_, ok := r.Lookup("msgpack")
	assert.False(t, ok)
}

// TestRegistry_BadNames verifies names go through attrmap's key gate.
func TestRegistry_BadNames(t *testing.T) {
	r := registry.New[codec]()

	err := r.Register("not a name", func() codec { return jsonCodec{} })
	assert.ErrorIs(t, err, attrmap.ErrInvalidKey)

	err = r.Register("__init__", func() codec { return jsonCodec{} })
	assert.ErrorIs(t, err, attrmap.ErrReservedKey)
}

// TestRegistry_NamesSorted verifies deterministic listing.
func TestRegistry_NamesSorted(t *testing.T) {
	r := registry.New[int]()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(name, func() int { return 0 }))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}
