package colecs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestRegistryRegister$ . -count 1
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	pos, err := r.Register("pos", Float32, 3)
	require.NoError(t, err)
	alive, err := r.Register("alive", Uint8, 1)
	require.NoError(t, err)

	assert.Equal(t, ComponentID(0), pos)
	assert.Equal(t, ComponentID(1), alive)
	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Has(alive))
	assert.False(t, r.Has(2))

	id, ok := r.ID("alive")
	assert.True(t, ok)
	assert.Equal(t, alive, id)
	_, ok = r.ID("missing")
	assert.False(t, ok)

	name, ok := r.Name(pos)
	assert.True(t, ok)
	assert.Equal(t, "pos", name)
	_, ok = r.Name(7)
	assert.False(t, ok)

	assert.Equal(t, 3, r.SlotCount(pos))
	assert.Equal(t, Float32, r.ElementType(pos))
	assert.Equal(t, Uint8, r.ElementType(alive))
}

// go test -run ^TestRegistryRejects$ . -count 1
func TestRegistryRejects(t *testing.T) {
	tests := []struct {
		name  string
		kind  ElementType
		slots int
		err   error
	}{
		{"invalid kind", InvalidElement, 1, ErrInvalidElementType},
		{"kind out of range", ElementType(200), 1, ErrInvalidElementType},
		{"zero slots", Float32, 0, ErrInvalidSlotCount},
		{"negative slots", Float32, -2, ErrInvalidSlotCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			_, err := r.Register("c", tt.kind, tt.slots)
			assert.ErrorIs(t, err, tt.err)
			assert.Zero(t, r.Len())
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Register("c", Float32, 1)
		require.NoError(t, err)
		_, err = r.Register("c", Int64, 2)
		assert.ErrorIs(t, err, ErrDuplicateComponentName)
		assert.Equal(t, 1, r.Len())
		assert.Equal(t, Float32, r.ElementType(0))
	})

	t.Run("too many", func(t *testing.T) {
		r := NewRegistry()
		for i := range MaxComponentTypes {
			_, err := r.Register(fmt.Sprintf("c%d", i), Uint8, 1)
			require.NoError(t, err)
		}
		_, err := r.Register("overflow", Uint8, 1)
		assert.ErrorIs(t, err, ErrTooManyComponents)
	})
}

// go test -run ^TestRegistryZeroValue$ . -count 1
func TestRegistryZeroValue(t *testing.T) {
	var r Registry
	id, err := r.Register("x", Int16, 1)
	require.NoError(t, err)
	assert.Equal(t, ComponentID(0), id)
}
