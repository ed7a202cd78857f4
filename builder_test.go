package colecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestBuilderNewEntity$ . -count 1
func TestBuilderNewEntity(t *testing.T) {
	s, tc := newTestStore(t, 4)
	b := NewBuilder(s, tc.tag, tc.health, tc.tag)
	assert.Equal(t, []ComponentID{tc.health, tc.tag}, b.Components())

	e, ok := b.NewEntity()
	require.True(t, ok)
	assert.True(t, s.IsInUse(e))
	assert.True(t, s.HasComponent(e, tc.health))
	assert.True(t, s.HasComponent(e, tc.tag))
	assert.False(t, s.HasComponent(e, tc.pos))
}

// go test -run ^TestBuilderNewEntities$ . -count 1
func TestBuilderNewEntities(t *testing.T) {
	s, tc := newTestStore(t, 5)
	b := NewBuilder(s, tc.pos)

	assert.Equal(t, 3, b.NewEntities(3))
	dst := make([]Entity, 4)
	assert.Equal(t, 2, b.NewEntitiesInto(dst))
	assert.Equal(t, []Entity{3, 4}, dst[:2])
	assert.Equal(t, 5, s.ActiveCount(tc.pos))

	assert.Zero(t, b.NewEntities(1))
	_, ok := b.NewEntity()
	assert.False(t, ok)
}
