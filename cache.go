package colecs

// cacheState tags an idCache as needing recomputation or holding a valid
// snapshot.
type cacheState uint8

const (
	cacheStale cacheState = iota
	cacheValid
)

// idCache is the materialized list of active entity ids of one component.
// ids is only meaningful while state is cacheValid.
type idCache struct {
	ids   []Entity
	state cacheState
}

func (c *idCache) invalidate() {
	c.state = cacheStale
}

// EntityIDs returns the ascending ids of entities with component c active.
//
// The result is cached until c is next turned on or off, an entity holding
// it is freed, or the store is rebuilt. Recomputing allocates a new slice,
// so a previously returned slice is never modified by the store; callers
// must not modify it either. Use Iterate for allocation-free traversal.
//
// Parameters:
//   - c: The component to list.
//
// Returns:
//   - A snapshot of the active entity ids, shared with later calls until
//     the cache is invalidated.
func (s *Store) EntityIDs(c ComponentID) []Entity {
	cache := &s.caches[c]
	if cache.state == cacheValid {
		return cache.ids
	}
	bs := s.active[c]
	ids := make([]Entity, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		ids = append(ids, Entity(i))
	}
	cache.ids = ids
	cache.state = cacheValid
	return ids
}

// Iterate calls fn for each entity with component c active, in ascending
// order, reading the bitset directly. It neither allocates nor touches the
// id cache. Changes fn makes to c's activity at ids above the current one
// are observed by the ongoing walk.
func (s *Store) Iterate(c ComponentID, fn func(s *Store, e Entity)) {
	bs := s.active[c]
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		fn(s, Entity(i))
	}
}
