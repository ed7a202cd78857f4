package colecs

import "go.uber.org/zap"

// AllocateEntity marks the lowest free entity id in use and returns it. The
// search starts at the allocation cursor, which `FreeEntity` rewinds, so a
// freed id is handed out again before any higher one.
//
// Running out of ids is an expected condition, not an error: it is logged at
// debug level and published as a `CapacityExhaustedEvent` when a bus is set.
//
// Returns:
//   - The allocated `Entity` and true, or `NoEntity` and false when every id
//     is taken.
func (s *Store) AllocateEntity() (Entity, bool) {
	id, ok := s.inUse.NextClear(uint(s.lowestFree))
	if !ok {
		s.lowestFree = s.capacity
		s.exhausted()
		return NoEntity, false
	}
	s.inUse.Set(id)
	s.lowestFree = int(id) + 1
	return Entity(id), true
}

// AllocateEntities fills dst with newly allocated ids, lowest first, and
// returns how many it allocated. A result below len(dst) means the store
// is full.
func (s *Store) AllocateEntities(dst []Entity) int {
	for i := range dst {
		e, ok := s.AllocateEntity()
		if !ok {
			return i
		}
		dst[i] = e
	}
	return len(dst)
}

// FreeEntity releases e and deactivates every component on it, so no
// component ever reports a freed entity as active. Only the cached id lists
// of components that were active on e are invalidated. Component values are
// left in place.
//
// Freeing a free entity only repeats the deactivation.
//
// Parameters:
//   - e: The entity to release. It must be below the store's capacity.
func (s *Store) FreeEntity(e Entity) {
	i := uint(e)
	s.inUse.Clear(i)
	for c, bs := range s.active {
		if bs.Test(i) {
			bs.Clear(i)
			s.caches[c].invalidate()
		}
	}
	if int(e) < s.lowestFree {
		s.lowestFree = int(e)
	}
	if s.bus != nil {
		Publish(s.bus, EntityFreedEvent{Entity: e})
	}
}

// IsInUse reports whether e is allocated.
func (s *Store) IsInUse(e Entity) bool {
	return s.inUse.Test(uint(e))
}

// InUseCount returns the number of allocated entities.
func (s *Store) InUseCount() int {
	return int(s.inUse.Count())
}

func (s *Store) exhausted() {
	if ce := s.log.Check(zap.DebugLevel, "entity capacity exhausted"); ce != nil {
		ce.Write(zap.Int("capacity", s.capacity))
	}
	if s.bus != nil {
		Publish(s.bus, CapacityExhaustedEvent{Capacity: s.capacity})
	}
}
