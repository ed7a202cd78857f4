package colecs

// System is a per-entity handler bound to one component. ApplySystems calls
// it once for every entity with that component active.
type System func(s *Store, e Entity, res *Resources)

// RegisterSystem binds fn to component c, replacing any previous system for
// c. Systems survive Build and may be registered before it.
//
// Parameters:
//   - c: A registered component. An unknown id panics.
//   - fn: The per-entity handler. A nil fn unbinds c.
func (s *Store) RegisterSystem(c ComponentID, fn System) {
	if !s.registry.Has(c) {
		panic("colecs: system registered for unknown component")
	}
	if int(c) >= len(s.systems) {
		grown := make([]System, s.registry.Len())
		copy(grown, s.systems)
		s.systems = grown
	}
	s.systems[c] = fn
}

// SystemHandler returns the system bound to component c, or nil.
func (s *Store) SystemHandler(c ComponentID) System {
	if int(c) >= len(s.systems) {
		return nil
	}
	return s.systems[c]
}

// CountSystems returns how many components have a system bound.
func (s *Store) CountSystems() int {
	n := 0
	for _, fn := range s.systems {
		if fn != nil {
			n++
		}
	}
	return n
}

// ApplySystems runs every bound system, in ascending component id order,
// over the snapshot EntityIDs returns for its component. Systems may turn
// components on or off and free entities; that only changes what the next
// snapshot holds, never the one being walked.
//
// Once each component's id list is cached, a pass does not allocate.
//
// Parameters:
//   - res: The context handed to every system unchanged. It may be nil.
func (s *Store) ApplySystems(res *Resources) {
	for c, fn := range s.systems {
		if fn == nil {
			continue
		}
		for _, e := range s.EntityIDs(ComponentID(c)) {
			fn(s, e, res)
		}
	}
}
