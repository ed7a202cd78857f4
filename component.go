package colecs

// ComponentOn marks component c active on entity e.
func (s *Store) ComponentOn(e Entity, c ComponentID) {
	s.active[c].Set(uint(e))
	s.caches[c].invalidate()
}

// ComponentsOn marks every component in cs active on entity e.
func (s *Store) ComponentsOn(e Entity, cs ...ComponentID) {
	for _, c := range cs {
		s.active[c].Set(uint(e))
		s.caches[c].invalidate()
	}
}

// ComponentOff marks component c inactive on entity e. Its values are left
// in place.
func (s *Store) ComponentOff(e Entity, c ComponentID) {
	s.active[c].Clear(uint(e))
	s.caches[c].invalidate()
}

// ComponentsOff marks every component in cs inactive on entity e.
func (s *Store) ComponentsOff(e Entity, cs ...ComponentID) {
	for _, c := range cs {
		s.active[c].Clear(uint(e))
		s.caches[c].invalidate()
	}
}

// HasComponent reports whether component c is active on entity e.
func (s *Store) HasComponent(e Entity, c ComponentID) bool {
	return s.active[c].Test(uint(e))
}

// ActiveCount returns how many entities have component c active. It is a
// population count over the bitset, not a scan of the id cache.
func (s *Store) ActiveCount(c ComponentID) int {
	return int(s.active[c].Count())
}
