package colecs

// Builder allocates entities that start with a fixed set of components
// active.
type Builder struct {
	store *Store
	comps []ComponentID
}

// NewBuilder creates a new `Builder` that activates every component in cs on
// each entity it creates. Duplicate ids are ignored and the set is kept in
// ascending order.
//
// Parameters:
//   - s: The built Store to allocate from.
//   - cs: The components to activate.
//
// Returns:
//   - A pointer to the newly created `Builder`.
func NewBuilder(s *Store, cs ...ComponentID) *Builder {
	m := makeMask(cs)
	b := &Builder{store: s, comps: make([]ComponentID, 0, m.len())}
	m.each(func(id ComponentID) bool {
		b.comps = append(b.comps, id)
		return true
	})
	return b
}

// Components returns the component ids the builder activates, ascending.
func (b *Builder) Components() []ComponentID {
	return b.comps
}

// NewEntity allocates one entity and activates the builder's components on
// it. It returns (NoEntity, false) when the store is full.
func (b *Builder) NewEntity() (Entity, bool) {
	e, ok := b.store.AllocateEntity()
	if !ok {
		return NoEntity, false
	}
	b.store.ComponentsOn(e, b.comps...)
	return e, true
}

// NewEntities allocates up to count entities and returns how many it
// created.
func (b *Builder) NewEntities(count int) int {
	for i := range count {
		if _, ok := b.NewEntity(); !ok {
			return i
		}
	}
	return count
}

// NewEntitiesInto is NewEntities recording the created ids in dst. It
// creates at most len(dst) entities.
func (b *Builder) NewEntitiesInto(dst []Entity) int {
	for i := range dst {
		e, ok := b.NewEntity()
		if !ok {
			return i
		}
		dst[i] = e
	}
	return len(dst)
}
