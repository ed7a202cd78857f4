package colecs

// Filter iterates, without allocating, over the entities that have every
// component of its "with" set active and none of its "without" set. The
// walk is driven by the first component of the with set and tests the
// others bit by bit, so put the rarest component first.
//
//	f := colecs.NewFilter(store, posID, velID).Without(frozenID)
//	for f.Next() {
//	    e := f.Entity()
//	    // ...
//	}
type Filter struct {
	store   *Store
	with    []ComponentID
	without []ComponentID
	mask    bitmask256
	exclude bitmask256
	next    uint
	cur     Entity
	done    bool
}

// NewFilter creates a new `Filter` over entities that have every component
// in `with` active. The first component drives the walk; the rest are kept
// in ascending id order and tested per entity. Duplicate ids are ignored.
//
// The filter reads the store's bitsets directly, so it sees mutations made
// between calls to Next without being rebuilt.
//
// Parameters:
//   - s: The built Store to query.
//   - with: The required components. At least one must be given.
//
// Returns:
//   - A pointer to the newly created `Filter`, positioned before the first
//     match.
func NewFilter(s *Store, with ...ComponentID) *Filter {
	if len(with) == 0 {
		panic("colecs: filter needs at least one component")
	}
	f := &Filter{store: s, mask: makeMask(with)}
	f.with = make([]ComponentID, 0, f.mask.len())
	f.with = append(f.with, with[0])
	f.mask.each(func(id ComponentID) bool {
		if id != with[0] {
			f.with = append(f.with, id)
		}
		return true
	})
	f.Reset()
	return f
}

// Without excludes entities having any of cs active and rewinds the filter.
func (f *Filter) Without(cs ...ComponentID) *Filter {
	for _, c := range cs {
		if f.exclude.containsBit(c) {
			continue
		}
		f.exclude.set(c)
		f.without = append(f.without, c)
	}
	f.Reset()
	return f
}

// Reset rewinds the filter to the first entity.
func (f *Filter) Reset() {
	f.next = 0
	f.cur = NoEntity
	f.done = false
}

// Next advances to the next matching entity and reports whether there is
// one.
func (f *Filter) Next() bool {
	if f.done {
		return false
	}
	lead := f.store.active[f.with[0]]
	for i, ok := lead.NextSet(f.next); ok; i, ok = lead.NextSet(i + 1) {
		if f.matches(i) {
			f.cur = Entity(i)
			f.next = i + 1
			return true
		}
	}
	f.done = true
	f.cur = NoEntity
	return false
}

func (f *Filter) matches(i uint) bool {
	for _, c := range f.with[1:] {
		if !f.store.active[c].Test(i) {
			return false
		}
	}
	for _, c := range f.without {
		if f.store.active[c].Test(i) {
			return false
		}
	}
	return true
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter) Entity() Entity {
	return f.cur
}

// Count rewinds the filter, counts every match, and rewinds it again.
func (f *Filter) Count() int {
	f.Reset()
	n := 0
	for f.Next() {
		n++
	}
	f.Reset()
	return n
}

// Entities appends every match to dst and returns it. The filter is
// rewound before and after.
func (f *Filter) Entities(dst []Entity) []Entity {
	f.Reset()
	for f.Next() {
		dst = append(dst, f.cur)
	}
	f.Reset()
	return dst
}
