package colecs

import "reflect"

// Resources is the context ApplySystems hands to every system: a small
// container holding at most one value per type, such as the frame's delta
// time or a random source.
type Resources struct {
	items map[reflect.Type]any
}

// NewResources returns an empty container.
func NewResources() *Resources {
	return &Resources{items: make(map[reflect.Type]any, 8)}
}

// AddResource stores res under type T, replacing any previous value of T.
func AddResource[T any](r *Resources, res *T) {
	if res == nil {
		panic("colecs: cannot add nil resource")
	}
	if r.items == nil {
		r.items = make(map[reflect.Type]any, 8)
	}
	r.items[reflect.TypeFor[T]()] = res
}

// Resource returns the value stored under T. It is safe to call on a nil
// *Resources.
func Resource[T any](r *Resources) (*T, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.items[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// HasResource reports whether a value of type T is stored.
func HasResource[T any](r *Resources) bool {
	_, ok := Resource[T](r)
	return ok
}

// RemoveResource deletes the value stored under T, if any.
func RemoveResource[T any](r *Resources) {
	delete(r.items, reflect.TypeFor[T]())
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// Clear removes all resources.
func (r *Resources) Clear() {
	clear(r.items)
}
