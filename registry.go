package colecs

import "fmt"

// componentDef is the registered shape of one component column.
type componentDef struct {
	name  string
	kind  ElementType
	slots int
}

// Registry holds the identity, element kind and slot count of every
// registered component. It is append-only.
type Registry struct {
	byName map[string]ComponentID
	defs   []componentDef
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]ComponentID, 16)}
}

// Register assigns the next sequential id to a component named name storing
// slots values of kind per entity.
func (r *Registry) Register(name string, kind ElementType, slots int) (ComponentID, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w %s for component %q", ErrInvalidElementType, kind, name)
	}
	if slots < 1 {
		return 0, fmt.Errorf("%w %d for component %q", ErrInvalidSlotCount, slots, name)
	}
	if r.byName == nil {
		r.byName = make(map[string]ComponentID, 16)
	}
	if _, ok := r.byName[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateComponentName, name)
	}
	if len(r.defs) >= MaxComponentTypes {
		return 0, fmt.Errorf("%w: cannot register %q, maximum is %d", ErrTooManyComponents, name, MaxComponentTypes)
	}
	id := ComponentID(len(r.defs))
	r.defs = append(r.defs, componentDef{name: name, kind: kind, slots: slots})
	r.byName[name] = id
	return id, nil
}

// ID looks up a component by name.
func (r *Registry) ID(name string) (ComponentID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Name looks up a component's name by id.
func (r *Registry) Name(id ComponentID) (string, bool) {
	if int(id) >= len(r.defs) {
		return "", false
	}
	return r.defs[id].name, true
}

// SlotCount returns the number of slots per entity of component id.
func (r *Registry) SlotCount(id ComponentID) int { return r.defs[id].slots }

// ElementType returns the registered kind of component id.
func (r *Registry) ElementType(id ComponentID) ElementType { return r.defs[id].kind }

// Len returns the number of registered components.
func (r *Registry) Len() int { return len(r.defs) }

// Has reports whether id is registered.
func (r *Registry) Has(id ComponentID) bool { return int(id) < len(r.defs) }
