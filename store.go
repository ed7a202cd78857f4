package colecs

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Store owns all runtime state for a fixed entity capacity: the in-use
// bitset, one active bitset, value column and id cache per component, the
// lowest-free allocation cursor, and the per-component systems.
//
// Components are registered first; Build then allocates storage. Calling
// any entity or component operation before the first Build, or with an
// out-of-range entity or component id, is a caller error that is not
// checked at runtime.
type Store struct {
	log       *zap.Logger
	bus       *EventBus
	newBitset BitsetFactory
	registry  *Registry
	inUse     Bitset
	active    []Bitset
	columns   []column
	caches    []idCache
	systems   []System
	capacity  int
	// lowestFree is a lower bound on the first clear bit of inUse.
	lowestFree int
	built      bool
	slotCheck  bool
}

// NewStore creates a new, unbuilt `Store` with an empty component registry.
// Components must be registered and `Build` called before any entity can be
// allocated.
//
// Parameters:
//   - opts: Options such as `WithLogger`, `WithBitsetBackend` or
//     `WithSlotCheck`. Without options the store logs nothing, uses the dense
//     bitset backend and leaves slot indices unchecked.
//
// Returns:
//   - A pointer to the newly created `Store`.
func NewStore(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		log:       o.log,
		bus:       o.bus,
		newBitset: o.newBitset,
		slotCheck: o.slotCheck,
		registry:  NewRegistry(),
	}
}

// Registry returns the store's component registry.
func (s *Store) Registry() *Registry { return s.registry }

// RegisterComponent registers a component storing slots values of kind per
// entity and returns its id. Storage for it exists only after the next
// Build.
func (s *Store) RegisterComponent(name string, kind ElementType, slots int) (ComponentID, error) {
	id, err := s.registry.Register(name, kind, slots)
	if err != nil {
		s.log.Warn("component registration rejected", zap.String("component", name), zap.Error(err))
		return 0, err
	}
	s.log.Debug("component registered",
		zap.String("component", name),
		zap.Uint32("id", uint32(id)),
		zap.Stringer("kind", kind),
		zap.Int("slots", slots),
	)
	return id, nil
}

// RegisterComponent registers a component whose column type is T. T must be
// one of the fixed-width numeric types or `any` (Boxed).
func RegisterComponent[T any](s *Store, name string, slots int) (ComponentID, error) {
	kind := elementTypeOf[T]()
	if kind == InvalidElement {
		var zero T
		err := fmt.Errorf("%w %T for component %q", ErrInvalidElementType, zero, name)
		s.log.Warn("component registration rejected", zap.String("component", name), zap.Error(err))
		return 0, err
	}
	return s.RegisterComponent(name, kind, slots)
}

// ComponentID looks up a component id by name.
func (s *Store) ComponentID(name string) (ComponentID, bool) { return s.registry.ID(name) }

// ComponentName looks up a component name by id.
func (s *Store) ComponentName(id ComponentID) (string, bool) { return s.registry.Name(id) }

// SlotCount returns the slots per entity of component id.
func (s *Store) SlotCount(id ComponentID) int { return s.registry.SlotCount(id) }

// ElementType returns the registered kind of component id.
func (s *Store) ElementType(id ComponentID) ElementType { return s.registry.ElementType(id) }

// ComponentCount returns the number of registered components.
func (s *Store) ComponentCount() int { return s.registry.Len() }

// Build discards all entity, activity and value state and allocates fresh
// storage for `capacity` entities and every component registered so far.
// The allocation cursor returns to 0 and every cached id list becomes stale.
// Registered systems are kept. Build may be called any number of times; it is
// the only way to change the capacity.
//
// Columns obtained from `ColumnOf` before the call refer to the discarded
// storage and must be fetched again.
//
// Parameters:
//   - capacity: The number of entities, in [0, math.MaxUint32]. Values
//     outside that range panic.
func (s *Store) Build(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("colecs: negative capacity %d", capacity))
	}
	if uint64(capacity) > math.MaxUint32 {
		panic(fmt.Sprintf("colecs: capacity %d exceeds the entity id range", capacity))
	}
	n := s.registry.Len()
	s.capacity = capacity
	s.lowestFree = 0
	s.inUse = s.newBitset(uint(capacity))
	s.active = make([]Bitset, n)
	s.columns = make([]column, n)
	s.caches = make([]idCache, n)
	for i := range n {
		s.active[i] = s.newBitset(uint(capacity))
		s.columns[i] = newColumnFor(s.registry.defs[i], capacity, s.slotCheck)
	}
	s.built = true
	s.log.Info("store built",
		zap.Int("capacity", capacity),
		zap.Int("components", n),
		zap.Int("systems", s.CountSystems()),
		zap.Bool("slot_check", s.slotCheck),
	)
	if s.bus != nil {
		Publish(s.bus, BuiltEvent{Capacity: capacity, Components: n})
	}
}

// Rebuild is Build with the current capacity.
func (s *Store) Rebuild() { s.Build(s.capacity) }

// Built reports whether Build has been called.
func (s *Store) Built() bool { return s.built }

// Capacity returns the entity capacity of the current build.
func (s *Store) Capacity() int { return s.capacity }
