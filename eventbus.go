package colecs

import "reflect"

// MaxEventTypes defines the maximum number of unique event types an EventBus
// accepts.
const MaxEventTypes = 256

// BuiltEvent is published after every Build.
type BuiltEvent struct {
	Capacity   int
	Components int
}

// EntityFreedEvent is published after FreeEntity has cleared the entity's
// bits.
type EntityFreedEvent struct {
	Entity Entity
}

// CapacityExhaustedEvent is published when AllocateEntity finds no free id.
type CapacityExhaustedEvent struct {
	Capacity int
}

// EventBus is a synchronous, typed event bus. The store publishes its
// lifecycle events to it when configured with WithEventBus; callers may
// publish their own event types on the same bus.
//
// Publish does not allocate. Subscribe may.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID int
}

// Subscribe registers a handler function to be called when an event of type
// `T` is published. Handlers are stored in the order they are subscribed.
//
// This may allocate the first time a type is subscribed to or when its
// handler list grows.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type `T`.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.eventTypeID(reflect.TypeFor[T]())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts an event of type `T` to every handler subscribed to that
// type, synchronously and in subscription order. It does not allocate.
//
// Parameters:
//   - bus: The EventBus instance to publish on.
//   - event: The event value passed to each handler.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

func (bus *EventBus) eventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.nextEventTypeID >= MaxEventTypes {
		panic("colecs: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
