// Package colecs implements a fixed-capacity, columnar Entity Component
// System store for Go.
//
// Features:
// - A fixed universe of integer entities [0, capacity), rebuilt only by Build.
// - One activity bitset per component; activity is independent of values.
// - Flat typed value columns with a per-entity slot count (e.g. x/y/z).
// - A lazily invalidated cache of active entity ids per component.
// - Zero allocations on Allocate, Free, On/Off, value access, Iterate and
//   ApplySystems once the id caches are warm.
//
// A Store is owned by a single goroutine. It performs no locking.
package colecs

import "math"

// MaxComponentTypes is the maximum number of components a Registry accepts.
// Component sets (filters, builders) are held in a 256-bit mask.
const MaxComponentTypes = 256

// Entity is a dense identifier in [0, capacity). Entities carry no payload
// of their own; their data lives in component columns.
type Entity uint32

// NoEntity is returned by AllocateEntity when the store is full.
const NoEntity Entity = math.MaxUint32

// ComponentID identifies a registered component. Ids are assigned
// sequentially from 0 and are stable for the lifetime of a Registry.
type ComponentID uint32
