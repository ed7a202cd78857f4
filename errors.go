package colecs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidElementType is returned when registering a component with a
	// kind outside the supported set.
	ErrInvalidElementType = errors.New("invalid element type")
	// ErrInvalidSlotCount is returned when registering a component with fewer
	// than one slot per entity.
	ErrInvalidSlotCount = errors.New("invalid slot count")
	// ErrDuplicateComponentName is returned when a component name is already
	// registered.
	ErrDuplicateComponentName = errors.New("duplicate component name")
	// ErrTooManyComponents is returned past MaxComponentTypes registrations.
	ErrTooManyComponents = errors.New("too many component types")
	// ErrUnknownComponent is returned for an id or name that is not registered.
	ErrUnknownComponent = errors.New("unknown component")
	// ErrElementTypeMismatch is returned when a column is requested with a Go
	// type that does not match the component's registered kind.
	ErrElementTypeMismatch = errors.New("element type mismatch")
	// ErrSlotOutOfRange is matched by *SlotOutOfRangeError.
	ErrSlotOutOfRange = errors.New("slot out of range")
)

// SlotOutOfRangeError reports a slot index outside [0, SlotCount) for a
// component. It is only produced by the checked accessors.
type SlotOutOfRangeError struct {
	Component string
	Slot      int
	SlotCount int
}

func (e *SlotOutOfRangeError) Error() string {
	return fmt.Sprintf("slot index %d is out of bound for component %q with a slot count of %d",
		e.Slot, e.Component, e.SlotCount)
}

func (e *SlotOutOfRangeError) Unwrap() error { return ErrSlotOutOfRange }
