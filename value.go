package colecs

import "fmt"

// ColumnOf returns the typed column of component c for direct, check-free
// access to its values. The column is only valid until the next Build.
//
// Parameters:
//   - s: The built Store.
//   - c: The component whose column is requested.
//
// Returns:
//   - The `*Column[T]`, or an error wrapping `ErrUnknownComponent` for an id
//     with no column and `ErrElementTypeMismatch` when `T` is not the Go type
//     of the component's kind (`any` for Boxed).
func ColumnOf[T any](s *Store, c ComponentID) (*Column[T], error) {
	if int(c) >= len(s.columns) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownComponent, c)
	}
	col, ok := s.columns[c].(*Column[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: component %q is %s, not %T",
			ErrElementTypeMismatch, s.registry.defs[c].name, s.registry.defs[c].kind, zero)
	}
	return col, nil
}

// MustColumn is ColumnOf that panics on error.
func MustColumn[T any](s *Store, c ComponentID) *Column[T] {
	col, err := ColumnOf[T](s, c)
	if err != nil {
		panic("colecs: " + err.Error())
	}
	return col
}

// GetValue reads slot 0 of entity e in component c. It has no effect on the
// component's activity.
func GetValue[T any](s *Store, e Entity, c ComponentID) T {
	return s.columns[c].(*Column[T]).Value(e)
}

// SetValue writes slot 0 of entity e in component c.
func SetValue[T any](s *Store, e Entity, c ComponentID, v T) {
	s.columns[c].(*Column[T]).SetValue(e, v)
}

// GetSlot reads one slot of entity e in component c.
func GetSlot[T any](s *Store, e Entity, c ComponentID, slot int) T {
	return s.columns[c].(*Column[T]).Slot(e, slot)
}

// SetSlot writes one slot of entity e in component c.
func SetSlot[T any](s *Store, e Entity, c ComponentID, slot int, v T) {
	s.columns[c].(*Column[T]).SetSlot(e, slot, v)
}

// TryGetSlot is GetSlot with the slot index validated.
func TryGetSlot[T any](s *Store, e Entity, c ComponentID, slot int) (T, error) {
	return s.columns[c].(*Column[T]).TrySlot(e, slot)
}

// TrySetSlot is SetSlot with the slot index validated.
func TrySetSlot[T any](s *Store, e Entity, c ComponentID, slot int, v T) error {
	return s.columns[c].(*Column[T]).TrySetSlot(e, slot, v)
}

// SetComponentValue turns component c on for e and writes slot 0.
func SetComponentValue[T any](s *Store, e Entity, c ComponentID, v T) {
	s.ComponentOn(e, c)
	s.columns[c].(*Column[T]).SetValue(e, v)
}

// SetComponentSlot turns component c on for e and writes one slot.
func SetComponentSlot[T any](s *Store, e Entity, c ComponentID, slot int, v T) {
	s.ComponentOn(e, c)
	s.columns[c].(*Column[T]).SetSlot(e, slot, v)
}

// GetSlots copies every slot of entity e in component c into dst starting
// at offset.
func GetSlots[T any](s *Store, e Entity, c ComponentID, dst []T, offset int) {
	s.columns[c].(*Column[T]).Slots(e, dst, offset)
}

// GetSlotsN copies the first len(A) slots of entity e in component c into
// dst. T is given explicitly; A is inferred:
//
//	var dir [3]float32
//	colecs.GetSlotsN[float32](s, e, dirID, &dir)
func GetSlotsN[T any, A SlotArray[T]](s *Store, e Entity, c ComponentID, dst *A) {
	CopySlots(s.columns[c].(*Column[T]), e, dst)
}

// Float reads a slot of a numeric component as float64. It is meant for
// callers that do not know the column type, and returns false for Boxed
// components and out-of-range slots.
func (s *Store) Float(e Entity, c ComponentID, slot int) (float64, bool) {
	col := s.columns[c]
	if slot < 0 || slot >= col.slotCount() {
		return 0, false
	}
	return col.number(int(e)*col.slotCount() + slot)
}

// SetFloat writes v, converted to the component's kind, into a slot of a
// numeric component. It returns false for Boxed components and
// out-of-range slots.
func (s *Store) SetFloat(e Entity, c ComponentID, slot int, v float64) bool {
	col := s.columns[c]
	if slot < 0 || slot >= col.slotCount() {
		return false
	}
	return col.setNumber(int(e)*col.slotCount()+slot, v)
}

// ToValues maps each entity with component c active to its slot 0 value.
// It allocates; use it for inspection and tests rather than per-frame work.
func ToValues[T any](s *Store, c ComponentID) map[Entity]T {
	return ToSlotValues[T](s, c, 0)
}

// ToSlotValues maps each entity with component c active to the value of
// one slot.
func ToSlotValues[T any](s *Store, c ComponentID, slot int) map[Entity]T {
	col := s.columns[c].(*Column[T])
	ids := s.EntityIDs(c)
	out := make(map[Entity]T, len(ids))
	for _, e := range ids {
		out[e] = col.Slot(e, slot)
	}
	return out
}
