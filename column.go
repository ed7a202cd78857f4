package colecs

// column is the type-erased view of a Column[T] the store keeps per
// component.
type column interface {
	elementType() ElementType
	slotCount() int
	// number reads index idx as float64; false for Boxed columns.
	number(idx int) (float64, bool)
	// setNumber writes v at index idx; false for Boxed columns.
	setNumber(idx int, v float64) bool
}

// Column is the flat value array of one component: capacity*SlotCount
// elements of T, row e starting at e*SlotCount.
//
// Methods take no locks and perform no entity or activity checks. Slot and
// SetSlot validate the slot index only when the store was created with
// WithSlotCheck(true); TrySlot and TrySetSlot always validate.
type Column[T any] struct {
	data    []T
	name    string
	slots   int
	kind    ElementType
	checked bool
}

func newColumn[T any](def componentDef, capacity int, checked bool) *Column[T] {
	return &Column[T]{
		data:    make([]T, capacity*def.slots),
		name:    def.name,
		slots:   def.slots,
		kind:    def.kind,
		checked: checked,
	}
}

// newColumnFor resolves a registered kind into its concrete column once,
// at build time.
func newColumnFor(def componentDef, capacity int, checked bool) column {
	switch def.kind {
	case Int8:
		return newColumn[int8](def, capacity, checked)
	case Uint8:
		return newColumn[uint8](def, capacity, checked)
	case Int16:
		return newColumn[int16](def, capacity, checked)
	case Uint16:
		return newColumn[uint16](def, capacity, checked)
	case Int32:
		return newColumn[int32](def, capacity, checked)
	case Uint32:
		return newColumn[uint32](def, capacity, checked)
	case Int64:
		return newColumn[int64](def, capacity, checked)
	case Uint64:
		return newColumn[uint64](def, capacity, checked)
	case Float32:
		return newColumn[float32](def, capacity, checked)
	case Float64:
		return newColumn[float64](def, capacity, checked)
	case Boxed:
		return newColumn[any](def, capacity, checked)
	}
	panic("colecs: unsupported element type " + def.kind.String())
}

func (c *Column[T]) elementType() ElementType { return c.kind }
func (c *Column[T]) slotCount() int           { return c.slots }

func (c *Column[T]) number(idx int) (float64, bool) {
	switch d := any(c.data).(type) {
	case []int8:
		return float64(d[idx]), true
	case []uint8:
		return float64(d[idx]), true
	case []int16:
		return float64(d[idx]), true
	case []uint16:
		return float64(d[idx]), true
	case []int32:
		return float64(d[idx]), true
	case []uint32:
		return float64(d[idx]), true
	case []int64:
		return float64(d[idx]), true
	case []uint64:
		return float64(d[idx]), true
	case []float32:
		return float64(d[idx]), true
	case []float64:
		return d[idx], true
	}
	return 0, false
}

func (c *Column[T]) setNumber(idx int, v float64) bool {
	switch d := any(c.data).(type) {
	case []int8:
		d[idx] = int8(v)
	case []uint8:
		d[idx] = uint8(v)
	case []int16:
		d[idx] = int16(v)
	case []uint16:
		d[idx] = uint16(v)
	case []int32:
		d[idx] = int32(v)
	case []uint32:
		d[idx] = uint32(v)
	case []int64:
		d[idx] = int64(v)
	case []uint64:
		d[idx] = uint64(v)
	case []float32:
		d[idx] = float32(v)
	case []float64:
		d[idx] = v
	default:
		return false
	}
	return true
}

// Name returns the component name the column was built for.
func (c *Column[T]) Name() string { return c.name }

// SlotCount returns the number of values stored per entity.
func (c *Column[T]) SlotCount() int { return c.slots }

// Data returns the whole backing array. It is owned by the store and is
// replaced on the next Build.
func (c *Column[T]) Data() []T { return c.data }

// Base returns the index of slot 0 of entity e in Data.
func (c *Column[T]) Base(e Entity) int { return int(e) * c.slots }

// Row returns entity e's slots as a sub-slice of Data. Writes through it
// are visible to the store.
func (c *Column[T]) Row(e Entity) []T {
	base := int(e) * c.slots
	return c.data[base : base+c.slots : base+c.slots]
}

// Value reads slot 0 of entity e.
func (c *Column[T]) Value(e Entity) T {
	return c.data[int(e)*c.slots]
}

// SetValue writes slot 0 of entity e.
func (c *Column[T]) SetValue(e Entity, v T) {
	c.data[int(e)*c.slots] = v
}

// Slot reads slot of entity e.
func (c *Column[T]) Slot(e Entity, slot int) T {
	if c.checked {
		c.mustSlot(slot)
	}
	return c.data[int(e)*c.slots+slot]
}

// SetSlot writes slot of entity e.
func (c *Column[T]) SetSlot(e Entity, slot int, v T) {
	if c.checked {
		c.mustSlot(slot)
	}
	c.data[int(e)*c.slots+slot] = v
}

// TrySlot is Slot with the slot index always validated.
func (c *Column[T]) TrySlot(e Entity, slot int) (T, error) {
	if err := c.checkSlot(slot); err != nil {
		var zero T
		return zero, err
	}
	return c.data[int(e)*c.slots+slot], nil
}

// TrySetSlot is SetSlot with the slot index always validated.
func (c *Column[T]) TrySetSlot(e Entity, slot int, v T) error {
	if err := c.checkSlot(slot); err != nil {
		return err
	}
	c.data[int(e)*c.slots+slot] = v
	return nil
}

// Slots copies every slot of entity e into dst starting at offset. dst must
// have room for SlotCount values past offset.
func (c *Column[T]) Slots(e Entity, dst []T, offset int) {
	base := int(e) * c.slots
	copy(dst[offset:offset+c.slots], c.data[base:base+c.slots])
}

func (c *Column[T]) checkSlot(slot int) error {
	if slot < 0 || slot >= c.slots {
		return &SlotOutOfRangeError{Component: c.name, Slot: slot, SlotCount: c.slots}
	}
	return nil
}

func (c *Column[T]) mustSlot(slot int) {
	if err := c.checkSlot(slot); err != nil {
		panic(err)
	}
}

// SlotArray is satisfied by the fixed-size arrays CopySlots fills.
type SlotArray[T any] interface {
	~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T
}

// CopySlots copies the first len(A) slots of entity e into dst. Each array
// length is its own instantiation with a fixed loop bound, and there is no
// per-call check against the column's slot count.
//
//	var pos [3]float32
//	colecs.CopySlots(posCol, e, &pos)
func CopySlots[T any, A SlotArray[T]](c *Column[T], e Entity, dst *A) {
	base := int(e) * c.slots
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] = c.data[base+i]
	}
}
