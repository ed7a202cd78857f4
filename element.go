package colecs

import (
	"fmt"
	"strings"
)

// ElementType is the scalar kind stored in a component column. The set is
// closed: fixed-width integers and floats, plus Boxed for arbitrary values.
type ElementType uint8

const (
	InvalidElement ElementType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	// Boxed stores values as `any`. Reads and writes of numbers through a
	// Boxed column allocate; prefer a fixed-width kind on hot paths.
	Boxed
	elementTypeCount
)

var elementTypeNames = [elementTypeCount]string{
	InvalidElement: "invalid",
	Int8:           "int8",
	Uint8:          "uint8",
	Int16:          "int16",
	Uint16:         "uint16",
	Int32:          "int32",
	Uint32:         "uint32",
	Int64:          "int64",
	Uint64:         "uint64",
	Float32:        "float32",
	Float64:        "float64",
	Boxed:          "boxed",
}

// Valid reports whether t is one of the supported kinds.
func (t ElementType) Valid() bool {
	return t > InvalidElement && t < elementTypeCount
}

func (t ElementType) String() string {
	if t < elementTypeCount {
		return elementTypeNames[t]
	}
	return fmt.Sprintf("ElementType(%d)", uint8(t))
}

// ParseElementType maps a kind name ("float32", "uint8", "boxed", ...) to
// its ElementType. "any" is accepted as an alias for "boxed".
func ParseElementType(name string) (ElementType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "any" {
		return Boxed, nil
	}
	for t := Int8; t < elementTypeCount; t++ {
		if elementTypeNames[t] == name {
			return t, nil
		}
	}
	return InvalidElement, fmt.Errorf("%w: %q", ErrInvalidElementType, name)
}

// Number is the constraint satisfied by every fixed-width element kind.
type Number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// elementTypeOf resolves the ElementType backing a Column[T]. Only the exact
// built-in types map to a kind; named types are rejected so that a column's
// Go type always matches its registered kind.
func elementTypeOf[T any]() ElementType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	// any(zero) of an interface type T is nil; only `any` itself is Boxed.
	if _, ok := any((*T)(nil)).(*any); ok {
		return Boxed
	}
	return InvalidElement
}
