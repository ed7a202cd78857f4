package colecs

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Bitset is the fixed-capacity bit vector the store tracks entity and
// component state with. Indices at or past Len are never passed in.
type Bitset interface {
	Set(i uint)
	Clear(i uint)
	Test(i uint) bool
	// Count returns the number of set bits.
	Count() uint
	// NextSet returns the first set bit at or after i.
	NextSet(i uint) (uint, bool)
	// NextClear returns the first clear bit at or after i, below Len.
	NextClear(i uint) (uint, bool)
	Len() uint
}

// BitsetFactory creates an all-clear Bitset of the given length.
type BitsetFactory func(length uint) Bitset

// DenseBitset is the default backend: a flat word array. Count and the
// next-bit scans are O(words).
func DenseBitset(length uint) Bitset {
	return denseBitset{bs: bitset.New(length)}
}

type denseBitset struct {
	bs *bitset.BitSet
}

func (d denseBitset) Set(i uint)       { d.bs.Set(i) }
func (d denseBitset) Clear(i uint)     { d.bs.Clear(i) }
func (d denseBitset) Test(i uint) bool { return d.bs.Test(i) }
func (d denseBitset) Count() uint      { return d.bs.Count() }
func (d denseBitset) Len() uint        { return d.bs.Len() }

func (d denseBitset) NextSet(i uint) (uint, bool) {
	return d.bs.NextSet(i)
}

func (d denseBitset) NextClear(i uint) (uint, bool) {
	n, ok := d.bs.NextClear(i)
	if !ok || n >= d.bs.Len() {
		return 0, false
	}
	return n, true
}

// SparseBitset is a compressed backend for very large capacities where most
// components are attached to few entities.
func SparseBitset(length uint) Bitset {
	return &sparseBitset{rb: roaring.New(), length: length}
}

type sparseBitset struct {
	rb     *roaring.Bitmap
	length uint
}

func (s *sparseBitset) Set(i uint)       { s.rb.Add(uint32(i)) }
func (s *sparseBitset) Clear(i uint)     { s.rb.Remove(uint32(i)) }
func (s *sparseBitset) Test(i uint) bool { return s.rb.Contains(uint32(i)) }
func (s *sparseBitset) Count() uint      { return uint(s.rb.GetCardinality()) }
func (s *sparseBitset) Len() uint        { return s.length }

func (s *sparseBitset) NextSet(i uint) (uint, bool) {
	if i >= s.length {
		return 0, false
	}
	n := s.rb.NextValue(uint32(i))
	if n < 0 || uint(n) >= s.length {
		return 0, false
	}
	return uint(n), true
}

// NextClear walks the run of set values starting at i and returns the first
// gap. roaring's NextAbsentValue misreports gaps past a container boundary
// and must not be used here.
func (s *sparseBitset) NextClear(i uint) (uint, bool) {
	if i >= s.length {
		return 0, false
	}
	it := s.rb.Iterator()
	it.AdvanceIfNeeded(uint32(i))
	for i < s.length && it.HasNext() && uint(it.PeekNext()) == i {
		it.Next()
		i++
	}
	if i >= s.length {
		return 0, false
	}
	return i, true
}

// bitsetBackendByName resolves the backend names accepted in Config.
func bitsetBackendByName(name string) (BitsetFactory, bool) {
	switch name {
	case "", "dense":
		return DenseBitset, true
	case "sparse", "roaring":
		return SparseBitset, true
	}
	return nil, false
}
