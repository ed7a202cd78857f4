package colecs

import "math/bits"

// bitmask256 is a set of up to MaxComponentTypes component ids. Filters and
// builders use it to hold their component sets without a slice.
type bitmask256 [4]uint64

// set enables the bit for id.
func (m *bitmask256) set(id ComponentID) {
	m[id>>6] |= uint64(1) << (id & 63)
}

// containsBit checks if a specific id is in the mask.
func (m bitmask256) containsBit(id ComponentID) bool {
	return m[id>>6]&(uint64(1)<<(id&63)) != 0
}

// len returns the number of ids in the mask.
func (m bitmask256) len() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}

// each calls fn for every id in the mask in ascending order, stopping early
// when fn returns false.
func (m bitmask256) each(fn func(id ComponentID) bool) {
	for w, word := range m {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			if !fn(ComponentID(w<<6 | b)) {
				return
			}
			word &= word - 1
		}
	}
}

func makeMask(ids []ComponentID) bitmask256 {
	var m bitmask256
	for _, id := range ids {
		m.set(id)
	}
	return m
}
