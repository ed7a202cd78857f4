package colecs

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestBitsetBackends$ . -count 1
func TestBitsetBackends(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			bs := b.factory(130)
			assert.Equal(t, uint(130), bs.Len())
			assert.Zero(t, bs.Count())

			_, ok := bs.NextSet(0)
			assert.False(t, ok)
			i, ok := bs.NextClear(0)
			assert.True(t, ok)
			assert.Equal(t, uint(0), i)

			for _, i := range []uint{0, 1, 63, 64, 129} {
				bs.Set(i)
			}
			assert.Equal(t, uint(5), bs.Count())
			assert.True(t, bs.Test(64))
			assert.False(t, bs.Test(65))

			i, ok = bs.NextSet(2)
			assert.True(t, ok)
			assert.Equal(t, uint(63), i)
			i, ok = bs.NextSet(65)
			assert.True(t, ok)
			assert.Equal(t, uint(129), i)
			_, ok = bs.NextSet(130)
			assert.False(t, ok)

			i, ok = bs.NextClear(0)
			assert.True(t, ok)
			assert.Equal(t, uint(2), i)
			i, ok = bs.NextClear(63)
			assert.True(t, ok)
			assert.Equal(t, uint(65), i)
			_, ok = bs.NextClear(129)
			assert.False(t, ok)

			bs.Clear(64)
			assert.False(t, bs.Test(64))
			assert.Equal(t, uint(4), bs.Count())
		})
	}
}

// go test -run ^TestBitsetFull$ . -count 1
func TestBitsetFull(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			// 64 bits fill the last word exactly; 70 leaves padding bits.
			for _, n := range []uint{64, 70} {
				bs := b.factory(n)
				for i := range n {
					bs.Set(i)
				}
				_, ok := bs.NextClear(0)
				assert.False(t, ok, "length %d", n)
				assert.Equal(t, n, bs.Count())
			}
		})
	}
}

// go test -run ^TestBitsetBackendByName$ . -count 1
func TestBitsetBackendByName(t *testing.T) {
	for _, name := range []string{"", "dense", "sparse", "roaring"} {
		f, ok := bitsetBackendByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, f)
	}
	_, ok := bitsetBackendByName("btree")
	assert.False(t, ok)
}

// go test -run ^TestBitsetBackendsAgree$ . -count 1
func TestBitsetBackendsAgree(t *testing.T) {
	// Lengths straddle roaring's container limits: 4096 values in an array
	// container, 65536 values per container.
	for _, n := range []uint{4096, 4097, 65535, 65536, 65537, 140000} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			dense, sparse := DenseBitset(n), SparseBitset(n)
			set := func(i uint) { dense.Set(i); sparse.Set(i) }
			clr := func(i uint) { dense.Clear(i); sparse.Clear(i) }

			// A long run that turns the first container into a bitmap
			// container, a run across the 65536 boundary, then random churn.
			for i := range min(n, 5000) {
				set(i)
			}
			for i := uint(65530); i < min(n, 65545); i++ {
				set(i)
			}
			r := rand.New(rand.NewPCG(uint64(n), 7))
			for range 20000 {
				i := uint(r.IntN(int(n)))
				if r.IntN(3) == 0 {
					clr(i)
				} else {
					set(i)
				}
			}

			require.Equal(t, dense.Count(), sparse.Count())
			for i := range n {
				if dense.Test(i) != sparse.Test(i) {
					t.Fatalf("Test(%d): dense %v, sparse %v", i, dense.Test(i), sparse.Test(i))
				}
				dn, dok := dense.NextSet(i)
				sn, sok := sparse.NextSet(i)
				if dn != sn || dok != sok {
					t.Fatalf("NextSet(%d): dense %d,%v sparse %d,%v", i, dn, dok, sn, sok)
				}
				dn, dok = dense.NextClear(i)
				sn, sok = sparse.NextClear(i)
				if dn != sn || dok != sok {
					t.Fatalf("NextClear(%d): dense %d,%v sparse %d,%v", i, dn, dok, sn, sok)
				}
			}
		})
	}
}
