package colecs

import (
	"fmt"
	"testing"
)

var benchSizes = []int{1000, 10000, 100000, 1000000}

func benchName(size int) string {
	if size == 1000000 {
		return "1M"
	}
	return fmt.Sprintf("%dK", size/1000)
}

func newBenchStore(b *testing.B, size int, opts ...Option) (*Store, ComponentID, ComponentID) {
	b.Helper()
	s := NewStore(opts...)
	pos, err := RegisterComponent[float32](s, "pos", 3)
	if err != nil {
		b.Fatal(err)
	}
	vel, err := RegisterComponent[float32](s, "vel", 3)
	if err != nil {
		b.Fatal(err)
	}
	s.Build(size)
	return s, pos, vel
}

func BenchmarkBuild(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, _, _ := newBenchStore(b, size)
			for b.Loop() {
				s.Rebuild()
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkAllocateEntity(b *testing.B) {
	for _, size := range benchSizes {
		for _, backend := range backends {
			b.Run(benchName(size)+"/"+backend.name, func(b *testing.B) {
				s, _, _ := newBenchStore(b, size, WithBitsetBackend(backend.factory))
				for b.Loop() {
					b.StopTimer()
					s.Rebuild()
					b.StartTimer()
					for range size {
						s.AllocateEntity()
					}
				}
				b.ReportAllocs()
			})
		}
	}
}

func BenchmarkFreeEntity(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, pos, vel := newBenchStore(b, size)
			builder := NewBuilder(s, pos, vel)
			for b.Loop() {
				b.StopTimer()
				s.Rebuild()
				builder.NewEntities(size)
				b.StartTimer()
				for e := range Entity(size) {
					s.FreeEntity(e)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkComponentOnOff(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, pos, _ := newBenchStore(b, size)
			for b.Loop() {
				for e := range Entity(size) {
					s.ComponentOn(e, pos)
				}
				for e := range Entity(size) {
					s.ComponentOff(e, pos)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkSetSlot(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, pos, _ := newBenchStore(b, size)
			for b.Loop() {
				for e := range Entity(size) {
					SetSlot[float32](s, e, pos, 1, 2)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkSetSlotChecked(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, pos, _ := newBenchStore(b, size, WithSlotCheck(true))
			for b.Loop() {
				for e := range Entity(size) {
					SetSlot[float32](s, e, pos, 1, 2)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkCopySlots(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, pos, _ := newBenchStore(b, size)
			col := MustColumn[float32](s, pos)
			var v [3]float32
			for b.Loop() {
				for e := range Entity(size) {
					CopySlots(col, e, &v)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkEntityIDsUncached(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, pos, vel := newBenchStore(b, size)
			NewBuilder(s, pos, vel).NewEntities(size / 2)
			for b.Loop() {
				s.caches[pos].invalidate()
				_ = s.EntityIDs(pos)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	for _, size := range benchSizes {
		for _, backend := range backends {
			b.Run(benchName(size)+"/"+backend.name, func(b *testing.B) {
				s, pos, vel := newBenchStore(b, size, WithBitsetBackend(backend.factory))
				NewBuilder(s, pos, vel).NewEntities(size)
				col := MustColumn[float32](s, pos)
				for b.Loop() {
					s.Iterate(pos, func(_ *Store, e Entity) {
						col.Row(e)[0]++
					})
				}
				b.ReportAllocs()
			})
		}
	}
}

func BenchmarkFilterIterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, pos, vel := newBenchStore(b, size)
			NewBuilder(s, pos, vel).NewEntities(size)
			f := NewFilter(s, pos, vel)
			posCol, velCol := MustColumn[float32](s, pos), MustColumn[float32](s, vel)
			for b.Loop() {
				f.Reset()
				for f.Next() {
					e := f.Entity()
					posCol.Row(e)[0] += velCol.Row(e)[0]
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkApplySystems(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			s, pos, vel := newBenchStore(b, size)
			NewBuilder(s, pos, vel).NewEntities(size)
			posCol, velCol := MustColumn[float32](s, pos), MustColumn[float32](s, vel)
			s.RegisterSystem(vel, func(_ *Store, e Entity, _ *Resources) {
				p, v := posCol.Row(e), velCol.Row(e)
				p[0] += v[0]
				p[1] += v[1]
				p[2] += v[2]
			})
			for b.Loop() {
				s.ApplySystems(nil)
			}
			b.ReportAllocs()
		})
	}
}
