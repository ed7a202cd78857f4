// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/colecs"
	"github.com/pkg/profile"
)

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		s := colecs.NewStore()
		c1, _ := colecs.RegisterComponent[int64](s, "comp1", 2)
		c2, _ := colecs.RegisterComponent[int64](s, "comp2", 2)
		s.Build(numEntities)
		col1 := colecs.MustColumn[int64](s, c1)
		col2 := colecs.MustColumn[int64](s, c2)
		filter := colecs.NewFilter(s, c1, c2)
		builder := colecs.NewBuilder(s, c1, c2)
		entities := make([]colecs.Entity, 0, numEntities)

		for range iters {
			builder.NewEntities(numEntities)
			entities = entities[:0]
			filter.Reset()
			for filter.Next() {
				e := filter.Entity()
				entities = append(entities, e)
				r1, r2 := col1.Row(e), col2.Row(e)
				r1[0] += r2[0]
				r1[1] += r2[1]
			}
			for _, e := range entities {
				s.FreeEntity(e)
			}
		}
	}
}
