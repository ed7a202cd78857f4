// Profiling:
// go build ./profile/systems
// go tool pprof -http=":8000" -nodefraction=0.001 ./systems cpu.pprof

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/edwinsyarief/colecs"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
)

type frame struct {
	Delta float32
}

func main() {
	count := 50
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	err := run(runtime.GOMAXPROCS(0), count, iters, entities)
	p.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives one store per worker. Stores are single-owner, so workers share
// nothing but the errgroup.
func run(workers, rounds, iters, numEntities int) error {
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for range rounds {
				if err := simulate(iters, numEntities); err != nil {
					return fmt.Errorf("worker %d: %w", w, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func simulate(iters, numEntities int) error {
	s := colecs.NewStore()
	pos, err := colecs.RegisterComponent[float32](s, "pos", 3)
	if err != nil {
		return err
	}
	vel, err := colecs.RegisterComponent[float32](s, "vel", 3)
	if err != nil {
		return err
	}
	s.Build(numEntities)
	posCol := colecs.MustColumn[float32](s, pos)
	velCol := colecs.MustColumn[float32](s, vel)

	colecs.NewBuilder(s, pos, vel).NewEntities(numEntities)
	for e := range colecs.Entity(numEntities) {
		velCol.Row(e)[0] = 1
	}

	// Velocity is always on together with position, so the system bound to
	// vel may read both rows.
	s.RegisterSystem(vel, func(_ *colecs.Store, e colecs.Entity, res *colecs.Resources) {
		f, _ := colecs.Resource[frame](res)
		p, v := posCol.Row(e), velCol.Row(e)
		p[0] += v[0] * f.Delta
		p[1] += v[1] * f.Delta
		p[2] += v[2] * f.Delta
	})

	res := colecs.NewResources()
	colecs.AddResource(res, &frame{Delta: 1.0 / 60})
	for range iters {
		s.ApplySystems(res)
	}
	return nil
}
