package colecs

import "testing"

func BenchmarkEventBusSubscribe(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			bus := &EventBus{}
			b.ReportAllocs()
			b.ResetTimer()
			for range size {
				Subscribe(bus, func(TestEvent) {})
			}
		})
	}
}

func BenchmarkEventBusPublishNoHandlers(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			bus := &EventBus{}
			event := TestEvent{Value: 42}
			b.ReportAllocs()
			b.ResetTimer()
			for range size {
				Publish(bus, event)
			}
		})
	}
}

func BenchmarkEventBusPublishManyHandlers(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			bus := &EventBus{}
			for range size {
				Subscribe(bus, func(TestEvent) {})
			}
			event := TestEvent{Value: 42}
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				Publish(bus, event)
			}
		})
	}
}

// FreeEntity with a subscribed bus publishes once per call.
func BenchmarkFreeEntityWithEvents(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			bus := &EventBus{}
			freed := 0
			Subscribe(bus, func(EntityFreedEvent) { freed++ })
			s, pos, _ := newBenchStore(b, size, WithEventBus(bus))
			builder := NewBuilder(s, pos)
			for b.Loop() {
				b.StopTimer()
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
