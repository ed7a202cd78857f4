package colecs

import "go.uber.org/zap"

type options struct {
	log       *zap.Logger
	bus       *EventBus
	newBitset BitsetFactory
	slotCheck bool
}

func defaultOptions() options {
	return options{
		log:       zap.NewNop(),
		newBitset: DenseBitset,
	}
}

// Option configures a Store.
type Option func(*options)

// WithLogger sets the logger the store reports builds, registration
// failures and capacity exhaustion to. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithEventBus makes the store publish BuiltEvent, EntityFreedEvent and
// CapacityExhaustedEvent to bus.
func WithEventBus(bus *EventBus) Option {
	return func(o *options) { o.bus = bus }
}

// WithBitsetBackend selects the Bitset implementation used for the in-use
// and active bitsets. DenseBitset is the default.
func WithBitsetBackend(f BitsetFactory) Option {
	return func(o *options) {
		if f != nil {
			o.newBitset = f
		}
	}
}

// WithSlotCheck enables slot-index validation in Slot and SetSlot. An
// out-of-range slot then panics with a *SlotOutOfRangeError instead of
// reading a neighbouring entity's row. The check costs a branch on every
// slot access, so it is off by default.
func WithSlotCheck(enabled bool) Option {
	return func(o *options) { o.slotCheck = enabled }
}
