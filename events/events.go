// Package events broadcasts wrapper-layer state changes (parameter writes,
// bypass transitions) to interested subscribers. Publishing is optional:
// nodes only publish when constructed with a bus attached.
package events

import (
	"github.com/cskr/pubsub"
)

// Event topic names used for the event PubSub
const (
	ParameterWritten = "parameterWritten" // ParameterEvent
	NodeStarted      = "nodeStarted"      // LifecycleEvent
	NodeStopped      = "nodeStopped"      // LifecycleEvent
)

// ParameterEvent describes one committed parameter write. Value is the
// post-clamp value the provider received.
type ParameterEvent struct {
	Component  string
	Identifier string
	Value      float32
}

// LifecycleEvent describes a start/stop transition.
type LifecycleEvent struct {
	Component string
	Started   bool
}

// Bus is a thin wrapper around a pubsub broker with a capacity suited for
// bursty parameter automation.
type Bus struct {
	ps *pubsub.PubSub
}

// NewBus creates an event bus. Subscriber channels buffer up to capacity
// events before publishing blocks.
func NewBus(capacity int) *Bus {
	return &Bus{ps: pubsub.New(capacity)}
}

// Sub subscribes to the given topics.
func (b *Bus) Sub(topics ...string) chan interface{} {
	return b.ps.Sub(topics...)
}

// Unsub removes the channel's subscriptions for the given topics.
func (b *Bus) Unsub(ch chan interface{}, topics ...string) {
	b.ps.Unsub(ch, topics...)
}

// Pub publishes an event to the given topics.
func (b *Bus) Pub(msg interface{}, topics ...string) {
	b.ps.Pub(msg, topics...)
}

// Shutdown closes all subscriber channels.
func (b *Bus) Shutdown() {
	b.ps.Shutdown()
}
