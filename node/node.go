// Package node wraps instantiated audio components into graph nodes with
// typed, range-clamped parameters and uniform start/stop semantics.
//
// A Node owns exactly one engine handle for its lifetime. Parameter writes
// are clamped to the descriptor's declared range before they reach the
// provider; out-of-range writes are never rejected. Start and Stop only
// toggle the provider's bypass flag, they never deallocate the processor.
package node

import (
	"fmt"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
	"github.com/shaban/audiofx/events"
)

// Node wraps one audio component instance.
type Node struct {
	desc    components.Description
	handle  engine.Handle
	inputs  []*Node
	started bool
	values  map[string]float32
	bus     *events.Bus
}

// Option configures node construction.
type Option func(*config)

type config struct {
	values map[string]float32
	bus    *events.Bus
}

// WithParameter sets an initial value for the identified parameter. The
// value is clamped like any other write.
func WithParameter(identifier string, value float32) Option {
	return func(c *config) {
		c.values[identifier] = value
	}
}

// WithBus attaches an event bus; the node publishes parameter writes and
// lifecycle transitions to it.
func WithBus(b *events.Bus) Option {
	return func(c *config) {
		c.bus = b
	}
}

// New instantiates the described component on the engine and wraps it.
// Every writable parameter is pushed once during construction: the caller's
// initial value where given, the descriptor default otherwise. input may be
// nil for a head-of-chain node. Instantiation failure is fatal; no node
// exists without its processor.
func New(eng engine.Engine, desc components.Description, input *Node, opts ...Option) (*Node, error) {
	cfg := config{values: make(map[string]float32)}
	for _, o := range opts {
		o(&cfg)
	}

	handle, err := eng.Instantiate(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate %s: %w", desc.Name, err)
	}

	// Handles come up unbypassed; the node mirrors that.
	n := &Node{
		desc:    desc,
		handle:  handle,
		started: true,
		values:  make(map[string]float32, len(desc.Parameters)),
		bus:     cfg.bus,
	}

	for _, p := range desc.Parameters {
		if !p.IsWritable {
			continue
		}
		initial := p.DefaultValue
		if v, ok := cfg.values[p.Identifier]; ok {
			initial = v
		}
		if err := n.SetParameter(p.Identifier, initial); err != nil {
			handle.Release()
			return nil, fmt.Errorf("failed to initialize %s.%s: %w", desc.Name, p.Identifier, err)
		}
	}

	if input != nil {
		n.inputs = append(n.inputs, input)
	}

	return n, nil
}

// Description returns the component description the node was built from.
func (n *Node) Description() components.Description { return n.desc }

// Handle returns the underlying engine handle. It belongs to this node;
// callers must not release it.
func (n *Node) Handle() engine.Handle { return n.handle }

// Inputs returns the upstream nodes in connection order. The returned slice
// is a copy.
func (n *Node) Inputs() []*Node {
	inputs := make([]*Node, len(n.inputs))
	copy(inputs, n.inputs)
	return inputs
}

// ConnectInput appends an upstream node. The wrapper layer performs no cycle
// detection; chains are simple one-to-many linkages resolved by the provider
// at render time.
func (n *Node) ConnectInput(input *Node) {
	if input == nil {
		return
	}
	n.inputs = append(n.inputs, input)
}

// DisconnectInput removes an upstream node if present.
func (n *Node) DisconnectInput(input *Node) {
	for i, in := range n.inputs {
		if in == input {
			n.inputs = append(n.inputs[:i], n.inputs[i+1:]...)
			return
		}
	}
}

// SetParameter clamps the value to the parameter's declared range, caches
// it and forwards it to the provider. Out-of-range values are silently
// clamped, never rejected; writes to read-only parameters are.
func (n *Node) SetParameter(identifier string, value float32) error {
	p, err := n.desc.ParameterByIdentifier(identifier)
	if err != nil {
		return err
	}
	if !p.IsWritable {
		return &engine.ReadOnlyParameterError{Component: n.desc.Name, Identifier: identifier}
	}

	clamped := p.Clamp(value)
	if err := n.handle.SetParameter(p.Address, clamped); err != nil {
		return fmt.Errorf("failed to set %s.%s: %w", n.desc.Name, identifier, err)
	}
	n.values[identifier] = clamped

	if n.bus != nil {
		n.bus.Pub(events.ParameterEvent{
			Component:  n.desc.Name,
			Identifier: identifier,
			Value:      clamped,
		}, events.ParameterWritten)
	}
	return nil
}

// Parameter returns the last written (clamped) value for the identified
// writable parameter.
func (n *Node) Parameter(identifier string) (float32, error) {
	p, err := n.desc.ParameterByIdentifier(identifier)
	if err != nil {
		return 0, err
	}
	if !p.IsWritable {
		return n.EngineParameter(identifier)
	}
	return n.values[identifier], nil
}

// EngineParameter reads the provider's current value for the identified
// parameter. Read-only derived parameters always take this path; their
// values are never cached or clamped by the wrapper.
func (n *Node) EngineParameter(identifier string) (float32, error) {
	p, err := n.desc.ParameterByIdentifier(identifier)
	if err != nil {
		return 0, err
	}
	value, err := n.handle.GetParameter(p.Address)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s.%s: %w", n.desc.Name, identifier, err)
	}
	return value, nil
}

// Start unbypasses the underlying processor. Idempotent.
func (n *Node) Start() error {
	if n.started {
		return nil
	}
	if err := n.handle.SetBypass(false); err != nil {
		return fmt.Errorf("failed to start %s: %w", n.desc.Name, err)
	}
	n.started = true
	n.publishLifecycle(true)
	return nil
}

// Stop bypasses the underlying processor. The processor keeps running and
// passes input through unmodified; it is never deallocated here. Idempotent.
func (n *Node) Stop() error {
	if !n.started {
		return nil
	}
	if err := n.handle.SetBypass(true); err != nil {
		return fmt.Errorf("failed to stop %s: %w", n.desc.Name, err)
	}
	n.started = false
	n.publishLifecycle(false)
	return nil
}

// Started reports whether the node is currently processing (unbypassed).
func (n *Node) Started() bool { return n.started }

// Release frees the underlying processor. The node is unusable afterwards.
func (n *Node) Release() error {
	return n.handle.Release()
}

func (n *Node) publishLifecycle(started bool) {
	if n.bus == nil {
		return
	}
	ev := events.LifecycleEvent{Component: n.desc.Name, Started: started}
	if started {
		n.bus.Pub(ev, events.NodeStarted)
		return
	}
	n.bus.Pub(ev, events.NodeStopped)
}
