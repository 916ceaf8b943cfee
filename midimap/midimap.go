// Package midimap binds MIDI control-change messages to node parameters.
// A bound controller's 0..127 value is scaled into the parameter's declared
// range and written through the node's clamped setter, so external control
// surfaces can never push a parameter out of range.
package midimap

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/shaban/audiofx/node"
)

// Binding maps one controller on one channel to one node parameter.
type Binding struct {
	Channel    uint8
	Controller uint8
	Target     *node.Node
	Identifier string
}

type bindingKey struct {
	channel    uint8
	controller uint8
}

// Map routes control-change messages to parameter writes.
type Map struct {
	bindings map[bindingKey]Binding
}

// NewMap creates an empty control map.
func NewMap() *Map {
	return &Map{bindings: make(map[bindingKey]Binding)}
}

// Bind routes the controller on the channel to the identified parameter of
// the target node. Binding a read-only or unknown parameter fails; binding
// an already-bound controller replaces the previous binding.
func (m *Map) Bind(channel, controller uint8, target *node.Node, identifier string) error {
	if target == nil {
		return fmt.Errorf("cannot bind controller %d to nil node", controller)
	}
	p, err := target.Description().ParameterByIdentifier(identifier)
	if err != nil {
		return err
	}
	if !p.IsWritable {
		return fmt.Errorf("cannot bind controller %d to read-only parameter %s.%s",
			controller, target.Description().Name, identifier)
	}

	m.bindings[bindingKey{channel, controller}] = Binding{
		Channel:    channel,
		Controller: controller,
		Target:     target,
		Identifier: identifier,
	}
	return nil
}

// Unbind removes the binding for the controller on the channel, if any.
func (m *Map) Unbind(channel, controller uint8) {
	delete(m.bindings, bindingKey{channel, controller})
}

// Bindings returns the number of active bindings.
func (m *Map) Bindings() int {
	return len(m.bindings)
}

// Handle routes a MIDI message. It returns true when the message was a
// control change with an active binding and the parameter write happened.
// Non-CC messages and unbound controllers are ignored.
func (m *Map) Handle(msg midi.Message) (bool, error) {
	var channel, controller, value uint8
	if !msg.GetControlChange(&channel, &controller, &value) {
		return false, nil
	}

	b, ok := m.bindings[bindingKey{channel, controller}]
	if !ok {
		return false, nil
	}

	p, err := b.Target.Description().ParameterByIdentifier(b.Identifier)
	if err != nil {
		return false, err
	}

	scaled := p.FromNormalized(float32(value) / 127)
	if err := b.Target.SetParameter(b.Identifier, scaled); err != nil {
		return false, err
	}
	return true, nil
}
