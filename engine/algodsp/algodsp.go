// Package algodsp is the bundled reference provider behind the engine
// boundary. It builds the registered effect components on top of the
// algo-dsp library and maps wrapper parameter addresses onto the library's
// typed setters.
//
// The wrapper layer depends only on the interfaces in package engine; this
// package stands in for a platform-native audio engine. Handles additionally
// implement ProcessInPlace so an offline render adapter can pull audio
// through them.
package algodsp

import (
	"fmt"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

const defaultSampleRate = 44100.0

// Engine instantiates effect components backed by algo-dsp processors.
type Engine struct {
	sampleRate float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSampleRate sets the render sample rate for all components the engine
// instantiates. Defaults to 44100 Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(e *Engine) {
		e.sampleRate = sampleRate
	}
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{sampleRate: defaultSampleRate}
	for _, o := range opts {
		o(e)
	}
	return e
}

// SampleRate returns the engine's render sample rate.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Instantiate builds the processor for the given component description.
// Unknown components fail; the caller treats that as fatal.
func (e *Engine) Instantiate(desc components.Description) (engine.Handle, error) {
	if desc.Type != components.TypeEffect {
		return nil, fmt.Errorf("algodsp: unsupported component type %q", desc.Type)
	}

	switch desc.Subtype {
	case components.SubtypeLowPass:
		return newFilterHandle(desc, e.sampleRate, false)
	case components.SubtypeHighPass:
		return newFilterHandle(desc, e.sampleRate, true)
	case components.SubtypeDelay:
		return newDelayHandle(desc, e.sampleRate)
	case components.SubtypeChorus:
		return newChorusHandle(desc, e.sampleRate)
	case components.SubtypeFlanger:
		return newFlangerHandle(desc, e.sampleRate)
	case components.SubtypeDynamics:
		return newDynamicsHandle(desc, e.sampleRate)
	}
	return nil, fmt.Errorf("algodsp: no processor for component %s (%s)", desc.Name, desc.Subtype)
}

// baseHandle carries the state every processor handle shares: the component
// description, the cached parameter values and the bypass/release flags.
type baseHandle struct {
	desc     components.Description
	values   map[uint64]float32
	bypassed bool
	released bool
}

func newBaseHandle(desc components.Description) baseHandle {
	values := make(map[uint64]float32, len(desc.Parameters))
	for _, p := range desc.Parameters {
		values[p.Address] = p.DefaultValue
	}
	return baseHandle{desc: desc, values: values}
}

func (h *baseHandle) storeParameter(address uint64, value float32) error {
	if h.released {
		return engine.ErrReleased
	}
	if _, err := h.desc.ParameterByAddress(address); err != nil {
		return err
	}
	h.values[address] = value
	return nil
}

func (h *baseHandle) loadParameter(address uint64) (float32, error) {
	if h.released {
		return 0, engine.ErrReleased
	}
	if _, err := h.desc.ParameterByAddress(address); err != nil {
		return 0, err
	}
	return h.values[address], nil
}

func (h *baseHandle) SetBypass(bypass bool) error {
	if h.released {
		return engine.ErrReleased
	}
	h.bypassed = bypass
	return nil
}

func (h *baseHandle) Bypassed() bool { return h.bypassed }

func (h *baseHandle) Release() error {
	if h.released {
		return engine.ErrReleased
	}
	h.released = true
	h.values = nil
	return nil
}
