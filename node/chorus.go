package node

import (
	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// Chorus is a multi-voice modulated-delay effect.
type Chorus struct {
	*Node
}

// NewChorus creates a chorus node.
//
// Parameters:
//   - frequency: 0.1...10 Hz, default 1
//   - depth: 0...1, default 0
//   - feedback: 0...1, default 0
//   - dryWetMix: 0...1, default 0
func NewChorus(eng engine.Engine, input *Node, opts ...Option) (*Chorus, error) {
	desc, err := components.Lookup(components.SubtypeChorus)
	if err != nil {
		return nil, err
	}
	n, err := New(eng, desc, input, opts...)
	if err != nil {
		return nil, err
	}
	return &Chorus{Node: n}, nil
}

// SetFrequency sets the modulation frequency in Hz.
func (c *Chorus) SetFrequency(hz float32) error {
	return c.SetParameter(components.ParamFrequency, hz)
}

// Frequency returns the modulation frequency in Hz.
func (c *Chorus) Frequency() float32 {
	v, _ := c.Parameter(components.ParamFrequency)
	return v
}

// SetDepth sets the modulation depth as a fraction.
func (c *Chorus) SetDepth(depth float32) error {
	return c.SetParameter(components.ParamDepth, depth)
}

// Depth returns the modulation depth as a fraction.
func (c *Chorus) Depth() float32 {
	v, _ := c.Parameter(components.ParamDepth)
	return v
}

// SetFeedback sets the feedback amount as a fraction.
func (c *Chorus) SetFeedback(feedback float32) error {
	return c.SetParameter(components.ParamFeedback, feedback)
}

// Feedback returns the feedback amount as a fraction.
func (c *Chorus) Feedback() float32 {
	v, _ := c.Parameter(components.ParamFeedback)
	return v
}

// SetDryWetMix sets the wet amount as a fraction.
func (c *Chorus) SetDryWetMix(mix float32) error {
	return c.SetParameter(components.ParamDryWetMix, mix)
}

// DryWetMix returns the wet amount as a fraction.
func (c *Chorus) DryWetMix() float32 {
	v, _ := c.Parameter(components.ParamDryWetMix)
	return v
}

// WithFrequency sets the initial modulation frequency in Hz.
func WithFrequency(hz float32) Option {
	return WithParameter(components.ParamFrequency, hz)
}

// WithDepth sets the initial modulation depth.
func WithDepth(depth float32) Option {
	return WithParameter(components.ParamDepth, depth)
}

// WithFeedback sets the initial feedback amount.
func WithFeedback(feedback float32) Option {
	return WithParameter(components.ParamFeedback, feedback)
}

// WithDryWetMix sets the initial wet amount.
func WithDryWetMix(mix float32) Option {
	return WithParameter(components.ParamDryWetMix, mix)
}
