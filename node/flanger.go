package node

import (
	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// Flanger is a short modulated-delay effect with feedback.
type Flanger struct {
	*Node
}

// NewFlanger creates a flanger node.
//
// Parameters:
//   - frequency: 0.1...10 Hz, default 1
//   - depth: 0...1, default 0.25
//   - feedback: -0.95...0.95, default 0
//   - dryWetMix: 0...1, default 0.125
func NewFlanger(eng engine.Engine, input *Node, opts ...Option) (*Flanger, error) {
	desc, err := components.Lookup(components.SubtypeFlanger)
	if err != nil {
		return nil, err
	}
	n, err := New(eng, desc, input, opts...)
	if err != nil {
		return nil, err
	}
	return &Flanger{Node: n}, nil
}

// SetFrequency sets the modulation frequency in Hz.
func (f *Flanger) SetFrequency(hz float32) error {
	return f.SetParameter(components.ParamFrequency, hz)
}

// Frequency returns the modulation frequency in Hz.
func (f *Flanger) Frequency() float32 {
	v, _ := f.Parameter(components.ParamFrequency)
	return v
}

// SetDepth sets the modulation depth as a fraction.
func (f *Flanger) SetDepth(depth float32) error {
	return f.SetParameter(components.ParamDepth, depth)
}

// Depth returns the modulation depth as a fraction.
func (f *Flanger) Depth() float32 {
	v, _ := f.Parameter(components.ParamDepth)
	return v
}

// SetFeedback sets the feedback amount; negative values invert polarity.
func (f *Flanger) SetFeedback(feedback float32) error {
	return f.SetParameter(components.ParamFeedback, feedback)
}

// Feedback returns the feedback amount.
func (f *Flanger) Feedback() float32 {
	v, _ := f.Parameter(components.ParamFeedback)
	return v
}

// SetDryWetMix sets the wet amount as a fraction.
func (f *Flanger) SetDryWetMix(mix float32) error {
	return f.SetParameter(components.ParamDryWetMix, mix)
}

// DryWetMix returns the wet amount as a fraction.
func (f *Flanger) DryWetMix() float32 {
	v, _ := f.Parameter(components.ParamDryWetMix)
	return v
}
