package node

import (
	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// Delay is a feedback delay line with a tone control on the delayed signal.
type Delay struct {
	*Node
}

// NewDelay creates a delay node.
//
// Parameters:
//   - time: 0...2 seconds, default 1
//   - feedback: -100...100 percent, default 50
//   - lowPassCutoff: 10...22050 Hz, default 15000
//   - dryWetMix: 0...100 percent, default 50
func NewDelay(eng engine.Engine, input *Node, opts ...Option) (*Delay, error) {
	desc, err := components.Lookup(components.SubtypeDelay)
	if err != nil {
		return nil, err
	}
	n, err := New(eng, desc, input, opts...)
	if err != nil {
		return nil, err
	}
	return &Delay{Node: n}, nil
}

// SetTime sets the delay time in seconds.
func (d *Delay) SetTime(seconds float32) error {
	return d.SetParameter(components.ParamTime, seconds)
}

// Time returns the delay time in seconds.
func (d *Delay) Time() float32 {
	v, _ := d.Parameter(components.ParamTime)
	return v
}

// SetFeedback sets the feedback amount in percent.
func (d *Delay) SetFeedback(percent float32) error {
	return d.SetParameter(components.ParamFeedback, percent)
}

// Feedback returns the feedback amount in percent.
func (d *Delay) Feedback() float32 {
	v, _ := d.Parameter(components.ParamFeedback)
	return v
}

// SetLowPassCutoff sets the cutoff in Hz of the filter on the delayed signal.
func (d *Delay) SetLowPassCutoff(hz float32) error {
	return d.SetParameter(components.ParamLowPassCutoff, hz)
}

// LowPassCutoff returns the cutoff in Hz of the filter on the delayed signal.
func (d *Delay) LowPassCutoff() float32 {
	v, _ := d.Parameter(components.ParamLowPassCutoff)
	return v
}

// SetDryWetMix sets the wet amount in percent.
func (d *Delay) SetDryWetMix(percent float32) error {
	return d.SetParameter(components.ParamDryWetMix, percent)
}

// DryWetMix returns the wet amount in percent.
func (d *Delay) DryWetMix() float32 {
	v, _ := d.Parameter(components.ParamDryWetMix)
	return v
}

// WithTime sets the initial delay time in seconds.
func WithTime(seconds float32) Option {
	return WithParameter(components.ParamTime, seconds)
}

// WithLowPassCutoff sets the initial cutoff of the delayed-signal filter.
func WithLowPassCutoff(hz float32) Option {
	return WithParameter(components.ParamLowPassCutoff, hz)
}
