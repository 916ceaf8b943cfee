package node

import (
	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// LowPassFilter attenuates frequencies above its half-power point.
type LowPassFilter struct {
	*Node
}

// NewLowPassFilter creates a low-pass filter node.
//
// Parameters:
//   - halfPowerPoint: 10...22050 Hz, default 6900
func NewLowPassFilter(eng engine.Engine, input *Node, opts ...Option) (*LowPassFilter, error) {
	desc, err := components.Lookup(components.SubtypeLowPass)
	if err != nil {
		return nil, err
	}
	n, err := New(eng, desc, input, opts...)
	if err != nil {
		return nil, err
	}
	return &LowPassFilter{Node: n}, nil
}

// SetHalfPowerPoint sets the -3 dB corner frequency in Hz.
func (f *LowPassFilter) SetHalfPowerPoint(hz float32) error {
	return f.SetParameter(components.ParamHalfPowerPoint, hz)
}

// HalfPowerPoint returns the -3 dB corner frequency in Hz.
func (f *LowPassFilter) HalfPowerPoint() float32 {
	v, _ := f.Parameter(components.ParamHalfPowerPoint)
	return v
}

// HighPassFilter attenuates frequencies below its half-power point.
type HighPassFilter struct {
	*Node
}

// NewHighPassFilter creates a high-pass filter node.
//
// Parameters:
//   - halfPowerPoint: 10...22050 Hz, default 80
func NewHighPassFilter(eng engine.Engine, input *Node, opts ...Option) (*HighPassFilter, error) {
	desc, err := components.Lookup(components.SubtypeHighPass)
	if err != nil {
		return nil, err
	}
	n, err := New(eng, desc, input, opts...)
	if err != nil {
		return nil, err
	}
	return &HighPassFilter{Node: n}, nil
}

// SetHalfPowerPoint sets the -3 dB corner frequency in Hz.
func (f *HighPassFilter) SetHalfPowerPoint(hz float32) error {
	return f.SetParameter(components.ParamHalfPowerPoint, hz)
}

// HalfPowerPoint returns the -3 dB corner frequency in Hz.
func (f *HighPassFilter) HalfPowerPoint() float32 {
	v, _ := f.Parameter(components.ParamHalfPowerPoint)
	return v
}

// WithHalfPowerPoint sets the initial -3 dB corner frequency in Hz.
func WithHalfPowerPoint(hz float32) Option {
	return WithParameter(components.ParamHalfPowerPoint, hz)
}
