package node

import (
	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// DynamicsProcessor is a compressor/expander with metering.
type DynamicsProcessor struct {
	*Node
}

// NewDynamicsProcessor creates a dynamics processor node.
//
// Parameters:
//   - threshold: -100...20 dB, default -20
//   - headRoom: 0.1...40 dB, default 5
//   - expansionRatio: 1...50, default 2
//   - expansionThreshold: 1...50, default 2
//   - attackDuration: 0.0001...0.2 seconds, default 0.001
//   - releaseDuration: 0.01...3 seconds, default 0.05
//   - masterGain: -40...40 dB, default 0
//
// Read-only metering: compressionAmount, inputAmplitude, outputAmplitude.
func NewDynamicsProcessor(eng engine.Engine, input *Node, opts ...Option) (*DynamicsProcessor, error) {
	desc, err := components.Lookup(components.SubtypeDynamics)
	if err != nil {
		return nil, err
	}
	n, err := New(eng, desc, input, opts...)
	if err != nil {
		return nil, err
	}
	return &DynamicsProcessor{Node: n}, nil
}

// SetThreshold sets the compression threshold in dB.
func (d *DynamicsProcessor) SetThreshold(dB float32) error {
	return d.SetParameter(components.ParamThreshold, dB)
}

// Threshold returns the compression threshold in dB.
func (d *DynamicsProcessor) Threshold() float32 {
	v, _ := d.Parameter(components.ParamThreshold)
	return v
}

// SetHeadRoom sets the head room in dB.
func (d *DynamicsProcessor) SetHeadRoom(dB float32) error {
	return d.SetParameter(components.ParamHeadRoom, dB)
}

// HeadRoom returns the head room in dB.
func (d *DynamicsProcessor) HeadRoom() float32 {
	v, _ := d.Parameter(components.ParamHeadRoom)
	return v
}

// SetExpansionRatio sets the expansion ratio.
func (d *DynamicsProcessor) SetExpansionRatio(ratio float32) error {
	return d.SetParameter(components.ParamExpansionRatio, ratio)
}

// ExpansionRatio returns the expansion ratio.
func (d *DynamicsProcessor) ExpansionRatio() float32 {
	v, _ := d.Parameter(components.ParamExpansionRatio)
	return v
}

// SetExpansionThreshold sets the expansion threshold.
func (d *DynamicsProcessor) SetExpansionThreshold(threshold float32) error {
	return d.SetParameter(components.ParamExpansionThreshold, threshold)
}

// ExpansionThreshold returns the expansion threshold.
func (d *DynamicsProcessor) ExpansionThreshold() float32 {
	v, _ := d.Parameter(components.ParamExpansionThreshold)
	return v
}

// SetAttackDuration sets the attack time in seconds.
func (d *DynamicsProcessor) SetAttackDuration(seconds float32) error {
	return d.SetParameter(components.ParamAttackDuration, seconds)
}

// AttackDuration returns the attack time in seconds.
func (d *DynamicsProcessor) AttackDuration() float32 {
	v, _ := d.Parameter(components.ParamAttackDuration)
	return v
}

// SetReleaseDuration sets the release time in seconds.
func (d *DynamicsProcessor) SetReleaseDuration(seconds float32) error {
	return d.SetParameter(components.ParamReleaseDuration, seconds)
}

// ReleaseDuration returns the release time in seconds.
func (d *DynamicsProcessor) ReleaseDuration() float32 {
	v, _ := d.Parameter(components.ParamReleaseDuration)
	return v
}

// SetMasterGain sets the output gain in dB.
func (d *DynamicsProcessor) SetMasterGain(dB float32) error {
	return d.SetParameter(components.ParamMasterGain, dB)
}

// MasterGain returns the output gain in dB.
func (d *DynamicsProcessor) MasterGain() float32 {
	v, _ := d.Parameter(components.ParamMasterGain)
	return v
}

// CompressionAmount returns the provider-reported gain reduction in dB.
func (d *DynamicsProcessor) CompressionAmount() (float32, error) {
	return d.EngineParameter(components.ParamCompressionAmount)
}

// InputAmplitude returns the provider-reported input peak in dB.
func (d *DynamicsProcessor) InputAmplitude() (float32, error) {
	return d.EngineParameter(components.ParamInputAmplitude)
}

// OutputAmplitude returns the provider-reported output peak in dB.
func (d *DynamicsProcessor) OutputAmplitude() (float32, error) {
	return d.EngineParameter(components.ParamOutputAmplitude)
}

// WithThreshold sets the initial compression threshold in dB.
func WithThreshold(dB float32) Option {
	return WithParameter(components.ParamThreshold, dB)
}

// WithHeadRoom sets the initial head room in dB.
func WithHeadRoom(dB float32) Option {
	return WithParameter(components.ParamHeadRoom, dB)
}

// WithMasterGain sets the initial output gain in dB.
func WithMasterGain(dB float32) Option {
	return WithParameter(components.ParamMasterGain, dB)
}
