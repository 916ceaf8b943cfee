package algodsp

import (
	"github.com/cwbudde/algo-dsp/dsp/effects/modulation"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// Depth scaling from the wrapper's 0..1 fraction into modulation seconds.
const (
	maxChorusDepthSeconds  = 0.008
	maxFlangerDepthSeconds = 0.005
)

// chorusHandle drives the algo-dsp multi-voice chorus. The provider has no
// feedback path, so the feedback parameter is cached for readback only.
type chorusHandle struct {
	baseHandle
	chorus *modulation.Chorus
}

func newChorusHandle(desc components.Description, sampleRate float64) (*chorusHandle, error) {
	c, err := modulation.NewChorus()
	if err != nil {
		return nil, err
	}
	if err := c.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	h := &chorusHandle{baseHandle: newBaseHandle(desc), chorus: c}
	for _, p := range desc.Parameters {
		if err := h.apply(p.Address, p.DefaultValue); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *chorusHandle) apply(address uint64, value float32) error {
	switch address {
	case 0: // frequency, Hz
		return h.chorus.SetSpeedHz(float64(value))
	case 1: // depth, fraction
		return h.chorus.SetDepth(float64(value) * maxChorusDepthSeconds)
	case 2: // feedback, fraction; not modelled by this provider
		return nil
	case 3: // dryWetMix, fraction
		return h.chorus.SetMix(float64(value))
	}
	return nil
}

func (h *chorusHandle) SetParameter(address uint64, value float32) error {
	if err := h.storeParameter(address, value); err != nil {
		return err
	}
	return h.apply(address, value)
}

func (h *chorusHandle) GetParameter(address uint64) (float32, error) {
	return h.loadParameter(address)
}

func (h *chorusHandle) Release() error {
	h.chorus = nil
	return h.baseHandle.Release()
}

func (h *chorusHandle) ProcessInPlace(buf []float64) {
	if h.released || h.bypassed {
		return
	}
	h.chorus.ProcessInPlace(buf)
}

var _ engine.Handle = (*chorusHandle)(nil)

// flangerHandle drives the algo-dsp flanger.
type flangerHandle struct {
	baseHandle
	flanger *modulation.Flanger
}

func newFlangerHandle(desc components.Description, sampleRate float64) (*flangerHandle, error) {
	f, err := modulation.NewFlanger(sampleRate)
	if err != nil {
		return nil, err
	}
	h := &flangerHandle{baseHandle: newBaseHandle(desc), flanger: f}
	for _, p := range desc.Parameters {
		if err := h.apply(p.Address, p.DefaultValue); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *flangerHandle) apply(address uint64, value float32) error {
	switch address {
	case 0: // frequency, Hz
		return h.flanger.SetRateHz(float64(value))
	case 1: // depth, fraction
		return h.flanger.SetDepthSeconds(float64(value) * maxFlangerDepthSeconds)
	case 2: // feedback, fraction
		return h.flanger.SetFeedback(float64(value))
	case 3: // dryWetMix, fraction
		return h.flanger.SetMix(float64(value))
	}
	return nil
}

func (h *flangerHandle) SetParameter(address uint64, value float32) error {
	if err := h.storeParameter(address, value); err != nil {
		return err
	}
	return h.apply(address, value)
}

func (h *flangerHandle) GetParameter(address uint64) (float32, error) {
	return h.loadParameter(address)
}

func (h *flangerHandle) Release() error {
	h.flanger = nil
	return h.baseHandle.Release()
}

func (h *flangerHandle) ProcessInPlace(buf []float64) {
	if h.released || h.bypassed {
		return
	}
	_ = h.flanger.ProcessInPlace(buf)
}

var _ engine.Handle = (*flangerHandle)(nil)
