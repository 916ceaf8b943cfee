package algodsp

import (
	"github.com/chewxy/math32"
	"github.com/cwbudde/algo-dsp/dsp/effects"
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// The library's delay line cannot go fully to zero; a wrapper value of 0 s
// maps to its minimum.
const minProviderDelaySeconds = 0.001

// delayHandle drives the algo-dsp feedback delay. The wrapper's percent
// parameters are mapped to the provider's fractional setters, and the
// low-pass cutoff shapes the output through a trailing one-pole-style biquad
// (this provider applies it post-mix).
type delayHandle struct {
	baseHandle
	sampleRate float64
	delay      *effects.Delay
	tone       *biquad.Section
}

func newDelayHandle(desc components.Description, sampleRate float64) (*delayHandle, error) {
	d, err := effects.NewDelay(sampleRate)
	if err != nil {
		return nil, err
	}
	h := &delayHandle{
		baseHandle: newBaseHandle(desc),
		sampleRate: sampleRate,
		delay:      d,
	}
	for _, p := range desc.Parameters {
		if err := h.apply(p.Address, p.DefaultValue); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *delayHandle) apply(address uint64, value float32) error {
	switch address {
	case 0: // time, seconds
		t := float64(value)
		if t < minProviderDelaySeconds {
			t = minProviderDelaySeconds
		}
		return h.delay.SetTime(t)
	case 1: // feedback, percent; provider takes [0, 0.99]
		return h.delay.SetFeedback(float64(math32.Abs(value)) / 100 * 0.99)
	case 2: // lowPassCutoff, Hz
		freq := float64(value)
		nyquist := h.sampleRate / 2
		if freq >= nyquist {
			freq = nyquist * 0.999
		}
		h.tone = biquad.NewSection(design.Lowpass(freq, halfPowerQ, h.sampleRate))
		return nil
	case 3: // dryWetMix, percent
		return h.delay.SetMix(float64(value) / 100)
	}
	return nil
}

func (h *delayHandle) SetParameter(address uint64, value float32) error {
	if err := h.storeParameter(address, value); err != nil {
		return err
	}
	return h.apply(address, value)
}

func (h *delayHandle) GetParameter(address uint64) (float32, error) {
	return h.loadParameter(address)
}

func (h *delayHandle) Release() error {
	h.delay = nil
	h.tone = nil
	return h.baseHandle.Release()
}

func (h *delayHandle) ProcessInPlace(buf []float64) {
	if h.released || h.bypassed {
		return
	}
	h.delay.ProcessInPlace(buf)
	if h.tone != nil {
		h.tone.ProcessBlock(buf)
	}
}

var _ engine.Handle = (*delayHandle)(nil)
