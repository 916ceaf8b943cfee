package algodsp

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// Butterworth Q, -3 dB at the corner frequency.
const halfPowerQ = math.Sqrt2 / 2

// filterHandle drives a single RBJ biquad section. The half-power point is
// the only exposed parameter; writes redesign the coefficients in place so
// the filter state survives parameter changes.
type filterHandle struct {
	baseHandle
	sampleRate float64
	highpass   bool
	chain      *biquad.Chain
}

func newFilterHandle(desc components.Description, sampleRate float64, highpass bool) (*filterHandle, error) {
	h := &filterHandle{
		baseHandle: newBaseHandle(desc),
		sampleRate: sampleRate,
		highpass:   highpass,
	}
	h.chain = biquad.NewChain(h.coefficients(float64(h.values[0])))
	return h, nil
}

func (h *filterHandle) coefficients(freq float64) []biquad.Coefficients {
	// Keep the corner below Nyquist regardless of what the wrapper forwards.
	nyquist := h.sampleRate / 2
	if freq >= nyquist {
		freq = nyquist * 0.999
	}
	if freq < 1 {
		freq = 1
	}
	if h.highpass {
		return []biquad.Coefficients{design.Highpass(freq, halfPowerQ, h.sampleRate)}
	}
	return []biquad.Coefficients{design.Lowpass(freq, halfPowerQ, h.sampleRate)}
}

func (h *filterHandle) SetParameter(address uint64, value float32) error {
	if err := h.storeParameter(address, value); err != nil {
		return err
	}
	for i, c := range h.coefficients(float64(value)) {
		h.chain.Section(i).Coefficients = c
	}
	return nil
}

func (h *filterHandle) GetParameter(address uint64) (float32, error) {
	return h.loadParameter(address)
}

func (h *filterHandle) Release() error {
	h.chain = nil
	return h.baseHandle.Release()
}

// ProcessInPlace filters buf through the biquad section. Bypassed handles
// leave the buffer untouched.
func (h *filterHandle) ProcessInPlace(buf []float64) {
	if h.released || h.bypassed {
		return
	}
	h.chain.ProcessBlock(buf)
}

var _ engine.Handle = (*filterHandle)(nil)
