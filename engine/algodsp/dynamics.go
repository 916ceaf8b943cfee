package algodsp

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/effects/dynamics"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

// Provider-side bounds. The wrapper's declared ranges are wider for some
// parameters; values are folded into what the compressor accepts.
const (
	maxProviderKneeDB   = 24.0
	amplitudeFloorDB    = -40.0
	amplitudeCeilingDB  = 40.0
	silenceAmplitudeLin = 1e-4
)

// dynamicsHandle drives the algo-dsp soft-knee compressor. Head room maps to
// knee width, the expansion ratio to the compression ratio; the expansion
// threshold has no counterpart in this provider and is cached for readback.
// The three metering parameters are computed from the compressor's metrics on
// every read.
type dynamicsHandle struct {
	baseHandle
	comp *dynamics.Compressor
}

func newDynamicsHandle(desc components.Description, sampleRate float64) (*dynamicsHandle, error) {
	c, err := dynamics.NewCompressor(sampleRate)
	if err != nil {
		return nil, err
	}
	h := &dynamicsHandle{baseHandle: newBaseHandle(desc), comp: c}
	for _, p := range desc.Parameters {
		if !p.IsWritable {
			continue
		}
		if err := h.apply(p.Address, p.DefaultValue); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *dynamicsHandle) apply(address uint64, value float32) error {
	switch address {
	case 0: // threshold, dB
		return h.comp.SetThreshold(float64(value))
	case 1: // headRoom, dB; provider knee tops out at 24 dB
		knee := float64(value)
		if knee > maxProviderKneeDB {
			knee = maxProviderKneeDB
		}
		return h.comp.SetKnee(knee)
	case 2: // expansionRatio
		return h.comp.SetRatio(float64(value))
	case 3: // expansionThreshold; no counterpart in this provider
		return nil
	case 4: // attackDuration, seconds -> ms
		return h.comp.SetAttack(float64(value) * 1000)
	case 5: // releaseDuration, seconds -> ms
		return h.comp.SetRelease(float64(value) * 1000)
	case 6: // masterGain, dB
		return h.comp.SetMakeupGain(float64(value))
	}
	return nil
}

func (h *dynamicsHandle) SetParameter(address uint64, value float32) error {
	p, err := h.desc.ParameterByAddress(address)
	if err != nil {
		if h.released {
			return engine.ErrReleased
		}
		return err
	}
	if !p.IsWritable {
		return &engine.ReadOnlyParameterError{Component: h.desc.Name, Identifier: p.Identifier}
	}
	if err := h.storeParameter(address, value); err != nil {
		return err
	}
	return h.apply(address, value)
}

func (h *dynamicsHandle) GetParameter(address uint64) (float32, error) {
	if h.released {
		return 0, engine.ErrReleased
	}
	m := h.comp.GetMetrics()
	switch address {
	case 7: // compressionAmount, dB of reduction
		return gainReductionDB(m.GainReduction), nil
	case 8: // inputAmplitude, dBFS
		return amplitudeDB(m.InputPeak), nil
	case 9: // outputAmplitude, dBFS
		return amplitudeDB(m.OutputPeak), nil
	}
	return h.loadParameter(address)
}

func (h *dynamicsHandle) Release() error {
	h.comp = nil
	return h.baseHandle.Release()
}

func (h *dynamicsHandle) ProcessInPlace(buf []float64) {
	if h.released || h.bypassed {
		return
	}
	h.comp.ProcessInPlace(buf)
}

// gainReductionDB converts the metrics' minimum linear gain into positive
// decibels of reduction.
func gainReductionDB(gain float64) float32 {
	if gain <= 0 || gain >= 1 {
		return 0
	}
	return float32(-20 * math.Log10(gain))
}

// amplitudeDB converts a linear peak into dBFS, floored for silence.
func amplitudeDB(peak float64) float32 {
	if peak < silenceAmplitudeLin {
		return amplitudeFloorDB
	}
	db := 20 * math.Log10(peak)
	if db < amplitudeFloorDB {
		return amplitudeFloorDB
	}
	if db > amplitudeCeilingDB {
		return amplitudeCeilingDB
	}
	return float32(db)
}

var _ engine.Handle = (*dynamicsHandle)(nil)
