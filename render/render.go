// Package render is the offline render adapter. It pulls a source signal
// through a chain's processor handles for a fixed duration and captures the
// output samples, so a chain's audible behavior can be compared against a
// reference waveform.
//
// This adapter lives outside the wrapper core: it talks to the provider
// through an optional processing capability on the handle, not through the
// parameter channel.
package render

import (
	"fmt"
	"time"

	"github.com/shaban/audiofx/chain"
)

// Processor is the processing capability a provider handle may offer for
// offline rendering. Bypassed handles are expected to leave the buffer
// untouched.
type Processor interface {
	ProcessInPlace(buf []float64)
}

// Spec describes one offline render pass.
type Spec struct {
	SampleRate float64
	Duration   time.Duration
	BlockSize  int
}

// DefaultSpec returns a render spec for one second at 44100 Hz in blocks of
// 512 samples.
func DefaultSpec() Spec {
	return Spec{
		SampleRate: 44100,
		Duration:   time.Second,
		BlockSize:  512,
	}
}

// FrameCount returns the total number of samples the spec renders.
func (s Spec) FrameCount() int {
	return int(s.SampleRate * s.Duration.Seconds())
}

// Source produces the input signal, one block at a time. offset is the
// absolute sample position of buf[0].
type Source func(buf []float64, offset int)

// Render pulls the source through every node of the chain in processing
// order and returns the captured output. It fails if any node's handle does
// not offer the Processor capability.
func Render(c *chain.Chain, src Source, spec Spec) ([]float64, error) {
	if spec.SampleRate <= 0 {
		return nil, fmt.Errorf("render sample rate must be > 0: %f", spec.SampleRate)
	}
	if spec.BlockSize <= 0 {
		spec.BlockSize = DefaultSpec().BlockSize
	}

	procs := make([]Processor, 0, c.Len())
	for _, n := range c.Nodes() {
		p, ok := n.Handle().(Processor)
		if !ok {
			return nil, fmt.Errorf("node %s: handle does not support offline rendering", n.Description().Name)
		}
		procs = append(procs, p)
	}

	total := spec.FrameCount()
	out := make([]float64, 0, total)
	block := make([]float64, spec.BlockSize)

	for offset := 0; offset < total; offset += spec.BlockSize {
		n := spec.BlockSize
		if remaining := total - offset; remaining < n {
			n = remaining
		}
		buf := block[:n]
		src(buf, offset)
		for _, p := range procs {
			p.ProcessInPlace(buf)
		}
		out = append(out, buf...)
	}

	return out, nil
}
