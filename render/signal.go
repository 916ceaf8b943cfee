package render

import "math"

// Sine returns a source producing a sine wave at the given frequency and
// amplitude for the given sample rate.
func Sine(freqHz, amplitude, sampleRate float64) Source {
	step := 2 * math.Pi * freqHz / sampleRate
	return func(buf []float64, offset int) {
		for i := range buf {
			buf[i] = amplitude * math.Sin(step*float64(offset+i))
		}
	}
}

// Impulse returns a source producing a single unit impulse at sample zero
// followed by silence.
func Impulse() Source {
	return func(buf []float64, offset int) {
		for i := range buf {
			buf[i] = 0
		}
		if offset == 0 && len(buf) > 0 {
			buf[0] = 1
		}
	}
}

// Silence returns a source producing all-zero samples.
func Silence() Source {
	return func(buf []float64, offset int) {
		for i := range buf {
			buf[i] = 0
		}
	}
}

// MaxDifference returns the largest absolute per-sample difference between
// two waveforms. Waveforms of unequal length differ by at least the missing
// samples' magnitude.
func MaxDifference(a, b []float64) float64 {
	n := len(a)
	if len(b) > n {
		a, b = b, a
		n = len(a)
	}
	var max float64
	for i := 0; i < n; i++ {
		var d float64
		if i < len(b) {
			d = math.Abs(a[i] - b[i])
		} else {
			d = math.Abs(a[i])
		}
		if d > max {
			max = d
		}
	}
	return max
}

// RMS returns the root-mean-square level of a waveform.
func RMS(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	var sum float64
	for _, s := range buf {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(buf)))
}
