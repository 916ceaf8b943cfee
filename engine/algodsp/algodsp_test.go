package algodsp

import (
	"errors"
	"math"
	"testing"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine"
)

func TestInstantiateAllRegisteredComponents(t *testing.T) {
	eng := New(WithSampleRate(48000))

	for _, desc := range components.All() {
		h, err := eng.Instantiate(desc)
		if err != nil {
			t.Fatalf("Instantiate(%s) failed: %v", desc.Name, err)
		}
		if h.Bypassed() {
			t.Errorf("%s: handle starts bypassed", desc.Name)
		}
		if _, ok := h.(interface{ ProcessInPlace([]float64) }); !ok {
			t.Errorf("%s: handle does not support offline processing", desc.Name)
		}
		if err := h.Release(); err != nil {
			t.Errorf("Release(%s) failed: %v", desc.Name, err)
		}
	}
}

func TestInstantiateUnknownComponent(t *testing.T) {
	eng := New()

	bogus := components.Description{Name: "Bogus", Type: components.TypeEffect, Subtype: "bogs"}
	if _, err := eng.Instantiate(bogus); err == nil {
		t.Error("expected error for unknown subtype")
	}

	wrongType := components.Description{Name: "Generator", Type: "augn", Subtype: components.SubtypeDelay}
	if _, err := eng.Instantiate(wrongType); err == nil {
		t.Error("expected error for unsupported component type")
	}
}

func TestParameterRoundTrip(t *testing.T) {
	eng := New()
	desc, err := components.Lookup(components.SubtypeDelay)
	if err != nil {
		t.Fatal(err)
	}
	h, err := eng.Instantiate(desc)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Release()

	p, err := desc.ParameterByIdentifier(components.ParamTime)
	if err != nil {
		t.Fatal(err)
	}

	if err := h.SetParameter(p.Address, 0.5); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}
	got, err := h.GetParameter(p.Address)
	if err != nil {
		t.Fatalf("GetParameter failed: %v", err)
	}
	if got != 0.5 {
		t.Errorf("GetParameter = %v, want 0.5", got)
	}

	if err := h.SetParameter(999, 1); err == nil {
		t.Error("expected error for unknown address")
	}
	if _, err := h.GetParameter(999); err == nil {
		t.Error("expected error for unknown address")
	}
}

func TestReleasedHandleFails(t *testing.T) {
	eng := New()
	desc, err := components.Lookup(components.SubtypeChorus)
	if err != nil {
		t.Fatal(err)
	}
	h, err := eng.Instantiate(desc)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Release(); err != nil {
		t.Fatal(err)
	}

	if err := h.SetParameter(0, 1); !errors.Is(err, engine.ErrReleased) {
		t.Errorf("SetParameter after release = %v, want ErrReleased", err)
	}
	if _, err := h.GetParameter(0); !errors.Is(err, engine.ErrReleased) {
		t.Errorf("GetParameter after release = %v, want ErrReleased", err)
	}
	if err := h.SetBypass(true); !errors.Is(err, engine.ErrReleased) {
		t.Errorf("SetBypass after release = %v, want ErrReleased", err)
	}
	if err := h.Release(); !errors.Is(err, engine.ErrReleased) {
		t.Errorf("double Release = %v, want ErrReleased", err)
	}
}

func TestBypassPassesInputThrough(t *testing.T) {
	eng := New()

	for _, desc := range components.All() {
		h, err := eng.Instantiate(desc)
		if err != nil {
			t.Fatalf("Instantiate(%s) failed: %v", desc.Name, err)
		}

		if err := h.SetBypass(true); err != nil {
			t.Fatalf("SetBypass(%s) failed: %v", desc.Name, err)
		}
		if !h.Bypassed() {
			t.Errorf("%s: Bypassed() = false after SetBypass(true)", desc.Name)
		}

		proc := h.(interface{ ProcessInPlace([]float64) })
		buf := make([]float64, 64)
		for i := range buf {
			buf[i] = math.Sin(2 * math.Pi * float64(i) / 64)
		}
		want := make([]float64, len(buf))
		copy(want, buf)

		proc.ProcessInPlace(buf)
		for i := range buf {
			if buf[i] != want[i] {
				t.Errorf("%s: bypassed processing modified sample %d: %v != %v",
					desc.Name, i, buf[i], want[i])
				break
			}
		}
		h.Release()
	}
}

func TestFilterAttenuatesAboveCutoff(t *testing.T) {
	const sampleRate = 44100.0
	eng := New(WithSampleRate(sampleRate))
	desc, err := components.Lookup(components.SubtypeLowPass)
	if err != nil {
		t.Fatal(err)
	}
	h, err := eng.Instantiate(desc)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Release()

	// Corner well below the test tone.
	if err := h.SetParameter(0, 200); err != nil {
		t.Fatal(err)
	}

	proc := h.(interface{ ProcessInPlace([]float64) })
	buf := make([]float64, 44100)
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * 5000 * float64(i) / sampleRate)
	}
	proc.ProcessInPlace(buf)

	// Skip the settling transient, then expect heavy attenuation.
	var peak float64
	for _, s := range buf[4410:] {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak > 0.01 {
		t.Errorf("5 kHz tone through 200 Hz low-pass peaks at %v, want < 0.01", peak)
	}
}

func TestDynamicsReadOnlyParameters(t *testing.T) {
	eng := New()
	desc, err := components.Lookup(components.SubtypeDynamics)
	if err != nil {
		t.Fatal(err)
	}
	h, err := eng.Instantiate(desc)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Release()

	meter, err := desc.ParameterByIdentifier(components.ParamCompressionAmount)
	if err != nil {
		t.Fatal(err)
	}

	var roErr *engine.ReadOnlyParameterError
	if err := h.SetParameter(meter.Address, 3); !errors.As(err, &roErr) {
		t.Errorf("writing %s = %v, want ReadOnlyParameterError", meter.Identifier, err)
	}

	// Drive a loud signal through a low threshold and expect reported
	// compression and amplitude.
	thr, _ := desc.ParameterByIdentifier(components.ParamThreshold)
	if err := h.SetParameter(thr.Address, -40); err != nil {
		t.Fatal(err)
	}

	proc := h.(interface{ ProcessInPlace([]float64) })
	buf := make([]float64, 8192)
	for i := range buf {
		buf[i] = 0.9 * math.Sin(2*math.Pi*440*float64(i)/44100)
	}
	proc.ProcessInPlace(buf)

	amount, err := h.GetParameter(meter.Address)
	if err != nil {
		t.Fatal(err)
	}
	if amount <= 0 {
		t.Errorf("compressionAmount = %v after loud signal, want > 0", amount)
	}

	in, _ := desc.ParameterByIdentifier(components.ParamInputAmplitude)
	inDB, err := h.GetParameter(in.Address)
	if err != nil {
		t.Fatal(err)
	}
	if inDB <= -40 || inDB > 0 {
		t.Errorf("inputAmplitude = %v dB for 0.9 peak input", inDB)
	}
}
