package components

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestClamp(t *testing.T) {
	p := Parameter{
		Identifier:   "threshold",
		MinValue:     -100,
		MaxValue:     20,
		DefaultValue: -20,
		IsWritable:   true,
	}

	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"in range", -40, -40},
		{"at min", -100, -100},
		{"at max", 20, 20},
		{"below min", -200, -100},
		{"above max", 100, 20},
		{"negative infinity", math32.Inf(-1), -100},
		{"positive infinity", math32.Inf(1), 20},
		{"nan resolves to default", math32.NaN(), -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	p := Parameter{MinValue: 0, MaxValue: 1}
	if !p.Contains(0.5) || !p.Contains(0) || !p.Contains(1) {
		t.Error("Contains rejected in-range values")
	}
	if p.Contains(-0.01) || p.Contains(1.01) || p.Contains(math32.NaN()) {
		t.Error("Contains accepted out-of-range values")
	}
}

func TestNormalizedRoundTrip(t *testing.T) {
	p := Parameter{MinValue: 10, MaxValue: 22050, DefaultValue: 6900}

	if got := p.Normalized(10); got != 0 {
		t.Errorf("Normalized(min) = %v, want 0", got)
	}
	if got := p.Normalized(22050); got != 1 {
		t.Errorf("Normalized(max) = %v, want 1", got)
	}
	if got := p.FromNormalized(0); got != 10 {
		t.Errorf("FromNormalized(0) = %v, want 10", got)
	}
	if got := p.FromNormalized(1); got != 22050 {
		t.Errorf("FromNormalized(1) = %v, want 22050", got)
	}
	// Out-of-range positions clamp to the edges.
	if got := p.FromNormalized(-1); got != 10 {
		t.Errorf("FromNormalized(-1) = %v, want 10", got)
	}
	if got := p.FromNormalized(2); got != 22050 {
		t.Errorf("FromNormalized(2) = %v, want 22050", got)
	}
}

// Every registered parameter's default must lie within its declared range,
// and ranges must be properly ordered.
func TestRegistryParameterRanges(t *testing.T) {
	for _, d := range All() {
		for _, p := range d.Parameters {
			if p.MinValue >= p.MaxValue {
				t.Errorf("%s.%s: min %v >= max %v", d.Name, p.Identifier, p.MinValue, p.MaxValue)
			}
			if p.IsWritable && !p.Contains(p.DefaultValue) {
				t.Errorf("%s.%s: default %v outside [%v, %v]",
					d.Name, p.Identifier, p.DefaultValue, p.MinValue, p.MaxValue)
			}
		}
	}
}

func TestWritableFilter(t *testing.T) {
	d, err := Lookup(SubtypeDynamics)
	if err != nil {
		t.Fatal(err)
	}

	writable := Parameters(d.Parameters).Writable()
	if len(writable) != 7 {
		t.Errorf("dynamics processor has %d writable parameters, want 7: %v",
			len(writable), writable.Identifiers())
	}
	for _, p := range writable {
		if !p.IsWritable {
			t.Errorf("Writable() returned read-only parameter %s", p.Identifier)
		}
	}
}
