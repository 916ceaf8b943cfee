package components

import (
	"github.com/chewxy/math32"
)

// Parameter units. These mirror the unit vocabulary the wrapper layer
// documents on its typed setters.
const (
	UnitHertz    = "Hz"
	UnitSeconds  = "seconds"
	UnitDecibels = "dB"
	UnitFraction = "fraction"
	UnitPercent  = "percent"
	UnitGeneric  = "generic"
)

// Parameter represents a tunable control with its complete metadata.
// It is immutable once constructed and holds no value itself; nodes cache
// the current value per instance.
type Parameter struct {
	DisplayName  string  `json:"displayName"`
	Identifier   string  `json:"identifier"`
	Address      uint64  `json:"address"`
	MinValue     float32 `json:"minValue"`
	MaxValue     float32 `json:"maxValue"`
	DefaultValue float32 `json:"defaultValue"`
	Unit         string  `json:"unit"`
	IsWritable   bool    `json:"isWritable"`
	CanRamp      bool    `json:"canRamp"`
}

// Clamp bounds v to the parameter's declared range. NaN resolves to the
// default value so a bad write can never poison the cached state.
func (p Parameter) Clamp(v float32) float32 {
	if math32.IsNaN(v) {
		return p.DefaultValue
	}
	if v < p.MinValue {
		return p.MinValue
	}
	if v > p.MaxValue {
		return p.MaxValue
	}
	return v
}

// Contains reports whether v lies within the declared range.
func (p Parameter) Contains(v float32) bool {
	return !math32.IsNaN(v) && v >= p.MinValue && v <= p.MaxValue
}

// Normalized maps the current range position of v into [0, 1].
func (p Parameter) Normalized(v float32) float32 {
	if p.MaxValue <= p.MinValue {
		return 0
	}
	return (p.Clamp(v) - p.MinValue) / (p.MaxValue - p.MinValue)
}

// FromNormalized maps a [0, 1] position into the declared range.
// Out-of-range positions clamp to the range edges.
func (p Parameter) FromNormalized(pos float32) float32 {
	return p.Clamp(p.MinValue + pos*(p.MaxValue-p.MinValue))
}

// Parameters is a collection of parameter descriptors.
type Parameters []Parameter

// Writable returns the writable parameters in collection order.
func (ps Parameters) Writable() Parameters {
	var filtered Parameters
	for _, p := range ps {
		if p.IsWritable {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Identifiers returns the parameter identifiers in collection order.
func (ps Parameters) Identifiers() []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.Identifier
	}
	return ids
}
