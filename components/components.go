// Package components describes the audio-processing components the wrapper
// layer can instantiate and the parameters each one exposes.
//
// Model:
//   - A Description identifies a component by four-character codes
//     (type, subtype, manufacturer) and carries its parameter descriptors.
//   - The package-level registry maps the built-in effect subtypes to their
//     Descriptions. It is populated once at init and read-only afterwards.
//   - Descriptions collections get chainable filters (ByType/ByCategory/ByName)
//     for discovery-style usage.
package components

import (
	"fmt"
	"strings"
)

// Component type codes (four-character codes, OSType style)
const (
	TypeEffect = "aufx"
)

// ManufacturerID identifies the bundled reference provider.
const ManufacturerID = "adsp"

// Effect subtypes understood by the registry.
const (
	SubtypeLowPass   = "lpas"
	SubtypeHighPass  = "hpas"
	SubtypeDelay     = "dely"
	SubtypeChorus    = "chrs"
	SubtypeFlanger   = "flgr"
	SubtypeDynamics  = "dcmp"
)

// Description represents an audio component with its complete metadata and
// parameter descriptors.
type Description struct {
	Name           string      `json:"name"`
	ManufacturerID string      `json:"manufacturerID"`
	Type           string      `json:"type"`
	Subtype        string      `json:"subtype"`
	Category       string      `json:"category"`
	Parameters     []Parameter `json:"parameters"`
}

// Descriptions represents a collection of Description objects with filtering methods
type Descriptions []Description

// ParameterByIdentifier returns the parameter descriptor with the given
// identifier.
func (d Description) ParameterByIdentifier(identifier string) (Parameter, error) {
	for _, p := range d.Parameters {
		if p.Identifier == identifier {
			return p, nil
		}
	}
	return Parameter{}, fmt.Errorf("component %s has no parameter %q", d.Name, identifier)
}

// ParameterByAddress returns the parameter descriptor with the given address.
func (d Description) ParameterByAddress(address uint64) (Parameter, error) {
	for _, p := range d.Parameters {
		if p.Address == address {
			return p, nil
		}
	}
	return Parameter{}, fmt.Errorf("component %s has no parameter at address %d", d.Name, address)
}

// OSType packs the component's subtype code into a uint32.
func (d Description) OSType() uint32 {
	return StringToOSType(d.Subtype)
}

// StringToOSType converts a 4-character code to OSType (uint32)
func StringToOSType(s string) uint32 {
	if len(s) != 4 {
		return 0
	}
	return uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3])
}

// OSTypeToString converts an OSType back to its 4-character code.
func OSTypeToString(t uint32) string {
	if t == 0 {
		return ""
	}
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// Filter methods for Descriptions collection

// ByManufacturer returns descriptions from a specific manufacturer ID
func (ds Descriptions) ByManufacturer(manufacturerID string) Descriptions {
	var filtered Descriptions
	for _, d := range ds {
		if d.ManufacturerID == manufacturerID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// ByType returns descriptions of a specific type (e.g., "aufx")
func (ds Descriptions) ByType(componentType string) Descriptions {
	var filtered Descriptions
	for _, d := range ds {
		if d.Type == componentType {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// ByCategory returns descriptions of a specific category (e.g., "Effect")
func (ds Descriptions) ByCategory(category string) Descriptions {
	var filtered Descriptions
	for _, d := range ds {
		if d.Category == category {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// ByName returns descriptions matching a name pattern (case-insensitive substring)
func (ds Descriptions) ByName(namePattern string) Descriptions {
	var filtered Descriptions
	for _, d := range ds {
		if strings.Contains(strings.ToLower(d.Name), strings.ToLower(namePattern)) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// Names returns the component names in collection order.
func (ds Descriptions) Names() []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}
