package components

import "fmt"

// Parameter identifiers shared across node types.
const (
	ParamHalfPowerPoint     = "halfPowerPoint"
	ParamTime               = "time"
	ParamFeedback           = "feedback"
	ParamLowPassCutoff      = "lowPassCutoff"
	ParamDryWetMix          = "dryWetMix"
	ParamFrequency          = "frequency"
	ParamDepth              = "depth"
	ParamThreshold          = "threshold"
	ParamHeadRoom           = "headRoom"
	ParamExpansionRatio     = "expansionRatio"
	ParamExpansionThreshold = "expansionThreshold"
	ParamAttackDuration     = "attackDuration"
	ParamReleaseDuration    = "releaseDuration"
	ParamMasterGain         = "masterGain"
	ParamCompressionAmount  = "compressionAmount"
	ParamInputAmplitude     = "inputAmplitude"
	ParamOutputAmplitude    = "outputAmplitude"
)

// registry maps effect subtypes to their component descriptions. Built once
// at init, read-only afterwards.
var registry map[string]Description

func init() {
	registry = make(map[string]Description)
	for _, d := range []Description{
		lowPassFilter(),
		highPassFilter(),
		delay(),
		chorus(),
		flanger(),
		dynamicsProcessor(),
	} {
		registry[d.Subtype] = d
	}
}

// Lookup returns the description registered for the given effect subtype.
func Lookup(subtype string) (Description, error) {
	d, ok := registry[subtype]
	if !ok {
		return Description{}, fmt.Errorf("no component registered for subtype %q", subtype)
	}
	return d, nil
}

// All returns the registered descriptions. The slice is a copy; the registry
// itself is never handed out.
func All() Descriptions {
	all := make(Descriptions, 0, len(registry))
	for _, subtype := range []string{
		SubtypeLowPass, SubtypeHighPass, SubtypeDelay,
		SubtypeChorus, SubtypeFlanger, SubtypeDynamics,
	} {
		all = append(all, registry[subtype])
	}
	return all
}

func effect(name, subtype string, params []Parameter) Description {
	return Description{
		Name:           name,
		ManufacturerID: ManufacturerID,
		Type:           TypeEffect,
		Subtype:        subtype,
		Category:       "Effect",
		Parameters:     params,
	}
}

func writable(identifier, displayName string, address uint64, min, max, def float32, unit string) Parameter {
	return Parameter{
		DisplayName:  displayName,
		Identifier:   identifier,
		Address:      address,
		MinValue:     min,
		MaxValue:     max,
		DefaultValue: def,
		Unit:         unit,
		IsWritable:   true,
		CanRamp:      true,
	}
}

func readOnly(identifier, displayName string, address uint64, min, max float32, unit string) Parameter {
	return Parameter{
		DisplayName: displayName,
		Identifier:  identifier,
		Address:     address,
		MinValue:    min,
		MaxValue:    max,
		Unit:        unit,
	}
}

func lowPassFilter() Description {
	return effect("Low Pass Filter", SubtypeLowPass, []Parameter{
		writable(ParamHalfPowerPoint, "Half-Power Point", 0, 10, 22050, 6900, UnitHertz),
	})
}

func highPassFilter() Description {
	return effect("High Pass Filter", SubtypeHighPass, []Parameter{
		writable(ParamHalfPowerPoint, "Half-Power Point", 0, 10, 22050, 80, UnitHertz),
	})
}

func delay() Description {
	return effect("Delay", SubtypeDelay, []Parameter{
		writable(ParamTime, "Delay Time", 0, 0, 2, 1, UnitSeconds),
		writable(ParamFeedback, "Feedback", 1, -100, 100, 50, UnitPercent),
		writable(ParamLowPassCutoff, "Low Pass Cutoff", 2, 10, 22050, 15000, UnitHertz),
		writable(ParamDryWetMix, "Dry/Wet Mix", 3, 0, 100, 50, UnitPercent),
	})
}

func chorus() Description {
	return effect("Chorus", SubtypeChorus, []Parameter{
		writable(ParamFrequency, "Modulation Frequency", 0, 0.1, 10, 1, UnitHertz),
		writable(ParamDepth, "Modulation Depth", 1, 0, 1, 0, UnitFraction),
		writable(ParamFeedback, "Feedback", 2, 0, 1, 0, UnitFraction),
		writable(ParamDryWetMix, "Dry/Wet Mix", 3, 0, 1, 0, UnitFraction),
	})
}

func flanger() Description {
	return effect("Flanger", SubtypeFlanger, []Parameter{
		writable(ParamFrequency, "Modulation Frequency", 0, 0.1, 10, 1, UnitHertz),
		writable(ParamDepth, "Modulation Depth", 1, 0, 1, 0.25, UnitFraction),
		writable(ParamFeedback, "Feedback", 2, -0.95, 0.95, 0, UnitFraction),
		writable(ParamDryWetMix, "Dry/Wet Mix", 3, 0, 1, 0.125, UnitFraction),
	})
}

func dynamicsProcessor() Description {
	return effect("Dynamics Processor", SubtypeDynamics, []Parameter{
		writable(ParamThreshold, "Threshold", 0, -100, 20, -20, UnitDecibels),
		writable(ParamHeadRoom, "Head Room", 1, 0.1, 40, 5, UnitDecibels),
		writable(ParamExpansionRatio, "Expansion Ratio", 2, 1, 50, 2, UnitGeneric),
		writable(ParamExpansionThreshold, "Expansion Threshold", 3, 1, 50, 2, UnitGeneric),
		writable(ParamAttackDuration, "Attack Duration", 4, 0.0001, 0.2, 0.001, UnitSeconds),
		writable(ParamReleaseDuration, "Release Duration", 5, 0.01, 3, 0.05, UnitSeconds),
		writable(ParamMasterGain, "Master Gain", 6, -40, 40, 0, UnitDecibels),
		readOnly(ParamCompressionAmount, "Compression Amount", 7, -40, 40, UnitDecibels),
		readOnly(ParamInputAmplitude, "Input Amplitude", 8, -40, 40, UnitDecibels),
		readOnly(ParamOutputAmplitude, "Output Amplitude", 9, -40, 40, UnitDecibels),
	})
}
