package chain

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/node"
)

// Preset format version.
const presetVersion = "1.0.0"

// Preset is the serializable snapshot of a chain: its name and the ordered
// node list with every writable parameter's current value. Read-only
// metering values are transient and never captured.
type Preset struct {
	Version string       `json:"version"`
	Name    string       `json:"name"`
	Nodes   []NodePreset `json:"nodes"`
}

// NodePreset captures one node's component subtype and parameter values.
type NodePreset struct {
	Subtype    string             `json:"subtype"`
	Parameters map[string]float32 `json:"parameters"`
}

// Preset captures the chain's current state.
func (c *Chain) Preset() Preset {
	p := Preset{
		Version: presetVersion,
		Name:    c.name,
		Nodes:   make([]NodePreset, 0, len(c.nodes)),
	}
	for _, n := range c.nodes {
		desc := n.Description()
		np := NodePreset{
			Subtype:    desc.Subtype,
			Parameters: make(map[string]float32),
		}
		for _, param := range desc.Parameters {
			if !param.IsWritable {
				continue
			}
			v, err := n.Parameter(param.Identifier)
			if err != nil {
				continue
			}
			np.Parameters[param.Identifier] = v
		}
		p.Nodes = append(p.Nodes, np)
	}
	return p
}

// Validate checks a preset before it is applied: version compatibility,
// known component subtypes, and known writable parameters.
func (p Preset) Validate() error {
	if p.Version != presetVersion {
		return fmt.Errorf("incompatible preset version: got %s, expected %s", p.Version, presetVersion)
	}
	for i, np := range p.Nodes {
		desc, err := components.Lookup(np.Subtype)
		if err != nil {
			return fmt.Errorf("preset node %d: %w", i, err)
		}
		for identifier := range np.Parameters {
			param, err := desc.ParameterByIdentifier(identifier)
			if err != nil {
				return fmt.Errorf("preset node %d (%s): %w", i, desc.Name, err)
			}
			if !param.IsWritable {
				return fmt.Errorf("preset node %d (%s): parameter %s is read-only",
					i, desc.Name, identifier)
			}
		}
	}
	return nil
}

// ApplyPreset replaces the chain's contents with the preset's nodes. The
// existing nodes are released. Values outside a parameter's range clamp on
// write like any other parameter write.
func (c *Chain) ApplyPreset(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if c.eng == nil {
		return fmt.Errorf("chain %s has no engine reference", c.name)
	}

	nodes := make([]*node.Node, 0, len(p.Nodes))
	for i, np := range p.Nodes {
		desc, err := components.Lookup(np.Subtype)
		if err != nil {
			return fmt.Errorf("preset node %d: %w", i, err)
		}
		opts := make([]node.Option, 0, len(np.Parameters))
		for identifier, value := range np.Parameters {
			opts = append(opts, node.WithParameter(identifier, value))
		}
		n, err := node.New(c.eng, desc, nil, opts...)
		if err != nil {
			for _, built := range nodes {
				built.Release()
			}
			return fmt.Errorf("failed to restore preset node %d (%s): %w", i, desc.Name, err)
		}
		nodes = append(nodes, n)
	}

	c.Clear()
	c.name = p.Name
	c.nodes = nodes
	c.relink()
	return nil
}

// SavePreset writes the chain's preset to the writer as indented JSON.
func (c *Chain) SavePreset(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.Preset()); err != nil {
		return fmt.Errorf("failed to encode preset for chain %s: %w", c.name, err)
	}
	return nil
}

// LoadPreset reads a JSON preset from the reader and applies it.
func (c *Chain) LoadPreset(r io.Reader) error {
	var p Preset
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return fmt.Errorf("failed to decode preset: %w", err)
	}
	return c.ApplyPreset(p)
}
