// Package chain composes effect nodes into a reorderable processing chain.
//
// Composition is a simple directed linkage: each node gets exactly one
// upstream input, the previous node in the chain. No topological sort, cycle
// detection or fan-in merge happens here; rendering through the linkage is
// the provider's job.
package chain

import (
	"fmt"
	"strings"

	"github.com/shaban/audiofx/engine"
	"github.com/shaban/audiofx/node"
)

// Chain represents a reorderable chain of effect nodes.
type Chain struct {
	name  string
	nodes []*node.Node
	eng   engine.Engine
}

// Config holds configuration for creating a chain.
type Config struct {
	Name   string
	Engine engine.Engine
}

// New creates a new empty chain.
func New(config Config) *Chain {
	return &Chain{
		name:  config.Name,
		nodes: make([]*node.Node, 0),
		eng:   config.Engine,
	}
}

// Engine returns the engine the chain instantiates its nodes on.
func (c *Chain) Engine() engine.Engine { return c.eng }

// Append adds a node to the end of the chain and wires its upstream input.
func (c *Chain) Append(n *node.Node) error {
	if n == nil {
		return fmt.Errorf("chain %s: cannot append nil node", c.name)
	}
	c.nodes = append(c.nodes, n)
	c.relink()
	return nil
}

// Insert inserts a node at the specified index.
func (c *Chain) Insert(index int, n *node.Node) error {
	if index < 0 || index > len(c.nodes) {
		return fmt.Errorf("invalid index %d for chain of length %d", index, len(c.nodes))
	}
	if n == nil {
		return fmt.Errorf("chain %s: cannot insert nil node", c.name)
	}
	c.nodes = append(c.nodes[:index], append([]*node.Node{n}, c.nodes[index:]...)...)
	c.relink()
	return nil
}

// Remove removes the node at the specified index and releases its processor.
func (c *Chain) Remove(index int) error {
	if index < 0 || index >= len(c.nodes) {
		return fmt.Errorf("invalid index %d for chain of length %d", index, len(c.nodes))
	}
	c.nodes[index].Release()
	c.nodes = append(c.nodes[:index], c.nodes[index+1:]...)
	c.relink()
	return nil
}

// Move moves a node from one position to another.
func (c *Chain) Move(fromIndex, toIndex int) error {
	if fromIndex < 0 || fromIndex >= len(c.nodes) {
		return fmt.Errorf("invalid fromIndex %d for chain of length %d", fromIndex, len(c.nodes))
	}
	if toIndex < 0 || toIndex >= len(c.nodes) {
		return fmt.Errorf("invalid toIndex %d for chain of length %d", toIndex, len(c.nodes))
	}
	if fromIndex == toIndex {
		return nil
	}

	n := c.nodes[fromIndex]
	c.nodes = append(c.nodes[:fromIndex], c.nodes[fromIndex+1:]...)
	c.nodes = append(c.nodes[:toIndex], append([]*node.Node{n}, c.nodes[toIndex:]...)...)
	c.relink()
	return nil
}

// Swap swaps two nodes in the chain.
func (c *Chain) Swap(index1, index2 int) error {
	if index1 < 0 || index1 >= len(c.nodes) {
		return fmt.Errorf("invalid index1 %d for chain of length %d", index1, len(c.nodes))
	}
	if index2 < 0 || index2 >= len(c.nodes) {
		return fmt.Errorf("invalid index2 %d for chain of length %d", index2, len(c.nodes))
	}
	if index1 == index2 {
		return nil
	}
	c.nodes[index1], c.nodes[index2] = c.nodes[index2], c.nodes[index1]
	c.relink()
	return nil
}

// SetParameter sets a parameter on a specific node in the chain. The node's
// cached value stays in sync because the write goes through the node itself.
func (c *Chain) SetParameter(index int, identifier string, value float32) error {
	if index < 0 || index >= len(c.nodes) {
		return fmt.Errorf("invalid node index %d for chain of length %d", index, len(c.nodes))
	}
	return c.nodes[index].SetParameter(identifier, value)
}

// GetParameter gets a parameter value from a specific node in the chain.
func (c *Chain) GetParameter(index int, identifier string) (float32, error) {
	if index < 0 || index >= len(c.nodes) {
		return 0, fmt.Errorf("invalid node index %d for chain of length %d", index, len(c.nodes))
	}
	return c.nodes[index].Parameter(identifier)
}

// relink rewires every node's upstream reference so that node i feeds
// node i+1. The head of the chain keeps no upstream.
func (c *Chain) relink() {
	for i, n := range c.nodes {
		for _, in := range n.Inputs() {
			n.DisconnectInput(in)
		}
		if i > 0 {
			n.ConnectInput(c.nodes[i-1])
		}
	}
}

// Start unbypasses every node in the chain. Idempotent.
func (c *Chain) Start() error {
	for _, n := range c.nodes {
		if err := n.Start(); err != nil {
			return err
		}
	}
	return nil
}

// Stop bypasses every node in the chain. Processors keep running. Idempotent.
func (c *Chain) Stop() error {
	for _, n := range c.nodes {
		if err := n.Stop(); err != nil {
			return err
		}
	}
	return nil
}

// InputNode returns the first node in the chain for external routing.
func (c *Chain) InputNode() (*node.Node, error) {
	if len(c.nodes) == 0 {
		return nil, fmt.Errorf("chain %s is empty", c.name)
	}
	return c.nodes[0], nil
}

// OutputNode returns the last node in the chain for external routing.
func (c *Chain) OutputNode() (*node.Node, error) {
	if len(c.nodes) == 0 {
		return nil, fmt.Errorf("chain %s is empty", c.name)
	}
	return c.nodes[len(c.nodes)-1], nil
}

// NodeAt returns the node at the specified index.
func (c *Chain) NodeAt(index int) (*node.Node, error) {
	if index < 0 || index >= len(c.nodes) {
		return nil, fmt.Errorf("invalid index %d for chain of length %d", index, len(c.nodes))
	}
	return c.nodes[index], nil
}

// Nodes returns the chain's nodes in processing order. The slice is a copy.
func (c *Chain) Nodes() []*node.Node {
	nodes := make([]*node.Node, len(c.nodes))
	copy(nodes, c.nodes)
	return nodes
}

// Len returns the number of nodes in the chain.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// IsEmpty returns true if the chain has no nodes.
func (c *Chain) IsEmpty() bool {
	return len(c.nodes) == 0
}

// Name returns the chain name.
func (c *Chain) Name() string {
	return c.name
}

// SetName updates the chain name.
func (c *Chain) SetName(name string) {
	c.name = name
}

// Clear removes all nodes from the chain and releases their processors.
func (c *Chain) Clear() {
	for _, n := range c.nodes {
		n.Release()
	}
	c.nodes = c.nodes[:0]
}

// Release releases all resources used by the chain.
func (c *Chain) Release() {
	c.Clear()
}

// NodeNames returns the component names in chain order.
func (c *Chain) NodeNames() []string {
	names := make([]string, len(c.nodes))
	for i, n := range c.nodes {
		names[i] = n.Description().Name
	}
	return names
}

// Summary returns a brief summary of the chain.
func (c *Chain) Summary() string {
	if len(c.nodes) == 0 {
		return fmt.Sprintf("Chain '%s': empty", c.name)
	}
	return fmt.Sprintf("Chain '%s': %d nodes [%s]", c.name, len(c.nodes),
		strings.Join(c.NodeNames(), " -> "))
}
