package chain

import (
	"fmt"
	"sort"

	"github.com/shaban/audiofx/engine"
)

// Manager manages multiple named chains over a shared engine.
type Manager struct {
	chains map[string]*Chain
	eng    engine.Engine
}

// ManagerConfig holds configuration for creating a chain manager.
type ManagerConfig struct {
	Engine engine.Engine
}

// NewManager creates a manager for multiple named chains.
func NewManager(config ManagerConfig) *Manager {
	return &Manager{
		chains: make(map[string]*Chain),
		eng:    config.Engine,
	}
}

// CreateChain creates a new named chain.
func (m *Manager) CreateChain(name string) (*Chain, error) {
	if name == "" {
		return nil, fmt.Errorf("chain name cannot be empty")
	}
	if _, exists := m.chains[name]; exists {
		return nil, fmt.Errorf("chain '%s' already exists", name)
	}
	if m.eng == nil {
		return nil, fmt.Errorf("chain manager has no engine reference")
	}

	c := New(Config{Name: name, Engine: m.eng})
	m.chains[name] = c
	return c, nil
}

// GetChain retrieves a chain by name.
func (m *Manager) GetChain(name string) (*Chain, error) {
	c, exists := m.chains[name]
	if !exists {
		return nil, fmt.Errorf("chain '%s' not found", name)
	}
	return c, nil
}

// DeleteChain removes a chain by name and releases its nodes.
func (m *Manager) DeleteChain(name string) error {
	c, exists := m.chains[name]
	if !exists {
		return fmt.Errorf("chain '%s' not found", name)
	}
	c.Release()
	delete(m.chains, name)
	return nil
}

// RenameChain changes the name of an existing chain.
func (m *Manager) RenameChain(oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("chain name cannot be empty")
	}
	c, exists := m.chains[oldName]
	if !exists {
		return fmt.Errorf("chain '%s' not found", oldName)
	}
	if _, exists := m.chains[newName]; exists {
		return fmt.Errorf("chain '%s' already exists", newName)
	}

	c.SetName(newName)
	m.chains[newName] = c
	delete(m.chains, oldName)
	return nil
}

// ChainNames returns the names of all managed chains, sorted.
func (m *Manager) ChainNames() []string {
	names := make([]string, 0, len(m.chains))
	for name := range m.chains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChainCount returns the number of managed chains.
func (m *Manager) ChainCount() int {
	return len(m.chains)
}

// Release releases all managed chains.
func (m *Manager) Release() {
	for name, c := range m.chains {
		c.Release()
		delete(m.chains, name)
	}
}
