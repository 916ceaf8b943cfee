package chain

import (
	"reflect"
	"testing"

	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine/algodsp"
)

func TestCreateAndGetChain(t *testing.T) {
	m := NewManager(ManagerConfig{Engine: algodsp.New()})
	defer m.Release()

	c, err := m.CreateChain("vocals")
	if err != nil {
		t.Fatalf("CreateChain failed: %v", err)
	}
	if c.Name() != "vocals" {
		t.Errorf("chain name = %q", c.Name())
	}

	got, err := m.GetChain("vocals")
	if err != nil {
		t.Fatalf("GetChain failed: %v", err)
	}
	if got != c {
		t.Error("GetChain returned a different chain")
	}

	if _, err := m.CreateChain("vocals"); err == nil {
		t.Error("expected error for duplicate chain name")
	}
	if _, err := m.CreateChain(""); err == nil {
		t.Error("expected error for empty chain name")
	}
	if _, err := m.GetChain("missing"); err == nil {
		t.Error("expected error for unknown chain")
	}
}

func TestCreateChainWithoutEngine(t *testing.T) {
	m := NewManager(ManagerConfig{})
	if _, err := m.CreateChain("orphan"); err == nil {
		t.Error("expected error creating chain without an engine")
	}
}

func TestDeleteChainReleasesNodes(t *testing.T) {
	m := NewManager(ManagerConfig{Engine: algodsp.New()})
	defer m.Release()

	c, err := m.CreateChain("drums")
	if err != nil {
		t.Fatal(err)
	}
	n := mustNode(t, c, components.SubtypeDynamics)
	c.Append(n)

	if err := m.DeleteChain("drums"); err != nil {
		t.Fatalf("DeleteChain failed: %v", err)
	}
	if _, err := m.GetChain("drums"); err == nil {
		t.Error("chain still retrievable after delete")
	}
	if err := n.Release(); err == nil {
		t.Error("node handle still alive after DeleteChain")
	}

	if err := m.DeleteChain("drums"); err == nil {
		t.Error("expected error deleting unknown chain")
	}
}

func TestRenameChain(t *testing.T) {
	m := NewManager(ManagerConfig{Engine: algodsp.New()})
	defer m.Release()

	if _, err := m.CreateChain("old"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateChain("taken"); err != nil {
		t.Fatal(err)
	}

	if err := m.RenameChain("old", "new"); err != nil {
		t.Fatalf("RenameChain failed: %v", err)
	}
	c, err := m.GetChain("new")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "new" {
		t.Errorf("chain name = %q after rename", c.Name())
	}
	if _, err := m.GetChain("old"); err == nil {
		t.Error("old name still resolves after rename")
	}

	if err := m.RenameChain("new", "taken"); err == nil {
		t.Error("expected error renaming onto existing name")
	}
	if err := m.RenameChain("missing", "x"); err == nil {
		t.Error("expected error renaming unknown chain")
	}
	if err := m.RenameChain("new", ""); err == nil {
		t.Error("expected error renaming to empty name")
	}
}

func TestChainNamesSorted(t *testing.T) {
	m := NewManager(ManagerConfig{Engine: algodsp.New()})
	defer m.Release()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := m.CreateChain(name); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"alpha", "mid", "zeta"}
	if got := m.ChainNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ChainNames() = %v, want %v", got, want)
	}
	if m.ChainCount() != 3 {
		t.Errorf("ChainCount() = %d, want 3", m.ChainCount())
	}

	m.Release()
	if m.ChainCount() != 0 {
		t.Errorf("ChainCount() = %d after Release, want 0", m.ChainCount())
	}
}
