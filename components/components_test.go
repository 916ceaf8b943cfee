package components

import "testing"

func TestStringToOSType(t *testing.T) {
	tests := []struct {
		code string
		want uint32
	}{
		{"aufx", 0x61756678},
		{"dely", 0x64656c79},
		{"", 0},
		{"toolong", 0},
	}

	for _, tt := range tests {
		if got := StringToOSType(tt.code); got != tt.want {
			t.Errorf("StringToOSType(%q) = %#x, want %#x", tt.code, got, tt.want)
		}
	}
}

func TestOSTypeRoundTrip(t *testing.T) {
	for _, code := range []string{"aufx", "lpas", "hpas", "dely", "chrs", "flgr", "dcmp"} {
		packed := StringToOSType(code)
		if packed == 0 {
			t.Fatalf("StringToOSType(%q) returned 0", code)
		}
		if got := OSTypeToString(packed); got != code {
			t.Errorf("OSTypeToString(StringToOSType(%q)) = %q", code, got)
		}
	}
}

func TestLookupKnownSubtypes(t *testing.T) {
	for _, subtype := range []string{
		SubtypeLowPass, SubtypeHighPass, SubtypeDelay,
		SubtypeChorus, SubtypeFlanger, SubtypeDynamics,
	} {
		d, err := Lookup(subtype)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", subtype, err)
		}
		if d.Subtype != subtype {
			t.Errorf("Lookup(%q) returned subtype %q", subtype, d.Subtype)
		}
		if d.Type != TypeEffect {
			t.Errorf("%s: type = %q, want %q", d.Name, d.Type, TypeEffect)
		}
		if len(d.Parameters) == 0 {
			t.Errorf("%s has no parameters", d.Name)
		}
	}
}

func TestLookupUnknownSubtype(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected error for unknown subtype")
	}
}

func TestAllReturnsEveryComponent(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d components, want 6", len(all))
	}

	effects := all.ByCategory("Effect")
	if len(effects) != len(all) {
		t.Errorf("ByCategory(Effect) returned %d of %d", len(effects), len(all))
	}

	filters := all.ByName("filter")
	if len(filters) != 2 {
		t.Errorf("ByName(filter) returned %d components, want 2: %v", len(filters), filters.Names())
	}

	if got := all.ByManufacturer("none"); len(got) != 0 {
		t.Errorf("ByManufacturer(none) returned %d components", len(got))
	}
}

func TestParameterLookup(t *testing.T) {
	d, err := Lookup(SubtypeDynamics)
	if err != nil {
		t.Fatal(err)
	}

	p, err := d.ParameterByIdentifier(ParamThreshold)
	if err != nil {
		t.Fatalf("ParameterByIdentifier(threshold) failed: %v", err)
	}
	if p.Address != 0 {
		t.Errorf("threshold address = %d, want 0", p.Address)
	}

	byAddr, err := d.ParameterByAddress(p.Address)
	if err != nil {
		t.Fatalf("ParameterByAddress(%d) failed: %v", p.Address, err)
	}
	if byAddr.Identifier != ParamThreshold {
		t.Errorf("ParameterByAddress(%d) = %q", p.Address, byAddr.Identifier)
	}

	if _, err := d.ParameterByIdentifier("bogus"); err == nil {
		t.Error("expected error for unknown identifier")
	}
	if _, err := d.ParameterByAddress(999); err == nil {
		t.Error("expected error for unknown address")
	}
}

func TestParameterAddressesAreUnique(t *testing.T) {
	for _, d := range All() {
		seen := make(map[uint64]string)
		for _, p := range d.Parameters {
			if prev, dup := seen[p.Address]; dup {
				t.Errorf("%s: parameters %s and %s share address %d", d.Name, prev, p.Identifier, p.Address)
			}
			seen[p.Address] = p.Identifier
		}
	}
}
