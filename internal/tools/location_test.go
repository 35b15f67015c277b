package tools

import (
	"errors"
	"testing"
)

// fakeRegistry is a minimal Registry for driving type resolution in tests.
type fakeRegistry struct {
	types map[string]*Descriptor
}

func (r fakeRegistry) Find(id string) (*Descriptor, error) {
	if d, ok := r.types[id]; ok {
		return d, nil
	}
	return nil, &UnknownTypeError{ID: id}
}

func newFakeRegistry(descs ...*Descriptor) fakeRegistry {
	types := make(map[string]*Descriptor)
	for _, d := range descs {
		types[d.ID] = d
	}
	return fakeRegistry{types: types}
}

func TestParseLocationSplitsOnFirstAt(t *testing.T) {
	tests := []struct {
		key      string
		wantType string
		wantName string
		wantErr  bool
	}{
		{"jdk@jdk8", "jdk", "jdk8", false},
		// Names may contain '@'; only the first separator splits.
		{"jdk@weird@name", "jdk", "weird@name", false},
		// Empty name after the separator is accepted.
		{"jdk@", "jdk", "", false},
		{"@jdk8", "", "jdk8", false},
		{"jdk8", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		loc, err := ParseLocation(tt.key, "/opt/tool")
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLocation(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if loc.TypeID() != tt.wantType {
			t.Errorf("ParseLocation(%q).TypeID() = %q, want %q", tt.key, loc.TypeID(), tt.wantType)
		}
		if loc.Name() != tt.wantName {
			t.Errorf("ParseLocation(%q).Name() = %q, want %q", tt.key, loc.Name(), tt.wantName)
		}
		if loc.Home() != "/opt/tool" {
			t.Errorf("ParseLocation(%q).Home() = %q, want %q", tt.key, loc.Home(), "/opt/tool")
		}
		if loc.Resolved() {
			t.Errorf("ParseLocation(%q) should produce a key-only value", tt.key)
		}
	}
}

func TestKeyRoundTrip(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	reg := newFakeRegistry(jdk)

	orig := NewLocation(jdk, "jdk8", "/opt/jdk8")
	if orig.Key() != "jdk@jdk8" {
		t.Fatalf("Key() = %q, want %q", orig.Key(), "jdk@jdk8")
	}

	decoded, err := ParseLocation(orig.Key(), orig.Home())
	if err != nil {
		t.Fatalf("ParseLocation failed: %v", err)
	}

	if decoded.Name() != orig.Name() {
		t.Errorf("round-trip name = %q, want %q", decoded.Name(), orig.Name())
	}
	if decoded.Home() != orig.Home() {
		t.Errorf("round-trip home = %q, want %q", decoded.Home(), orig.Home())
	}

	resolved, err := decoded.ResolveType(reg)
	if err != nil {
		t.Fatalf("ResolveType failed: %v", err)
	}
	if resolved.Type() != jdk {
		t.Errorf("round-trip type = %v, want %v", resolved.Type(), jdk)
	}
}

func TestResolveTypeUnknown(t *testing.T) {
	reg := newFakeRegistry()

	loc, err := ParseLocation("removed@tool", "/opt/tool")
	if err != nil {
		t.Fatalf("ParseLocation failed: %v", err)
	}

	_, err = loc.ResolveType(reg)
	if err == nil {
		t.Fatal("ResolveType should fail for an unregistered type")
	}

	var unknownErr *UnknownTypeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownTypeError, got %T", err)
	}
	if unknownErr.ID != "removed" {
		t.Errorf("UnknownTypeError.ID = %q, want %q", unknownErr.ID, "removed")
	}
}

func TestResolveTypeAlreadyResolved(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	loc := NewLocation(jdk, "jdk8", "/opt/jdk8")

	// An empty registry must not matter for an already-resolved value.
	resolved, err := loc.ResolveType(newFakeRegistry())
	if err != nil {
		t.Fatalf("ResolveType on resolved value failed: %v", err)
	}
	if resolved.Type() != jdk {
		t.Errorf("Type() = %v, want %v", resolved.Type(), jdk)
	}
}

func TestMatches(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	maven := &Descriptor{ID: "maven", DisplayName: "Maven"}

	jdk8 := NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8")

	tests := []struct {
		name string
		loc  Location
		want bool
	}{
		{"same type and name", NewLocation(jdk, "jdk8", "/opt/jdk8"), true},
		{"different name", NewLocation(jdk, "jdk11", "/opt/jdk11"), false},
		// Two installations of different types may share a name;
		// matching goes by type identity, not name alone.
		{"same name different type", NewLocation(maven, "jdk8", "/opt/maven"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.Matches(jdk8); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyOnlyLocationMatchesWithoutRegistry(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	jdk8 := NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8")

	loc, err := ParseLocation("jdk@jdk8", "/opt/jdk8")
	if err != nil {
		t.Fatalf("ParseLocation failed: %v", err)
	}

	if !loc.Matches(jdk8) {
		t.Error("key-only location should match without resolving its type")
	}
}

func TestInstallationKey(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	jdk8 := NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8")

	if jdk8.Key() != "jdk@jdk8" {
		t.Errorf("Key() = %q, want %q", jdk8.Key(), "jdk@jdk8")
	}
}

func TestFindInstallation(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	installs := []Installation{
		NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8"),
		NewInstallation(jdk, "jdk11", "/usr/lib/jvm/jdk11"),
	}

	inst, ok := FindInstallation(installs, "jdk@jdk11")
	if !ok {
		t.Fatal("FindInstallation should find jdk@jdk11")
	}
	if inst.Home() != "/usr/lib/jvm/jdk11" {
		t.Errorf("Home() = %q, want %q", inst.Home(), "/usr/lib/jvm/jdk11")
	}

	if _, ok := FindInstallation(installs, "jdk@jdk17"); ok {
		t.Error("FindInstallation should not find jdk@jdk17")
	}
}
