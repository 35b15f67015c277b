package tools

import "testing"

// fakeCarrier is a minimal Carrier for resolver tests.
type fakeCarrier struct {
	overrides *NodeOverrides
}

func (c fakeCarrier) ToolOverrides() *NodeOverrides { return c.overrides }

func TestResolveHomeFallsBackWithoutOverrides(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	jdk8 := NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8")

	got := ResolveHome(fakeCarrier{}, jdk8)
	if got != "/usr/lib/jvm/jdk8" {
		t.Errorf("ResolveHome = %q, want default %q", got, "/usr/lib/jvm/jdk8")
	}
}

func TestResolveHomeNilCarrier(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	jdk8 := NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8")

	if got := ResolveHome(nil, jdk8); got != "/usr/lib/jvm/jdk8" {
		t.Errorf("ResolveHome(nil) = %q, want default", got)
	}
}

func TestResolveHomeOverridePrecedence(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	jdk8 := NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8")

	carrier := fakeCarrier{overrides: OverridesOf(NewLocation(jdk, "jdk8", "/opt/jdk8"))}

	got := ResolveHome(carrier, jdk8)
	if got != "/opt/jdk8" {
		t.Errorf("ResolveHome = %q, want override %q", got, "/opt/jdk8")
	}
}

func TestResolveHomeNonInterference(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	carrier := fakeCarrier{overrides: OverridesOf(NewLocation(jdk, "jdk8", "/opt/jdk8"))}

	// Same type, different name: the override must not leak.
	jdk11 := NewInstallation(jdk, "jdk11", "/usr/lib/jvm/jdk11")
	if got := ResolveHome(carrier, jdk11); got != "/usr/lib/jvm/jdk11" {
		t.Errorf("ResolveHome(jdk11) = %q, want default %q", got, "/usr/lib/jvm/jdk11")
	}

	// Same name, different type.
	maven := &Descriptor{ID: "maven", DisplayName: "Maven"}
	fakeJdk8 := NewInstallation(maven, "jdk8", "/usr/share/maven")
	if got := ResolveHome(carrier, fakeJdk8); got != "/usr/share/maven" {
		t.Errorf("ResolveHome(maven jdk8) = %q, want default %q", got, "/usr/share/maven")
	}
}

func TestResolveHomeSkipsStaleEntries(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	jdk8 := NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8")

	// A stale entry (type since removed) precedes the live one; it must
	// be treated as a non-match, not an error.
	stale, err := ParseLocation("removed@jdk8", "/opt/stale")
	if err != nil {
		t.Fatalf("ParseLocation failed: %v", err)
	}
	carrier := fakeCarrier{overrides: OverridesOf(stale, NewLocation(jdk, "jdk8", "/opt/jdk8"))}

	if got := ResolveHome(carrier, jdk8); got != "/opt/jdk8" {
		t.Errorf("ResolveHome = %q, want %q", got, "/opt/jdk8")
	}
}

func TestResolveHomeDeterministic(t *testing.T) {
	jdk := &Descriptor{ID: "jdk", DisplayName: "JDK"}
	jdk8 := NewInstallation(jdk, "jdk8", "/usr/lib/jvm/jdk8")
	carrier := fakeCarrier{overrides: OverridesOf(NewLocation(jdk, "jdk8", "/opt/jdk8"))}

	first := ResolveHome(carrier, jdk8)
	for i := 0; i < 10; i++ {
		if got := ResolveHome(carrier, jdk8); got != first {
			t.Fatalf("ResolveHome not deterministic: %q then %q", first, got)
		}
	}
}
