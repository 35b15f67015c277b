package tools

import (
	"fmt"
	"strings"
)

// keySeparator joins a type ID and an installation name into a compound key.
const keySeparator = "@"

// Location is one override: a (tool type, installation name) compound key
// plus the home path to use on the node carrying it.
//
// A Location is immutable. It exists in one of two phases: key-only (decoded
// from a stored "type@name" key, descriptor not yet resolved) or resolved
// (carries its live *Descriptor). ResolveType moves a value from the first
// phase to the second; matching and key encoding never need the registry.
type Location struct {
	typeID string
	name   string
	home   string

	// desc is nil in the key-only phase.
	desc *Descriptor
}

// NewLocation builds a resolved Location from a live descriptor.
func NewLocation(desc *Descriptor, name, home string) Location {
	return Location{
		typeID: desc.ID,
		name:   name,
		home:   home,
		desc:   desc,
	}
}

// ParseLocation decodes a compound "type@name" key into a key-only Location.
//
// The key is split on the FIRST '@': the name may itself contain '@', the
// type ID may not. A key without any '@' is invalid. An empty name after the
// separator is accepted.
func ParseLocation(key, home string) (Location, error) {
	i := strings.Index(key, keySeparator)
	if i < 0 {
		return Location{}, fmt.Errorf("invalid tool key %q: missing %q separator", key, keySeparator)
	}
	return Location{
		typeID: key[:i],
		name:   key[i+1:],
		home:   home,
	}, nil
}

// TypeID returns the canonical type identifier.
func (l Location) TypeID() string { return l.typeID }

// Name returns the installation's user-assigned name.
func (l Location) Name() string { return l.name }

// Home returns the override home path. The path is not checked for
// existence; the target node is not reachable from here.
func (l Location) Home() string { return l.home }

// Key returns the canonical "type@name" compound key.
func (l Location) Key() string { return l.typeID + keySeparator + l.name }

// Resolved reports whether the descriptor has been resolved.
func (l Location) Resolved() bool { return l.desc != nil }

// Type returns the resolved descriptor, or nil for a key-only value.
func (l Location) Type() *Descriptor { return l.desc }

// ResolveType resolves the stored type ID against reg and returns the
// resolved variant of the value. An already-resolved Location is returned
// unchanged. Resolution fails with *UnknownTypeError for stale entries.
func (l Location) ResolveType(reg Registry) (Location, error) {
	if l.desc != nil {
		return l, nil
	}
	desc, err := reg.Find(l.typeID)
	if err != nil {
		return Location{}, err
	}
	l.desc = desc
	return l, nil
}

// Matches reports whether this override targets the given installation.
//
// The comparison uses the canonical type ID plus the installation name, so
// two installations of different types sharing a display name never collide,
// and a key-only Location can be matched without consulting the registry.
func (l Location) Matches(inst Installation) bool {
	return l.name == inst.Name() && l.typeID == inst.Descriptor().ID
}
