/*
Package tools models tool installations and per-node home-directory overrides.

A build fleet shares a set of named, typed tool installations (a JDK, a
compiler, a build tool), each with a default home path. Individual agent
nodes may have the same tool installed somewhere else; this package owns the
override value type, the per-node override collection, and the resolution
logic that picks the effective home for a (node, installation) pair.

Overrides are addressed by a compound key of the form "type@name", where
type is the canonical tool type ID and name is the installation's
user-assigned name. Type IDs must never contain '@'; decoding splits on the
first '@'.
*/
package tools

// Descriptor describes a registered class of installable tool.
type Descriptor struct {
	// ID is the canonical type identifier (e.g. "jdk"). It must never
	// contain '@', which the compound key reserves as separator.
	ID string

	// DisplayName is the human-readable name shown in listings.
	DisplayName string
}

// Registry resolves canonical tool type IDs back to their descriptors.
//
// It is injected wherever a stored type ID needs resolving, so a stale
// override (its type removed or renamed since it was saved) surfaces as an
// *UnknownTypeError only for that entry.
type Registry interface {
	// Find resolves a canonical type ID. It returns *UnknownTypeError
	// when no such type is registered.
	Find(id string) (*Descriptor, error)
}
