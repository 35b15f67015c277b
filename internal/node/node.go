/*
Package node models the build fleet: the controller plus the agent machines
that execute build work.

Only agent nodes may carry tool location overrides; the controller schedules
work and is not itself a build-execution target.
*/
package node

import (
	"fmt"

	"github.com/hvmk/tool-locator/internal/tools"
)

// Kind classifies a fleet node.
type Kind string

const (
	// KindController is the central node that schedules build work.
	KindController Kind = "controller"

	// KindAgent is a machine that executes build work.
	KindAgent Kind = "agent"
)

// Valid reports whether k is a known node kind.
func (k Kind) Valid() bool {
	return k == KindController || k == KindAgent
}

// CanHoldToolOverrides reports whether nodes of this kind may carry tool
// location overrides.
func (k Kind) CanHoldToolOverrides() bool {
	return k == KindAgent
}

// Node is a single machine in the fleet.
type Node struct {
	name      string
	kind      Kind
	overrides *tools.NodeOverrides
}

// New creates a node with no overrides attached.
func New(name string, kind Kind) *Node {
	return &Node{name: name, kind: kind}
}

// Name returns the node's fleet-unique name.
func (n *Node) Name() string { return n.name }

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// SetToolOverrides attaches an override set, replacing any previous one
// wholesale. It fails for node kinds that cannot carry overrides.
func (n *Node) SetToolOverrides(p *tools.NodeOverrides) error {
	if !n.kind.CanHoldToolOverrides() {
		return fmt.Errorf("node %q: %s nodes cannot carry tool overrides", n.name, n.kind)
	}
	n.overrides = p
	return nil
}

// ClearToolOverrides detaches the override set, if any.
func (n *Node) ClearToolOverrides() {
	n.overrides = nil
}

// ToolOverrides returns the attached override set, or nil when none is
// attached. It implements tools.Carrier.
func (n *Node) ToolOverrides() *tools.NodeOverrides {
	return n.overrides
}
