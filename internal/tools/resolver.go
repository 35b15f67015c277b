package tools

// Carrier is anything that may hold tool overrides, typically a fleet node.
type Carrier interface {
	// ToolOverrides returns the attached override set, or nil when none
	// is attached or the carrier's kind cannot hold overrides.
	ToolOverrides() *NodeOverrides
}

// ResolveHome returns the effective home directory for installation on the
// given node: the node's override when one matches, the installation's
// declared default otherwise.
//
// Absence of configuration is the common case, handled by fallback rather
// than by an error. Given the same override set and installation the result
// is always the same, and it is never empty as long as the installation
// declares a usable default home.
func ResolveHome(n Carrier, inst Installation) string {
	if n != nil {
		if p := n.ToolOverrides(); p != nil {
			if home, ok := p.HomeFor(inst); ok {
				return home
			}
		}
	}
	return inst.Home()
}
