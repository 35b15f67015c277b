package tools

// NodeOverrides is the ordered set of tool location overrides attached to a
// single fleet node. At most one instance is attached per node, and the set
// is replaced wholesale on reconfiguration, never mutated in place.
type NodeOverrides struct {
	// locations is never nil. Order is irrelevant to resolution but
	// preserved for display stability.
	locations []Location
}

// NewNodeOverrides builds an override set from the given locations.
// A nil slice is a caller-configuration error (ErrNilLocations); an empty
// slice is a valid, empty set.
func NewNodeOverrides(locations []Location) (*NodeOverrides, error) {
	if locations == nil {
		return nil, ErrNilLocations
	}
	return &NodeOverrides{locations: locations}, nil
}

// OverridesOf builds an override set from individual locations.
func OverridesOf(locations ...Location) *NodeOverrides {
	return &NodeOverrides{locations: append([]Location{}, locations...)}
}

// Locations returns the override list in display order. The returned slice
// is a copy; callers cannot alter the owner's state through it.
func (p *NodeOverrides) Locations() []Location {
	out := make([]Location, len(p.locations))
	copy(out, p.locations)
	return out
}

// HomeFor returns the overridden home for the given installation, scanning
// in order and returning the first match. The second result is false when no
// override is configured, which is the normal case and not an error.
func (p *NodeOverrides) HomeFor(inst Installation) (string, bool) {
	for _, loc := range p.locations {
		if loc.Matches(inst) {
			return loc.Home(), true
		}
	}
	return "", false
}

// Entry is one override row as presented to the configuration-editing
// surface.
type Entry struct {
	Key  string `json:"key"`
	Home string `json:"home"`

	// Unresolved flags a stale entry whose tool type is no longer
	// registered. Stale entries are listed, not dropped, so the user can
	// see and fix them; they never match a live installation.
	Unresolved bool `json:"unresolved,omitempty"`
}

// Entries renders the override list for display and editing. A type
// resolution failure marks its own entry only and never aborts the listing.
func (p *NodeOverrides) Entries(reg Registry) []Entry {
	entries := make([]Entry, 0, len(p.locations))
	for _, loc := range p.locations {
		e := Entry{Key: loc.Key(), Home: loc.Home()}
		if _, err := loc.ResolveType(reg); err != nil {
			e.Unresolved = true
		}
		entries = append(entries, e)
	}
	return entries
}
