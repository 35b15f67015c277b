/*
Package registry provides the in-memory tool type registry.

The registry is built from configuration at startup and injected wherever a
stored type ID needs resolving back to its descriptor.
*/
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hvmk/tool-locator/internal/tools"
)

// Registry maps canonical type IDs to descriptors. It implements
// tools.Registry.
type Registry struct {
	types map[string]*tools.Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{types: make(map[string]*tools.Descriptor)}
}

// Register adds a descriptor. IDs must be non-empty, free of '@' (reserved
// by the compound key encoding), and unique.
func (r *Registry) Register(desc *tools.Descriptor) error {
	if desc.ID == "" {
		return fmt.Errorf("tool type ID must not be empty")
	}
	if strings.Contains(desc.ID, "@") {
		return fmt.Errorf("tool type ID %q must not contain '@'", desc.ID)
	}
	if _, exists := r.types[desc.ID]; exists {
		return fmt.Errorf("tool type %q already registered", desc.ID)
	}
	r.types[desc.ID] = desc
	return nil
}

// Find resolves a canonical type ID. It returns *tools.UnknownTypeError
// when no such type is registered.
func (r *Registry) Find(id string) (*tools.Descriptor, error) {
	desc, ok := r.types[id]
	if !ok {
		return nil, &tools.UnknownTypeError{ID: id}
	}
	return desc, nil
}

// IDs returns all registered type IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
