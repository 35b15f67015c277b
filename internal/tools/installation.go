package tools

// Installation is a named, typed tool installation with its declared default
// home path. Resolution falls back to the default home whenever a node
// carries no matching override.
type Installation struct {
	name string
	desc *Descriptor
	home string
}

// NewInstallation builds an installation record.
func NewInstallation(desc *Descriptor, name, home string) Installation {
	return Installation{
		name: name,
		desc: desc,
		home: home,
	}
}

// Name returns the installation's user-assigned name, unique within its type.
func (i Installation) Name() string { return i.name }

// Descriptor returns the installation's tool type.
func (i Installation) Descriptor() *Descriptor { return i.desc }

// Home returns the declared default home path.
func (i Installation) Home() string { return i.home }

// Key returns the "type@name" compound key identifying this installation.
func (i Installation) Key() string { return i.desc.ID + keySeparator + i.name }

// FindInstallation returns the installation with the given compound key.
func FindInstallation(installs []Installation, key string) (Installation, bool) {
	for _, inst := range installs {
		if inst.Key() == key {
			return inst, true
		}
	}
	return Installation{}, false
}
