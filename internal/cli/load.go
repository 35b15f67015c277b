/*
Package cli implements the tool-locator command line interface.

Each command is constructed by a NewXxxCmd function and wired onto the root
command in cmd/tool-locator. Commands operate on the fleet declared in
~/.tool-locator.json.
*/
package cli

import (
	"github.com/hvmk/tool-locator/internal/config"
	"github.com/hvmk/tool-locator/internal/node"
	"github.com/hvmk/tool-locator/internal/registry"
	"github.com/hvmk/tool-locator/internal/tools"
)

// workspace bundles everything built from one configuration load.
type workspace struct {
	cfg      *config.Config
	reg      *registry.Registry
	installs []tools.Installation
	fleet    map[string]*node.Node
}

// loadWorkspace loads the default config and builds the in-memory fleet.
func loadWorkspace() (*workspace, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return buildWorkspace(cfg)
}

// buildWorkspace builds the registry, installations and fleet from cfg.
func buildWorkspace(cfg *config.Config) (*workspace, error) {
	reg, err := config.BuildRegistry(cfg)
	if err != nil {
		return nil, err
	}

	installs, err := config.BuildInstallations(cfg, reg)
	if err != nil {
		return nil, err
	}

	fleet, err := config.BuildFleet(cfg)
	if err != nil {
		return nil, err
	}

	return &workspace{
		cfg:      cfg,
		reg:      reg,
		installs: installs,
		fleet:    fleet,
	}, nil
}
