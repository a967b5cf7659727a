// File: discovery.go
// Title: Dictionary Asset Discovery
// Description: Locates dictionary assets: a file on disk first, then the
//              packaged assets embedded in the dictionaries package. Also
//              provides the convenience constructor wiring discovery into
//              a loaded registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-16
// Modified: 2026-02-16
//
// Change History:
// - 2026-02-16 v0.1.0: Initial implementation

package dictionary

import (
	"os"
	"path/filepath"

	roserror "github.com/msto63/rosetta/core/error"
	"github.com/msto63/rosetta/core/rosetta"
	"github.com/msto63/rosetta/dictionaries"
	"github.com/msto63/rosetta/utils/stringx"
)

// DefaultFileName is the dictionary file Discover looks for when no
// path is given
const DefaultFileName = "dictionaries.toml"

// Discover loads a dictionary asset from the given path, falling back
// to the packaged assets when the file does not exist on disk. An empty
// path means DefaultFileName.
func Discover(path string) (rosetta.Asset, error) {
	path = stringx.DefaultIfBlank(path, DefaultFileName)

	if _, err := os.Stat(path); err == nil {
		return LoadFile(path)
	}

	// Packaged fallback is addressed by base name only
	name := filepath.Base(path)
	data, err := dictionaries.FS.ReadFile(name)
	if err != nil {
		return nil, roserror.Newf("dictionary file %s not found on disk or in packaged assets", path).
			WithCode(roserror.CodeAssetNotFound).
			WithOperation("dictionary.Discover").
			WithDetail("path", path)
	}

	asset, err := Parse(data, FormatForPath(name))
	if err != nil {
		return nil, roserror.Wrap(err, "failed to parse packaged dictionary").
			WithDetail("name", name)
	}

	return asset, nil
}

// NewRegistry discovers a dictionary asset and returns a registry
// loaded for the given system. This is the wiring entry point for
// applications and the CLI.
func NewRegistry(system rosetta.SystemType, path string) (*rosetta.Registry, error) {
	asset, err := Discover(path)
	if err != nil {
		return nil, err
	}

	registry := rosetta.NewRegistry()
	if err := registry.Load(system, asset); err != nil {
		return nil, err
	}

	return registry, nil
}
