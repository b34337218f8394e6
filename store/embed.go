package store

import (
	"bytes"
	_ "embed"
)

//go:embed defaults.yaml
var defaultManifest []byte

// DefaultManifest returns the manifest of the engine's built-in default
// assets. Each call decodes a fresh copy.
func DefaultManifest() (*Manifest, error) {
	return LoadManifest(bytes.NewReader(defaultManifest))
}
