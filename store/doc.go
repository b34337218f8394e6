// Package store implements the engine's resource store: a reference-counted
// arena of resource descriptors addressed by generational handles and looked
// up by category and key.
//
// A Store satisfies defaults.Finder and defaults.Releaser, so it can back a
// defaults.Registry directly:
//
//	s := store.New()
//	m, _ := store.DefaultManifest()
//	_ = m.Apply(s)
//	reg := defaults.New(s)
//	reg.Populate()
//
// # Manifests
//
// A Manifest is a YAML document that declares resources per category. Shader
// entries may carry WGSL source; the stages of its entry points are reflected
// with naga when the manifest is loaded.
package store
