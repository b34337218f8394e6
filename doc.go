// Package defaults provides the default assets a graphics runtime guarantees
// to exist before user code runs.
//
// # Overview
//
// The engine creates a fixed set of materials, textures, meshes, shaders and
// sounds during initialization and registers each of them in its resource
// store under a well-known key (see the Key* constants). A [Registry] caches
// a handle for every one of those keys so the rest of the engine can reach
// them by name.
//
// # Lifecycle
//
//	reg := defaults.New(store)  // every slot empty
//	reg.Populate()              // after the store is seeded
//	mat := reg.Material()       // read anywhere
//	reg.Clear()                 // before the store is destroyed
//
// A slot whose key is missing from the store stays empty. Empty is a valid
// result, not an error: callers treat it as "no default available".
//
// # Ownership
//
// Handles are shared with the resource store. The registry holds one
// reference per populated slot and gives it back on Clear; the resource
// itself lives until every holder has released it.
//
// # Logging
//
// The package logs through [log/slog] and is silent by default. See
// [SetLogger].
package defaults

// Version is the current version of the module.
const Version = "0.1.0"
