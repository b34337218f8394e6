// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package asset

import "fmt"

// Handle is an opaque, non-owning reference to a resource held by a store.
//
// A Handle is an arena index plus a generation counter, tagged with the
// serial of the store that issued it. The store bumps the generation whenever
// it recycles an index and rejects handles issued by another store, so a
// handle kept past the resource's lifetime never resolves to a different
// resource.
//
// The zero Handle is the empty state: it refers to nothing and is returned
// for every lookup miss.
type Handle struct {
	category   Category
	owner      uint32
	index      uint32
	generation uint32
}

// Empty is the empty handle.
var Empty Handle

// NewHandle builds a handle issued by the store with serial owner.
// Only stores should call this.
func NewHandle(c Category, owner, index, generation uint32) Handle {
	return Handle{category: c, owner: owner, index: index, generation: generation}
}

// IsEmpty reports whether h refers to nothing.
func (h Handle) IsEmpty() bool {
	return h == Empty
}

// Category returns the category of the referenced resource,
// or CategoryNone for the empty handle.
func (h Handle) Category() Category {
	return h.category
}

// Owner returns the serial of the issuing store.
func (h Handle) Owner() uint32 {
	return h.owner
}

// Index returns the arena index.
func (h Handle) Index() uint32 {
	return h.index
}

// Generation returns the arena generation the handle was issued for.
func (h Handle) Generation() uint32 {
	return h.generation
}

func (h Handle) String() string {
	if h.IsEmpty() {
		return "Handle(empty)"
	}
	return fmt.Sprintf("Handle(%s#%d.%d@%d)", h.category, h.index, h.generation, h.owner)
}
