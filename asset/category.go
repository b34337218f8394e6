// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package asset

// Category identifies the kind of resource a handle refers to.
type Category uint8

// Resource categories.
const (
	// CategoryNone is the zero value, carried by the empty handle.
	CategoryNone Category = iota

	// CategoryMaterial is a shader plus its parameter set.
	CategoryMaterial

	// CategoryTexture is a 2D texture or cubemap.
	CategoryTexture

	// CategoryMesh is an indexed vertex list.
	CategoryMesh

	// CategoryShader is a shader program.
	CategoryShader

	// CategorySound is an audio clip.
	CategorySound
)

// Categories lists every resource category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryMaterial,
		CategoryTexture,
		CategoryMesh,
		CategoryShader,
		CategorySound,
	}
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryMaterial:
		return "Material"
	case CategoryTexture:
		return "Texture"
	case CategoryMesh:
		return "Mesh"
	case CategoryShader:
		return "Shader"
	case CategorySound:
		return "Sound"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the declared resource categories.
func (c Category) Valid() bool {
	return c >= CategoryMaterial && c <= CategorySound
}
