// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package asset

import (
	"time"

	"github.com/faiface/beep"
	"github.com/gogpu/gputypes"
)

// Resource is the descriptor a store keeps for a registered resource.
//
// Descriptors carry metadata only. Pixel data, vertex data, shader binaries
// and audio samples belong to the rendering runtime that created them.
type Resource interface {
	Category() Category
}

// MaterialDesc describes a material.
type MaterialDesc struct {
	// Shader is the lookup key of the material's shader.
	Shader string

	// Color tints the material.
	Color gputypes.Color

	// Cull selects which faces are discarded. Text materials use CullModeNone.
	Cull gputypes.CullMode

	// Transparent enables alpha blending.
	Transparent bool
}

// Category implements Resource.
func (MaterialDesc) Category() Category { return CategoryMaterial }

// TextureDesc describes a texture or cubemap.
type TextureDesc struct {
	Width  uint32
	Height uint32
	Format gputypes.TextureFormat

	// View is TextureViewDimension2D for plain textures and
	// TextureViewDimensionCube for cubemaps.
	View gputypes.TextureViewDimension

	// Color is the fill color of solid textures.
	Color gputypes.Color
}

// Category implements Resource.
func (TextureDesc) Category() Category { return CategoryTexture }

// IsCubemap reports whether the texture is a cubemap.
func (d TextureDesc) IsCubemap() bool {
	return d.View == gputypes.TextureViewDimensionCube
}

// MeshDesc describes an indexed mesh.
type MeshDesc struct {
	Vertices uint32
	Indices  uint32
	Topology gputypes.PrimitiveTopology
}

// Category implements Resource.
func (MeshDesc) Category() Category { return CategoryMesh }

// Triangles returns the number of triangles for triangle-list meshes.
func (d MeshDesc) Triangles() uint32 {
	if d.Topology != gputypes.PrimitiveTopologyTriangleList {
		return 0
	}
	return d.Indices / 3
}

// ShaderDesc describes a shader program.
type ShaderDesc struct {
	// Stages is the set of pipeline stages the program has entry points for.
	Stages gputypes.ShaderStages

	// EntryPoints lists entry point names in source order.
	EntryPoints []string
}

// Category implements Resource.
func (ShaderDesc) Category() Category { return CategoryShader }

// SoundDesc describes an audio clip.
type SoundDesc struct {
	Format beep.Format

	// Samples is the clip length in samples per channel.
	Samples int
}

// Category implements Resource.
func (SoundDesc) Category() Category { return CategorySound }

// Duration returns the clip length.
func (d SoundDesc) Duration() time.Duration {
	return d.Format.SampleRate.D(d.Samples)
}
