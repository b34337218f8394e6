// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/defaults/asset"
)

// Manifest declares the resources to register in a store.
type Manifest struct {
	Materials []MaterialEntry `yaml:"materials"`
	Textures  []TextureEntry  `yaml:"textures"`
	Meshes    []MeshEntry     `yaml:"meshes"`
	Shaders   []ShaderEntry   `yaml:"shaders"`
	Sounds    []SoundEntry    `yaml:"sounds"`
}

// MaterialEntry declares a material.
type MaterialEntry struct {
	Key         string    `yaml:"key"`
	Shader      string    `yaml:"shader"` // must name a shader in the same manifest
	Color       []float64 `yaml:"color,omitempty"`
	Cull        string    `yaml:"cull,omitempty"` // none, front, back (default)
	Transparent bool      `yaml:"transparent,omitempty"`
}

// TextureEntry declares a texture or cubemap.
type TextureEntry struct {
	Key     string    `yaml:"key"`
	Width   uint32    `yaml:"width"`
	Height  uint32    `yaml:"height"`
	Format  string    `yaml:"format,omitempty"` // default rgba8unorm
	Cubemap bool      `yaml:"cubemap,omitempty"`
	Color   []float64 `yaml:"color,omitempty"`
}

// MeshEntry declares a mesh.
type MeshEntry struct {
	Key      string `yaml:"key"`
	Vertices uint32 `yaml:"vertices"`
	Indices  uint32 `yaml:"indices"`
	Topology string `yaml:"topology,omitempty"` // default triangle-list
}

// ShaderEntry declares a shader. Stages are reflected from WGSL when source
// is given, otherwise taken from Stages.
type ShaderEntry struct {
	Key    string   `yaml:"key"`
	WGSL   string   `yaml:"wgsl,omitempty"`
	Stages []string `yaml:"stages,omitempty"`
}

// SoundEntry declares a sound.
type SoundEntry struct {
	Key        string        `yaml:"key"`
	Duration   time.Duration `yaml:"duration"`
	SampleRate int           `yaml:"sample_rate,omitempty"` // default 48000
	Channels   int           `yaml:"channels,omitempty"`    // default 1
}

// DefaultSampleRate is used for sounds that do not declare one.
const DefaultSampleRate = beep.SampleRate(48000)

// ErrInvalidEntry is wrapped by every manifest validation error.
var ErrInvalidEntry = errors.New("store: invalid manifest entry")

func entryError(c asset.Category, key string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %q: %s", ErrInvalidEntry, c, key, fmt.Sprintf(format, args...))
}

// LoadManifest decodes a YAML manifest. Unknown fields are rejected.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("store: decode manifest: %w", err)
	}
	return &m, nil
}

// LoadManifestFile reads a YAML manifest from path.
func LoadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open manifest: %w", err)
	}
	defer f.Close()
	return LoadManifest(f)
}

// Len returns the number of declared resources.
func (m *Manifest) Len() int {
	return len(m.Materials) + len(m.Textures) + len(m.Meshes) + len(m.Shaders) + len(m.Sounds)
}

// Resources converts every entry to its descriptor, in manifest order
// (shaders, textures, meshes, materials, sounds). It stops at the first
// invalid entry. A material whose shader is not declared in m is invalid.
func (m *Manifest) Resources() ([]Declared, error) {
	out := make([]Declared, 0, m.Len())
	for _, e := range m.Shaders {
		d, err := e.desc()
		if err != nil {
			return nil, err
		}
		out = append(out, Declared{Key: e.Key, Resource: d})
	}
	for _, e := range m.Textures {
		d, err := e.desc()
		if err != nil {
			return nil, err
		}
		out = append(out, Declared{Key: e.Key, Resource: d})
	}
	for _, e := range m.Meshes {
		d, err := e.desc()
		if err != nil {
			return nil, err
		}
		out = append(out, Declared{Key: e.Key, Resource: d})
	}
	shaders := make(map[string]bool, len(m.Shaders))
	for _, e := range m.Shaders {
		shaders[e.Key] = true
	}
	for _, e := range m.Materials {
		d, err := e.desc()
		if err != nil {
			return nil, err
		}
		if e.Shader != "" && !shaders[e.Shader] {
			return nil, entryError(asset.CategoryMaterial, e.Key, "unknown shader %q", e.Shader)
		}
		out = append(out, Declared{Key: e.Key, Resource: d})
	}
	for _, e := range m.Sounds {
		d, err := e.desc()
		if err != nil {
			return nil, err
		}
		out = append(out, Declared{Key: e.Key, Resource: d})
	}
	return out, nil
}

// Declared is a manifest entry converted to its descriptor.
type Declared struct {
	Key      string
	Resource asset.Resource
}

// Apply validates every entry and registers it in s. Nothing is registered
// if any entry is invalid. A duplicate key stops Apply with the resources
// before it already registered.
func (m *Manifest) Apply(s *Store) error {
	decl, err := m.Resources()
	if err != nil {
		return err
	}
	for _, d := range decl {
		if _, err := s.Add(d.Resource.Category(), d.Key, d.Resource); err != nil {
			return err
		}
	}
	s.logger().Debug("store: manifest applied", "resources", len(decl))
	return nil
}

func parseColor(c asset.Category, key string, v []float64) (gputypes.Color, error) {
	switch len(v) {
	case 0:
		return gputypes.ColorWhite, nil
	case 3:
		return gputypes.NewColorRGB(v[0], v[1], v[2]), nil
	case 4:
		return gputypes.NewColor(v[0], v[1], v[2], v[3]), nil
	default:
		return gputypes.Color{}, entryError(c, key, "color needs 3 or 4 components, got %d", len(v))
	}
}

func (e MaterialEntry) desc() (asset.Resource, error) {
	if e.Key == "" {
		return nil, entryError(asset.CategoryMaterial, e.Key, "missing key")
	}
	color, err := parseColor(asset.CategoryMaterial, e.Key, e.Color)
	if err != nil {
		return nil, err
	}
	var cull gputypes.CullMode
	switch strings.ToLower(e.Cull) {
	case "", "back":
		cull = gputypes.CullModeBack
	case "front":
		cull = gputypes.CullModeFront
	case "none":
		cull = gputypes.CullModeNone
	default:
		return nil, entryError(asset.CategoryMaterial, e.Key, "unknown cull mode %q", e.Cull)
	}
	return asset.MaterialDesc{
		Shader:      e.Shader,
		Color:       color,
		Cull:        cull,
		Transparent: e.Transparent,
	}, nil
}

var textureFormats = map[string]gputypes.TextureFormat{
	"rgba8unorm":      gputypes.TextureFormatRGBA8Unorm,
	"rgba8unorm-srgb": gputypes.TextureFormatRGBA8UnormSrgb,
	"bgra8unorm":      gputypes.TextureFormatBGRA8Unorm,
	"bgra8unorm-srgb": gputypes.TextureFormatBGRA8UnormSrgb,
	"rgba16float":     gputypes.TextureFormatRGBA16Float,
	"rgba32float":     gputypes.TextureFormatRGBA32Float,
}

func (e TextureEntry) desc() (asset.Resource, error) {
	if e.Key == "" {
		return nil, entryError(asset.CategoryTexture, e.Key, "missing key")
	}
	if e.Width == 0 || e.Height == 0 {
		return nil, entryError(asset.CategoryTexture, e.Key, "size %dx%d", e.Width, e.Height)
	}
	format := gputypes.TextureFormatRGBA8Unorm
	if e.Format != "" {
		f, ok := textureFormats[strings.ToLower(e.Format)]
		if !ok {
			return nil, entryError(asset.CategoryTexture, e.Key, "unknown format %q", e.Format)
		}
		format = f
	}
	color, err := parseColor(asset.CategoryTexture, e.Key, e.Color)
	if err != nil {
		return nil, err
	}
	view := gputypes.TextureViewDimension2D
	if e.Cubemap {
		if e.Width != e.Height {
			return nil, entryError(asset.CategoryTexture, e.Key, "cubemap faces must be square, got %dx%d", e.Width, e.Height)
		}
		view = gputypes.TextureViewDimensionCube
	}
	return asset.TextureDesc{
		Width:  e.Width,
		Height: e.Height,
		Format: format,
		View:   view,
		Color:  color,
	}, nil
}

var topologies = map[string]gputypes.PrimitiveTopology{
	"triangle-list":  gputypes.PrimitiveTopologyTriangleList,
	"triangle-strip": gputypes.PrimitiveTopologyTriangleStrip,
	"line-list":      gputypes.PrimitiveTopologyLineList,
	"line-strip":     gputypes.PrimitiveTopologyLineStrip,
	"point-list":     gputypes.PrimitiveTopologyPointList,
}

func (e MeshEntry) desc() (asset.Resource, error) {
	if e.Key == "" {
		return nil, entryError(asset.CategoryMesh, e.Key, "missing key")
	}
	if e.Vertices == 0 {
		return nil, entryError(asset.CategoryMesh, e.Key, "no vertices")
	}
	topo := gputypes.PrimitiveTopologyTriangleList
	if e.Topology != "" {
		t, ok := topologies[strings.ToLower(e.Topology)]
		if !ok {
			return nil, entryError(asset.CategoryMesh, e.Key, "unknown topology %q", e.Topology)
		}
		topo = t
	}
	if topo == gputypes.PrimitiveTopologyTriangleList && e.Indices%3 != 0 {
		return nil, entryError(asset.CategoryMesh, e.Key, "%d indices is not a triangle list", e.Indices)
	}
	return asset.MeshDesc{
		Vertices: e.Vertices,
		Indices:  e.Indices,
		Topology: topo,
	}, nil
}

var stageNames = map[string]gputypes.ShaderStage{
	"vertex":   gputypes.ShaderStageVertex,
	"fragment": gputypes.ShaderStageFragment,
	"compute":  gputypes.ShaderStageCompute,
}

func (e ShaderEntry) desc() (asset.Resource, error) {
	if e.Key == "" {
		return nil, entryError(asset.CategoryShader, e.Key, "missing key")
	}
	if e.WGSL != "" {
		d, err := ReflectWGSL(e.WGSL)
		if err != nil {
			return nil, entryError(asset.CategoryShader, e.Key, "%v", err)
		}
		return d, nil
	}
	if len(e.Stages) == 0 {
		return nil, entryError(asset.CategoryShader, e.Key, "needs wgsl source or stages")
	}
	var d asset.ShaderDesc
	for _, name := range e.Stages {
		st, ok := stageNames[strings.ToLower(name)]
		if !ok {
			return nil, entryError(asset.CategoryShader, e.Key, "unknown stage %q", name)
		}
		d.Stages |= st
	}
	return d, nil
}

func (e SoundEntry) desc() (asset.Resource, error) {
	if e.Key == "" {
		return nil, entryError(asset.CategorySound, e.Key, "missing key")
	}
	if e.Duration <= 0 {
		return nil, entryError(asset.CategorySound, e.Key, "duration %v", e.Duration)
	}
	sr := DefaultSampleRate
	if e.SampleRate != 0 {
		if e.SampleRate < 0 {
			return nil, entryError(asset.CategorySound, e.Key, "sample rate %d", e.SampleRate)
		}
		sr = beep.SampleRate(e.SampleRate)
	}
	if e.Duration > time.Duration(math.MaxInt64/int64(sr)) {
		return nil, entryError(asset.CategorySound, e.Key, "duration %v too long at %d Hz", e.Duration, sr)
	}
	channels := e.Channels
	if channels == 0 {
		channels = 1
	}
	if channels < 1 || channels > 2 {
		return nil, entryError(asset.CategorySound, e.Key, "%d channels", e.Channels)
	}
	return asset.SoundDesc{
		Format:  beep.Format{SampleRate: sr, NumChannels: channels, Precision: 2},
		Samples: sr.N(e.Duration),
	}, nil
}
