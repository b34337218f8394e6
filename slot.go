package defaults

import "github.com/gogpu/defaults/asset"

// Lookup keys of the default assets. The engine registers each default
// resource in its store under one of these keys before user code runs.
const (
	KeyMaterial         = "default/material"
	KeyMaterialEquirect = "default/equirect_convert"
	KeyMaterialFont     = "default/material_font"
	KeyMaterialHand     = "default/material_hand"
	KeyMaterialUI       = "default/material_ui"

	KeyTex      = "default/tex"
	KeyTexBlack = "default/tex_black"
	KeyTexGray  = "default/tex_gray"
	KeyTexFlat  = "default/tex_flat"
	KeyTexRough = "default/tex_rough"
	KeyCubemap  = "default/cubemap"

	KeyMeshQuad   = "default/mesh_quad"
	KeyMeshCube   = "default/mesh_cube"
	KeyMeshSphere = "default/mesh_sphere"

	KeyShader         = "default/shader"
	KeyShaderPbr      = "default/shader_pbr"
	KeyShaderUnlit    = "default/shader_unlit"
	KeyShaderFont     = "default/shader_font"
	KeyShaderEquirect = "default/shader_equirect"
	KeyShaderUI       = "default/shader_ui"

	KeySoundClick   = "default/sound_click"
	KeySoundUnclick = "default/sound_unclick"
)

// SlotID names one default asset slot.
type SlotID uint8

// Default asset slots, in declaration order.
const (
	SlotMaterial SlotID = iota
	SlotMaterialEquirect
	SlotMaterialFont
	SlotMaterialHand
	SlotMaterialUI

	SlotTex
	SlotTexBlack
	SlotTexGray
	SlotTexFlat
	SlotTexRough
	SlotCubemap

	SlotMeshQuad
	SlotMeshCube
	SlotMeshSphere

	SlotShader
	SlotShaderPbr
	SlotShaderUnlit
	SlotShaderFont
	SlotShaderEquirect
	SlotShaderUI

	SlotSoundClick
	SlotSoundUnclick

	slotCount
)

// NumSlots is the number of declared default asset slots.
const NumSlots = int(slotCount)

// Slot is the fixed identity of a default asset slot.
type Slot struct {
	Name        string
	Category    asset.Category
	Key         string
	Description string
}

var slots = [slotCount]Slot{
	SlotMaterial: {"Material", asset.CategoryMaterial, KeyMaterial,
		"The default material, used by any mesh or model drawn without one. Its shader may vary with device performance, so copy it as a starting point for custom materials."},
	SlotMaterialEquirect: {"MaterialEquirect", asset.CategoryMaterial, KeyMaterialEquirect,
		"Projects equirectangular textures onto cubemap faces."},
	SlotMaterialFont: {"MaterialFont", asset.CategoryMaterial, KeyMaterialFont,
		"Default text material. Uses the font shader: two-sided, alpha-clipped, no backface culling."},
	SlotMaterialHand: {"MaterialHand", asset.CategoryMaterial, KeyMaterialHand,
		"Hand material: a transparent copy of the default material with a generated texture."},
	SlotMaterialUI: {"MaterialUI", asset.CategoryMaterial, KeyMaterialUI,
		"UI material. Its shader draws a finger shadow that shows how close the finger is to the surface."},

	SlotTex: {"Tex", asset.CategoryTexture, KeyTex,
		"2x2 opaque white texture, bound as 'white' in shader texture defaults."},
	SlotTexBlack: {"TexBlack", asset.CategoryTexture, KeyTexBlack,
		"2x2 opaque black texture, bound as 'black' in shader texture defaults."},
	SlotTexGray: {"TexGray", asset.CategoryTexture, KeyTexGray,
		"2x2 opaque middle gray (0.5,0.5,0.5) texture, bound as 'gray' in shader texture defaults."},
	SlotTexFlat: {"TexFlat", asset.CategoryTexture, KeyTexFlat,
		"2x2 flat normal map with color (0.5,0.5,1), bound as 'flat' in shader texture defaults."},
	SlotTexRough: {"TexRough", asset.CategoryTexture, KeyTexRough,
		"2x2 roughness texture with color (0,0,1), bound as 'rough' in shader texture defaults."},
	SlotCubemap: {"Cubemap", asset.CategoryTexture, KeyCubemap,
		"Generated cubemap used as the background and initial scene lighting."},

	SlotMeshQuad: {"MeshQuad", asset.CategoryMesh, KeyMeshQuad,
		"Quad from (-1,-1,0) to (1,1,0) facing -Z. Two triangles, four white vertices, UVs (0,0) to (1,1)."},
	SlotMeshCube: {"MeshCube", asset.CategoryMesh, KeyMeshCube,
		"Unit cube with dimensions (1,1,1)."},
	SlotMeshSphere: {"MeshSphere", asset.CategoryMesh, KeyMeshSphere,
		"Sphere with a diameter of 1 and subdivision 4."},

	SlotShader: {"Shader", asset.CategoryShader, KeyShader,
		"Fast general purpose shader: 'diffuse' texture, 'color' tint, 'tex_scale' UV scale, cubemap lookup lighting."},
	SlotShaderPbr: {"ShaderPbr", asset.CategoryShader, KeyShaderPbr,
		"Physically based shader."},
	SlotShaderUnlit: {"ShaderUnlit", asset.CategoryShader, KeyShaderUnlit,
		"Unlit shader: 'diffuse' texture and 'color' tint, no lighting."},
	SlotShaderFont: {"ShaderFont", asset.CategoryShader, KeyShaderFont,
		"Text shader: font atlas with alpha testing and super-sampling. Flips back-face normals so two-sided text is lit correctly."},
	SlotShaderEquirect: {"ShaderEquirect", asset.CategoryShader, KeyShaderEquirect,
		"Projects equirectangular textures onto cube faces when loading equirect images."},
	SlotShaderUI: {"ShaderUI", asset.CategoryShader, KeyShaderUI,
		"Default shader plus a finger shadow and distance circle for interactable surfaces."},

	SlotSoundClick: {"SoundClick", asset.CategorySound, KeySoundClick,
		"300ms procedural click modeled on a mouse press, with extra low frequencies."},
	SlotSoundUnclick: {"SoundUnclick", asset.CategorySound, KeySoundUnclick,
		"300ms procedural click modeled on a mouse release, with extra low frequencies."},
}

// slotsByKey is built once from the slot table.
var slotsByKey = func() map[string]SlotID {
	m := make(map[string]SlotID, slotCount)
	for id := range slotCount {
		m[slots[id].Key] = id
	}
	return m
}()

// AllSlots returns every slot ID in declaration order.
func AllSlots() []SlotID {
	ids := make([]SlotID, slotCount)
	for i := range ids {
		ids[i] = SlotID(i)
	}
	return ids
}

// SlotByKey returns the slot registered under key.
func SlotByKey(key string) (SlotID, bool) {
	id, ok := slotsByKey[key]
	return id, ok
}

// Valid reports whether id is a declared slot.
func (id SlotID) Valid() bool { return id < slotCount }

// Info returns the slot's fixed identity. It returns the zero Slot for
// undeclared IDs.
func (id SlotID) Info() Slot {
	if !id.Valid() {
		return Slot{}
	}
	return slots[id]
}

// Category returns the resource category the slot holds.
func (id SlotID) Category() asset.Category { return id.Info().Category }

// Key returns the store lookup key of the slot.
func (id SlotID) Key() string { return id.Info().Key }

// Description returns a human readable description of the default asset.
func (id SlotID) Description() string { return id.Info().Description }

func (id SlotID) String() string {
	if !id.Valid() {
		return "SlotID(invalid)"
	}
	return slots[id].Name
}
