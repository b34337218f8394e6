package defaults

import "github.com/gogpu/defaults/asset"

// Material returns the default material.
func (r *Registry) Material() asset.Handle { return r.handles[SlotMaterial] }

// MaterialEquirect returns the material that projects equirectangular
// textures onto cubemap faces.
func (r *Registry) MaterialEquirect() asset.Handle { return r.handles[SlotMaterialEquirect] }

// MaterialFont returns the default text material.
func (r *Registry) MaterialFont() asset.Handle { return r.handles[SlotMaterialFont] }

// MaterialHand returns the hand material.
func (r *Registry) MaterialHand() asset.Handle { return r.handles[SlotMaterialHand] }

// MaterialUI returns the UI material.
func (r *Registry) MaterialUI() asset.Handle { return r.handles[SlotMaterialUI] }

// Tex returns the 2x2 white texture.
func (r *Registry) Tex() asset.Handle { return r.handles[SlotTex] }

// TexBlack returns the 2x2 black texture.
func (r *Registry) TexBlack() asset.Handle { return r.handles[SlotTexBlack] }

// TexGray returns the 2x2 middle gray texture.
func (r *Registry) TexGray() asset.Handle { return r.handles[SlotTexGray] }

// TexFlat returns the 2x2 flat normal texture.
func (r *Registry) TexFlat() asset.Handle { return r.handles[SlotTexFlat] }

// TexRough returns the 2x2 roughness texture.
func (r *Registry) TexRough() asset.Handle { return r.handles[SlotTexRough] }

// Cubemap returns the default lighting cubemap.
func (r *Registry) Cubemap() asset.Handle { return r.handles[SlotCubemap] }

// MeshQuad returns the default quad.
func (r *Registry) MeshQuad() asset.Handle { return r.handles[SlotMeshQuad] }

// MeshCube returns the unit cube.
func (r *Registry) MeshCube() asset.Handle { return r.handles[SlotMeshCube] }

// MeshSphere returns the unit-diameter sphere.
func (r *Registry) MeshSphere() asset.Handle { return r.handles[SlotMeshSphere] }

// Shader returns the general purpose shader.
func (r *Registry) Shader() asset.Handle { return r.handles[SlotShader] }

// ShaderPbr returns the physically based shader.
func (r *Registry) ShaderPbr() asset.Handle { return r.handles[SlotShaderPbr] }

// ShaderUnlit returns the unlit shader.
func (r *Registry) ShaderUnlit() asset.Handle { return r.handles[SlotShaderUnlit] }

// ShaderFont returns the text shader.
func (r *Registry) ShaderFont() asset.Handle { return r.handles[SlotShaderFont] }

// ShaderEquirect returns the equirect projection shader.
func (r *Registry) ShaderEquirect() asset.Handle { return r.handles[SlotShaderEquirect] }

// ShaderUI returns the UI shader.
func (r *Registry) ShaderUI() asset.Handle { return r.handles[SlotShaderUI] }

// SoundClick returns the press click sound.
func (r *Registry) SoundClick() asset.Handle { return r.handles[SlotSoundClick] }

// SoundUnclick returns the release click sound.
func (r *Registry) SoundUnclick() asset.Handle { return r.handles[SlotSoundUnclick] }
