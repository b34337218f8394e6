// Package asset defines the vocabulary shared by resource stores and their
// consumers: resource categories, generational handles, and the descriptor
// types a store keeps for materials, textures, meshes, shaders and sounds.
package asset
