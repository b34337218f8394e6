package defaults

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/gogpu/defaults/asset"
)

// fakeStore is a minimal reference-counted Finder/Releaser.
type fakeStore struct {
	keys    map[string]asset.Handle
	refs    map[asset.Handle]int
	finds   int
	release int
}

func newFakeStore(keys ...string) *fakeStore {
	s := &fakeStore{
		keys: make(map[string]asset.Handle),
		refs: make(map[asset.Handle]int),
	}
	for i, key := range keys {
		id, ok := SlotByKey(key)
		if !ok {
			panic("unknown key " + key)
		}
		h := asset.NewHandle(id.Category(), 1, uint32(i), 1)
		s.keys[key] = h
		s.refs[h] = 1
	}
	return s
}

func allKeys() []string {
	keys := make([]string, 0, NumSlots)
	for _, id := range AllSlots() {
		keys = append(keys, id.Key())
	}
	return keys
}

func (s *fakeStore) Find(c asset.Category, key string) asset.Handle {
	s.finds++
	h, ok := s.keys[key]
	if !ok || h.Category() != c {
		return asset.Empty
	}
	s.refs[h]++
	return h
}

func (s *fakeStore) Release(h asset.Handle) {
	s.release++
	s.refs[h]--
}

func requireAllEmpty(t require.TestingT, r *Registry) {
	for id, h := range r.Slots() {
		require.Truef(t, h.IsEmpty(), "slot %s should be empty, got %v", id, h)
	}
}

func TestRegistry_InitiallyEmpty(t *testing.T) {
	r := New(newFakeStore(allKeys()...))

	require.False(t, r.Populated())
	require.Equal(t, 0, r.Resolved())
	requireAllEmpty(t, r)
	require.True(t, r.Material().IsEmpty())
	require.True(t, r.SoundUnclick().IsEmpty())
}

func TestRegistry_PopulateAll(t *testing.T) {
	s := newFakeStore(allKeys()...)
	r := New(s)

	r.Populate()

	require.True(t, r.Populated())
	require.Equal(t, NumSlots, r.Resolved())
	require.Equal(t, NumSlots, s.finds, "one lookup per slot")
	for id, h := range r.Slots() {
		require.Falsef(t, h.IsEmpty(), "slot %s should be resolved", id)
		require.Equalf(t, id.Category(), h.Category(), "slot %s category", id)
		require.Equal(t, 2, s.refs[h], "store and registry each hold one reference")
	}
}

func TestRegistry_PartialMiss(t *testing.T) {
	for _, missing := range AllSlots() {
		t.Run(missing.String(), func(t *testing.T) {
			keys := make([]string, 0, NumSlots-1)
			for _, id := range AllSlots() {
				if id != missing {
					keys = append(keys, id.Key())
				}
			}
			r := New(newFakeStore(keys...))
			r.Populate()

			for id, h := range r.Slots() {
				if id == missing {
					assert.True(t, h.IsEmpty(), "missing slot must be empty")
				} else {
					assert.Falsef(t, h.IsEmpty(), "slot %s must be resolved", id)
				}
			}
		})
	}
}

func TestRegistry_Scenario(t *testing.T) {
	s := newFakeStore(KeyMaterial, KeyMaterialFont, KeyMeshCube, KeyShaderPbr, KeySoundClick)
	r := New(s)
	r.Populate()

	present := map[SlotID]bool{
		SlotMaterial:     true,
		SlotMaterialFont: true,
		SlotMeshCube:     true,
		SlotShaderPbr:    true,
		SlotSoundClick:   true,
	}
	for id, h := range r.Slots() {
		require.Equalf(t, present[id], !h.IsEmpty(), "slot %s", id)
	}
	require.Equal(t, 5, r.Resolved())
	require.True(t, r.MaterialEquirect().IsEmpty())
	require.True(t, r.TexBlack().IsEmpty())
	require.True(t, r.MeshSphere().IsEmpty())
	require.False(t, r.MeshCube().IsEmpty())
}

func TestRegistry_ClearIdempotent(t *testing.T) {
	s := newFakeStore(allKeys()...)
	r := New(s)

	r.Clear()
	requireAllEmpty(t, r)
	require.Zero(t, s.release, "clearing an empty registry releases nothing")

	r.Populate()
	r.Clear()
	requireAllEmpty(t, r)
	require.False(t, r.Populated())
	require.Equal(t, NumSlots, s.release)

	r.Clear()
	requireAllEmpty(t, r)
	require.Equal(t, NumSlots, s.release, "second Clear must not release again")
	for _, n := range s.refs {
		require.Equal(t, 1, n, "only the store's reference remains")
	}
}

func TestRegistry_RepopulateRefresh(t *testing.T) {
	s := newFakeStore(KeyMaterial, KeyTex, KeyMeshQuad)
	r := New(s)

	r.Populate()
	first := collect(r)
	r.Clear()
	r.Populate()
	second := collect(r)

	require.Equal(t, first, second)
}

func TestRegistry_RepopulateWithoutClear(t *testing.T) {
	s := newFakeStore(allKeys()...)
	r := New(s)

	r.Populate()
	r.Populate()

	for _, h := range r.Slots() {
		require.Equal(t, 2, s.refs[h], "re-populate must release the previous references")
	}

	// The store lost a resource between the two calls.
	delete(s.keys, KeyTexGray)
	r.Populate()
	require.True(t, r.TexGray().IsEmpty())
	require.Equal(t, NumSlots-1, r.Resolved())
}

func TestRegistry_WrongCategoryIsEmpty(t *testing.T) {
	wrong := asset.NewHandle(asset.CategorySound, 1, 7, 1)
	released := 0
	finder := struct {
		FinderFunc
		releaseFunc
	}{
		FinderFunc: func(c asset.Category, key string) asset.Handle {
			if key == KeyMaterial {
				return wrong
			}
			return asset.Empty
		},
		releaseFunc: func(h asset.Handle) {
			if h == wrong {
				released++
			}
		},
	}

	var buf bytes.Buffer
	r := New(finder, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	r.Populate()

	require.True(t, r.Material().IsEmpty())
	require.Equal(t, 1, released, "mismatched handle must be given back")
	require.Contains(t, buf.String(), "wrong category")
}

type releaseFunc func(asset.Handle)

func (f releaseFunc) Release(h asset.Handle) { f(h) }

func TestRegistry_NilFinder(t *testing.T) {
	r := New(nil)
	r.Populate()
	require.True(t, r.Populated())
	requireAllEmpty(t, r)
	r.Clear()
	requireAllEmpty(t, r)
}

func TestRegistry_FinderFuncWithoutRelease(t *testing.T) {
	r := New(FinderFunc(func(c asset.Category, key string) asset.Handle {
		return asset.NewHandle(c, 1, 0, 1)
	}))
	r.Populate()
	require.Equal(t, NumSlots, r.Resolved())
	r.Clear()
	requireAllEmpty(t, r)
}

func TestRegistry_GetInvalidSlot(t *testing.T) {
	r := New(newFakeStore(allKeys()...))
	r.Populate()
	require.True(t, r.Get(SlotID(200)).IsEmpty())
	require.Equal(t, r.Material(), r.Get(SlotMaterial))
}

func TestRegistry_SlotsStopsEarly(t *testing.T) {
	r := New(nil)
	n := 0
	for range r.Slots() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestRegistry_AccessorsMatchSlots(t *testing.T) {
	r := New(newFakeStore(allKeys()...))
	r.Populate()

	accessors := map[SlotID]func() asset.Handle{
		SlotMaterial:         r.Material,
		SlotMaterialEquirect: r.MaterialEquirect,
		SlotMaterialFont:     r.MaterialFont,
		SlotMaterialHand:     r.MaterialHand,
		SlotMaterialUI:       r.MaterialUI,
		SlotTex:              r.Tex,
		SlotTexBlack:         r.TexBlack,
		SlotTexGray:          r.TexGray,
		SlotTexFlat:          r.TexFlat,
		SlotTexRough:         r.TexRough,
		SlotCubemap:          r.Cubemap,
		SlotMeshQuad:         r.MeshQuad,
		SlotMeshCube:         r.MeshCube,
		SlotMeshSphere:       r.MeshSphere,
		SlotShader:           r.Shader,
		SlotShaderPbr:        r.ShaderPbr,
		SlotShaderUnlit:      r.ShaderUnlit,
		SlotShaderFont:       r.ShaderFont,
		SlotShaderEquirect:   r.ShaderEquirect,
		SlotShaderUI:         r.ShaderUI,
		SlotSoundClick:       r.SoundClick,
		SlotSoundUnclick:     r.SoundUnclick,
	}
	require.Len(t, accessors, NumSlots)
	for id, get := range accessors {
		require.Equalf(t, r.Get(id), get(), "accessor for %s", id)
	}
}

func collect(r *Registry) map[SlotID]asset.Handle {
	m := make(map[SlotID]asset.Handle)
	for id, h := range r.Slots() {
		if !h.IsEmpty() {
			m[id] = h
		}
	}
	return m
}

// Property: for any subset of keys present in the store, exactly the
// matching slots resolve, and any Populate/Clear sequence keeps the store's
// reference counts consistent with the registry's state.
func TestRegistry_PropertySubset(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		present := rapid.SliceOfDistinct(
			rapid.SampledFrom(allKeys()),
			func(k string) string { return k },
		).Draw(rt, "present")

		s := newFakeStore(present...)
		r := New(s)
		requireAllEmpty(rt, r)

		ops := rapid.SliceOfN(rapid.SampledFrom([]string{"populate", "clear"}), 1, 12).Draw(rt, "ops")
		want := make(map[string]bool, len(present))
		for _, k := range present {
			want[k] = true
		}

		for _, op := range ops {
			switch op {
			case "populate":
				r.Populate()
				for id, h := range r.Slots() {
					if want[id.Key()] == h.IsEmpty() {
						rt.Fatalf("slot %s: present=%v empty=%v", id, want[id.Key()], h.IsEmpty())
					}
					if !h.IsEmpty() && h.Category() != id.Category() {
						rt.Fatalf("slot %s: category %v", id, h.Category())
					}
				}
			case "clear":
				r.Clear()
				requireAllEmpty(rt, r)
			}

			held := 1
			if !r.Populated() {
				held = 0
			}
			for _, h := range s.keys {
				if s.refs[h] != 1+held {
					rt.Fatalf("after %s: refcount %d, want %d", op, s.refs[h], 1+held)
				}
			}
		}
	})
}
