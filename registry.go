package defaults

import (
	"iter"
	"log/slog"

	"github.com/gogpu/defaults/asset"
)

// Finder resolves a lookup key to a handle. A miss returns asset.Empty.
//
// Each successful Find hands the caller one reference to the resource.
type Finder interface {
	Find(c asset.Category, key string) asset.Handle
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(c asset.Category, key string) asset.Handle

// Find implements Finder.
func (f FinderFunc) Find(c asset.Category, key string) asset.Handle {
	return f(c, key)
}

// Releaser gives a reference back to the store that issued it.
// A Finder that also implements Releaser gets every reference the registry
// drops returned through Release.
type Releaser interface {
	Release(h asset.Handle)
}

// Registry holds the engine's default assets, one slot per declared asset.
//
// A Registry starts empty. Populate resolves every slot against the Finder;
// Clear empties every slot again. Reads are valid at any time and yield
// asset.Empty while a slot is unresolved.
//
// Populate and Clear must run on the goroutine that drives engine startup and
// shutdown and never concurrently with each other or with readers that expect
// stable values. The registry adds no locking of its own.
type Registry struct {
	finder    Finder
	releaser  Releaser
	log       *slog.Logger
	handles   [slotCount]asset.Handle
	populated bool
}

// New creates an empty registry that resolves slots through finder.
func New(finder Finder, opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Registry{
		finder: finder,
		log:    o.logger,
	}
	if rel, ok := finder.(Releaser); ok {
		r.releaser = rel
	}
	return r
}

// logger returns the registry logger, falling back to the package logger.
func (r *Registry) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return Logger()
}

// Populate looks up every slot by its key and caches the result.
//
// Lookups are independent: a miss empties that slot only and is not an
// error. Calling Populate again re-resolves every slot; references held from
// the previous call are released after all new lookups have completed.
func (r *Registry) Populate() {
	var next [slotCount]asset.Handle
	missing := 0
	if r.finder != nil {
		for id := range slotCount {
			h := r.finder.Find(slots[id].Category, slots[id].Key)
			if !h.IsEmpty() && h.Category() != slots[id].Category {
				r.logger().Warn("defaults: lookup returned wrong category",
					"slot", id, "key", slots[id].Key,
					"want", slots[id].Category, "got", h.Category())
				r.release(h)
				h = asset.Empty
			}
			if h.IsEmpty() {
				missing++
			}
			next[id] = h
		}
	} else {
		missing = NumSlots
	}

	prev := r.handles
	r.handles = next
	r.populated = true
	for _, h := range prev {
		r.release(h)
	}

	r.logger().Debug("defaults: populated",
		"resolved", NumSlots-missing, "missing", missing)
}

// Clear empties every slot and releases the registry's references.
// It is safe to call on a registry that was never populated.
func (r *Registry) Clear() {
	prev := r.handles
	r.handles = [slotCount]asset.Handle{}
	r.populated = false
	released := 0
	for _, h := range prev {
		if r.release(h) {
			released++
		}
	}
	r.logger().Debug("defaults: cleared", "released", released)
}

func (r *Registry) release(h asset.Handle) bool {
	if h.IsEmpty() {
		return false
	}
	if r.releaser != nil {
		r.releaser.Release(h)
	}
	return true
}

// Populated reports whether Populate has run since the last Clear.
func (r *Registry) Populated() bool { return r.populated }

// Get returns the handle cached in slot id, or asset.Empty.
func (r *Registry) Get(id SlotID) asset.Handle {
	if !id.Valid() {
		return asset.Empty
	}
	return r.handles[id]
}

// Slots iterates over every slot in declaration order.
func (r *Registry) Slots() iter.Seq2[SlotID, asset.Handle] {
	return func(yield func(SlotID, asset.Handle) bool) {
		for id := range slotCount {
			if !yield(id, r.handles[id]) {
				return
			}
		}
	}
}

// Resolved returns the number of non-empty slots.
func (r *Registry) Resolved() int {
	n := 0
	for _, h := range r.handles {
		if !h.IsEmpty() {
			n++
		}
	}
	return n
}
