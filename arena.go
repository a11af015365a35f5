package montgomery

import (
	"slices"
	"sync"
)

// arena hands out scratch limb buffers for the duration of one call. It is a
// bump allocator over a single slice: alloc appends, restore pops back to a
// mark, free hands the whole arena back to the pool. Buffers are never
// released one at a time.
//
// An arena is owned by exactly one call at a time and is not safe for
// concurrent use.
type arena struct {
	w []Limb
}

var arenaPool sync.Pool

// getArena returns an empty arena. The caller must call free when finished.
func getArena() *arena {
	a, _ := arenaPool.Get().(*arena)
	if a == nil {
		a = new(arena)
	}
	return a
}

// free wipes the arena and returns it to the pool. Every buffer obtained
// from it is invalid afterwards.
func (a *arena) free() {
	clear(a.w)
	a.w = a.w[:0]
	arenaPool.Put(a)
}

// save returns the current allocation mark.
func (a *arena) save() int {
	return len(a.w)
}

// restore pops every buffer allocated after mark n. It is usually invoked as
//
//	defer a.restore(a.save())
func (a *arena) restore(n int) {
	a.w = a.w[:n]
}

// reserve grows the arena so that n more limbs can be allocated without
// moving the backing array.
func (a *arena) reserve(n int) {
	a.w = slices.Grow(a.w, n)
}

// alloc returns a zeroed buffer of n limbs. The buffer's capacity is capped
// at n so appends cannot run into the next allocation.
func (a *arena) alloc(n int) []Limb {
	off := len(a.w)
	a.w = slices.Grow(a.w, n)
	a.w = a.w[:off+n]
	x := a.w[off : off+n : off+n]
	clear(x)
	return x
}
