package montgomery

import "unsafe"

// overlaps reports whether x and y share at least one limb of storage.
func overlaps(x, y []Limb) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	xs := uintptr(unsafe.Pointer(&x[0]))
	ys := uintptr(unsafe.Pointer(&y[0]))
	xe := xs + uintptr(len(x))*unsafe.Sizeof(x[0])
	ye := ys + uintptr(len(y))*unsafe.Sizeof(y[0])
	return xs < ye && ys < xe
}

// same reports whether x and y are the same view: same first limb and same
// length. Empty slices are never the same view.
func same(x, y []Limb) bool {
	return len(x) > 0 && len(x) == len(y) && &x[0] == &y[0]
}

// assertDisjoint panics in debug builds when x and y overlap. It compiles to
// nothing otherwise.
func assertDisjoint(op string, x, y []Limb) {
	if checkAliasing && overlaps(x, y) {
		panic("montgomery: " + op + ": forbidden aliasing between buffers")
	}
}

// assertSameOrDisjoint panics in debug builds when x and y overlap without
// being exactly the same view.
func assertSameOrDisjoint(op string, x, y []Limb) {
	if checkAliasing && overlaps(x, y) && !same(x, y) {
		panic("montgomery: " + op + ": partially overlapping buffers")
	}
}
