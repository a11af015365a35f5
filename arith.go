package montgomery

import "math/bits"

// Limb is a single digit of a multi-precision unsigned integer. Limb slices
// are little-endian: element 0 holds the least significant digit.
type Limb uint

const (
	_W = bits.UintSize // limb width in bits
	_S = _W / 8        // limb width in bytes
)

// This file is the primitive layer. Everything that depends on buffer
// lengths or on how buffers alias each other is written here, and the
// loops are all of the form
//   for i := 0; i < len(z) && i < len(x); i++
// where len(z) is the real bound. Callers size their slices.

// mulAddWWW returns hi, lo with hi<<_W + lo = x*y + c.
func mulAddWWW(x, y, c Limb) (hi, lo Limb) {
	h, l := bits.Mul(uint(x), uint(y))
	var cc uint
	l, cc = bits.Add(l, uint(c), 0)
	return Limb(h + cc), Limb(l)
}

// addVV sets z = x + y and returns the carry, 0 or 1.
func addVV(z, x, y []Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Limb(zi)
		c = Limb(cc)
	}
	return
}

// subVV sets z = x - y and returns the borrow, 0 or 1.
func subVV(z, x, y []Limb) (b Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, bb := bits.Sub(uint(x[i]), uint(y[i]), uint(b))
		z[i] = Limb(zi)
		b = Limb(bb)
	}
	return
}

// addVW sets z = x + y for a single limb y and returns the carry out of the
// top of z. Once the carry dies the remaining limbs are copied, or left alone
// when z and x are the same buffer.
func addVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if !same(z[i:], x[i:]) {
				copy(z[i:], x[i:])
			}
			return
		}
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Limb(zi)
		c = Limb(cc)
	}
	return
}

// addMulVVW sets z += x*y and returns the carry limb. z and x have the same
// length.
func addMulVVW(z, x []Limb, y Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := mulAddWWW(x[i], y, z[i])
		l, cc := bits.Add(uint(lo), uint(c), 0)
		z[i] = Limb(l)
		c = hi + Limb(cc)
	}
	return
}

// shl1VU sets z = x << 1 and returns the bit shifted out of the top.
func shl1VU(z, x []Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x); i++ {
		xi := x[i]
		z[i] = xi<<1 | c
		c = xi >> (_W - 1)
	}
	return
}

// mulVV sets z to the full product x*y. len(z) must be len(x)+len(y) and z
// must not overlap x or y.
func mulVV(z, x, y []Limb) {
	if len(z) != len(x)+len(y) {
		panic("montgomery: product buffer has wrong length")
	}
	assertDisjoint("mulVV", z, x)
	assertDisjoint("mulVV", z, y)

	clear(z)
	for i, yi := range y {
		if yi != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

// sqrVV sets z = x*x. len(z) must be 2*len(x) and scratch must hold at least
// 2*len(x) limbs. Every cross product x[i]*x[j] is computed once into
// scratch, doubled, and then added to the diagonal squares collected in z.
func sqrVV(z, x, scratch []Limb) {
	n := len(x)
	if len(z) != 2*n {
		panic("montgomery: square buffer has wrong length")
	}
	if n == 0 {
		return
	}
	assertDisjoint("sqrVV", z, x)
	assertDisjoint("sqrVV", scratch, x)
	assertDisjoint("sqrVV", scratch, z)

	t := scratch[:2*n]
	clear(t)
	z[1], z[0] = mulAddWWW(x[0], x[0], 0)
	for i := 1; i < n; i++ {
		d := x[i]
		z[2*i+1], z[2*i] = mulAddWWW(d, d, 0)
		t[2*i] = addMulVVW(t[i:2*i], x[:i], d)
	}
	t[2*n-1] = shl1VU(t[1:2*n-1], t[1:2*n-1])
	addVV(z, z, t)
}

// cmpVV compares x and y, which have the same length, and returns -1, 0 or
// +1.
func cmpVV(x, y []Limb) int {
	if len(x) != len(y) {
		panic("montgomery: compare of mismatched lengths")
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// isZero reports whether every limb of x is zero.
func isZero(x []Limb) bool {
	for _, xi := range x {
		if xi != 0 {
			return false
		}
	}
	return true
}

// bitLen returns the position of the highest set bit of x plus one, or 0
// for zero.
func bitLen(x []Limb) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*_W + bits.Len(uint(x[i]))
		}
	}
	return 0
}

// window extracts the k-bit field of e that starts at bit pos. Bits at or
// above eBits, and bits past the end of e, read as zero. k must be less
// than _W.
func window(e []Limb, eBits, pos int, k uint) uint {
	if pos >= eBits {
		return 0
	}
	idx, shift := pos/_W, uint(pos%_W)

	var w Limb
	if idx < len(e) {
		w = e[idx] >> shift
	}
	if shift+k > _W && idx+1 < len(e) {
		// The field spans two limbs.
		w |= e[idx+1] << (_W - shift)
	}
	w &= 1<<k - 1
	if rem := eBits - pos; rem < int(k) {
		w &= 1<<uint(rem) - 1
	}
	return uint(w)
}
