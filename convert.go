package montgomery

import "math/big"

// shiftModN sets z = 2^s mod n by repeated doubling. z receives len(n)
// limbs and must not overlap n.
func shiftModN(z, n []Limb, s int) {
	rl := len(n)
	z = z[:rl]
	assertDisjoint("shiftModN", z, n)

	clear(z)
	z[0] = 1
	if cmpVV(z, n) >= 0 {
		// n == 1
		clear(z)
		return
	}
	for i := 0; i < s; i++ {
		// z < n, so 2z < 2n and one subtraction is enough. When the shift
		// carries out, 2z exceeds R > n and the wrapped subtraction is exact.
		c := shl1VU(z, z)
		if c != 0 || cmpVV(z, n) >= 0 {
			subVV(z, z, n)
		}
	}
}

// montOne sets z = R mod n, the Montgomery form of 1.
func montOne(z, n []Limb) {
	shiftModN(z, n, len(n)*_W)
}

// montRR sets z = R^2 mod n. Montgomery multiplication by R^2 moves a value
// into the Montgomery domain.
func montRR(z, n []Limb) {
	shiftModN(z, n, 2*len(n)*_W)
}

// limbsFromBig writes the nonnegative x into z, zero padding the top. It
// panics when x does not fit.
func limbsFromBig(z []Limb, x *big.Int) []Limb {
	words := x.Bits()
	if len(words) > len(z) {
		panic("montgomery: value does not fit in limb buffer")
	}
	for i, w := range words {
		z[i] = Limb(w)
	}
	clear(z[len(words):])
	return z
}

// bigFromLimbs returns x as a big.Int.
func bigFromLimbs(x []Limb) *big.Int {
	words := make([]big.Word, len(x))
	for i, xi := range x {
		words[i] = big.Word(xi)
	}
	return new(big.Int).SetBits(words)
}

// trim drops the zero limbs at the top of x.
func trim(x []Limb) []Limb {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}
