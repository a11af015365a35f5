package montgomery

// Redc sets z = t * R^-1 mod n, where R = 2^(len(n)*W).
//
// n is odd and nquote0 satisfies n*nquote0 ≡ -1 (mod 2^W). t holds
// 2*len(n) limbs whose value is below n*R, which holds for any product of
// two residues. t is used as working space and destroyed.
//
// z receives len(n) limbs. It may be exactly n or exactly the upper half of
// t; any other overlap between z, n and t is forbidden.
func Redc(z, n []Limb, nquote0 Limb, t []Limb) {
	rl := len(n)
	if len(z) < rl || len(t) < 2*rl {
		panic("montgomery: redc buffers too short")
	}
	t = t[:2*rl]
	z = z[:rl]
	assertDisjoint("redc", t, n)
	assertSameOrDisjoint("redc", z, n)
	if !same(z, n) {
		assertSameOrDisjoint("redc", z, t[rl:])
		if !same(z, t[rl:]) {
			assertDisjoint("redc", z, t)
		}
	}

	// Row i adds m*n at limb offset i so that t[i] becomes zero. The carry
	// out of the top limb is at most one bit over the whole reduction since
	// the final sum stays below 2nR; it is accumulated rather than reset per
	// row so an early overflow is not lost.
	var carry Limb
	for i := 0; i < rl; i++ {
		m := t[i] * nquote0
		c := addMulVVW(t[i:i+rl], n, m)
		carry |= addVW(t[i+rl:], t[i+rl:], c)
	}

	upper := t[rl:]
	if carry != 0 || cmpVV(upper, n) >= 0 {
		subVV(z, upper, n)
	} else if !same(z, upper) {
		copy(z, upper)
	}
}
