// Package montgomery implements modular exponentiation over odd
// multi-precision moduli in Montgomery representation: word-level inverse,
// REDC, Montgomery multiplication and squaring, and fixed-window
// exponentiation, with a validated Modulus context on top.
package montgomery

const (
	// DefaultWindow is the window width ModPow uses. A window of k bits
	// costs a table of 2^k-1 residues and saves one multiplication per
	// k exponent bits.
	DefaultWindow = 6

	// MaxWindow is the largest window width ModPowWindow accepts.
	MaxWindow = 8
)

// ModPow sets z = x^e mod n in Montgomery form, using a window of
// DefaultWindow bits.
//
// n is an odd modulus of len(n) limbs and nquote0 its reduction constant
// (see NQuote0). x is the base in Montgomery form, below n. e holds the
// exponent, of which only the low eBits bits are read; missing limbs read as
// zero.
//
// init is the accumulator's starting value in Montgomery form. A nil init
// starts from Montgomery(1). Any other seed s is squared along with the
// accumulator, k times per window, and the result is
// s^(2^(k*ceil(eBits/k))) * x^e. init may be exactly z, which runs on a
// pre-seeded accumulator in place; otherwise it must not overlap z. z must
// not overlap n, x or e.
//
// With eBits == 0 no squaring or multiplication happens and z is the start
// value.
func ModPow(z, init, n []Limb, nquote0 Limb, x, e []Limb, eBits int) {
	ModPowWindow(z, init, n, nquote0, x, e, eBits, DefaultWindow)
}

// ModPowWindow is ModPow with an explicit window width k in [1, MaxWindow].
func ModPowWindow(z, init, n []Limb, nquote0 Limb, x, e []Limb, eBits int, k uint) {
	if k < 1 || k > MaxWindow {
		panic("montgomery: window width out of range")
	}
	rl := len(n)
	acc := z[:rl]
	assertDisjoint("modpow", acc, n)
	assertDisjoint("modpow", acc, x)
	assertDisjoint("modpow", acc, e)

	blocks := 0
	if eBits > 0 {
		blocks = (eBits + int(k) - 1) / int(k)
	}

	a := getArena()
	defer a.free()
	if blocks > 0 {
		a.reserve(scratchLimbs(rl) + tableLimbs(rl, k))
	}

	switch {
	case init == nil:
		montOne(acc, n)
	case same(init[:rl], acc):
	default:
		assertDisjoint("modpow", acc, init[:rl])
		copy(acc, init[:rl])
	}
	if blocks == 0 {
		return
	}

	eng := newEngine(a, n, nquote0)
	table := buildPowerTable(eng, a, x, k)

	for i := blocks - 1; i >= 0; i-- {
		w := window(e, eBits, i*int(k), k)
		for j := uint(0); j < k; j++ {
			eng.sqr(acc, acc)
		}
		if w != 0 {
			eng.mul(acc, acc, table.entry(w))
		}
	}
}
