package montgomery

// engine performs Montgomery-domain multiplication and squaring modulo a
// fixed odd n. It owns the two scratch buffers every operation needs, so
// code built on top of it never touches aliasing-sensitive primitives
// directly.
type engine struct {
	n       []Limb
	nquote0 Limb
	t       []Limb // 2*len(n) limbs, product and REDC working area
	scratch []Limb // 2*len(n) limbs, squaring scratch
}

// newEngine sets up an engine for n whose scratch buffers come from a.
func newEngine(a *arena, n []Limb, nquote0 Limb) *engine {
	rl := len(n)
	return &engine{
		n:       n,
		nquote0: nquote0,
		t:       a.alloc(2 * rl),
		scratch: a.alloc(2 * rl),
	}
}

// scratchLimbs is the number of arena limbs newEngine allocates for a
// modulus of rl limbs.
func scratchLimbs(rl int) int {
	return 4 * rl
}

// mul sets z = x*y*R^-1 mod n. x and y are residues below n; z may be the
// same view as x or y.
func (e *engine) mul(z, x, y []Limb) {
	rl := len(e.n)
	mulVV(e.t, x[:rl], y[:rl])
	Redc(z, e.n, e.nquote0, e.t)
}

// sqr sets z = x*x*R^-1 mod n. z may be the same view as x.
func (e *engine) sqr(z, x []Limb) {
	rl := len(e.n)
	sqrVV(e.t, x[:rl], e.scratch)
	Redc(z, e.n, e.nquote0, e.t)
}

// reduce sets z = x*R^-1 mod n for a single-width x, which takes a value out
// of the Montgomery domain.
func (e *engine) reduce(z, x []Limb) {
	rl := len(e.n)
	copy(e.t, x[:rl])
	clear(e.t[rl:])
	Redc(z, e.n, e.nquote0, e.t)
}
