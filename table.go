package montgomery

// powerTable holds x^1 .. x^(2^k-1) in Montgomery form, back to back in one
// buffer. There is no slot for x^0: a zero window never multiplies.
type powerTable struct {
	rl  int
	buf []Limb
}

// tableLimbs is the number of limbs a window-k table needs for a modulus of
// rl limbs.
func tableLimbs(rl int, k uint) int {
	return (1<<k - 1) * rl
}

// buildPowerTable fills a table for window width k from the Montgomery-form
// base x. Entry i is mul(x, entry i-1), so by induction it holds x^i.
func buildPowerTable(e *engine, a *arena, x []Limb, k uint) powerTable {
	rl := len(e.n)
	p := powerTable{rl: rl, buf: a.alloc(tableLimbs(rl, k))}
	copy(p.entry(1), x[:rl])
	for i := uint(2); i < 1<<k; i++ {
		e.mul(p.entry(i), x, p.entry(i-1))
	}
	return p
}

// entry returns the slot for window value w, which must be nonzero.
func (p powerTable) entry(w uint) []Limb {
	off := int(w-1) * p.rl
	return p.buf[off : off+p.rl : off+p.rl]
}

// size returns the number of entries.
func (p powerTable) size() int {
	if p.rl == 0 {
		return 0
	}
	return len(p.buf) / p.rl
}
