package montgomery

import (
	"math/big"
	"testing"
)

func TestPowerTable(t *testing.T) {
	a := getArena()
	defer a.free()

	n := randOddModulus(t, 3)
	nb := bigFromLimbs(n)
	e := newEngine(a, n, NQuote0(n[0]))
	x := randBelow(t, n)
	xm := toMontRef(x, n)

	for k := uint(1); k <= 5; k++ {
		mark := a.save()
		p := buildPowerTable(e, a, xm, k)
		if got, want := p.size(), 1<<k-1; got != want {
			t.Fatalf("k=%d: size %d, want %d", k, got, want)
		}
		for w := uint(1); w < 1<<k; w++ {
			pw := new(big.Int).Exp(bigFromLimbs(x), big.NewInt(int64(w)), nb)
			want := toMontRef(limbsFromBig(make([]Limb, 3), pw), n)
			if !equalLimbs(p.entry(w), want) {
				t.Fatalf("k=%d entry %d: got %x, want %x", k, w, bigFromLimbs(p.entry(w)), bigFromLimbs(want))
			}
		}
		a.restore(mark)
	}
}

func TestPowerTableEntriesAreDisjoint(t *testing.T) {
	a := getArena()
	defer a.free()

	n := randOddModulus(t, 2)
	e := newEngine(a, n, NQuote0(n[0]))
	p := buildPowerTable(e, a, randBelow(t, n), 3)
	for i := uint(1); i < 8; i++ {
		if cap(p.entry(i)) != 2 {
			t.Errorf("entry %d: cap %d, want 2", i, cap(p.entry(i)))
		}
		for j := i + 1; j < 8; j++ {
			if overlaps(p.entry(i), p.entry(j)) {
				t.Errorf("entries %d and %d overlap", i, j)
			}
		}
	}
}

func TestTableLimbs(t *testing.T) {
	if got := tableLimbs(4, 6); got != 63*4 {
		t.Errorf("got %d, want %d", got, 63*4)
	}
	if got := tableLimbs(10, 1); got != 10 {
		t.Errorf("got %d, want 10", got)
	}
}
