package montgomery

import (
	"math/big"
	"testing"
)

// redcRef returns t*R^-1 mod n.
func redcRef(t, n []Limb) *big.Int {
	v := new(big.Int).Mul(bigFromLimbs(t), rInverse(n))
	return v.Mod(v, bigFromLimbs(n))
}

// productBelowNR returns a random 2*len(n) limb value below n*R, built as a
// product of two residues.
func productBelowNR(tb testing.TB, n []Limb) []Limb {
	x := randBelow(tb, n)
	y := randBelow(tb, n)
	p := make([]Limb, 2*len(n))
	mulVV(p, x, y)
	return p
}

func TestRedc(t *testing.T) {
	for rl := 1; rl <= 4; rl++ {
		for i := 0; i < 200; i++ {
			n := randOddModulus(t, rl)
			tt := productBelowNR(t, n)
			want := redcRef(tt, n)

			z := make([]Limb, rl)
			Redc(z, n, NQuote0(n[0]), append([]Limb(nil), tt...))
			if got := bigFromLimbs(z); got.Cmp(want) != 0 {
				t.Fatalf("rl=%d n=%x t=%x: got %x, want %x", rl, bigFromLimbs(n), bigFromLimbs(tt), got, want)
			}
		}
	}
}

func TestRedcEdges(t *testing.T) {
	tests := []struct {
		name string
		n    []Limb
		t    func(n []Limb) []Limb
	}{
		{
			name: "zero",
			n:    []Limb{0xf1, 3},
			t:    func(n []Limb) []Limb { return make([]Limb, 4) },
		},
		{
			name: "modulus one",
			n:    []Limb{1},
			t:    func(n []Limb) []Limb { return []Limb{0, 0} },
		},
		{
			name: "largest modulus",
			n:    []Limb{^Limb(0), ^Limb(0)},
			t: func(n []Limb) []Limb {
				// (n-1)^2, the largest product of residues.
				x := []Limb{^Limb(0) - 1, ^Limb(0)}
				p := make([]Limb, 4)
				mulVV(p, x, x)
				return p
			},
		},
		{
			name: "n times R minus one",
			n:    []Limb{^Limb(0), ^Limb(0) >> 1},
			t: func(n []Limb) []Limb {
				p := make([]Limb, 4)
				copy(p[2:], n)
				subVV(p, p, []Limb{1, 0, 0, 0})
				return p
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := tc.t(tc.n)
			want := redcRef(tt, tc.n)
			z := make([]Limb, len(tc.n))
			Redc(z, tc.n, NQuote0(tc.n[0]), tt)
			if got := bigFromLimbs(z); got.Cmp(want) != 0 {
				t.Errorf("got %x, want %x", got, want)
			}
		})
	}
}

func TestRedcInPlace(t *testing.T) {
	n := randOddModulus(t, 3)
	tt := productBelowNR(t, n)
	want := redcRef(tt, n)

	t.Run("upper half of t", func(t *testing.T) {
		buf := append([]Limb(nil), tt...)
		Redc(buf[3:], n, NQuote0(n[0]), buf)
		if got := bigFromLimbs(buf[3:]); got.Cmp(want) != 0 {
			t.Errorf("got %x, want %x", got, want)
		}
	})

	t.Run("modulus", func(t *testing.T) {
		nn := append([]Limb(nil), n...)
		Redc(nn, nn, NQuote0(nn[0]), append([]Limb(nil), tt...))
		if got := bigFromLimbs(nn); got.Cmp(want) != 0 {
			t.Errorf("got %x, want %x", got, want)
		}
	})
}

func TestRedcShortBuffers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for short t")
		}
	}()
	n := []Limb{5, 1}
	Redc(make([]Limb, 2), n, NQuote0(5), make([]Limb, 3))
}

// REDC of x*R^2 gives x*R, and REDC of that gives x back.
func TestRedcRoundTrip(t *testing.T) {
	n := randOddModulus(t, 4)
	x := randBelow(t, n)
	rr := make([]Limb, 4)
	montRR(rr, n)

	p := make([]Limb, 8)
	mulVV(p, x, rr)
	xm := make([]Limb, 4)
	Redc(xm, n, NQuote0(n[0]), p)
	if !equalLimbs(xm, toMontRef(x, n)) {
		t.Fatal("x*R^2 did not reduce to x*R")
	}

	clear(p)
	copy(p, xm)
	back := make([]Limb, 4)
	Redc(back, n, NQuote0(n[0]), p)
	if !equalLimbs(back, x) {
		t.Errorf("round trip: got %x, want %x", bigFromLimbs(back), bigFromLimbs(x))
	}
}

func BenchmarkRedc(b *testing.B) {
	n := randOddModulus(b, 32)
	tt := productBelowNR(b, n)
	nq := NQuote0(n[0])
	buf := make([]Limb, len(tt))
	z := make([]Limb, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, tt)
		Redc(z, n, nq, buf)
	}
}
