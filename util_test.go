package montgomery

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"testing"
)

// randLimbs returns n limbs of random data.
func randLimbs(t testing.TB, n int) []Limb {
	t.Helper()
	buf := make([]byte, n*_S)
	if _, err := rand.Read(buf); err != nil {
		t.Fatal(err)
	}
	z := make([]Limb, n)
	for i := range z {
		if _S == 8 {
			z[i] = Limb(binary.LittleEndian.Uint64(buf[i*_S:]))
		} else {
			z[i] = Limb(binary.LittleEndian.Uint32(buf[i*_S:]))
		}
	}
	return z
}

// randOddModulus returns a random odd modulus of exactly n limbs.
func randOddModulus(t testing.TB, n int) []Limb {
	t.Helper()
	m := randLimbs(t, n)
	m[0] |= 1
	if m[n-1] == 0 {
		m[n-1] = 1
	}
	return m
}

// randBelow returns a random value below n with len(n) limbs.
func randBelow(t testing.TB, n []Limb) []Limb {
	t.Helper()
	v, err := rand.Int(rand.Reader, bigFromLimbs(n))
	if err != nil {
		t.Fatal(err)
	}
	return limbsFromBig(make([]Limb, len(n)), v)
}

// rInverse returns R^-1 mod n for R = 2^(len(n)*W).
func rInverse(n []Limb) *big.Int {
	nb := bigFromLimbs(n)
	r := new(big.Int).Lsh(big.NewInt(1), uint(len(n)*_W))
	return new(big.Int).ModInverse(r, nb)
}

// toMontRef returns x*R mod n computed with math/big.
func toMontRef(x, n []Limb) []Limb {
	nb := bigFromLimbs(n)
	v := new(big.Int).Lsh(bigFromLimbs(x), uint(len(n)*_W))
	v.Mod(v, nb)
	return limbsFromBig(make([]Limb, len(n)), v)
}

func equalLimbs(x, y []Limb) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
