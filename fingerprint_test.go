package montgomery

import (
	"crypto/sha256"
	"math/big"
	"testing"
)

func TestFingerprint(t *testing.T) {
	n := randOddModulus(t, 4)

	tag := sha256.Sum256([]byte("montgomery/modulus"))
	h := sha256.New()
	h.Write(tag[:])
	h.Write(tag[:])
	h.Write(bigFromLimbs(n).Bytes())
	var want [32]byte
	copy(want[:], h.Sum(nil))

	if got := Fingerprint(n); got != want {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestFingerprintIgnoresPadding(t *testing.T) {
	n := randOddModulus(t, 3)
	padded := append(append([]Limb(nil), n...), 0, 0)
	if Fingerprint(n) != Fingerprint(padded) {
		t.Error("Leading zero limbs changed the fingerprint")
	}

	m, err := NewModulus(padded)
	if err != nil {
		t.Fatal(err)
	}
	if m.Fingerprint() != Fingerprint(n) {
		t.Error("Modulus fingerprint differs from Fingerprint")
	}
}

func TestFingerprintDistinct(t *testing.T) {
	a := Fingerprint([]Limb{0x101})
	b := Fingerprint([]Limb{0x103})
	if a == b {
		t.Error("Distinct moduli share a fingerprint")
	}

	// Same value whichever way it was built.
	v := new(big.Int).Lsh(big.NewInt(1), 200)
	v.Add(v, big.NewInt(1))
	limbs := limbsFromBig(make([]Limb, len(v.Bits())), v)
	if Fingerprint(limbs) != Fingerprint(append(limbs, 0)) {
		t.Error("Fingerprint depends on buffer length")
	}
}

func BenchmarkFingerprint(b *testing.B) {
	n := randOddModulus(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Fingerprint(n)
	}
}
