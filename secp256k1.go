package montgomery

import (
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
)

var (
	secpP, secpN     *Modulus
	secpPm2, secpNm2 []Limb // p-2 and n-2, the Fermat inversion exponents
	secpOnce         sync.Once
)

func initSecp256k1() {
	params := btcec.S256().Params()
	secpP, secpPm2 = fermatModulus(params.P)
	secpN, secpNm2 = fermatModulus(params.N)
}

// fermatModulus builds the context for the prime p together with the
// exponent p-2.
func fermatModulus(p *big.Int) (*Modulus, []Limb) {
	m, err := NewModulusFromBig(p)
	if err != nil {
		panic("montgomery: secp256k1 constant rejected: " + err.Error())
	}
	e := new(big.Int).Sub(p, big.NewInt(2))
	return m, limbsFromBig(make([]Limb, m.Limbs()), e)
}

// Secp256k1P returns the context for the secp256k1 field prime
// p = 2^256 - 2^32 - 977.
func Secp256k1P() *Modulus {
	secpOnce.Do(initSecp256k1)
	return secpP
}

// Secp256k1N returns the context for the secp256k1 group order n.
func Secp256k1N() *Modulus {
	secpOnce.Do(initSecp256k1)
	return secpN
}

// InverseModP returns x^-1 mod p for the secp256k1 field prime, computed as
// x^(p-2). Zero maps to zero.
func InverseModP(x *big.Int) *big.Int {
	secpOnce.Do(initSecp256k1)
	return fermatInverse(secpP, secpPm2, x)
}

// InverseModN returns x^-1 mod n for the secp256k1 group order, computed as
// x^(n-2). Zero maps to zero.
func InverseModN(x *big.Int) *big.Int {
	secpOnce.Do(initSecp256k1)
	return fermatInverse(secpN, secpNm2, x)
}

func fermatInverse(m *Modulus, e []Limb, x *big.Int) *big.Int {
	xm := m.ToMontBig(x)
	return m.FromMontBig(m.Exp(nil, xm, e))
}
