package montgomery

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrZeroModulus = errors.New("montgomery: modulus is not positive")
	ErrEvenModulus = errors.New("montgomery: modulus is even")
	ErrWindowSize  = errors.New("montgomery: window width out of range")
	ErrNegative    = errors.New("montgomery: negative exponent")
)

// maxTableLimbs caps the power table a Modulus will build for one
// exponentiation.
const maxTableLimbs = 1 << 16

// Modulus is an odd modulus together with everything Montgomery arithmetic
// needs precomputed: the reduction constant, R mod n and R^2 mod n.
//
// A Modulus is immutable once built and safe for concurrent use. Values
// passed to its methods have exactly Limbs() limbs and are below the
// modulus.
type Modulus struct {
	n       []Limb
	nBig    *big.Int
	nquote0 Limb
	one     []Limb // R mod n
	rr      []Limb // R^2 mod n
	window  uint
	fp      [32]byte
}

// Option configures a Modulus at construction.
type Option func(*Modulus) error

// WithWindow sets the exponentiation window width. k must lie in
// [1, MaxWindow] and its power table must stay within a fixed limb budget
// for the modulus size.
func WithWindow(k uint) Option {
	return func(m *Modulus) error {
		if k < 1 || k > MaxWindow || tableLimbs(len(m.n), k) > maxTableLimbs {
			return fmt.Errorf("%w: %d for %d limbs", ErrWindowSize, k, len(m.n))
		}
		m.window = k
		return nil
	}
}

// NewModulus builds a Modulus from the limbs of n. The limbs are copied.
func NewModulus(n []Limb, opts ...Option) (*Modulus, error) {
	n = trim(n)
	if len(n) == 0 {
		return nil, ErrZeroModulus
	}
	if n[0]&1 == 0 {
		return nil, ErrEvenModulus
	}

	rl := len(n)
	m := &Modulus{
		n:       append([]Limb(nil), n...),
		nquote0: NQuote0(n[0]),
		one:     make([]Limb, rl),
		rr:      make([]Limb, rl),
		window:  DefaultWindow,
	}
	m.nBig = bigFromLimbs(m.n)
	m.fp = Fingerprint(m.n)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	montOne(m.one, m.n)
	montRR(m.rr, m.n)
	return m, nil
}

// NewModulusFromBig builds a Modulus from a positive odd big.Int.
func NewModulusFromBig(n *big.Int, opts ...Option) (*Modulus, error) {
	if n.Sign() <= 0 {
		return nil, ErrZeroModulus
	}
	return NewModulus(limbsFromBig(make([]Limb, len(n.Bits())), n), opts...)
}

// Limbs returns the modulus size in limbs.
func (m *Modulus) Limbs() int { return len(m.n) }

// BitLen returns the modulus size in bits.
func (m *Modulus) BitLen() int { return bitLen(m.n) }

// Nat returns a copy of the modulus limbs.
func (m *Modulus) Nat() []Limb { return append([]Limb(nil), m.n...) }

// Big returns the modulus as a big.Int.
func (m *Modulus) Big() *big.Int { return new(big.Int).Set(m.nBig) }

// NQuote0 returns the reduction constant -n^-1 mod 2^W.
func (m *Modulus) NQuote0() Limb { return m.nquote0 }

// Window returns the exponentiation window width.
func (m *Modulus) Window() uint { return m.window }

// Fingerprint returns the tagged SHA-256 digest of the modulus value.
func (m *Modulus) Fingerprint() [32]byte { return m.fp }

// One returns the Montgomery form of 1, R mod n.
func (m *Modulus) One() []Limb { return append([]Limb(nil), m.one...) }

// resize returns z with room for exactly Limbs() limbs, allocating when z is
// too small.
func (m *Modulus) resize(z []Limb) []Limb {
	if cap(z) < len(m.n) {
		return make([]Limb, len(m.n))
	}
	return z[:len(m.n)]
}

// ToMont sets z = x*R mod n and returns it.
func (m *Modulus) ToMont(z, x []Limb) []Limb {
	z = m.resize(z)
	a := getArena()
	defer a.free()
	newEngine(a, m.n, m.nquote0).mul(z, x, m.rr)
	return z
}

// FromMont sets z = x*R^-1 mod n and returns it, taking x out of the
// Montgomery domain.
func (m *Modulus) FromMont(z, x []Limb) []Limb {
	z = m.resize(z)
	a := getArena()
	defer a.free()
	newEngine(a, m.n, m.nquote0).reduce(z, x)
	return z
}

// Mul sets z = x*y*R^-1 mod n and returns it. z may be x or y.
func (m *Modulus) Mul(z, x, y []Limb) []Limb {
	z = m.resize(z)
	a := getArena()
	defer a.free()
	newEngine(a, m.n, m.nquote0).mul(z, x, y)
	return z
}

// Sqr sets z = x*x*R^-1 mod n and returns it. z may be x.
func (m *Modulus) Sqr(z, x []Limb) []Limb {
	z = m.resize(z)
	a := getArena()
	defer a.free()
	newEngine(a, m.n, m.nquote0).sqr(z, x)
	return z
}

// Exp sets z = x^e in Montgomery form and returns it. x is in Montgomery
// form, e is a plain exponent of any length. z must not overlap x or e.
func (m *Modulus) Exp(z, x, e []Limb) []Limb {
	z = m.resize(z)
	ModPowWindow(z, m.one, m.n, m.nquote0, x, e, bitLen(e), m.window)
	return z
}

// ToMontBig reduces x modulo n and returns its Montgomery form.
func (m *Modulus) ToMontBig(x *big.Int) []Limb {
	r := new(big.Int).Mod(x, m.nBig)
	plain := limbsFromBig(make([]Limb, len(m.n)), r)
	return m.ToMont(plain, plain)
}

// FromMontBig takes x out of the Montgomery domain and returns it as a
// big.Int.
func (m *Modulus) FromMontBig(x []Limb) *big.Int {
	return bigFromLimbs(m.FromMont(nil, x))
}

// ExpBig returns x^e mod n. x may be any integer; e must not be negative.
func (m *Modulus) ExpBig(x, e *big.Int) (*big.Int, error) {
	if e.Sign() < 0 {
		return nil, ErrNegative
	}
	xm := m.ToMontBig(x)
	exp := limbsFromBig(make([]Limb, len(e.Bits())), e)
	return m.FromMontBig(m.Exp(nil, xm, exp)), nil
}
