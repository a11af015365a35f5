package montgomery

// Inv1 returns y such that x*y ≡ 1 (mod 2^W), where W is the limb width.
// x must be odd; the result is meaningless otherwise.
//
// y is built one bit at a time (Hensel lifting). Bit 0 is 1 because x is odd.
// With x*y ≡ 1 (mod 2^i), bit i of x*y is either already clear, or it is
// cleared by adding 2^i to y, which leaves the low i bits of the product
// untouched since x is odd.
func Inv1(x Limb) Limb {
	y := Limb(1)
	for i := uint(1); i < _W-1; i++ {
		if (x*y)>>i&1 != 0 {
			y |= 1 << i
		}
	}
	if (x*y)>>(_W-1) != 0 {
		y |= 1 << (_W - 1)
	}
	return y
}

// NQuote0 returns the REDC reduction constant for a modulus whose lowest limb
// is n0: the limb q with n0*q ≡ -1 (mod 2^W). n0 must be odd.
func NQuote0(n0 Limb) Limb {
	return Inv1(-n0)
}
