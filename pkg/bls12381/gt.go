package bls12381

// Gt is the pairing target group: the order-r cyclotomic subgroup of Fq12
// reached by a Miller loop plus final exponentiation. Its group law is
// multiplicative — Combine is Fq12 multiplication, Double is squaring,
// Negate is conjugation.

import "math/big"

// Gt is an element of the pairing target group.
type Gt struct {
	v *Fq12
}

func gtOne() *Gt { return &Gt{v: fq12One()} }

// GtIdentity returns the Gt identity element (Fq12 one).
func GtIdentity() *Gt { return gtOne() }

// IsIdentity reports whether g is the Gt identity.
func (g *Gt) IsIdentity() bool { return g.v.IsOne() }

// Equal reports whether g and h are the same Gt element.
func (g *Gt) Equal(h *Gt) bool { return g.v.Equal(h.v) }

// Combine returns g*h (the Gt group operation).
func (g *Gt) Combine(h *Gt) *Gt { return &Gt{v: fq12Mul(g.v, h.v)} }

// Double returns g+g (i.e. g^2, squaring).
func (g *Gt) Double() *Gt { return &Gt{v: fq12Sqr(g.v)} }

// Negate returns -g (i.e. g^-1, which on the unitary subgroup is conjugation).
func (g *Gt) Negate() *Gt { return &Gt{v: fq12Conj(g.v)} }

// ScalarMul computes k*g (i.e. g^k) by double-and-add, MSB to LSB, skipping
// the implicit leading zero bit.
func (g *Gt) ScalarMul(k *big.Int) *Gt {
	kMod := new(big.Int).Mod(k, groupOrder)
	if kMod.Sign() == 0 {
		return gtOne()
	}
	r := gtOne()
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if kMod.Bit(i) == 1 {
			r = r.Combine(g)
		}
	}
	return r
}
