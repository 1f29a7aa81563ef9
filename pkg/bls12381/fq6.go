package bls12381

// Fq6 = Fq2[v]/(v^3 - (1+u)), the sextic extension used as the "real" half
// of the Fq12 pairing tower.

import "math/big"

type fq6 struct {
	c0, c1, c2 *fq2
}

func fq6Zero() *fq6 { return &fq6{c0: fq2Zero(), c1: fq2Zero(), c2: fq2Zero()} }
func fq6One() *fq6  { return &fq6{c0: fq2One(), c1: fq2Zero(), c2: fq2Zero()} }

func (a *fq6) equal(b *fq6) bool {
	return a.c0.equal(b.c0) && a.c1.equal(b.c1) && a.c2.equal(b.c2)
}

func fq6Add(a, b *fq6) *fq6 {
	return &fq6{c0: fq2Add(a.c0, b.c0), c1: fq2Add(a.c1, b.c1), c2: fq2Add(a.c2, b.c2)}
}

func fq6Sub(a, b *fq6) *fq6 {
	return &fq6{c0: fq2Sub(a.c0, b.c0), c1: fq2Sub(a.c1, b.c1), c2: fq2Sub(a.c2, b.c2)}
}

func fq6Neg(a *fq6) *fq6 {
	return &fq6{c0: fq2Neg(a.c0), c1: fq2Neg(a.c1), c2: fq2Neg(a.c2)}
}

// fq6Mul is Karatsuba multiplication in Fq6 (6 Fq2 muls instead of 9).
func fq6Mul(a, b *fq6) *fq6 {
	t0 := fq2Mul(a.c0, b.c0)
	t1 := fq2Mul(a.c1, b.c1)
	t2 := fq2Mul(a.c2, b.c2)

	c0 := fq2Add(t0, fq2MulByNonResidue(
		fq2Sub(fq2Mul(fq2Add(a.c1, a.c2), fq2Add(b.c1, b.c2)), fq2Add(t1, t2))))
	c1 := fq2Add(fq2Sub(fq2Mul(fq2Add(a.c0, a.c1), fq2Add(b.c0, b.c1)), fq2Add(t0, t1)),
		fq2MulByNonResidue(t2))
	c2 := fq2Add(fq2Sub(fq2Mul(fq2Add(a.c0, a.c2), fq2Add(b.c0, b.c2)), fq2Add(t0, t2)), t1)

	return &fq6{c0: c0, c1: c1, c2: c2}
}

func fq6Sqr(a *fq6) *fq6 {
	s0 := fq2Sqr(a.c0)
	ab := fq2Mul(a.c0, a.c1)
	s1 := fq2Add(ab, ab)
	s2 := fq2Sqr(fq2Sub(fq2Add(a.c0, a.c2), a.c1))
	bc := fq2Mul(a.c1, a.c2)
	s3 := fq2Add(bc, bc)
	s4 := fq2Sqr(a.c2)

	c0 := fq2Add(s0, fq2MulByNonResidue(s3))
	c1 := fq2Add(s1, fq2MulByNonResidue(s4))
	c2 := fq2Add(fq2Add(fq2Add(s1, s2), s3), fq2Sub(fq2Neg(s0), s4))

	return &fq6{c0: c0, c1: c1, c2: c2}
}

func fq6Inv(a *fq6) *fq6 {
	t0 := fq2Sqr(a.c0)
	t1 := fq2Sqr(a.c1)
	t2 := fq2Sqr(a.c2)
	t3 := fq2Mul(a.c0, a.c1)
	t4 := fq2Mul(a.c0, a.c2)
	t5 := fq2Mul(a.c1, a.c2)

	c0 := fq2Sub(t0, fq2MulByNonResidue(t5))
	c1 := fq2Sub(fq2MulByNonResidue(t2), t3)
	c2 := fq2Sub(t1, t4)

	t6 := fq2Mul(a.c0, c0)
	t6 = fq2Add(t6, fq2MulByNonResidue(fq2Add(fq2Mul(a.c2, c1), fq2Mul(a.c1, c2))))
	t6 = fq2Inv(t6)

	return &fq6{c0: fq2Mul(c0, t6), c1: fq2Mul(c1, t6), c2: fq2Mul(c2, t6)}
}

// fq6MulByV multiplies by the Fq6 variable v:
// v*(c0 + c1 v + c2 v^2) = c2*(1+u) + c0 v + c1 v^2.
func fq6MulByV(a *fq6) *fq6 {
	return &fq6{c0: fq2MulByNonResidue(a.c2), c1: a.c0.clone(), c2: a.c1.clone()}
}

// fq6MulBy01 computes a * (c0 + c1 v) for a sparse Fq6 factor, exploiting
// the missing c2 coefficient (used by the mul_by_014 sparse Fq12 multiply).
func fq6MulBy01(a *fq6, c0, c1 *fq2) *fq6 {
	aa := fq2Mul(a.c0, c0)
	bb := fq2Mul(a.c1, c1)

	t1 := fq2Sub(fq2Mul(c1, fq2Add(a.c1, a.c2)), bb)
	t1 = fq2Add(fq2MulByNonResidue(t1), aa)

	t2 := fq2Sub(fq2Sub(fq2Mul(fq2Add(c0, c1), fq2Add(a.c0, a.c1)), aa), bb)

	t3 := fq2Add(fq2Sub(fq2Mul(c0, fq2Add(a.c0, a.c2)), aa), bb)

	return &fq6{c0: t1, c1: t2, c2: t3}
}

// fq6MulBy1 computes a * (c1 v), the even-sparser case used inside
// mul_by_014.
func fq6MulBy1(a *fq6, c1 *fq2) *fq6 {
	return &fq6{
		c0: fq2MulByNonResidue(fq2Mul(a.c2, c1)),
		c1: fq2Mul(a.c0, c1),
		c2: fq2Mul(a.c1, c1),
	}
}

// --- Frobenius ---
//
// gammaFq6C1 = xi^((p-1)/3) and gammaFq6C2 = gammaFq6C1^2 are computed once
// at init time rather than hard-coded, so correctness does not depend on a
// transcribed constant.
var (
	nonResidueXi = &fq2{c0: big.NewInt(1), c1: big.NewInt(1)} // 1+u
	gammaFq6C1   = func() *fq2 {
		exp := new(big.Int).Sub(modulus, big.NewInt(1))
		exp.Div(exp, big.NewInt(3))
		return fq2Exp(nonResidueXi, exp)
	}()
	gammaFq6C2 = fq2Mul(gammaFq6C1, gammaFq6C1)
)

// fq6FrobeniusP1 computes a^p (the degree-1 Frobenius) for Fq6.
func fq6FrobeniusP1(a *fq6) *fq6 {
	return &fq6{
		c0: fq2Conj(a.c0),
		c1: fq2Mul(fq2Conj(a.c1), gammaFq6C1),
		c2: fq2Mul(fq2Conj(a.c2), gammaFq6C2),
	}
}
