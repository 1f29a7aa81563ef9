package bls12381

// G2Prepared precomputes the Miller-loop line-function coefficients for a
// fixed G2 point, so that a pairing against many G1 points (or many
// pairings sharing one G2 argument) need not redo the G2-side doubling and
// addition steps each time.

import "math/big"

// g2LineCoeffs is one (c0, c1, c2) line-function coefficient triple, scaled
// against the G1 point's affine (x, y) via ell() during the Miller loop.
type g2LineCoeffs struct {
	c0, c1, c2 *fq2
}

// G2Prepared is a fixed G2 point together with the line-function
// coefficients accumulated while running the BLS x-parameter's
// double-and-add chain over it.
type G2Prepared struct {
	infinity bool
	coeffs   []g2LineCoeffs
}

// g2doubleStep holds the running Jacobian accumulator (x, y, z) used while
// walking the Miller loop.
type g2doubleStep struct {
	x, y, z *fq2
}

// doublingStep implements EFD eprint-2010/354 Algorithm 26 (Miller doubling
// for a curve with a=0, in homogeneous projective coordinates folded into
// our Jacobian-like (x,y,z) triple), returning the updated point and the
// line coefficients for this step.
func doublingStep(r *g2doubleStep) (g2LineCoeffs, *g2doubleStep) {
	// Formulas follow the standard pairing-friendly-curve Miller doubling,
	// as used by the zkcrypto/pairing family of BLS12-381 implementations.
	tmp0 := fq2Sqr(r.x)
	tmp1 := fq2Sqr(r.y)
	tmp2 := fq2Sqr(tmp1)
	tmp3 := fq2Mul(fq2Add(tmp1, r.x), fq2Add(tmp1, r.x))
	tmp3 = fq2Sub(fq2Sub(tmp3, tmp0), tmp2)
	tmp3 = fq2Add(tmp3, tmp3)
	tmp4 := fq2Add(fq2Add(tmp0, tmp0), tmp0)
	tmp6 := fq2Add(r.x, tmp4)
	tmp5 := fq2Sqr(tmp4)
	zsquared := fq2Sqr(r.z)
	x3 := fq2Sub(fq2Sub(tmp5, tmp3), tmp3)
	z3 := fq2Mul(fq2Add(r.z, r.y), fq2Add(r.z, r.y))
	z3 = fq2Sub(fq2Sub(z3, tmp1), zsquared)
	y3 := fq2Sub(tmp3, x3)
	y3 = fq2Mul(y3, tmp4)
	tmp2eight := fq2Add(fq2Add(tmp2, tmp2), fq2Add(tmp2, tmp2))
	tmp2eight = fq2Add(tmp2eight, tmp2eight)
	y3 = fq2Sub(y3, tmp2eight)
	tmp3line := fq2Mul(tmp4, zsquared)
	tmp3line = fq2Add(tmp3line, tmp3line)
	tmp3line = fq2Neg(tmp3line)
	tmp6 = fq2Sub(fq2Mul(tmp6, tmp6), fq2Add(tmp0, tmp5))
	tmp1four := fq2Add(fq2Add(tmp1, tmp1), fq2Add(tmp1, tmp1))
	tmp6 = fq2Sub(tmp6, tmp1four)
	tmp0line := fq2Mul(z3, zsquared)
	tmp0line = fq2Add(tmp0line, tmp0line)

	next := &g2doubleStep{x: x3, y: y3, z: z3}
	coeffs := g2LineCoeffs{c0: tmp0line, c1: tmp3line, c2: tmp6}
	return coeffs, next
}

// additionStep implements EFD eprint-2010/354 Algorithm 27 (Miller mixed
// addition of the fixed affine base point q into the running accumulator).
func additionStep(r *g2doubleStep, qx, qy *fq2) (g2LineCoeffs, *g2doubleStep) {
	zsquared := fq2Sqr(r.z)
	ysquared := fq2Sqr(qy)
	t0 := fq2Mul(zsquared, qx)
	t1 := fq2Add(fq2Mul(fq2Add(qy, r.z), fq2Add(qy, r.z)), fq2Neg(fq2Add(ysquared, zsquared)))
	t1 = fq2Mul(t1, zsquared)
	t2 := fq2Sub(t0, r.x)
	t3 := fq2Sqr(t2)
	t4 := fq2Add(t3, t3)
	t4 = fq2Add(t4, t4)
	t5 := fq2Mul(t4, t2)
	t6 := fq2Sub(t1, fq2Add(r.y, r.y))
	t9 := fq2Mul(t6, qx)
	t7 := fq2Mul(t4, r.x)
	x3 := fq2Sub(fq2Sub(fq2Sqr(t6), t5), fq2Add(t7, t7))
	z3 := fq2Mul(fq2Add(r.z, t2), fq2Add(r.z, t2))
	z3 = fq2Sub(z3, fq2Add(zsquared, t3))
	t10 := fq2Add(qy, z3)
	t8 := fq2Mul(fq2Sub(t7, x3), t6)
	t0y := fq2Mul(r.y, t5)
	t0y = fq2Add(t0y, t0y)
	y3 := fq2Sub(t8, t0y)
	t10 = fq2Sub(fq2Mul(t10, t10), fq2Add(fq2Sqr(qy), fq2Sqr(z3)))
	t9 = fq2Sub(fq2Add(t9, t9), t10)
	t10line := fq2Add(z3, z3)
	t6line := fq2Neg(fq2Add(t6, t6))

	next := &g2doubleStep{x: x3, y: y3, z: z3}
	coeffs := g2LineCoeffs{c0: t10line, c1: t6line, c2: t9}
	return coeffs, next
}

// PrepareG2 precomputes the Miller-loop line coefficients for q.
func PrepareG2(q *G2Point) *G2Prepared {
	if q.IsIdentity() {
		return &G2Prepared{infinity: true}
	}
	qx, qy := q.Affine()
	r := &g2doubleStep{x: qx.clone(), y: qy.clone(), z: fq2One()}

	var coeffs []g2LineCoeffs
	foundOne := false
	for _, bit := range blsXBits() {
		if !foundOne {
			foundOne = bit
			continue
		}
		var c g2LineCoeffs
		c, r = doublingStep(r)
		coeffs = append(coeffs, c)
		if bit {
			var c2 g2LineCoeffs
			c2, r = additionStep(r, qx, qy)
			coeffs = append(coeffs, c2)
		}
	}
	c, _ := doublingStep(r)
	coeffs = append(coeffs, c)

	return &G2Prepared{infinity: false, coeffs: coeffs}
}

// blsXBits returns the bits of |BLS_X| >> 1, most-significant first.
func blsXBits() []bool {
	x := new(big.Int).Rsh(blsX, 1)
	n := x.BitLen()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = x.Bit(n-1-i) == 1
	}
	return bits
}
