package jubjub

// Point is an affine point on the Jubjub twisted Edwards curve
//   a*u^2 + v^2 = 1 + d*u^2*v^2,  a = -1
// over the BLS12-381 scalar field Fr, used here as Jubjub's base field. The
// curve has cofactor 8; PrimeOrderPoint marks a point already known to lie
// in the prime-order subgroup (e.g. after ClearCofactor), so callers don't
// repeatedly re-verify subgroup membership on the hot path.

import (
	"math/big"

	"github.com/shieldedkit/sapling-crypto/pkg/bls12381"
)

// baseModulus is Jubjub's base field: the BLS12-381 scalar field order.
var baseModulus = bls12381.GroupOrder()

// curveD is the Edwards curve's d parameter, computed as -(10240/10241) mod
// p rather than hardcoded, so correctness does not depend on a transcribed
// constant.
var curveD = func() *big.Int {
	num := big.NewInt(10240)
	den := big.NewInt(10241)
	denInv := new(big.Int).ModInverse(den, baseModulus)
	d := new(big.Int).Mul(num, denInv)
	d.Mod(d, baseModulus)
	return new(big.Int).Sub(baseModulus, d) // negate: d = -(10240/10241)
}()

func fMod(a *big.Int) *big.Int { return new(big.Int).Mod(a, baseModulus) }
func fAdd(a, b *big.Int) *big.Int { return fMod(new(big.Int).Add(a, b)) }
func fSub(a, b *big.Int) *big.Int { return fMod(new(big.Int).Sub(a, b)) }
func fMul(a, b *big.Int) *big.Int { return fMod(new(big.Int).Mul(a, b)) }
func fInv(a *big.Int) *big.Int    { return new(big.Int).ModInverse(fMod(a), baseModulus) }

// Point is an affine Jubjub point (u, v).
type Point struct {
	u, v *big.Int
}

// Identity returns the curve's neutral element (0, 1).
func Identity() *Point { return &Point{u: big.NewInt(0), v: big.NewInt(1)} }

// IsIdentity reports whether p is the neutral element.
func (p *Point) IsIdentity() bool { return p.u.Sign() == 0 && p.v.Cmp(big.NewInt(1)) == 0 }

// IsOnCurve reports whether p satisfies the curve equation.
func IsOnCurve(u, v *big.Int) bool {
	u2 := fMul(u, u)
	v2 := fMul(v, v)
	lhs := fSub(v2, u2) // a = -1: -u^2 + v^2
	rhs := fAdd(big.NewInt(1), fMul(curveD, fMul(u2, v2)))
	return lhs.Cmp(rhs) == 0
}

// FromAffine builds a point from affine coordinates without validating that
// it lies on the curve; callers that accept untrusted input should check
// IsOnCurve first (Decode does this for them).
func FromAffine(u, v *big.Int) *Point {
	return &Point{u: new(big.Int).Set(u), v: new(big.Int).Set(v)}
}

// U, V return the point's affine coordinates.
func (p *Point) U() *big.Int { return new(big.Int).Set(p.u) }
func (p *Point) V() *big.Int { return new(big.Int).Set(p.v) }

// Add returns p+q using the complete twisted-Edwards addition law (valid
// for a=-1, d a non-square, with no exceptional cases).
func (p *Point) Add(q *Point) *Point {
	u1v2 := fMul(p.u, q.v)
	v1u2 := fMul(p.v, q.u)
	v1v2 := fMul(p.v, q.v)
	u1u2 := fMul(p.u, q.u)
	du1u2v1v2 := fMul(curveD, fMul(u1u2, v1v2))

	uNum := fAdd(u1v2, v1u2)
	uDen := fAdd(big.NewInt(1), du1u2v1v2)
	vNum := fAdd(v1v2, u1u2)
	vDen := fSub(big.NewInt(1), du1u2v1v2)

	u3 := fMul(uNum, fInv(uDen))
	v3 := fMul(vNum, fInv(vDen))
	return &Point{u: u3, v: v3}
}

// Double returns p+p.
func (p *Point) Double() *Point { return p.Add(p) }

// Neg returns -p = (-u, v).
func (p *Point) Neg() *Point { return &Point{u: fSub(big.NewInt(0), p.u), v: new(big.Int).Set(p.v)} }

// ScalarMul computes k*p by double-and-add, MSB to LSB.
func (p *Point) ScalarMul(k *big.Int) *Point {
	if k.Sign() == 0 {
		return Identity()
	}
	r := Identity()
	base := p
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if k.Bit(i) == 1 {
			r = r.Add(base)
		}
	}
	return r
}

// ScalarMulFs computes k*p for a Jubjub scalar-field element.
func (p *Point) ScalarMulFs(k Fs) *Point { return p.ScalarMul(k.bigInt()) }

// ClearCofactor returns 8*p, projecting an arbitrary curve point into the
// prime-order subgroup.
func (p *Point) ClearCofactor() *Point { return p.ScalarMul(big.NewInt(8)) }

// Equal reports whether p and q are the same affine point.
func (p *Point) Equal(q *Point) bool { return p.u.Cmp(q.u) == 0 && p.v.Cmp(q.v) == 0 }

// --- Serialization: 32-byte v-coordinate with a sign bit for u, per the
// standard twisted-Edwards compressed encoding Sapling uses on the wire. ---

// Bytes encodes p as 32 bytes: v little-endian with the top bit carrying the
// sign (parity) of u.
func (p *Point) Bytes() [32]byte {
	v := fMod(p.v)
	be := v.Bytes()
	var buf [32]byte
	copy(buf[32-len(be):], be)
	var out [32]byte
	for i, j := 0, 31; j >= 0; i, j = i+1, j-1 {
		out[i] = buf[j]
	}
	if p.u.Bit(0) == 1 {
		out[31] |= 0x80
	}
	return out
}

// FromBytes decodes a 32-byte compressed point, recovering u via the curve
// equation and rejecting encodings that do not correspond to a point on the
// curve.
func FromBytes(b [32]byte) (*Point, bool) {
	sign := b[31]&0x80 != 0
	var be [32]byte
	for i, j := 0, 31; j >= 0; i, j = i+1, j-1 {
		be[i] = b[j]
	}
	be[0] &^= 0x80
	v := new(big.Int).SetBytes(be[:])
	if v.Cmp(baseModulus) >= 0 {
		return nil, false
	}

	// a=-1: -u^2+v^2 = 1+d u^2 v^2  =>  u^2 (1 + d v^2) = v^2 - 1
	//  => u^2 = (v^2-1) / (1 + d v^2)
	v2 := fMul(v, v)
	num := fSub(v2, big.NewInt(1))
	den := fAdd(big.NewInt(1), fMul(curveD, v2))
	if den.Sign() == 0 {
		return nil, false
	}
	u2 := fMul(num, fInv(den))
	u := sqrtMod(u2, baseModulus)
	if u == nil {
		return nil, false
	}
	if (u.Bit(0) == 1) != sign {
		u = fSub(big.NewInt(0), u)
	}
	if !IsOnCurve(u, v) {
		return nil, false
	}
	return &Point{u: u, v: v}, true
}

// sqrtMod returns a square root of a mod the odd prime p via Tonelli-Shanks,
// or nil if a is not a square. The BLS12-381 scalar field r (Jubjub's base
// field) is 1 mod 4, so the p=3-mod-4 shortcut used for the pairing base
// field does not apply here.
func sqrtMod(a, p *big.Int) *big.Int {
	a = new(big.Int).Mod(a, p)
	if a.Sign() == 0 {
		return big.NewInt(0)
	}
	one := big.NewInt(1)
	two := big.NewInt(2)
	pMinus1 := new(big.Int).Sub(p, one)

	legendre := new(big.Int).Exp(a, new(big.Int).Rsh(pMinus1, 1), p)
	if legendre.Cmp(one) != 0 {
		return nil
	}

	q := new(big.Int).Set(pMinus1)
	s := 0
	for new(big.Int).Mod(q, two).Sign() == 0 {
		q.Rsh(q, 1)
		s++
	}
	if s == 1 {
		exp := new(big.Int).Rsh(new(big.Int).Add(p, one), 2)
		return new(big.Int).Exp(a, exp, p)
	}

	z := big.NewInt(2)
	for {
		l := new(big.Int).Exp(z, new(big.Int).Rsh(pMinus1, 1), p)
		if l.Cmp(pMinus1) == 0 {
			break
		}
		z = new(big.Int).Add(z, one)
	}

	m := s
	c := new(big.Int).Exp(z, q, p)
	t := new(big.Int).Exp(a, q, p)
	qPlus1Half := new(big.Int).Rsh(new(big.Int).Add(q, one), 1)
	r := new(big.Int).Exp(a, qPlus1Half, p)

	for {
		if t.Cmp(one) == 0 {
			return r
		}
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 {
			tt = new(big.Int).Exp(tt, two, p)
			i++
			if i == m {
				return nil
			}
		}
		b := new(big.Int).Exp(c, new(big.Int).Lsh(one, uint(m-i-1)), p)
		m = i
		c = new(big.Int).Mod(new(big.Int).Mul(b, b), p)
		t = new(big.Int).Mod(new(big.Int).Mul(t, c), p)
		r = new(big.Int).Mod(new(big.Int).Mul(r, b), p)
	}
}
