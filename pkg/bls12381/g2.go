package bls12381

// G2 is the twist curve E': y^2 = x^3 + 4(1+u) over Fq2.

import "math/big"

// G2Point is a point on the BLS12-381 G2 twist curve.
type G2Point struct {
	x, y, z *fq2
}

var twistB = &fq2{c0: big.NewInt(4), c1: big.NewInt(4)}

var (
	g2GenXc0, _ = new(big.Int).SetString(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	g2GenXc1, _ = new(big.Int).SetString(
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	g2GenYc0, _ = new(big.Int).SetString(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	g2GenYc1, _ = new(big.Int).SetString(
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)

	// g2Cofactor clears E'(Fq2) down to the prime-order subgroup.
	g2Cofactor, _ = new(big.Int).SetString(
		"5d543a95414e7f1091d50792876a202cd91de4547085abaa68a205b2e5a7ddfa628f1cb4d9e82ef21537e293a6691ae1616ec6e786f0c70cf1c38e31c7238e5", 16)
)

// G2Generator returns the generator of G2.
func G2Generator() *G2Point {
	return &G2Point{
		x: &fq2{c0: new(big.Int).Set(g2GenXc0), c1: new(big.Int).Set(g2GenXc1)},
		y: &fq2{c0: new(big.Int).Set(g2GenYc0), c1: new(big.Int).Set(g2GenYc1)},
		z: fq2One(),
	}
}

// G2Identity returns the point at infinity.
func G2Identity() *G2Point { return &G2Point{x: fq2One(), y: fq2One(), z: fq2Zero()} }

// IsIdentity reports whether p is the point at infinity.
func (p *G2Point) IsIdentity() bool { return p.z.isZero() }

func g2FromAffine(x, y *fq2) *G2Point {
	if x.isZero() && y.isZero() {
		return G2Identity()
	}
	return &G2Point{x: x.clone(), y: y.clone(), z: fq2One()}
}

// Affine returns the affine (x, y) coordinates, (0,0) for the identity.
func (p *G2Point) Affine() (x, y *fq2) {
	if p.IsIdentity() {
		return fq2Zero(), fq2Zero()
	}
	zInv := fq2Inv(p.z)
	zInv2 := fq2Sqr(zInv)
	zInv3 := fq2Mul(zInv2, zInv)
	return fq2Mul(p.x, zInv2), fq2Mul(p.y, zInv3)
}

func g2IsOnCurve(x, y *fq2) bool {
	if x.isZero() && y.isZero() {
		return true
	}
	if !(fqCanonical(x.c0) && fqCanonical(x.c1) && fqCanonical(y.c0) && fqCanonical(y.c1)) {
		return false
	}
	lhs := fq2Sqr(y)
	rhs := fq2Add(fq2Mul(fq2Sqr(x), x), twistB)
	return lhs.equal(rhs)
}

// Add returns p + q.
func (p *G2Point) Add(q *G2Point) *G2Point {
	if p.IsIdentity() {
		return &G2Point{q.x.clone(), q.y.clone(), q.z.clone()}
	}
	if q.IsIdentity() {
		return &G2Point{p.x.clone(), p.y.clone(), p.z.clone()}
	}
	z1sq := fq2Sqr(p.z)
	z2sq := fq2Sqr(q.z)
	u1 := fq2Mul(p.x, z2sq)
	u2 := fq2Mul(q.x, z1sq)
	s1 := fq2Mul(p.y, fq2Mul(q.z, z2sq))
	s2 := fq2Mul(q.y, fq2Mul(p.z, z1sq))

	if u1.equal(u2) {
		if s1.equal(s2) {
			return p.Double()
		}
		return G2Identity()
	}

	h := fq2Sub(u2, u1)
	i := fq2Sqr(fq2Add(h, h))
	j := fq2Mul(h, i)
	r := fq2Add(fq2Sub(s2, s1), fq2Sub(s2, s1))
	v := fq2Mul(u1, i)

	x3 := fq2Sub(fq2Sub(fq2Sqr(r), j), fq2Add(v, v))
	y3 := fq2Sub(fq2Mul(r, fq2Sub(v, x3)), fq2Add(fq2Mul(s1, j), fq2Mul(s1, j)))
	z3 := fq2Mul(fq2Sub(fq2Sub(fq2Sqr(fq2Add(p.z, q.z)), z1sq), z2sq), h)
	return &G2Point{x: x3, y: y3, z: z3}
}

// Double returns p + p.
func (p *G2Point) Double() *G2Point {
	if p.IsIdentity() {
		return G2Identity()
	}
	A := fq2Sqr(p.x)
	B := fq2Sqr(p.y)
	C := fq2Sqr(B)
	D := fq2Sub(fq2Sub(fq2Sqr(fq2Add(p.x, B)), A), C)
	D = fq2Add(D, D)
	E := fq2Add(fq2Add(A, A), A)
	x3 := fq2Sub(fq2Sqr(E), fq2Add(D, D))
	eightC := fq2Add(fq2Add(fq2Add(C, C), fq2Add(C, C)), fq2Add(fq2Add(C, C), fq2Add(C, C)))
	y3 := fq2Sub(fq2Mul(E, fq2Sub(D, x3)), eightC)
	z3 := fq2Mul(fq2Add(p.y, p.y), p.z)
	return &G2Point{x: x3, y: y3, z: z3}
}

// Neg returns -p.
func (p *G2Point) Neg() *G2Point {
	if p.IsIdentity() {
		return G2Identity()
	}
	return &G2Point{x: p.x.clone(), y: fq2Neg(p.y), z: p.z.clone()}
}

// ScalarMul computes k*p by double-and-add MSB to LSB.
func (p *G2Point) ScalarMul(k *big.Int) *G2Point {
	kMod := new(big.Int).Mod(k, groupOrder)
	if kMod.Sign() == 0 || p.IsIdentity() {
		return G2Identity()
	}
	r := G2Identity()
	base := &G2Point{p.x.clone(), p.y.clone(), p.z.clone()}
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if kMod.Bit(i) == 1 {
			r = r.Add(base)
		}
	}
	return r
}

// ClearCofactor returns h*p where h is the G2 cofactor.
func (p *G2Point) ClearCofactor() *G2Point {
	// h exceeds r and ScalarMul reduces its scalar mod r, so h*p is
	// computed here directly.
	r := G2Identity()
	for i := g2Cofactor.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if g2Cofactor.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}

// InSubgroup reports whether p lies in the prime-order subgroup.
func (p *G2Point) InSubgroup() bool {
	if p.IsIdentity() {
		return true
	}
	// ScalarMul reduces its scalar mod r, so r*p is computed here directly.
	r := G2Identity()
	for i := groupOrder.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if groupOrder.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r.IsIdentity()
}

// --- Serialization: 96-byte compressed / 192-byte uncompressed ---

const (
	g2CompressedSize   = 96
	g2UncompressedSize = 192
)

// CompressedBytes encodes p to the 96-byte compressed wire form (x.c1||x.c0
// with tag bits in the top byte, per spec §6).
func (p *G2Point) CompressedBytes() [g2CompressedSize]byte {
	var out [g2CompressedSize]byte
	if p.IsIdentity() {
		out[0] = tagCompressed | tagInfinity
		return out
	}
	x, y := p.Affine()
	xb := fq2Bytes(x)
	copy(out[:], xb[:])
	out[0] |= tagCompressed
	half := new(big.Int).Rsh(modulus, 1)
	yNorm := y.c1
	flip := yNorm.Cmp(half) > 0 || (yNorm.Sign() == 0 && y.c0.Cmp(half) > 0)
	if flip {
		out[0] |= tagSortBit
	}
	return out
}

// G2FromCompressed decodes a 96-byte compressed G2 point.
func G2FromCompressed(b [g2CompressedSize]byte) (*G2Point, bool) {
	if b[0]&tagCompressed == 0 {
		return nil, false
	}
	if b[0]&tagInfinity != 0 {
		if (b[0] &^ byte(tagCompressed|tagInfinity|tagSortBit)) != 0 {
			return nil, false
		}
		for i := 1; i < g2CompressedSize; i++ {
			if b[i] != 0 {
				return nil, false
			}
		}
		return G2Identity(), true
	}
	sortBit := b[0]&tagSortBit != 0
	var xb [g2CompressedSize]byte
	copy(xb[:], b[:])
	xb[0] &^= tagCompressed | tagInfinity | tagSortBit
	x, ok := fq2FromBytes(xb[:])
	if !ok {
		return nil, false
	}
	rhs := fq2Add(fq2Mul(fq2Sqr(x), x), twistB)
	y := fq2Sqrt(rhs)
	if y == nil {
		return nil, false
	}
	half := new(big.Int).Rsh(modulus, 1)
	flip := y.c1.Cmp(half) > 0 || (y.c1.Sign() == 0 && y.c0.Cmp(half) > 0)
	if flip != sortBit {
		y = fq2Neg(y)
	}
	pt := g2FromAffine(x, y)
	if !pt.InSubgroup() {
		return nil, false
	}
	return pt, true
}

// UncompressedBytes encodes p as 192-byte x||y (each Fq2 as c1||c0).
func (p *G2Point) UncompressedBytes() [g2UncompressedSize]byte {
	var out [g2UncompressedSize]byte
	if p.IsIdentity() {
		out[0] = tagInfinity
		return out
	}
	x, y := p.Affine()
	xb, yb := fq2Bytes(x), fq2Bytes(y)
	copy(out[:96], xb[:])
	copy(out[96:], yb[:])
	return out
}

// G2FromUncompressed decodes a 192-byte uncompressed G2 point.
func G2FromUncompressed(b [g2UncompressedSize]byte) (*G2Point, bool) {
	if b[0]&tagCompressed != 0 {
		return nil, false
	}
	if b[0]&tagInfinity != 0 {
		for i := 1; i < g2UncompressedSize; i++ {
			if b[i] != 0 {
				return nil, false
			}
		}
		return G2Identity(), true
	}
	var xb, yb [96]byte
	copy(xb[:], b[:96])
	copy(yb[:], b[96:])
	xb[0] &^= tagInfinity
	x, ok1 := fq2FromBytes(xb[:])
	y, ok2 := fq2FromBytes(yb[:])
	if !ok1 || !ok2 || !g2IsOnCurve(x, y) {
		return nil, false
	}
	pt := g2FromAffine(x, y)
	if !pt.InSubgroup() {
		return nil, false
	}
	return pt, true
}
