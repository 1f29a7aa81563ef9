package bls12381

// G1 is the curve E: y^2 = x^3 + 4 over Fq. Points are carried in Jacobian
// coordinates (X, Y, Z) internally; affine (X/Z^2, Y/Z^3) for serialization.

import "math/big"

// G1Point is a point on the BLS12-381 G1 curve.
type G1Point struct {
	x, y, z *big.Int
}

var (
	g1GenX, _ = new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	g1GenY, _ = new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)

	// g1Cofactor clears E(Fq) down to the prime-order subgroup.
	g1Cofactor, _ = new(big.Int).SetString("396c8c005555e1568c00aaab0000aaab", 16)
)

// G1Generator returns the generator of G1.
func G1Generator() *G1Point {
	return &G1Point{x: new(big.Int).Set(g1GenX), y: new(big.Int).Set(g1GenY), z: big.NewInt(1)}
}

// G1Identity returns the point at infinity.
func G1Identity() *G1Point {
	return &G1Point{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1Point) IsIdentity() bool { return p.z.Sign() == 0 }

func g1FromAffine(x, y *big.Int) *G1Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return G1Identity()
	}
	return &G1Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y), z: big.NewInt(1)}
}

// Affine returns the affine (x, y) coordinates, (0,0) for the identity.
func (p *G1Point) Affine() (x, y *big.Int) {
	if p.IsIdentity() {
		return new(big.Int), new(big.Int)
	}
	zInv := fqInv(p.z)
	zInv2 := fqSqr(zInv)
	zInv3 := fqMul(zInv2, zInv)
	return fqMul(p.x, zInv2), fqMul(p.y, zInv3)
}

func g1IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	if !fqCanonical(x) || !fqCanonical(y) {
		return false
	}
	lhs := fqSqr(y)
	rhs := fqAdd(fqMul(fqSqr(x), x), curveB)
	return lhs.Cmp(rhs) == 0
}

// Add returns p + q.
func (p *G1Point) Add(q *G1Point) *G1Point {
	if p.IsIdentity() {
		return &G1Point{new(big.Int).Set(q.x), new(big.Int).Set(q.y), new(big.Int).Set(q.z)}
	}
	if q.IsIdentity() {
		return &G1Point{new(big.Int).Set(p.x), new(big.Int).Set(p.y), new(big.Int).Set(p.z)}
	}
	z1sq := fqSqr(p.z)
	z2sq := fqSqr(q.z)
	u1 := fqMul(p.x, z2sq)
	u2 := fqMul(q.x, z1sq)
	s1 := fqMul(p.y, fqMul(q.z, z2sq))
	s2 := fqMul(q.y, fqMul(p.z, z1sq))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return p.Double()
		}
		return G1Identity()
	}

	h := fqSub(u2, u1)
	i := fqSqr(fqAdd(h, h))
	j := fqMul(h, i)
	r := fqAdd(fqSub(s2, s1), fqSub(s2, s1))
	v := fqMul(u1, i)

	x3 := fqSub(fqSub(fqSqr(r), j), fqAdd(v, v))
	y3 := fqSub(fqMul(r, fqSub(v, x3)), fqAdd(fqMul(s1, j), fqMul(s1, j)))
	z3 := fqMul(fqSub(fqSub(fqSqr(fqAdd(p.z, q.z)), z1sq), z2sq), h)
	return &G1Point{x: x3, y: y3, z: z3}
}

// Double returns p + p.
func (p *G1Point) Double() *G1Point {
	if p.IsIdentity() {
		return G1Identity()
	}
	A := fqSqr(p.x)
	B := fqSqr(p.y)
	C := fqSqr(B)
	D := fqSub(fqSub(fqSqr(fqAdd(p.x, B)), A), C)
	D = fqAdd(D, D)
	E := fqAdd(fqAdd(A, A), A)
	x3 := fqSub(fqSqr(E), fqAdd(D, D))
	eightC := fqAdd(fqAdd(fqAdd(C, C), fqAdd(C, C)), fqAdd(fqAdd(C, C), fqAdd(C, C)))
	y3 := fqSub(fqMul(E, fqSub(D, x3)), eightC)
	z3 := fqMul(fqAdd(p.y, p.y), p.z)
	return &G1Point{x: x3, y: y3, z: z3}
}

// Neg returns -p.
func (p *G1Point) Neg() *G1Point {
	if p.IsIdentity() {
		return G1Identity()
	}
	return &G1Point{x: new(big.Int).Set(p.x), y: fqNeg(p.y), z: new(big.Int).Set(p.z)}
}

// ScalarMul computes k*p by double-and-add MSB to LSB (the top, unset bit
// skipped implicitly by BitLen), reduced mod the group order first.
func (p *G1Point) ScalarMul(k *big.Int) *G1Point {
	kMod := new(big.Int).Mod(k, groupOrder)
	if kMod.Sign() == 0 || p.IsIdentity() {
		return G1Identity()
	}
	r := G1Identity()
	base := &G1Point{new(big.Int).Set(p.x), new(big.Int).Set(p.y), new(big.Int).Set(p.z)}
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if kMod.Bit(i) == 1 {
			r = r.Add(base)
		}
	}
	return r
}

// ClearCofactor returns h*p where h is the G1 cofactor, projecting an
// arbitrary curve point into the prime-order subgroup.
func (p *G1Point) ClearCofactor() *G1Point { return p.ScalarMul(g1Cofactor) }

// InSubgroup reports whether p lies in the prime-order subgroup.
func (p *G1Point) InSubgroup() bool {
	if p.IsIdentity() {
		return true
	}
	// ScalarMul reduces its scalar mod r, so r*p is computed here directly.
	r := G1Identity()
	for i := groupOrder.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if groupOrder.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r.IsIdentity()
}

// --- Serialization: 48-byte compressed / 96-byte uncompressed, per spec §6 ---

const (
	g1CompressedSize   = 48
	g1UncompressedSize = 96

	tagCompressed = 0x80
	tagInfinity   = 0x40
	tagSortBit    = 0x20
)

// CompressedBytes encodes p to the 48-byte compressed wire form: top bit set
// (compressed), next bit set iff infinity, next bit set iff y is the larger
// of y and p-y (y > (p-1)/2).
func (p *G1Point) CompressedBytes() [g1CompressedSize]byte {
	var out [g1CompressedSize]byte
	if p.IsIdentity() {
		out[0] = tagCompressed | tagInfinity
		return out
	}
	x, y := p.Affine()
	xb := FqBytes(x)
	copy(out[:], xb[:])
	out[0] |= tagCompressed
	half := new(big.Int).Rsh(modulus, 1)
	if y.Cmp(half) > 0 {
		out[0] |= tagSortBit
	}
	return out
}

// G1FromCompressed decodes a 48-byte compressed G1 point, rejecting
// non-canonical x, points off-curve, and points outside the prime-order
// subgroup.
func G1FromCompressed(b [g1CompressedSize]byte) (*G1Point, bool) {
	if b[0]&tagCompressed == 0 {
		return nil, false
	}
	if b[0]&tagInfinity != 0 {
		if (b[0]&^byte(tagCompressed|tagInfinity|tagSortBit)) != 0 {
			return nil, false
		}
		for i := 1; i < g1CompressedSize; i++ {
			if b[i] != 0 {
				return nil, false
			}
		}
		return G1Identity(), true
	}
	sortBit := b[0]&tagSortBit != 0
	var xb [g1CompressedSize]byte
	copy(xb[:], b[:])
	xb[0] &^= tagCompressed | tagInfinity | tagSortBit
	x, ok := FqFromBytes(xb)
	if !ok {
		return nil, false
	}
	rhs := fqAdd(fqMul(fqSqr(x), x), curveB)
	y := fqSqrt(rhs)
	if y == nil {
		return nil, false
	}
	half := new(big.Int).Rsh(modulus, 1)
	if (y.Cmp(half) > 0) != sortBit {
		y = fqNeg(y)
	}
	pt := g1FromAffine(x, y)
	if !pt.InSubgroup() {
		return nil, false
	}
	return pt, true
}

// UncompressedBytes encodes p as 96-byte x||y, with the compression tag bit
// clear.
func (p *G1Point) UncompressedBytes() [g1UncompressedSize]byte {
	var out [g1UncompressedSize]byte
	if p.IsIdentity() {
		out[0] = tagInfinity
		return out
	}
	x, y := p.Affine()
	xb, yb := FqBytes(x), FqBytes(y)
	copy(out[:48], xb[:])
	copy(out[48:], yb[:])
	return out
}

// G1FromUncompressed decodes a 96-byte uncompressed G1 point.
func G1FromUncompressed(b [g1UncompressedSize]byte) (*G1Point, bool) {
	if b[0]&tagCompressed != 0 {
		return nil, false
	}
	if b[0]&tagInfinity != 0 {
		for i := 1; i < g1UncompressedSize; i++ {
			if b[i] != 0 {
				return nil, false
			}
		}
		return G1Identity(), true
	}
	var xb, yb [48]byte
	copy(xb[:], b[:48])
	copy(yb[:], b[48:])
	xb[0] &^= tagInfinity
	x, ok1 := FqFromBytes(xb)
	y, ok2 := FqFromBytes(yb)
	if !ok1 || !ok2 || !g1IsOnCurve(x, y) {
		return nil, false
	}
	pt := g1FromAffine(x, y)
	if !pt.InSubgroup() {
		return nil, false
	}
	return pt, true
}
