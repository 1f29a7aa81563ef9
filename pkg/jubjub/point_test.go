package jubjub

import (
	"math/big"
	"testing"
)

func TestIdentityIsOnCurve(t *testing.T) {
	id := Identity()
	if !IsOnCurve(id.u, id.v) {
		t.Fatal("identity should be on curve")
	}
}

func TestAddWithIdentityIsNoop(t *testing.T) {
	g, ok := DiversifierToPoint([11]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	if !ok {
		t.Fatal("expected a valid diversifier")
	}
	sum := g.Add(Identity())
	if !sum.Equal(g) {
		t.Fatal("g + identity != g")
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	g, ok := DiversifierToPoint([11]byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9})
	if !ok {
		t.Fatal("expected a valid diversifier")
	}
	if !g.Double().Equal(g.Add(g)) {
		t.Fatal("g.Double() != g+g")
	}
}

func TestNegCancels(t *testing.T) {
	g, ok := DiversifierToPoint([11]byte{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5})
	if !ok {
		t.Fatal("expected a valid diversifier")
	}
	sum := g.Add(g.Neg())
	if !sum.Equal(Identity()) {
		t.Fatal("g + (-g) != identity")
	}
}

func TestScalarMulDistributesOverAdd(t *testing.T) {
	g, ok := DiversifierToPoint([11]byte{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89})
	if !ok {
		t.Fatal("expected a valid diversifier")
	}
	three := g.ScalarMul(big.NewInt(3))
	manual := g.Add(g).Add(g)
	if !three.Equal(manual) {
		t.Fatal("3*g != g+g+g")
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	g, ok := DiversifierToPoint([11]byte{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7})
	if !ok {
		t.Fatal("expected a valid diversifier")
	}
	b := g.Bytes()
	got, ok := FromBytes(b)
	if !ok || !got.Equal(g) {
		t.Fatal("round trip failed")
	}
}

func TestDiversifierToPointIsDeterministic(t *testing.T) {
	d := [11]byte{42, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	a, ok1 := DiversifierToPoint(d)
	b, ok2 := DiversifierToPoint(d)
	if !ok1 || !ok2 || !a.Equal(b) {
		t.Fatal("diversifier-to-point should be deterministic")
	}
}

func TestFsRandomRoundTrip(t *testing.T) {
	s, err := FsRandom()
	if err != nil {
		t.Fatal(err)
	}
	b := FsBytes(s)
	got, ok := FsFromBytes(b)
	if !ok || !got.Equal(s) {
		t.Fatal("Fs round trip failed")
	}
}

func TestFsFromBytesRejectsOutOfRange(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = 0xff
	}
	if _, ok := FsFromBytes(b); ok {
		t.Fatal("expected rejection of out-of-range scalar")
	}
}
