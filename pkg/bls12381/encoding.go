package bls12381

// Hex encoding helpers for the wire types, built on go-ethereum's hexutil
// so field and point encodings share its "0x"-prefixed conventions with the
// rest of the ecosystem this module is wired into.

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var errInvalidEncoding = errors.New("bls12381: invalid point encoding")

// G1ToHex encodes p in compressed form as a 0x-prefixed hex string.
func G1ToHex(p *G1Point) string {
	b := p.CompressedBytes()
	return hexutil.Encode(b[:])
}

// G1FromHex decodes a compressed G1 point from a 0x-prefixed hex string.
func G1FromHex(s string) (*G1Point, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != g1CompressedSize {
		return nil, hexutil.ErrSyntax
	}
	var b [g1CompressedSize]byte
	copy(b[:], raw)
	pt, ok := G1FromCompressed(b)
	if !ok {
		return nil, errInvalidEncoding
	}
	return pt, nil
}

// G2ToHex encodes q in compressed form as a 0x-prefixed hex string.
func G2ToHex(q *G2Point) string {
	b := q.CompressedBytes()
	return hexutil.Encode(b[:])
}

// G2FromHex decodes a compressed G2 point from a 0x-prefixed hex string.
func G2FromHex(s string) (*G2Point, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != g2CompressedSize {
		return nil, hexutil.ErrSyntax
	}
	var b [g2CompressedSize]byte
	copy(b[:], raw)
	pt, ok := G2FromCompressed(b)
	if !ok {
		return nil, errInvalidEncoding
	}
	return pt, nil
}

// FrToHex encodes a scalar as a 0x-prefixed 32-byte little-endian hex string.
func FrToHex(a *big.Int) string {
	b := FrBytes(a)
	return hexutil.Encode(b[:])
}

// FrFromHex decodes a scalar from a 0x-prefixed 32-byte little-endian hex
// string, rejecting values at or above the group order.
func FrFromHex(s string) (*big.Int, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != 32 {
		return nil, hexutil.ErrSyntax
	}
	var b [32]byte
	copy(b[:], raw)
	v, ok := FrFromBytes(b)
	if !ok {
		return nil, errInvalidEncoding
	}
	return v, nil
}
