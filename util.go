package pvss

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
)

// randomScalar samples a uniform field element from the supplied source by
// wide reduction of 64 bytes.
func randomScalar(rand io.Reader) (*ristretto.Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rand, wide[:]); err != nil {
		return nil, fmt.Errorf("pvss: reading randomness: %w", err)
	}
	var s ristretto.Scalar
	return s.SetReduced(&wide), nil
}

func uint64ToScalar(i uint64) *ristretto.Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

// scalarFromCanonicalBytes decodes a 32-byte little-endian field element and
// rejects non-canonical encodings.
func scalarFromCanonicalBytes(data []byte) (*ristretto.Scalar, error) {
	if len(data) != ScalarSize {
		return nil, ErrDeserialization
	}
	var wide [64]byte
	copy(wide[:], data)
	var s ristretto.Scalar
	s.SetReduced(&wide)
	if !bytes.Equal(s.Bytes(), data) {
		return nil, ErrDeserialization
	}
	return &s, nil
}

// pointFromCanonicalBytes decodes a compressed group element and rejects
// non-canonical encodings.
func pointFromCanonicalBytes(data []byte) (*ristretto.Point, error) {
	if len(data) != ScalarSize {
		return nil, ErrDeserialization
	}
	var buf [32]byte
	copy(buf[:], data)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, ErrDeserialization
	}
	return &p, nil
}

// hashToPoint derives a group element from a domain tag via two Elligator
// maps over a 512-bit digest, so nobody knows its discrete log.
func hashToPoint(tag string) *ristretto.Point {
	hash := blake2b.New512()
	hash.Write([]byte(tag))
	var key [64]byte
	copy(key[:], hash.Sum(nil))

	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}

func multiscalarMul(scalars []*ristretto.Scalar, points []*ristretto.Point) *ristretto.Point {
	var p ristretto.Point
	p.SetZero()
	for i := range scalars {
		var t ristretto.Point
		t.ScalarMult(points[i], scalars[i])
		p.Add(&p, &t)
	}
	return &p
}

func isIdentity(p *ristretto.Point) bool {
	var zero ristretto.Point
	zero.SetZero()
	return p.Equals(&zero)
}
