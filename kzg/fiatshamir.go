package kzg

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FiatShamirPoint derives a non-interactive evaluation challenge from
// three commitments, for the case of three simultaneously committed
// polynomials A, B and C (typically C = A·B). It hashes a domain tag,
// the degree bound t, and the three commitments' canonical affine
// encodings with SHA-256, then reduces the 256-bit digest into Fr.
//
// This is the sound construction, used in place of the legacy one below
// (see FiatShamirPointLegacy): canonical affine serialization has no
// non-canonical-representation ambiguity, so equal points always hash
// equally and distinct points collide only with negligible probability.
func FiatShamirPoint(t int, cA, cB, cC Commitment) fr.Element {
	h := sha256.New()
	h.Write([]byte("KZG-FS-v1"))

	var tBuf [8]byte
	binary.BigEndian.PutUint64(tBuf[:], uint64(t))
	h.Write(tBuf[:])

	h.Write(cA.Marshal())
	h.Write(cB.Marshal())
	h.Write(cC.Marshal())

	digest := h.Sum(nil)

	var z fr.Element
	z.SetBigInt(new(big.Int).SetBytes(digest))
	return z
}

// FiatShamirPointLegacy reproduces an older transcript construction: for
// each commitment it takes the Z-coordinate of its Jacobian lift, renders
// it as decimal text, concatenates the three strings, re-encodes each
// decimal digit ('0'..'9') as its 4-bit numeric value, flattens those
// bits, hashes the resulting bit string with SHA-256, and reinterprets
// the 256-bit digest as an Fr element.
//
// It is kept only for interop and is deliberately not the default:
// projective coordinates are not canonical, so this is not a sound
// Fiat-Shamir transcript. In this package specifically, every Commitment
// reaches this function already reduced to affine form, so its Jacobian
// lift carries Z = 1 (Z = 0 for the identity); that degeneracy is the soundness gap made
// concrete, not a bug in this reproduction. New code should call
// FiatShamirPoint instead.
func FiatShamirPointLegacy(cA, cB, cC Commitment) fr.Element {
	digits := jacobianZDecimal(cA) + jacobianZDecimal(cB) + jacobianZDecimal(cC)

	bits := make([]byte, 0, len(digits)*4)
	for _, r := range digits {
		v := byte(r - '0')
		for b := 3; b >= 0; b-- {
			bits = append(bits, (v>>uint(b))&1)
		}
	}

	packed := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b == 1 {
			packed[i/8] |= 1 << uint(7-i%8)
		}
	}

	digest := sha256.Sum256(packed)

	var z fr.Element
	z.SetBigInt(new(big.Int).SetBytes(digest[:]))
	return z
}

func jacobianZDecimal(c Commitment) string {
	var jac bn254.G1Jac
	jac.FromAffine(&c)
	var z big.Int
	jac.Z.ToBigIntRegular(&z)
	return z.String()
}
