package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Witness is a KZG opening (z, V, W): V = p(z)·G1 and
// W = q(α)·G1, q = (p - p(z)) / (x - z).
type Witness struct {
	Z fr.Element
	V bn254.G1Affine
	W bn254.G1Affine
}

// MakeWitness opens p at z under ck: it computes v = p(z), forms
// p'(x) = p(x) - v, divides p' by (x - z) via synthetic division (exact,
// since z is a root of p'), and commits the quotient q through ck.G1.
//
// W-MUT: this mutates p's backing array in place — both the subtraction
// of v from the constant term and the synthetic division happen on the
// caller's slice. Clone p first if it must survive the call unchanged.
//
// t is the declared degree bound and must equal len(p).
func MakeWitness(ck CommitKey, p Polynomial, z fr.Element, t int) (Witness, error) {
	if t < 1 {
		return Witness{}, ErrInvalidDegree
	}
	if len(p) != t {
		return Witness{}, ErrDegreeMismatch
	}
	if len(ck.G1) < 1 {
		return Witness{}, ErrEvalBaseMissing
	}
	if len(ck.G1) < t {
		return Witness{}, ErrKeyTooSmall
	}

	v := Evaluate(p, z, t)

	// p'(x) = p(x) - v: the constant term sits at index t-1 under
	// reversed storage.
	p[t-1].Sub(&p[t-1], &v)

	// Synthetic division of p' (high-to-low, c[0]..c[t-1]) by (x - z):
	//   q[0]      = c[0]
	//   q[i]      = c[i] + z·q[i-1],  i = 1..t-2
	//   remainder = c[t-1] + z·q[t-2]
	// carried in place: q aliases p[:t-1].
	q := Polynomial(p[:t-1])
	var rem fr.Element
	if t >= 2 {
		for i := 1; i < t-1; i++ {
			var term fr.Element
			term.Mul(&z, &q[i-1])
			q[i].Add(&q[i], &term)
		}
		rem.Mul(&z, &q[t-2])
		rem.Add(&rem, &p[t-1])
	} else {
		// t == 1: p is a single, now-zeroed constant term; q is empty.
		rem.Set(&p[0])
	}
	if !rem.IsZero() {
		return Witness{}, ErrDivisionRemainder
	}

	var vBig big.Int
	v.BigInt(&vBig)
	var V bn254.G1Affine
	V.ScalarMultiplication(&ck.G1[0], &vBig)

	W, err := msm(ck.G1[:len(q)], q)
	if err != nil {
		return Witness{}, err
	}

	return Witness{Z: z, V: V, W: W}, nil
}
