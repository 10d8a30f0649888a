package kzg

import "github.com/consensys/gnark-crypto/ecc/bn254"

// Commitment is a single G1 element binding a polynomial.
type Commitment = bn254.G1Affine

// Commit maps p to C = p(α)·G1 = Σ_{i=1..t} p[t-i]·ck.G1[i-1] — the
// coefficient of x^(i-1) is multiplied by αⁱ⁻¹·G1. t is the declared
// degree bound; it must equal len(p).
func Commit(ck CommitKey, p Polynomial, t int) (Commitment, error) {
	if t < 1 {
		return Commitment{}, ErrInvalidDegree
	}
	if len(p) != t {
		return Commitment{}, ErrDegreeMismatch
	}
	if len(ck.G1) < t {
		return Commitment{}, ErrKeyTooSmall
	}
	return msm(ck.G1, p)
}

// AddCommitments returns Commit's image of a+b given Commit's images of a
// and b separately: Commit is linear, so Commit(a)+Commit(b) ==
// Commit(a+b) for degree-compatible a, b. This is a thin convenience
// wrapper so callers needn't reach into bn254's Jacobian accumulator
// themselves to exercise that linearity.
func AddCommitments(a, b Commitment) Commitment {
	var aJac, bJac bn254.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)

	var sum Commitment
	sum.FromJacobian(&aJac)
	return sum
}
