package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Verify checks witness w against commitment c under ck by testing the
// pairing equation
//
//	e(C, G2) = e(W, (α - z)·G2) · e(V, G2)
//
// rearranged into a single PairingCheck call as
//
//	e(C - V, -G2) · e(W, (α - z)·G2) = 1
//
// using only ck.G2[0] (= G2) and ck.G2[1] (= α·G2); (α - z)·G2 is formed
// as ck.G2[1] + (-z)·ck.G2[0]. The boolean result is not itself an
// error — rejection is a normal outcome, not a failure mode.
func Verify(ck CommitKey, c Commitment, w Witness) (bool, error) {
	var negZ big.Int
	w.Z.BigInt(&negZ)
	negZ.Neg(&negZ)

	var g2Gen, negZG2, alphaMinusZ bn254.G2Jac
	g2Gen.FromAffine(&ck.G2[0])
	negZG2.ScalarMultiplication(&g2Gen, &negZ)
	alphaMinusZ.FromAffine(&ck.G2[1])
	alphaMinusZ.AddAssign(&negZG2)

	var alphaMinusZAff bn254.G2Affine
	alphaMinusZAff.FromJacobian(&alphaMinusZ)

	var cJac, vJac, cMinusV bn254.G1Jac
	cJac.FromAffine(&c)
	vJac.FromAffine(&w.V)
	cMinusV.Set(&cJac)
	cMinusV.SubAssign(&vJac)

	var negCMinusV bn254.G1Affine
	negCMinusV.FromJacobian(&cMinusV)
	negCMinusV.Neg(&negCMinusV)

	return bn254.PairingCheck(
		[]bn254.G1Affine{negCMinusV, w.W},
		[]bn254.G2Affine{ck.G2[0], alphaMinusZAff},
	)
}
