package kzg

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// msm computes Σ_{i=1..n} p[n-i]·basis[i-1], n = len(p): the coefficient
// of x^(i-1) under p's reversed storage is paired with basis[i-1], which
// Setup populated as αⁱ⁻¹·G1. Equivalently, reverse p into forward
// storage and run a standard multi-scalar multiplication against
// basis[:n]. Zero coefficients are skipped by the underlying MultiExp.
func msm(basis []bn254.G1Affine, p Polynomial) (bn254.G1Affine, error) {
	n := len(p)
	if n == 0 {
		return bn254.G1Affine{}, nil
	}

	forward := make([]fr.Element, n)
	for i, c := range p {
		forward[n-1-i] = c
	}

	var res bn254.G1Affine
	if _, err := res.MultiExp(basis[:n], forward, ecc.MultiExpConfig{}); err != nil {
		return bn254.G1Affine{}, err
	}
	return res, nil
}
