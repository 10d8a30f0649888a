package kzg_test

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/chan9mo/libsnark-kzg10/kzg"
)

// multiplyForTest returns the reversed-storage coefficients of A(x)·B(x)
// given A and B in reversed storage. The kzg package itself has no
// polynomial multiplication, so the end-to-end test builds C = A·B here.
func multiplyForTest(a, b kzg.Polynomial) kzg.Polynomial {
	da, db := len(a), len(b)
	forwardA := make([]fr.Element, da)
	forwardB := make([]fr.Element, db)
	for i, v := range a {
		forwardA[da-1-i] = v
	}
	for i, v := range b {
		forwardB[db-1-i] = v
	}

	forwardC := make([]fr.Element, da+db-1)
	for i := range forwardA {
		for j := range forwardB {
			var term fr.Element
			term.Mul(&forwardA[i], &forwardB[j])
			forwardC[i+j].Add(&forwardC[i+j], &term)
		}
	}

	c := make(kzg.Polynomial, len(forwardC))
	for i, v := range forwardC {
		c[len(forwardC)-1-i] = v
	}
	return c
}
