package kzg

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Polynomial is a finite sequence of Fr coefficients stored in reversed
// order: position i holds the coefficient of x^(t-1-i), where t =
// len(Polynomial). The highest-degree coefficient therefore sits at
// index 0 and the constant term at index t-1.
//
// This is an invariant of the whole package, not an incidental choice —
// Commit, Evaluate and MakeWitness are all indexed against it. A named
// type (rather than a bare []fr.Element) exists precisely so the
// convention is visible wherever a Polynomial is constructed, fixing it
// at the type level instead of leaving it to caller discipline.
type Polynomial []fr.Element

// Evaluate computes p(z) as Σ_{i=1..t} p[t-i]·z^(i-1), walked over the
// reversed storage: acc starts at 1 and is multiplied by z after each
// coefficient is folded in from the tail of p toward the head, so p[t-1]
// (the constant term) contributes first and p[0] (the leading term) last.
//
// t is the caller's declared degree bound; callers pass len(p) for t in
// the common case, but the parameter exists so a caller can evaluate a
// shorter prefix of a longer buffer.
func Evaluate(p Polynomial, z fr.Element, t int) fr.Element {
	var v, acc fr.Element
	acc.SetOne()
	for i := 1; i <= t; i++ {
		var term fr.Element
		term.Mul(&p[t-i], &acc)
		v.Add(&v, &term)
		acc.Mul(&acc, &z)
	}
	return v
}
