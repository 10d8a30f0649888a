package kzg_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/chan9mo/libsnark-kzg10/kzg"
)

// genDegree yields small-but-varied degree bounds: large enough to
// exercise multi-term polynomials, small enough to keep MSM/pairing work
// in a property test's budget.
func genDegree() gopter.Gen {
	return gen.IntRange(1, 24)
}

func randomPoly(t int) kzg.Polynomial {
	p := make(kzg.Polynomial, t)
	for i := range p {
		if _, err := p[i].SetRandom(); err != nil {
			panic(err)
		}
	}
	return p
}

func randomScalar() fr.Element {
	var z fr.Element
	if _, err := z.SetRandom(); err != nil {
		panic(err)
	}
	return z
}

func mulG1Gen(ck kzg.CommitKey, s fr.Element) bn254.G1Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var res bn254.G1Affine
	res.ScalarMultiplication(&ck.G1[0], &sBig)
	return res
}

// TestPropertyOpeningAccepts: for a random polynomial p of any tested
// degree and a random evaluation point z, the witness MakeWitness
// produces always verifies against Commit(p), and its V component
// matches Evaluate(p, z) encoded as a group element.
func TestPropertyOpeningAccepts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)
	properties.Property("valid opening always verifies and V matches the claimed evaluation", prop.ForAllNoShrink(
		func(tDeg int) bool {
			ck, err := kzg.Setup(tDeg)
			if err != nil {
				return false
			}
			p := randomPoly(tDeg)
			z := randomScalar()
			v := kzg.Evaluate(p, z, tDeg)

			c, err := kzg.Commit(ck, p, tDeg)
			if err != nil {
				return false
			}
			w, err := kzg.MakeWitness(ck, append(kzg.Polynomial{}, p...), z, tDeg)
			if err != nil {
				return false
			}

			expectV := mulG1Gen(ck, v)
			if !w.V.Equal(&expectV) {
				return false
			}

			ok, err := kzg.Verify(ck, c, w)
			return err == nil && ok
		},
		genDegree(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestPropertyTamperedCommitmentRejects: swapping in a commitment to a
// different, independently-random polynomial makes a valid witness
// reject (the witness was built against the original polynomial, so it
// almost never also opens a second random one to the same value).
func TestPropertyTamperedCommitmentRejects(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)
	properties.Property("a witness does not verify against an unrelated commitment", prop.ForAllNoShrink(
		func(tDeg int) bool {
			ck, err := kzg.Setup(tDeg)
			if err != nil {
				return false
			}
			p := randomPoly(tDeg)
			other := randomPoly(tDeg)
			z := randomScalar()

			cOther, err := kzg.Commit(ck, other, tDeg)
			if err != nil {
				return false
			}
			w, err := kzg.MakeWitness(ck, append(kzg.Polynomial{}, p...), z, tDeg)
			if err != nil {
				return false
			}

			ok, err := kzg.Verify(ck, cOther, w)
			return err == nil && !ok
		},
		genDegree(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestPropertyTamperedValueRejects: bumping the claimed evaluation by one
// and replaying it as V = (v+1)·G1 against an otherwise-untouched witness
// always rejects.
func TestPropertyTamperedValueRejects(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)
	properties.Property("bumping the claimed evaluation by one always rejects", prop.ForAllNoShrink(
		func(tDeg int) bool {
			ck, err := kzg.Setup(tDeg)
			if err != nil {
				return false
			}
			p := randomPoly(tDeg)
			z := randomScalar()

			c, err := kzg.Commit(ck, p, tDeg)
			if err != nil {
				return false
			}
			w, err := kzg.MakeWitness(ck, append(kzg.Polynomial{}, p...), z, tDeg)
			if err != nil {
				return false
			}

			var one fr.Element
			one.SetOne()

			v := kzg.Evaluate(p, z, tDeg)
			var vPlusOne fr.Element
			vPlusOne.Add(&v, &one)
			w.V = mulG1Gen(ck, vPlusOne)

			ok, err := kzg.Verify(ck, c, w)
			return err == nil && !ok
		},
		genDegree(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestPropertyLinearityHolds generalizes the worked linearity check in
// commit_test.go across many random degrees and polynomial pairs:
// AddCommitments(Commit(a), Commit(b)) == Commit(a+b).
func TestPropertyLinearityHolds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)
	properties.Property("commitments add linearly with their polynomials", prop.ForAllNoShrink(
		func(tDeg int) bool {
			ck, err := kzg.Setup(tDeg)
			if err != nil {
				return false
			}
			a := randomPoly(tDeg)
			b := randomPoly(tDeg)
			sum := make(kzg.Polynomial, tDeg)
			for i := range sum {
				sum[i].Add(&a[i], &b[i])
			}

			cA, err := kzg.Commit(ck, a, tDeg)
			if err != nil {
				return false
			}
			cB, err := kzg.Commit(ck, b, tDeg)
			if err != nil {
				return false
			}
			cSum, err := kzg.Commit(ck, sum, tDeg)
			if err != nil {
				return false
			}

			got := kzg.AddCommitments(cA, cB)
			return got.Equal(&cSum)
		},
		genDegree(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
