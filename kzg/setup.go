package kzg

import (
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/chan9mo/libsnark-kzg10/logger"
)

// CommitKey is the structured reference string (SRS) τ produced by
// Setup: g1 carries the full ladder {αⁱ·G1}_{0..t}, while g2 only ever
// needs G2 and α·G2 — no procedure in this package reads further than
// τ.g2[1], so the second ladder is truncated to those two terms rather
// than carried at full length. Conceptually τ.g2[i] for i>1 would still
// be αⁱ·G2; fixing G2 at length 2 documents, at the type level, that
// nothing downstream depends on more than that.
type CommitKey struct {
	G1 []bn254.G1Affine
	G2 [2]bn254.G2Affine
}

// Setup samples a fresh secret scalar α — the "toxic waste" of the
// trusted setup ceremony — and emits the commitment key
// τ = ({αⁱ·G1}_{0..t}, {G2, α·G2}). α is sampled from the curve
// library's CSPRNG, never logged, never returned, and zeroized before
// Setup returns.
func Setup(t int) (CommitKey, error) {
	if t < 1 {
		return CommitKey{}, ErrInvalidDegree
	}
	start := time.Now()

	_, _, gen1, gen2 := bn254.Generators()

	var alpha fr.Element
	if _, err := alpha.SetRandom(); err != nil {
		return CommitKey{}, err
	}

	// acc·α before each multiplication, keeping a running power ladder
	// rather than calling Exp per term.
	powers := make([]fr.Element, t+1)
	powers[0].SetOne()
	for i := 1; i <= t; i++ {
		powers[i].Mul(&powers[i-1], &alpha)
	}

	var alphaBig big.Int
	alpha.BigInt(&alphaBig)

	var ck CommitKey
	ck.G2[0] = gen2
	ck.G2[1].ScalarMultiplication(&gen2, &alphaBig)

	ck.G1 = bn254.BatchScalarMultiplicationG1(&gen1, powers)

	// erase the toxic waste: α, its big.Int form, and the power ladder
	// used only to exponentiate it. Only their group images survive in ck.
	alpha.SetZero()
	alphaBig.SetInt64(0)
	for i := range powers {
		powers[i].SetZero()
	}

	log := logger.Logger()
	log.Debug().
		Int("t", t).
		Dur("took", time.Since(start)).
		Msg("kzg setup complete")

	return ck, nil
}
