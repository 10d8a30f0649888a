package kzg

import "errors"

// Error kinds returned by this package. None of them signal a rejected
// verification — Verify returns a plain boolean for that; these are all
// caller-fault or implementation-bug conditions.
var (
	// ErrInvalidDegree is returned when a degree bound t < 1 is supplied.
	ErrInvalidDegree = errors.New("kzg: degree bound must be >= 1")

	// ErrKeyTooSmall is returned when an operation needs more SRS terms
	// than the commitment key provides.
	ErrKeyTooSmall = errors.New("kzg: commitment key too small for requested degree")

	// ErrDegreeMismatch is returned when a polynomial's length disagrees
	// with its declared degree bound.
	ErrDegreeMismatch = errors.New("kzg: polynomial length does not match declared degree bound")

	// ErrDivisionRemainder is returned by MakeWitness's self-check if the
	// synthetic division of (p - v) by (x - z) leaves a nonzero
	// remainder. This cannot happen for a correct p and v = p(z); seeing
	// it means a bug, not a malicious input.
	ErrDivisionRemainder = errors.New("kzg: synthetic division left a nonzero remainder")

	// ErrEvalBaseMissing is returned when a commitment key has no G1
	// generator term to anchor V = p(z)·G1 against.
	ErrEvalBaseMissing = errors.New("kzg: commitment key has no G1 generator term")
)
