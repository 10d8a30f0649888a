// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kzg implements the KZG10 polynomial commitment scheme
// (Kate, Zaverucha, Goldberg, ASIACRYPT 2010) over BN254.
//
// This is the binding-only, non-hiding variant: no blinding, no batch or
// multi-point opening, no updatable SRS. Five procedures make up the
// scheme:
//
//	Setup(t)               -> CommitKey        trusted-setup key generation
//	Commit(ck, p, t)        -> Commitment       bind a polynomial to a G1 point
//	Evaluate(p, z, t)       -> fr.Element        evaluate p at z
//	MakeWitness(ck, p, z, t)-> Witness           open p at z
//	Verify(ck, c, w)        -> bool              check an opening
//
// FiatShamirPoint turns three commitments into a non-interactive
// evaluation challenge, for the common case of three simultaneously
// committed polynomials A, B, C = A·B.
//
// Polynomials use reversed storage: Polynomial[i] holds the coefficient
// of x^(t-1-i), so the highest-degree coefficient comes first and the
// constant term comes last. Every procedure in this package is written
// against that convention; see the Polynomial doc comment.
package kzg
