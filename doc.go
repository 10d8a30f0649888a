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

// Package libsnarkkzg10 implements the core of the KZG10 (Kate, Zaverucha,
// Goldberg) polynomial commitment scheme over BN254, in the binding-only,
// non-hiding variant.
//
// The scheme is exposed as five procedures in the kzg subpackage:
//
//   - Setup produces a structured reference string from a secret scalar.
//   - Commit binds a polynomial to a single G1 element.
//   - Evaluate computes a polynomial's value at a point.
//   - MakeWitness produces an opening proof (a Witness) for that value.
//   - Verify checks an opening proof against a commitment using one pairing
//     equation.
//
// FiatShamirPoint derives a non-interactive evaluation point from three
// commitments, for callers committing to A(x), B(x) and C(x) = A(x)B(x)
// simultaneously (see TestEndToEndThreePolynomials in the kzg tests for the
// end-to-end flow).
package libsnarkkzg10
