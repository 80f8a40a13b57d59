// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package verkle implements a width-parameterized Verkle tree: an
// authenticated tree whose internal nodes commit to their children with a
// vector/polynomial commitment rather than a hash. It is generic over the
// commitment backend (V is the value domain, C the commitment type, P the
// opening/proof type) so that the same tree-construction, batch-proving and
// batch-verification machinery works against either the `ipabackend`
// (Pedersen/IPA vector commitment) or `pointproofs` (pairing-based vector
// commitment) package, or any other implementation of ProverBackend /
// VerifierBackend.
package verkle

// ProverBackend is the prover-side half of the cryptographic backend
// contract (spec §6.1). A concrete backend commits a length-Width() vector
// of values to a single commitment, and produces an aggregated opening
// proof for an arbitrary subset of positions in that vector.
type ProverBackend[V any, C any, P any] interface {
	// Width is the fixed vector length (and tree branching factor) this
	// backend's parameters were set up for.
	Width() int

	// Commit returns the commitment to values, which must have exactly
	// Width() elements.
	Commit(values []V) (C, error)

	// Open produces one aggregated opening proof attesting that
	// commitment opens to values[p] at each p in positions. positions
	// must be sorted ascending and duplicate-free, with each p < Width().
	Open(commitment C, values []V, positions []int) (P, error)

	// Encode maps a commitment into the value domain so it can be placed
	// in a parent node's input vector (spec §3, `enc`).
	Encode(c C) V

	// Serialize returns the canonical fixed-length encoding of a
	// commitment.
	Serialize(c C) []byte
}

// VerifierBackend is the verifier-side half of the contract. It never
// needs the raw values that went into a commitment, only the claimed
// opened values and the proof.
type VerifierBackend[V any, C any, P any] interface {
	Width() int

	// VerifyOpening checks that proof attests commitment opens to values[i]
	// at positions[i], for all i.
	VerifyOpening(commitment C, proof P, positions []int, values []V) bool

	Encode(c C) V
	Serialize(c C) []byte

	// Equal reports whether two commitments are the same group element.
	// Needed because most commitment types are not Go-comparable (they
	// hold slice or array fields with custom field arithmetic).
	Equal(a, b C) bool

	// KeyOf returns a canonical, comparable key for a value, used by the
	// verifier's link check (spec §4.4) to build a set of expected values,
	// and to compare opened leaf values with the claimed ones, without
	// requiring V itself to be comparable.
	KeyOf(v V) string
}
