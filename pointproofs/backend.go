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

// Package pointproofs implements the pairing-based vector-commitment
// backend: a node commits to its width-element vector by treating it as
// the evaluation, at x = 0..width-1, of a polynomial f, and committing
// f(tau) in G1 for a secret tau fixed at Setup time (a KZG polynomial
// commitment, the same primitive the "pointproofs" vector-commitment
// literature builds batch openings on top of). A batch opening over a
// subset of positions is the commitment to the quotient
// q = (f - r) / Z, where r interpolates the claimed (position, value)
// pairs and Z is their vanishing polynomial; verification checks
// e(C - Commit(r), G2) == e(Commit(q), Commit(Z)) with a single pairing
// check (gnark-crypto's PairingCheck) over BLS12-381.
package pointproofs

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func multiExpConfig() ecc.MultiExpConfig {
	return ecc.MultiExpConfig{}
}

// Fr and Point name this backend's value and commitment domains, mirroring
// the aliasing convention ipabackend uses for its own curve types.
type (
	Fr    = fr.Element
	Point = bls12381.G1Affine
)

// Proof is the quotient commitment attesting a batch opening.
type Proof struct {
	Q bls12381.G1Affine
}

// ProverParams holds the G1 powers-of-tau SRS needed to commit a vector
// and to open it at an arbitrary subset of positions.
type ProverParams struct {
	width  int
	domain []Fr
	g1SRS  []bls12381.G1Affine
}

// VerifierParams holds the same G1 SRS (needed to recompute Commit(r))
// plus the G2 powers-of-tau SRS (needed to commit the vanishing
// polynomial Z). Both SRS are public parameters of the scheme; only tau
// itself, used once at Setup and then discarded, is secret.
type VerifierParams struct {
	width  int
	domain []Fr
	g1SRS  []bls12381.G1Affine
	g2SRS  []bls12381.G2Affine
	g2Gen  bls12381.G2Affine
}

// Setup derives a structured reference string deterministically from
// seed. This is a toy, non-ceremonial setup: tau is derived by hashing
// seed rather than sampled and destroyed by a multi-party computation, so
// anyone who knows seed can forge openings. It is adequate for tests and
// for environments where the tree's integrity already rests on a
// separately-established ceremony output handed in as seed; see
// DESIGN.md.
func Setup(seed []byte, width int) (*ProverParams, *VerifierParams, error) {
	if width < 1 {
		return nil, nil, errors.New("pointproofs: width must be at least 1")
	}

	tau := deriveScalar(seed)

	_, _, g1Gen, g2Gen := bls12381.Generators()
	var g1GenJac bls12381.G1Jac
	g1GenJac.FromAffine(&g1Gen)
	var g2GenJac bls12381.G2Jac
	g2GenJac.FromAffine(&g2Gen)

	g1SRS := make([]bls12381.G1Affine, width)
	var power Fr
	power.SetOne()
	for i := 0; i < width; i++ {
		var exp big.Int
		power.BigInt(&exp)
		var pj bls12381.G1Jac
		pj.ScalarMultiplication(&g1GenJac, &exp)
		g1SRS[i].FromJacobian(&pj)
		power.Mul(&power, &tau)
	}

	g2SRS := make([]bls12381.G2Affine, width+1)
	power.SetOne()
	for i := 0; i <= width; i++ {
		var exp big.Int
		power.BigInt(&exp)
		var pj bls12381.G2Jac
		pj.ScalarMultiplication(&g2GenJac, &exp)
		g2SRS[i].FromJacobian(&pj)
		power.Mul(&power, &tau)
	}

	domain := make([]Fr, width)
	for i := 0; i < width; i++ {
		domain[i].SetUint64(uint64(i))
	}

	prover := &ProverParams{width: width, domain: domain, g1SRS: g1SRS}
	verifier := &VerifierParams{width: width, domain: domain, g1SRS: g1SRS, g2SRS: g2SRS, g2Gen: g2Gen}
	return prover, verifier, nil
}

func deriveScalar(seed []byte) Fr {
	h := sha256.Sum256(append([]byte("pointproofs-tau-v1:"), seed...))
	var e Fr
	e.SetBytes(h[:])
	return e
}

func (p *ProverParams) Width() int   { return p.width }
func (v *VerifierParams) Width() int { return v.width }

// Commit returns the commitment to values, which must have exactly
// Width() elements, read as evaluations of a degree < Width() polynomial
// at x = 0..Width()-1.
func (p *ProverParams) Commit(values []Fr) (Point, error) {
	if len(values) != p.width {
		return Point{}, fmt.Errorf("pointproofs: commit expects %d values, got %d", p.width, len(values))
	}
	coeffs := interpolate(p.domain, values)
	return commitG1(coeffs, p.g1SRS)
}

// Open produces one quotient-commitment proof attesting that commitment
// opens to values[p] at each p in positions.
func (p *ProverParams) Open(commitment Point, values []Fr, positions []int) (Proof, error) {
	if len(values) != p.width {
		return Proof{}, fmt.Errorf("pointproofs: open expects %d values, got %d", p.width, len(values))
	}
	if len(positions) == 0 {
		return Proof{}, errors.New("pointproofs: open requires at least one position")
	}

	roots := make([]Fr, len(positions))
	ys := make([]Fr, len(positions))
	for i, pos := range positions {
		if pos < 0 || pos >= p.width {
			return Proof{}, fmt.Errorf("pointproofs: position %d out of range [0,%d)", pos, p.width)
		}
		roots[i] = p.domain[pos]
		ys[i] = values[pos]
	}

	fCoeffs := interpolate(p.domain, values)
	rCoeffs := interpolate(roots, ys)
	qCoeffs := divideExact(subtract(fCoeffs, rCoeffs), roots)

	qCommit, err := commitG1(qCoeffs, p.g1SRS)
	if err != nil {
		return Proof{}, err
	}
	return Proof{Q: qCommit}, nil
}

// Encode maps a commitment into the scalar field by hashing its
// compressed encoding. Unlike ipabackend's algebraic MapToScalarField,
// gnark-crypto exposes no group-to-scalar homomorphism for BLS12-381, so
// this is a plain hash-to-field: it only needs to be a deterministic,
// collision-resistant injection for the tree's own bookkeeping, not an
// algebraic commitment in its own right (the security of a parent's
// commitment to it still comes from the parent's own KZG opening).
func (p *ProverParams) Encode(c Point) Fr { return encode(c) }
func (v *VerifierParams) Encode(c Point) Fr { return encode(c) }

func encode(c Point) Fr {
	b := c.Bytes()
	h := sha256.Sum256(b[:])
	var f Fr
	f.SetBytes(h[:])
	return f
}

// Serialize returns the commitment's canonical compressed encoding.
func (p *ProverParams) Serialize(c Point) []byte { return serialize(c) }
func (v *VerifierParams) Serialize(c Point) []byte { return serialize(c) }

func serialize(c Point) []byte {
	b := c.Bytes()
	return b[:]
}

// Equal reports whether two commitments are the same curve point.
func (v *VerifierParams) Equal(a, b Point) bool {
	return a.Equal(&b)
}

// KeyOf returns a canonical, comparable key for a scalar.
func (v *VerifierParams) KeyOf(f Fr) string {
	b := f.Bytes()
	return string(b[:])
}

// VerifyOpening checks that proof attests commitment opens to values[i]
// at positions[i], for all i, via a single pairing check.
func (v *VerifierParams) VerifyOpening(commitment Point, proof Proof, positions []int, values []Fr) bool {
	if len(positions) != len(values) || len(positions) == 0 {
		return false
	}

	roots := make([]Fr, len(positions))
	for i, pos := range positions {
		if pos < 0 || pos >= v.width {
			return false
		}
		roots[i] = v.domain[pos]
	}

	rCoeffs := interpolate(roots, values)
	rCommit, err := commitG1(rCoeffs, v.g1SRS)
	if err != nil {
		return false
	}

	zCoeffs := vanishing(roots)
	zCommit, err := commitG2(zCoeffs, v.g2SRS)
	if err != nil {
		return false
	}

	lhs := addG1(commitment, negG1(rCommit))
	negQ := negG1(proof.Q)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{lhs, negQ},
		[]bls12381.G2Affine{v.g2Gen, zCommit},
	)
	return err == nil && ok
}

func commitG1(coeffs []Fr, srs []bls12381.G1Affine) (bls12381.G1Affine, error) {
	n := len(coeffs)
	if n == 0 {
		var zero bls12381.G1Affine
		return zero, nil
	}
	if n > len(srs) {
		return bls12381.G1Affine{}, fmt.Errorf("pointproofs: polynomial of degree %d exceeds SRS size %d", n-1, len(srs))
	}
	var result bls12381.G1Affine
	if _, err := result.MultiExp(srs[:n], coeffs, multiExpConfig()); err != nil {
		return bls12381.G1Affine{}, err
	}
	return result, nil
}

func commitG2(coeffs []Fr, srs []bls12381.G2Affine) (bls12381.G2Affine, error) {
	n := len(coeffs)
	if n == 0 {
		var zero bls12381.G2Affine
		return zero, nil
	}
	if n > len(srs) {
		return bls12381.G2Affine{}, fmt.Errorf("pointproofs: polynomial of degree %d exceeds SRS size %d", n-1, len(srs))
	}
	var result bls12381.G2Affine
	if _, err := result.MultiExp(srs[:n], coeffs, multiExpConfig()); err != nil {
		return bls12381.G2Affine{}, err
	}
	return result, nil
}

func addG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var out bls12381.G1Affine
	out.FromJacobian(&aj)
	return out
}

func negG1(a bls12381.G1Affine) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.Neg(&a)
	return out
}
