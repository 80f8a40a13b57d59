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

// Package ipabackend implements the polynomial/IPA vector-commitment
// backend: nodes commit to a width-element vector (a polynomial in
// Lagrange/evaluation form) with a Pedersen vector commitment over a fixed
// banderwagon basis, and open it with an inner-product-argument
// multiproof, the same construction used for Ethereum's verkle state tree. It wraps
// github.com/crate-crypto/go-ipa, which fixes the commitment vector length
// to its precomputed SRS size; Setup rejects any width other than that
// size (see DESIGN.md).
package ipabackend

import (
	"errors"
	"fmt"

	ipa "github.com/crate-crypto/go-ipa"
	"github.com/crate-crypto/go-ipa/bandersnatch/fr"
	"github.com/crate-crypto/go-ipa/banderwagon"
	"github.com/crate-crypto/go-ipa/common"
	ipaconf "github.com/crate-crypto/go-ipa/ipa"
)

// Fr and Point alias the underlying scalar field and commitment group
// element exactly as crypto/crypto.go does in the teacher's own tree: the
// value domain V for this backend is Fr, the commitment domain C is Point.
type (
	Fr    = fr.Element
	Point = banderwagon.Element
)

// Proof is the aggregated multiproof this backend's Open/VerifyOpening
// produce and check.
type Proof = ipa.MultiProof

// ErrWidthMismatch is returned by Setup when the requested width does not
// equal the backing SRS's fixed vector length.
var ErrWidthMismatch = errors.New("ipabackend: width does not match the IPA backend's fixed vector length")

// srsWidth is the vector length go-ipa's precomputed SRS supports -- the
// same 256-wide basis Ethereum's verkle state tree commits its nodes
// with. go-ipa does not parameterize this at runtime, so neither does
// this backend.
const srsWidth = 256

// ProverParams holds everything Commit and Open need.
type ProverParams struct {
	conf  *ipaconf.IPAConfig
	width int
}

// VerifierParams holds everything VerifyOpening needs: Setup hands it the
// same IPAConfig it hands to ProverParams.
type VerifierParams struct {
	conf  *ipaconf.IPAConfig
	width int
}

// Setup builds prover and verifier parameters for the given vector width.
// Unlike the pairing backend, the IPA SRS is not derived from a caller
// seed: go-ipa generates the same canonical bandersnatch basis every time,
// which is what makes two independently-run nodes agree on it without a
// trusted setup ceremony.
func Setup(width int) (*ProverParams, *VerifierParams, error) {
	if width != srsWidth {
		return nil, nil, ErrWidthMismatch
	}
	cfg := ipaconf.NewIPASettings()
	return &ProverParams{conf: cfg, width: width}, &VerifierParams{conf: cfg, width: width}, nil
}

func (p *ProverParams) Width() int   { return p.width }
func (p *VerifierParams) Width() int { return p.width }

// Commit returns the Pedersen commitment to values, which must have
// exactly Width() elements.
func (p *ProverParams) Commit(values []Fr) (Point, error) {
	if len(values) != p.width {
		return Point{}, fmt.Errorf("ipabackend: commit expects %d values, got %d", p.width, len(values))
	}
	return p.conf.Commit(values), nil
}

// Open produces one aggregated multiproof attesting that commitment opens
// to values[p] at each p in positions.
func (p *ProverParams) Open(commitment Point, values []Fr, positions []int) (*Proof, error) {
	if len(values) != p.width {
		return nil, fmt.Errorf("ipabackend: open expects %d values, got %d", p.width, len(values))
	}
	if len(positions) == 0 {
		return nil, errors.New("ipabackend: open requires at least one position")
	}

	Cs := make([]*Point, len(positions))
	fs := make([][]Fr, len(positions))
	zs := make([]uint8, len(positions))
	for i, pos := range positions {
		if pos < 0 || pos >= p.width {
			return nil, fmt.Errorf("ipabackend: position %d out of range [0,%d)", pos, p.width)
		}
		c := commitment
		Cs[i] = &c
		fs[i] = values
		zs[i] = uint8(pos)
	}

	tr := common.NewTranscript("multiproof")
	proof := ipa.CreateMultiProof(tr, p.conf, Cs, fs, zs)
	return proof, nil
}

// Encode maps a commitment into the scalar field so it can be placed in a
// parent node's input vector.
func (p *ProverParams) Encode(c Point) Fr {
	var out Fr
	c.MapToScalarField(&out)
	return out
}

// Serialize returns the commitment's canonical 32-byte compressed form.
func (p *ProverParams) Serialize(c Point) []byte {
	b := c.Bytes()
	return b[:]
}

// VerifyOpening checks that proof attests commitment opens to values[i] at
// positions[i], for all i.
func (v *VerifierParams) VerifyOpening(commitment Point, proof *Proof, positions []int, values []Fr) bool {
	if len(positions) != len(values) || len(positions) == 0 {
		return false
	}

	Cs := make([]*Point, len(positions))
	ys := make([]*Fr, len(positions))
	zs := make([]uint8, len(positions))
	for i, pos := range positions {
		if pos < 0 || pos >= v.width {
			return false
		}
		c := commitment
		Cs[i] = &c
		y := values[i]
		ys[i] = &y
		zs[i] = uint8(pos)
	}

	tr := common.NewTranscript("multiproof")
	return ipa.CheckMultiProof(tr, v.conf, proof, Cs, ys, zs)
}

func (v *VerifierParams) Encode(c Point) Fr {
	var out Fr
	c.MapToScalarField(&out)
	return out
}

func (v *VerifierParams) Serialize(c Point) []byte {
	b := c.Bytes()
	return b[:]
}

// Equal reports whether two commitments are the same group element.
func (v *VerifierParams) Equal(a, b Point) bool {
	return a.Equal(&b)
}

// KeyOf returns a canonical, comparable key for a scalar, used by the
// verifier's link check to build a set of expected values.
func (v *VerifierParams) KeyOf(f Fr) string {
	b := f.Bytes()
	return string(b[:])
}
