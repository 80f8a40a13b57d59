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

// Command fuzzbuildverify repeatedly builds random trees with both
// backends and checks that (a) building the same data twice yields the
// same root (checked for the IPA backend), and (b) every batch opening
// Prove produces is accepted by
// Verify, while a tampered leaf value is always rejected. It panics on
// the first property violation, in the same differential-fuzzing style
// the teacher's own fuzz commands used to compare two insertion paths.
package main

import (
	"crypto/rand"
	"fmt"
	mrand "math/rand"

	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-ipa/bandersnatch/fr"

	verkle "github.com/oklol/verkletree"
	"github.com/oklol/verkletree/ipabackend"
	"github.com/oklol/verkletree/pointproofs"
)

func main() {
	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)
		fuzzIPA()
		fuzzPointproofs()
	}
}

func fuzzIPA() {
	const width = 256
	prover, verifier, err := ipabackend.Setup(width)
	if err != nil {
		panic(err)
	}

	data := randomFrVector(width)
	t1, err := verkle.Build[fr.Element, ipabackend.Point, *ipabackend.Proof](data, width, prover)
	if err != nil {
		panic(err)
	}
	t2, err := verkle.Build[fr.Element, ipabackend.Point, *ipabackend.Proof](data, width, prover)
	if err != nil {
		panic(err)
	}
	r1, _ := t1.RootCommitment()
	r2, _ := t2.RootCommitment()
	if !verifier.Equal(r1, r2) {
		panic("ipabackend: two builds of the same data produced different roots")
	}

	indices := randomIndices(width, 8)
	openings, err := t1.Prove(indices, data)
	if err != nil {
		panic(err)
	}
	leafValues := leafValuesAt(data, indices)
	if !verkle.Verify[fr.Element, ipabackend.Point, *ipabackend.Proof](r1, openings, width, 1, indices, leafValues, verifier) {
		panic("ipabackend: genuine opening rejected")
	}

	tampered := append([]fr.Element(nil), leafValues...)
	tampered[0].SetUint64(0xdeadbeef)
	if verkle.Verify[fr.Element, ipabackend.Point, *ipabackend.Proof](r1, openings, width, 1, indices, tampered, verifier) {
		panic("ipabackend: tampered opening accepted")
	}
}

func fuzzPointproofs() {
	const width = 8
	const depth = 2
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	prover, verifier, err := pointproofs.Setup(seed, width)
	if err != nil {
		panic(err)
	}

	n := 1
	for i := 0; i < depth; i++ {
		n *= width
	}
	data := randomBLSVector(n)

	tree, err := verkle.Build[bls12381fr.Element, pointproofs.Point, pointproofs.Proof](data, width, prover)
	if err != nil {
		panic(err)
	}
	root, err := tree.RootCommitment()
	if err != nil {
		panic(err)
	}

	indices := randomIndices(n, 5)
	openings, err := tree.Prove(indices, data)
	if err != nil {
		panic(err)
	}
	leafValues := leafValuesBLSAt(data, indices)
	if !verkle.Verify[bls12381fr.Element, pointproofs.Point, pointproofs.Proof](root, openings, width, depth, indices, leafValues, verifier) {
		panic("pointproofs: genuine opening rejected")
	}

	tampered := append([]bls12381fr.Element(nil), leafValues...)
	tampered[0].SetUint64(0xdeadbeef)
	if verkle.Verify[bls12381fr.Element, pointproofs.Point, pointproofs.Proof](root, openings, width, depth, indices, tampered, verifier) {
		panic("pointproofs: tampered opening accepted")
	}
}

func randomFrVector(n int) []fr.Element {
	out := make([]fr.Element, n)
	buf := make([]byte, 32)
	for i := range out {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		out[i].SetBytesLE(buf)
	}
	return out
}

func randomBLSVector(n int) []bls12381fr.Element {
	out := make([]bls12381fr.Element, n)
	buf := make([]byte, 32)
	for i := range out {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		out[i].SetBytes(buf)
	}
	return out
}

func randomIndices(n, count int) []int {
	if count > n {
		count = n
	}
	seen := make(map[int]struct{}, count)
	out := make([]int, 0, count)
	for len(out) < count {
		i := mrand.Intn(n)
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out
}

func leafValuesAt(data []fr.Element, indices []int) []fr.Element {
	dedup := append([]int(nil), indices...)
	sortInts(dedup)
	out := make([]fr.Element, len(dedup))
	for i, idx := range dedup {
		out[i] = data[idx]
	}
	return out
}

func leafValuesBLSAt(data []bls12381fr.Element, indices []int) []bls12381fr.Element {
	dedup := append([]int(nil), indices...)
	sortInts(dedup)
	out := make([]bls12381fr.Element, len(dedup))
	for i, idx := range dedup {
		out[i] = data[idx]
	}
	return out
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
