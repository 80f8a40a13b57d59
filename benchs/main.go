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

// Command benchs profiles building a wide IPA-backed tree and proving a
// batch opening against it, in the same CPU/heap-profile-to-disk style
// the teacher used for its own insert benchmark.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/crate-crypto/go-ipa/bandersnatch/fr"

	verkle "github.com/oklol/verkletree"
	"github.com/oklol/verkletree/ipabackend"
)

func main() {
	benchmarkBuildAndProve()
}

func benchmarkBuildAndProve() {
	f, _ := os.Create("cpu.prof")
	g, _ := os.Create("mem.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()
	defer func() { _ = pprof.WriteHeapProfile(g) }()

	const width = 256
	prover, verifier, err := ipabackend.Setup(width)
	if err != nil {
		panic(err)
	}

	for round := 0; round < 4; round++ {
		data := make([]fr.Element, width)
		buf := make([]byte, 32)
		for i := range data {
			if _, err := rand.Read(buf); err != nil {
				panic(err)
			}
			data[i].SetBytesLE(buf)
		}
		fmt.Printf("Generated leaf set %d\n", round)

		start := time.Now()
		tree, err := verkle.Build[fr.Element, ipabackend.Point, *ipabackend.Proof](data, width, prover)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Took %v to build a %d-wide tree\n", time.Since(start), width)

		indices := make([]int, 32)
		for i := range indices {
			indices[i] = i * 8
		}
		start = time.Now()
		openings, err := tree.Prove(indices, data)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Took %v to prove %d positions\n", time.Since(start), len(indices))

		root, err := tree.RootCommitment()
		if err != nil {
			panic(err)
		}
		leafValues := make([]fr.Element, len(indices))
		for i, idx := range indices {
			leafValues[i] = data[idx]
		}
		start = time.Now()
		ok := verkle.Verify[fr.Element, ipabackend.Point, *ipabackend.Proof](root, openings, width, 1, indices, leafValues, verifier)
		fmt.Printf("Took %v to verify (ok=%v)\n", time.Since(start), ok)
	}
}
