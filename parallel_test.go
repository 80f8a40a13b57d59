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

package verkle

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestParallelBatchesCoversEveryIndexExactlyOnce(t *testing.T) {
	t.Parallel()

	const n = 997 // deliberately not a multiple of NumCPU
	seen := make([]int32, n)
	parallelBatches(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, count := range seen {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want exactly 1", i, count)
		}
	}
}

func TestParallelBatchesHandlesZero(t *testing.T) {
	t.Parallel()

	called := false
	parallelBatches(0, func(start, end int) { called = true })
	if called {
		t.Fatalf("parallelBatches(0, ...) invoked fn, want no-op")
	}
}

func TestParallelMapBoolPreservesIndependentResults(t *testing.T) {
	t.Parallel()

	const n = 64
	out := parallelMapBool(n, func(i int) bool { return i%2 == 0 })
	for i, ok := range out {
		want := i%2 == 0
		if ok != want {
			t.Fatalf("parallelMapBool result[%d] = %v, want %v", i, ok, want)
		}
	}
}

func TestParallelMapReturnsFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := parallelMap(32, func(i int) error {
		if i == 17 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("parallelMap = %v, want boom", err)
	}
}
