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
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// parallelBatches splits [0,n) into at most runtime.NumCPU() contiguous
// batches and runs fn(start, end) for each batch concurrently, waiting for
// all of them to finish. fn must write only to indices in [start, end).
//
// Grounded on the teacher's BatchNewLeafNode (conversion.go), which divides
// work into runtime.NumCPU() batches under a sync.WaitGroup rather than one
// goroutine per item; this keeps goroutine overhead bounded when n is large
// (a full layer can have tens of thousands of nodes).
func parallelBatches(n int, fn func(start, end int)) {
	if n == 0 {
		return
	}
	numBatches := runtime.NumCPU()
	if numBatches > n {
		numBatches = n
	}
	batchSize := n / numBatches

	var wg sync.WaitGroup
	wg.Add(numBatches)
	for i := 0; i < numBatches; i++ {
		start := i * batchSize
		end := start + batchSize
		if i == numBatches-1 {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// parallelBatchesErr is parallelBatches for batch functions that can fail:
// it runs fn(start, end) over the same runtime.NumCPU()-sized contiguous
// batches, and returns the first error reported by any batch. Batches keep
// running to completion rather than being cancelled, since fn here is pure
// CPU work (committing a chunk) with no cancellation point to honor.
func parallelBatchesErr(n int, fn func(start, end int) error) error {
	if n == 0 {
		return nil
	}
	numBatches := runtime.NumCPU()
	if numBatches > n {
		numBatches = n
	}
	batchSize := n / numBatches

	var mu sync.Mutex
	var firstErr error
	var wg sync.WaitGroup
	wg.Add(numBatches)
	for i := 0; i < numBatches; i++ {
		start := i * batchSize
		end := start + batchSize
		if i == numBatches-1 {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			if err := fn(start, end); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(start, end)
	}
	wg.Wait()
	return firstErr
}

// parallelMapBool runs fn(i) for every i in [0,n) concurrently and
// collects each result at its own index, used by Verify where a single
// failing check must not short-circuit the others (every opening and the
// link check are independent per spec.md §5).
func parallelMapBool(n int, fn func(i int) bool) []bool {
	out := make([]bool, n)
	parallelBatches(n, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = fn(i)
		}
	})
	return out
}

// parallelMap runs fn(i) for every i in [0,n) concurrently (bounded by
// runtime.NumCPU() via errgroup.SetLimit) and returns the first error
// encountered, cancelling outstanding work on the shared errgroup context
// is not needed here since fn is pure CPU work with no ctx.Context plumbed
// through the backend contract (spec §5: "none; operations run to
// completion or return an error").
func parallelMap(n int, fn func(i int) error) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}
