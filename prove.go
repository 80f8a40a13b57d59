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
	"fmt"
	"sort"
)

// provingTask is one (layer, position) pair the plan says must be opened,
// with the already-sorted child positions to open.
type provingTask struct {
	layer     int
	position  int
	positions []int
}

// Prove produces a batch opening for the requested leaf indices. data must
// be the same leaf sequence (same length and values) that was passed to
// Build: leaf-group openings take their values from data rather than from
// the tree's stored copy (spec.md §4.3's contract takes data explicitly).
func (t *Tree[V, C, P]) Prove(indices []int, data []V) (OpeningSet[V, C, P], error) {
	if len(t.layers) == 0 {
		return nil, ErrEmptyTree
	}

	lm := plan(indices, t.width, t.depth)

	// Flatten the plan into canonical order up front, so the parallel
	// fan-out below only has to fill in pre-assigned slots -- order is
	// then independent of completion order (spec.md §5 "Ordering
	// guarantees", P9).
	var tasks []provingTask
	for k := 0; k < t.depth; k++ {
		positions := sortedKeys(lm[k])
		for _, p := range positions {
			tasks = append(tasks, provingTask{layer: k, position: p, positions: lm[k][p]})
		}
	}

	result := make(OpeningSet[V, C, P], len(tasks))
	leafLayer := t.depth - 1
	err := parallelMap(len(tasks), func(i int) error {
		task := tasks[i]
		n := t.layers[task.layer][task.position]

		var fullValues []V
		if task.layer == leafLayer {
			start := task.position * t.width
			if start+t.width > len(data) {
				return newProofGenerateError(task.layer, task.position,
					fmt.Errorf("data too short for leaf group %d", task.position))
			}
			fullValues = data[start : start+t.width]
		} else {
			fullValues = n.Values
		}

		openedValues := make([]V, len(task.positions))
		for j, pos := range task.positions {
			openedValues[j] = fullValues[pos]
		}

		proof, err := t.backend.Open(n.Commitment, fullValues, task.positions)
		if err != nil {
			return newProofGenerateError(task.layer, task.position, err)
		}

		result[i] = Opening[V, C, P]{
			Layer:      task.layer,
			Position:   task.position,
			Commitment: n.Commitment,
			Proof:      proof,
			Positions:  task.positions,
			Values:     openedValues,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func sortedKeys(m map[int][]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
