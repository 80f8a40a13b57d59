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

import "sort"

// layerMap[k][p] is the sorted, duplicate-free list of child positions of
// node (k, p) that must be opened for a given batch of requested leaf
// indices. A layer with no entries for a node means that node is untouched.
//
// Layers are indexed 0 (root) .. depth-1 (the leaf-group layer, i.e. the
// parent of the raw leaf values -- see build.go's comment on layer
// indexing).
type layerMap []map[int][]int

// plan computes, for every requested leaf index, the set of child
// positions that must be opened at every ancestor node on the path from
// that leaf to the root (spec.md §4.2).
//
// indices need not be sorted or duplicate-free; plan deduplicates them
// first (spec.md §9, open question 4).
func plan(indices []int, width, depth int) layerMap {
	touched := dedupSorted(indices)

	lm := make(layerMap, depth)
	for k := range lm {
		lm[k] = make(map[int][]int)
	}

	// Leaf-group layer: each requested data index i is owned by node
	// position i/width at layer depth-1, opening child position i%width.
	parents := make(map[int]struct{})
	leafLayer := depth - 1
	for _, i := range touched {
		p := i / width
		child := i % width
		addChild(lm[leafLayer], p, child)
		parents[p] = struct{}{}
	}

	// Ascend one layer at a time until the root is reached.
	for k := leafLayer - 1; k >= 0; k-- {
		nextParents := make(map[int]struct{})
		for p := range parents {
			parent := p / width
			child := p % width
			addChild(lm[k], parent, child)
			nextParents[parent] = struct{}{}
		}
		parents = nextParents
	}

	for k := range lm {
		for p := range lm[k] {
			sort.Ints(lm[k][p])
		}
	}
	return lm
}

func addChild(m map[int][]int, position, child int) {
	for _, c := range m[position] {
		if c == child {
			return
		}
	}
	m[position] = append(m[position], child)
}

// dedupSorted returns the sorted, duplicate-free contents of xs.
func dedupSorted(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	out := cp[:1]
	for _, x := range cp[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// touchedCount returns how many (layer, position) entries in lm have a
// non-empty child-position list -- the number of openings a conforming
// Prove/Verify pair must produce for this plan.
func (lm layerMap) touchedCount() int {
	n := 0
	for _, layer := range lm {
		n += len(layer)
	}
	return n
}
