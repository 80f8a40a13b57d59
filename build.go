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

// Build chunks data into groups of width and commits bottom-up until a
// single root commitment remains (spec §4.1). len(data) must equal
// width^D for some D >= 1; width must be >= 2.
func Build[V any, C any, P any](data []V, width int, backend ProverBackend[V, C, P]) (*Tree[V, C, P], error) {
	if len(data) == 0 {
		return nil, newBuildError(errEmptyInput)
	}
	if width < 2 {
		return nil, newBuildError(errWidthTooSmall)
	}

	depth, ok := integerLog(len(data), width)
	if !ok {
		return nil, newBuildError(errNotPowerOfWidth)
	}

	// Stored node layers are indexed 0 (root) .. depth-1 (leaf-group
	// layer, matching the "layer D-1" parent-of-leaves language of
	// spec.md §4.2's planner algorithm); the raw leaf values themselves
	// are one further, unstored, conceptual level down, which is why
	// spec.md §3 separately calls that level "layer D" (see DESIGN.md).
	//
	// Chunk the raw data in strict input order:
	// data[p*width : p*width+width] is committed at position p.
	leafGroups := len(data) / width
	leafLayer := make([]node[V, C], leafGroups)
	err := parallelBatchesErr(leafGroups, func(start, end int) error {
		for p := start; p < end; p++ {
			chunk := data[p*width : p*width+width]
			c, err := backend.Commit(chunk)
			if err != nil {
				return err
			}
			leafLayer[p] = node[V, C]{Commitment: c, Values: chunk, HasChildren: false}
		}
		return nil
	})
	if err != nil {
		return nil, newBuildError(err)
	}

	layers := make([][]node[V, C], depth)
	layers[depth-1] = leafLayer

	// Ascend one layer at a time: layer k is built by chunking layer k+1's
	// commitments (encoded into the value domain) into groups of width.
	for k := depth - 2; k >= 0; k-- {
		below := layers[k+1]
		count := len(below) / width
		layer := make([]node[V, C], count)
		err := parallelBatchesErr(count, func(start, end int) error {
			for p := start; p < end; p++ {
				values := make([]V, width)
				for j := 0; j < width; j++ {
					values[j] = backend.Encode(below[p*width+j].Commitment)
				}
				c, cerr := backend.Commit(values)
				if cerr != nil {
					return cerr
				}
				layer[p] = node[V, C]{Commitment: c, Values: values, HasChildren: true}
			}
			return nil
		})
		if err != nil {
			return nil, newBuildError(err)
		}
		layers[k] = layer
	}

	return &Tree[V, C, P]{width: width, depth: depth, layers: layers, backend: backend}, nil
}

// integerLog returns (d, true) such that width^d == n, or (0, false) if no
// such d exists. n and width are both assumed positive; width >= 2.
func integerLog(n, width int) (int, bool) {
	if n < 1 {
		return 0, false
	}
	d := 0
	for n > 1 {
		if n%width != 0 {
			return 0, false
		}
		n /= width
		d++
	}
	if d == 0 {
		// n == 1 with no divisions means the input had exactly one
		// element; that's a valid depth-0 tree (a single leaf-group of
		// width 1 is not representable since width >= 2, so this only
		// triggers when len(data) == 1, which requires width to also
		// divide out to 1 -- handled by the loop above for width==1,
		// but width >= 2 is enforced by the caller, so n==1 here means
		// len(data) == 1 and width > 1, which is not width^D for any
		// D >= 1). Reject it.
		return 0, false
	}
	return d, true
}
