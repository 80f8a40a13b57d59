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

// node is one slot of the tree: either an internal node whose Values are
// the enc()-ed commitments of its Width() children, or a leaf-group node
// whose Values are the raw data chunk it committed. Either way, Values is
// exactly what was passed to the backend's Commit call that produced
// Commitment, which is also exactly the "opening aid" spec.md §3 describes
// internal nodes as optionally carrying (for the IPA backend it is the
// polynomial in evaluation form; for the pairing backend it is the vector
// handed to the Lagrange-interpolation step inside Open).
type node[V any, C any] struct {
	Commitment  C
	Values      []V
	HasChildren bool
}

// Tree is an immutable, already-built Verkle tree. The zero Tree has no
// layers and behaves as an empty tree (RootCommitment and Prove return
// ErrEmptyTree; Depth returns 0).
type Tree[V any, C any, P any] struct {
	width   int
	depth   int
	layers  [][]node[V, C] // layers[0] is the root layer (length 1)
	backend ProverBackend[V, C, P]
}

// Depth returns D such that the tree was built from Width()^D leaves. It
// is also the number of stored node layers: the leaf-group layer is layer
// Depth()-1.
func (t *Tree[V, C, P]) Depth() int { return t.depth }

// Width returns the tree's branching factor.
func (t *Tree[V, C, P]) Width() int { return t.width }

// RootCommitment returns the commitment held by the tree's single root
// node, or ErrEmptyTree if the tree has no layers.
func (t *Tree[V, C, P]) RootCommitment() (C, error) {
	var zero C
	if len(t.layers) == 0 || len(t.layers[0]) == 0 {
		return zero, ErrEmptyTree
	}
	return t.layers[0][0].Commitment, nil
}

// leafGroupCount returns the number of nodes in the leaf-group layer
// (layer t.depth-1), i.e. N/width.
func (t *Tree[V, C, P]) leafGroupCount() int {
	if len(t.layers) == 0 {
		return 0
	}
	return len(t.layers[len(t.layers)-1])
}
