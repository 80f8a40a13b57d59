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

// Opening is a single backend-produced witness that a node's Commitment
// opens to Values[i] at Positions[i], for every i. Layer and Position
// identify which tree node this is (spec.md §4.3): Layer 0 is always the
// root's single opening, when present.
//
// Unlike spec.md's description of a flat array relying on sentinel "no
// opening" placeholders to keep positions reconstructible, each Opening
// here carries its own (Layer, Position) explicitly, so a verifier never
// needs sentinels to recover node identity; an OpeningSet that has had
// its sentinels stripped (if a caller produced one some other way) is
// just as easy to re-derive against a freshly computed plan (see
// DESIGN.md).
type Opening[V any, C any, P any] struct {
	Layer      int
	Position   int
	Commitment C
	Proof      P
	Positions  []int
	Values     []V
}

// OpeningSet is the canonically ordered result of a batch proof: sorted by
// Layer ascending, then Position ascending within a layer (spec.md §4.3,
// §5 "Ordering guarantees"). Proof generation and verification both rely
// on this order; neither re-sorts it.
type OpeningSet[V any, C any, P any] []Opening[V, C, P]
