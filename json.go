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
	"encoding/hex"
	"encoding/json"
)

// openingMarshaller is the wire form of an Opening: every backend-specific
// field (commitment, proof, values) is reduced to its canonical bytes and
// hex-encoded, following the teacher's proof_json.go convention of
// marshalling curve/field elements as hex strings rather than relying on
// their native (fixed-size array) JSON encoding.
type openingMarshaller struct {
	Layer     int      `json:"layer"`
	Position  int      `json:"position"`
	Commit    string   `json:"commitment"`
	Proof     string   `json:"proof"`
	Positions []int    `json:"positions"`
	Values    []string `json:"values"`
}

// MarshalOpeningSetJSON encodes an OpeningSet to the canonical hex-string
// JSON wire form, given the backend's byte serializers for commitments,
// proofs and values.
func MarshalOpeningSetJSON[V any, C any, P any](
	set OpeningSet[V, C, P],
	serializeCommitment func(C) []byte,
	serializeProof func(P) []byte,
	serializeValue func(V) []byte,
) ([]byte, error) {
	out := make([]openingMarshaller, len(set))
	for i, o := range set {
		values := make([]string, len(o.Values))
		for j, v := range o.Values {
			values[j] = hex.EncodeToString(serializeValue(v))
		}
		out[i] = openingMarshaller{
			Layer:     o.Layer,
			Position:  o.Position,
			Commit:    hex.EncodeToString(serializeCommitment(o.Commitment)),
			Proof:     hex.EncodeToString(serializeProof(o.Proof)),
			Positions: o.Positions,
			Values:    values,
		}
	}
	return json.Marshal(out)
}
