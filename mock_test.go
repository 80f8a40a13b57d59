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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// mockBackend is a deterministic, non-cryptographic stand-in for a real
// commitment scheme, used to exercise the generic tree/plan/prove/verify
// machinery without paying for an elliptic-curve or IPA setup in every
// test. A commitment is the hex digest of its vector; a proof is a plain
// copy of the full vector, which is enough for VerifyOpening to both
// recompute the digest and check the claimed values at each position --
// it is not hiding or succinct, only deterministic and tamper-evident,
// which is all the generic engine's own tests need from a backend.
type mockBackend struct {
	width int
}

func (b *mockBackend) Width() int { return b.width }

func (b *mockBackend) Commit(values []string) (string, error) {
	if len(values) != b.width {
		return "", fmt.Errorf("mockBackend: expected %d values, got %d", b.width, len(values))
	}
	return digest(values), nil
}

func (b *mockBackend) Open(commitment string, values []string, positions []int) ([]string, error) {
	if len(values) != b.width {
		return nil, fmt.Errorf("mockBackend: expected %d values, got %d", b.width, len(values))
	}
	if digest(values) != commitment {
		return nil, fmt.Errorf("mockBackend: values do not match commitment")
	}
	proof := append([]string(nil), values...)
	return proof, nil
}

func (b *mockBackend) Encode(c string) string { return c }

func (b *mockBackend) Serialize(c string) []byte { return []byte(c) }

func (b *mockBackend) VerifyOpening(commitment string, proof []string, positions []int, values []string) bool {
	if len(positions) != len(values) || len(proof) != b.width {
		return false
	}
	if digest(proof) != commitment {
		return false
	}
	for i, p := range positions {
		if p < 0 || p >= b.width || proof[p] != values[i] {
			return false
		}
	}
	return true
}

func (b *mockBackend) Equal(a, c string) bool { return a == c }

func (b *mockBackend) KeyOf(v string) string { return v }

func digest(values []string) string {
	h := sha256.New()
	for _, v := range values {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// leafData returns n distinct leaf values, labelled by index, for the
// given width^depth leaf count.
func leafData(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("leaf%d", i)
	}
	return out
}
