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

import "testing"

func buildTestTree(t *testing.T, n, width int) (*Tree[string, string, []string], []string, *mockBackend) {
	t.Helper()
	data := leafData(n)
	backend := &mockBackend{width: width}
	tree, err := Build(data, width, backend)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tree, data, backend
}

func TestVerifyAcceptsGenuineOpening(t *testing.T) {
	t.Parallel()

	tree, data, backend := buildTestTree(t, 16, 4)
	indices := []int{0, 5, 6, 15}

	openings, err := tree.Prove(indices, data)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	root, _ := tree.RootCommitment()

	dedup := dedupSorted(indices)
	leafValues := make([]string, len(dedup))
	for i, idx := range dedup {
		leafValues[i] = data[idx]
	}

	if !Verify[string, string, []string](root, openings, 4, 2, indices, leafValues, backend) {
		t.Fatalf("Verify rejected a genuine opening")
	}
}

func TestVerifyRejectsWrongRoot(t *testing.T) {
	t.Parallel()

	tree, data, backend := buildTestTree(t, 16, 4)
	indices := []int{2}
	openings, err := tree.Prove(indices, data)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if Verify[string, string, []string]("not-the-real-root", openings, 4, 2, indices, []string{data[2]}, backend) {
		t.Fatalf("Verify accepted a forged root")
	}
}

func TestVerifyRejectsTamperedLeafValue(t *testing.T) {
	t.Parallel()

	tree, data, backend := buildTestTree(t, 16, 4)
	indices := []int{2}
	openings, err := tree.Prove(indices, data)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	root, _ := tree.RootCommitment()

	if Verify[string, string, []string](root, openings, 4, 2, indices, []string{"not-the-real-leaf"}, backend) {
		t.Fatalf("Verify accepted a tampered leaf value")
	}
}

func TestVerifyRejectsTamperedOpenedValue(t *testing.T) {
	t.Parallel()

	tree, data, backend := buildTestTree(t, 16, 4)
	indices := []int{2}
	openings, err := tree.Prove(indices, data)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	root, _ := tree.RootCommitment()

	tampered := append(OpeningSet[string, string, []string]{}, openings...)
	tampered[len(tampered)-1].Values = append([]string(nil), tampered[len(tampered)-1].Values...)
	tampered[len(tampered)-1].Values[0] = "forged"

	if Verify[string, string, []string](root, tampered, 4, 2, indices, []string{data[2]}, backend) {
		t.Fatalf("Verify accepted an opening with a tampered value")
	}
}

func TestVerifyRejectsWrongOpeningCount(t *testing.T) {
	t.Parallel()

	tree, data, backend := buildTestTree(t, 16, 4)
	indices := []int{0, 1, 2, 3}
	openings, err := tree.Prove(indices, data)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	root, _ := tree.RootCommitment()

	truncated := openings[:len(openings)-1]
	leafValues := data[0:4]
	if Verify[string, string, []string](root, truncated, 4, 2, indices, leafValues, backend) {
		t.Fatalf("Verify accepted an opening set missing an entry the plan requires")
	}
}

func TestVerifyRejectsMalformedInputWithoutPanicking(t *testing.T) {
	t.Parallel()

	tree, data, backend := buildTestTree(t, 16, 4)
	root, _ := tree.RootCommitment()

	if Verify[string, string, []string](root, nil, 4, 2, []int{0}, data[:1], backend) {
		t.Fatalf("Verify accepted a nil opening set")
	}
	if Verify[string, string, []string](root, OpeningSet[string, string, []string]{}, 4, 2, []int{0}, nil, backend) {
		t.Fatalf("Verify accepted mismatched indices/leafValues lengths")
	}
}
