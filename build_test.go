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
	"errors"
	"testing"
)

func TestBuildRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Build[string, string, []string](nil, 4, &mockBackend{width: 4})
	var berr *BuildError
	if !errors.As(err, &berr) || !errors.Is(err, errEmptyInput) {
		t.Fatalf("Build(nil) = %v, want a BuildError wrapping errEmptyInput", err)
	}
}

func TestBuildRejectsNarrowWidth(t *testing.T) {
	t.Parallel()

	_, err := Build(leafData(4), 1, &mockBackend{width: 1})
	if !errors.Is(err, errWidthTooSmall) {
		t.Fatalf("Build with width=1 = %v, want errWidthTooSmall", err)
	}
}

func TestBuildRejectsNonPowerOfWidth(t *testing.T) {
	t.Parallel()

	_, err := Build(leafData(10), 4, &mockBackend{width: 4})
	if !errors.Is(err, errNotPowerOfWidth) {
		t.Fatalf("Build with 10 leaves, width 4 = %v, want errNotPowerOfWidth", err)
	}
}

func TestBuildSingleLayer(t *testing.T) {
	t.Parallel()

	data := leafData(4)
	backend := &mockBackend{width: 4}
	tree, err := Build(data, 4, backend)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tree.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", tree.Depth())
	}
	if tree.leafGroupCount() != 1 {
		t.Fatalf("leafGroupCount() = %d, want 1", tree.leafGroupCount())
	}

	root, err := tree.RootCommitment()
	if err != nil {
		t.Fatalf("RootCommitment: %v", err)
	}
	want, _ := backend.Commit(data)
	if root != want {
		t.Fatalf("RootCommitment() = %q, want %q", root, want)
	}
}

func TestBuildMultipleLayersIsDeterministic(t *testing.T) {
	t.Parallel()

	data := leafData(16)
	backend := &mockBackend{width: 4}

	t1, err := Build(data, 4, backend)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t2, err := Build(data, 4, backend)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r1, _ := t1.RootCommitment()
	r2, _ := t2.RootCommitment()
	if r1 != r2 {
		t.Fatalf("two builds of the same data produced different roots: %q != %q", r1, r2)
	}
	if t1.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", t1.Depth())
	}
}

func TestEmptyTreeAccessorsReturnErrEmptyTree(t *testing.T) {
	t.Parallel()

	var tree Tree[string, string, []string]
	if _, err := tree.RootCommitment(); !errors.Is(err, ErrEmptyTree) {
		t.Fatalf("RootCommitment() on zero Tree = %v, want ErrEmptyTree", err)
	}
	if _, err := tree.Prove([]int{0}, leafData(4)); !errors.Is(err, ErrEmptyTree) {
		t.Fatalf("Prove() on zero Tree = %v, want ErrEmptyTree", err)
	}
}

func TestIntegerLog(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, width int
		want     int
		ok       bool
	}{
		{1, 2, 0, false},
		{4, 4, 1, true},
		{16, 4, 2, true},
		{64, 4, 3, true},
		{10, 4, 0, false},
		{8, 3, 0, false},
	}
	for _, c := range cases {
		got, ok := integerLog(c.n, c.width)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("integerLog(%d, %d) = (%d, %v), want (%d, %v)", c.n, c.width, got, ok, c.want, c.ok)
		}
	}
}
