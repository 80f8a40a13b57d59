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
	"strconv"
)

// Sentinel causes wrapped by BuildError.
var (
	errEmptyInput      = errors.New("empty leaf sequence")
	errWidthTooSmall   = errors.New("width must be >= 2")
	errNotPowerOfWidth = errors.New("leaf count is not a power of width")
)

// BuildError is returned by Build when the input data or width cannot
// produce a well-formed tree.
type BuildError struct {
	err error
}

func (e *BuildError) Error() string { return "verkle: build failed: " + e.err.Error() }
func (e *BuildError) Unwrap() error { return e.err }

func newBuildError(err error) *BuildError { return &BuildError{err: err} }

// ProofGenerateError wraps a backend failure encountered while opening a
// node's commitment during proof generation.
type ProofGenerateError struct {
	Layer    int
	Position int
	err      error
}

func (e *ProofGenerateError) Error() string {
	return "verkle: proof generation failed at layer " +
		strconv.Itoa(e.Layer) + " position " + strconv.Itoa(e.Position) + ": " + e.err.Error()
}
func (e *ProofGenerateError) Unwrap() error { return e.err }

func newProofGenerateError(layer, position int, err error) *ProofGenerateError {
	return &ProofGenerateError{Layer: layer, Position: position, err: err}
}

// ErrEmptyTree is returned by Tree accessors when called on a tree that has
// no root layer (which never happens for a successfully Built tree, but can
// happen for a zero-value Tree).
var ErrEmptyTree = errors.New("verkle: tree has no root")
