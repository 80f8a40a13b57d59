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

package pointproofs

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// Polynomials are represented in coefficient form, ascending degree:
// coeffs[i] is the coefficient of X^i.

// interpolate returns the unique coefficient-form polynomial of degree
// < len(xs) passing through (xs[i], ys[i]) for every i. xs must have no
// repeated entries.
func interpolate(xs, ys []fr.Element) []fr.Element {
	n := len(xs)
	result := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		basis := basisPolynomial(xs, i)

		var denom fr.Element
		denom.SetOne()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			var diff fr.Element
			diff.Sub(&xs[i], &xs[j])
			denom.Mul(&denom, &diff)
		}
		denom.Inverse(&denom)

		var scale fr.Element
		scale.Mul(&ys[i], &denom)
		for d := range basis {
			var term fr.Element
			term.Mul(&basis[d], &scale)
			result[d].Add(&result[d], &term)
		}
	}
	return result
}

// basisPolynomial returns the coefficients of prod_{j!=i} (X - xs[j]), a
// degree len(xs)-1 polynomial, unscaled by the usual Lagrange denominator
// (the caller divides by it separately, once, rather than on every term).
func basisPolynomial(xs []fr.Element, i int) []fr.Element {
	result := []fr.Element{one()}
	for j, x := range xs {
		if j == i {
			continue
		}
		result = multiplyLinear(result, x)
	}
	return result
}

// vanishing returns the coefficients of prod_i (X - roots[i]).
func vanishing(roots []fr.Element) []fr.Element {
	result := []fr.Element{one()}
	for _, r := range roots {
		result = multiplyLinear(result, r)
	}
	return result
}

// multiplyLinear multiplies poly by (X - root), growing its degree by one.
func multiplyLinear(poly []fr.Element, root fr.Element) []fr.Element {
	out := make([]fr.Element, len(poly)+1)
	var negRoot fr.Element
	negRoot.Neg(&root)
	for i, c := range poly {
		var t fr.Element
		t.Mul(&c, &negRoot)
		out[i].Add(&out[i], &t)
		out[i+1].Add(&out[i+1], &c)
	}
	return out
}

// subtract returns a - b, zero-padding the shorter operand.
func subtract(a, b []fr.Element) []fr.Element {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var av, bv fr.Element
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i].Sub(&av, &bv)
	}
	return out
}

// divideExact divides numerator by the vanishing polynomial of roots,
// one linear factor at a time, dropping the remainder at each step. The
// caller is responsible for only calling this when numerator is known to
// vanish at every root -- true whenever numerator = f - r for f and an
// interpolation r that agree exactly on roots.
func divideExact(numerator []fr.Element, roots []fr.Element) []fr.Element {
	quotient := append([]fr.Element(nil), numerator...)
	for _, root := range roots {
		quotient = syntheticDivide(quotient, root)
	}
	return quotient
}

// syntheticDivide divides poly (degree len(poly)-1) by (X - root),
// returning the degree len(poly)-2 quotient and discarding the remainder.
func syntheticDivide(poly []fr.Element, root fr.Element) []fr.Element {
	n := len(poly)
	if n <= 1 {
		return nil
	}
	out := make([]fr.Element, n-1)
	out[n-2] = poly[n-1]
	for i := n - 2; i >= 1; i-- {
		var t fr.Element
		t.Mul(&root, &out[i])
		out[i-1].Add(&poly[i], &t)
	}
	return out
}

func one() fr.Element {
	var e fr.Element
	e.SetOne()
	return e
}
