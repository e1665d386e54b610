// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hit

import (
	"fmt"
	"math"
	"strconv"
)

// A Point is a cut position lying strictly between two adjacent integer
// coordinates. Cutting only between coordinates makes every operation,
// including zero-width insertions and deletions sitting exactly at a
// boundary, belong to exactly one side of the cut. Points are built
// with Between, or validated from a numeric value with At.
type Point struct {
	after int
}

// Between returns the Point lying between coordinates k and k+1, that
// is the half-integer position k+0.5.
func Between(k int) Point { return Point{after: k} }

// At returns the Point at position v, which must be an exact
// half-integer. Any other value, integers included, fails with an error
// matching ErrCutOutOfRange. For coordinates beyond float64's exact
// integer range use Between directly.
func At(v float64) (Point, error) {
	f := math.Floor(v)
	if v-f != 0.5 {
		return Point{}, fmt.Errorf("%w: cut point %v does not lie between two coordinates", ErrCutOutOfRange, v)
	}
	return Between(int(f)), nil
}

// String renders the point as its half-integer value.
func (p Point) String() string {
	return strconv.FormatFloat(float64(p.after)+0.5, 'f', 1, 64)
}

// CutReference splits h into two hits at a point in reference space.
// Runs wholly before the point go to left, runs wholly after go to
// right, and a reference-consuming run straddling the point is divided
// between the two. A block of non-reference-consuming operations
// straddling the point is divided at its midpoint, ties going to the
// left side. It fails with an error matching ErrCutOutOfRange when h
// spans no reference positions or the point lies outside
// [RefStart-0.5, RefEnd+0.5].
//
// The two results partition h exactly: left.Add(right) reproduces h.
func (h Hit) CutReference(p Point) (left, right Hit, err error) {
	if h.RefLen() == 0 || p.after < h.RefStart-1 || p.after > h.RefEnd {
		return Hit{}, Hit{}, fmt.Errorf("%w: %v outside reference span of %v", ErrCutOutOfRange, p, h)
	}
	m := h.Cigar.Mapping()
	local := p.after - h.RefStart
	lo := -1
	if local >= 0 {
		lo, _ = m.RefStep(local)
	}
	hi := h.Cigar.NumSteps()
	if local+1 < h.RefLen() {
		hi, _ = m.RefStep(local + 1)
	}
	mid := floorDiv(lo+hi, 2)
	left = h.slice(h.RefStart, h.QueryStart, 0, mid+1)
	right = h.slice(left.RefEnd+1, left.QueryEnd+1, mid+1, h.Cigar.NumSteps())
	return left, right, nil
}

// CutQuery splits h into two hits at a point in query space. It is the
// exact symmetric counterpart of CutReference.
func (h Hit) CutQuery(p Point) (left, right Hit, err error) {
	if h.QueryLen() == 0 || p.after < h.QueryStart-1 || p.after > h.QueryEnd {
		return Hit{}, Hit{}, fmt.Errorf("%w: %v outside query span of %v", ErrCutOutOfRange, p, h)
	}
	m := h.Cigar.Mapping()
	local := p.after - h.QueryStart
	lo := -1
	if local >= 0 {
		lo, _ = m.QueryStep(local)
	}
	hi := h.Cigar.NumSteps()
	if local+1 < h.QueryLen() {
		hi, _ = m.QueryStep(local + 1)
	}
	mid := floorDiv(lo+hi, 2)
	left = h.slice(h.RefStart, h.QueryStart, 0, mid+1)
	right = h.slice(left.RefEnd+1, left.QueryEnd+1, mid+1, h.Cigar.NumSteps())
	return left, right, nil
}

// slice returns the sub-hit covering the single-position operations in
// [stepLo, stepHi), positioned at the given start coordinates.
func (h Hit) slice(refStart, queryStart, stepLo, stepHi int) Hit {
	c := h.Cigar.Slice(stepLo, stepHi)
	ref, query := c.Lengths()
	return Hit{
		Cigar:      c,
		RefStart:   refStart,
		RefEnd:     refStart + ref - 1,
		QueryStart: queryStart,
		QueryEnd:   queryStart + query - 1,
	}
}

// floorDiv returns the floor of a/b for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
