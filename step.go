// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// A Step is a single-position alignment operation annotated with the
// zero-based reference and query positions it applies to at the time it
// executes. A position is -1 on an axis the operation does not consume,
// so an insertion carries Ref == -1 and a deletion Query == -1.
type Step struct {
	Type  CigarOpType
	Ref   int
	Query int
}

// Steps is an iterator over the single-position operations of a Cigar.
// Iteration is restartable by obtaining a fresh iterator from
// Cigar.Steps; iterators hold no resources and may be abandoned at any
// point. Independent iterators do not interact, so concurrent consumers
// may each walk their own.
//
//	for it := c.Steps(); it.Next(); {
//		s := it.Step()
//		...
//	}
type Steps struct {
	c          Cigar
	run, off   int
	ref, query int
	cur        Step
}

// Steps returns an iterator over the single-position operations of c.
func (c Cigar) Steps() *Steps { return &Steps{c: c} }

// Next advances the iterator to the next single-position operation,
// returning false when the alignment is exhausted.
func (s *Steps) Next() bool {
	for s.run < len(s.c) && s.c[s.run].Len() == 0 {
		s.run++
	}
	if s.run >= len(s.c) {
		return false
	}
	t := s.c[s.run].Type()
	con := t.Consumes()
	s.cur = Step{Type: t, Ref: -1, Query: -1}
	if con.Reference != 0 {
		s.cur.Ref = s.ref
		s.ref++
	}
	if con.Query != 0 {
		s.cur.Query = s.query
		s.query++
	}
	s.off++
	if s.off == s.c[s.run].Len() {
		s.run++
		s.off = 0
	}
	return true
}

// Step returns the current single-position operation. It is only valid
// after a call to Next that returned true.
func (s *Steps) Step() Step { return s.cur }
