// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// A Mapping is the bidirectional correspondence between the reference
// and query positions of an alignment, derived from a Cigar by a single
// pass over its operations. Both directions are monotonically
// non-decreasing partial functions: a reference position produced by a
// deletion has no query image, and a query position produced by an
// insertion or clip has no reference image.
//
// A Mapping is immutable once built and safe for concurrent use.
type Mapping struct {
	refToQuery  []int // query image per reference position, -1 in gaps
	queryToRef  []int
	refToStep   []int // step index consuming each reference position
	queryToStep []int

	refOff, queryOff int
}

// Mapping derives the coordinate mapping of c. Positions are zero-based
// and local to the alignment; see Translate for positioned views.
func (c Cigar) Mapping() *Mapping {
	ref, query := c.Lengths()
	m := &Mapping{
		refToQuery:  make([]int, ref),
		queryToRef:  make([]int, query),
		refToStep:   make([]int, ref),
		queryToStep: make([]int, query),
	}
	i := 0
	for it := c.Steps(); it.Next(); i++ {
		s := it.Step()
		if s.Ref >= 0 {
			m.refToQuery[s.Ref] = s.Query
			m.refToStep[s.Ref] = i
		}
		if s.Query >= 0 {
			m.queryToRef[s.Query] = s.Ref
			m.queryToStep[s.Query] = i
		}
	}
	return m
}

// Translate returns a view of m with the reference domain shifted by
// refDelta and the query domain shifted by queryDelta. The view shares
// the underlying data with m.
func (m *Mapping) Translate(refDelta, queryDelta int) *Mapping {
	n := *m
	n.refOff += refDelta
	n.queryOff += queryDelta
	return &n
}

// RefLen returns the number of reference positions in the mapping's domain.
func (m *Mapping) RefLen() int { return len(m.refToQuery) }

// QueryLen returns the number of query positions in the mapping's domain.
func (m *Mapping) QueryLen() int { return len(m.queryToRef) }

// RefStart returns the first reference position of the mapping's domain.
func (m *Mapping) RefStart() int { return m.refOff }

// QueryStart returns the first query position of the mapping's domain.
func (m *Mapping) QueryStart() int { return m.queryOff }

// RefToQuery returns the query position exactly aligned to reference
// position r. It returns false when r falls in a deletion gap or
// outside the mapping's domain.
func (m *Mapping) RefToQuery(r int) (int, bool) {
	i := r - m.refOff
	if i < 0 || i >= len(m.refToQuery) || m.refToQuery[i] < 0 {
		return 0, false
	}
	return m.refToQuery[i] + m.queryOff, true
}

// QueryToRef returns the reference position exactly aligned to query
// position q. It returns false when q falls in an insertion gap or
// outside the mapping's domain.
func (m *Mapping) QueryToRef(q int) (int, bool) {
	i := q - m.queryOff
	if i < 0 || i >= len(m.queryToRef) || m.queryToRef[i] < 0 {
		return 0, false
	}
	return m.queryToRef[i] + m.refOff, true
}

// RefStep returns the index of the single-position operation that
// consumes reference position r.
func (m *Mapping) RefStep(r int) (int, bool) {
	i := r - m.refOff
	if i < 0 || i >= len(m.refToStep) {
		return 0, false
	}
	return m.refToStep[i], true
}

// QueryStep returns the index of the single-position operation that
// consumes query position q.
func (m *Mapping) QueryStep(q int) (int, bool) {
	i := q - m.queryOff
	if i < 0 || i >= len(m.queryToStep) {
		return 0, false
	}
	return m.queryToStep[i], true
}

// RefLeftMax returns the greatest query position aligned to any
// reference position at or left of r. By monotonicity this is the query
// image of the rightmost mapped reference position not exceeding r.
func (m *Mapping) RefLeftMax(r int) (int, bool) {
	i := r - m.refOff
	if i >= len(m.refToQuery) {
		i = len(m.refToQuery) - 1
	}
	for ; i >= 0; i-- {
		if m.refToQuery[i] >= 0 {
			return m.refToQuery[i] + m.queryOff, true
		}
	}
	return 0, false
}

// RefRightMin returns the least query position aligned to any reference
// position at or right of r.
func (m *Mapping) RefRightMin(r int) (int, bool) {
	i := r - m.refOff
	if i < 0 {
		i = 0
	}
	for ; i < len(m.refToQuery); i++ {
		if m.refToQuery[i] >= 0 {
			return m.refToQuery[i] + m.queryOff, true
		}
	}
	return 0, false
}

// QueryLeftMax returns the greatest reference position aligned to any
// query position at or left of q.
func (m *Mapping) QueryLeftMax(q int) (int, bool) {
	i := q - m.queryOff
	if i >= len(m.queryToRef) {
		i = len(m.queryToRef) - 1
	}
	for ; i >= 0; i-- {
		if m.queryToRef[i] >= 0 {
			return m.queryToRef[i] + m.refOff, true
		}
	}
	return 0, false
}

// QueryRightMin returns the least reference position aligned to any
// query position at or right of q.
func (m *Mapping) QueryRightMin(q int) (int, bool) {
	i := q - m.queryOff
	if i < 0 {
		i = 0
	}
	for ; i < len(m.queryToRef); i++ {
		if m.queryToRef[i] >= 0 {
			return m.queryToRef[i] + m.refOff, true
		}
	}
	return 0, false
}
