// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hit provides alignments positioned within larger reference
// and query coordinate spaces, and the cut, trim, merge and overlap
// algebra used to manipulate them.
//
// A Hit pairs a cigar.Cigar with the inclusive reference and query
// ranges it occupies. All operations return new values; Hits are never
// mutated and may be freely shared between goroutines.
package hit

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/biogo/cigar"
)

// The error kinds reported by this package. Each failure returned by a
// Hit operation matches exactly one of these under errors.Is.
var (
	// ErrDimension reports a hit whose coordinate ranges disagree with
	// the reference or query length of its alignment.
	ErrDimension = errors.New("hit: cigar length does not match hit range")

	// ErrCutOutOfRange reports a cut at a point outside the hit's span,
	// or a cut point that does not lie between two integer coordinates.
	ErrCutOutOfRange = errors.New("hit: cut point out of range")

	// ErrNotAdjacent reports an attempt to concatenate hits that do not
	// touch on both axes.
	ErrNotAdjacent = errors.New("hit: hits are not adjacent")

	// ErrNonColinear reports an attempt to connect hits that overlap,
	// cross, or leave a gap on both axes.
	ErrNonColinear = errors.New("hit: hits are not colinear")
)

// A Hit is an alignment positioned at explicit inclusive reference and
// query coordinate ranges. The zero Hit is an empty alignment spanning
// no positions. Hits must be constructed with New or Parse, or obtained
// from another Hit operation; the coordinate ranges of a valid Hit
// always agree with the lengths of its alignment.
type Hit struct {
	Cigar cigar.Cigar

	RefStart, RefEnd     int // inclusive
	QueryStart, QueryEnd int // inclusive
}

// New returns a Hit for c spanning the given inclusive ranges. It fails
// with an error matching ErrDimension unless each range covers exactly
// the number of positions c consumes on that axis.
func New(c cigar.Cigar, refStart, refEnd, queryStart, queryEnd int) (Hit, error) {
	ref, query := c.Lengths()
	if refEnd-refStart+1 != ref {
		return Hit{}, fmt.Errorf("%w: cigar covers %d reference positions but range [%d,%d] covers %d",
			ErrDimension, ref, refStart, refEnd, refEnd-refStart+1)
	}
	if queryEnd-queryStart+1 != query {
		return Hit{}, fmt.Errorf("%w: cigar covers %d query positions but range [%d,%d] covers %d",
			ErrDimension, query, queryStart, queryEnd, queryEnd-queryStart+1)
	}
	return Hit{Cigar: c, RefStart: refStart, RefEnd: refEnd, QueryStart: queryStart, QueryEnd: queryEnd}, nil
}

// RefLen returns the number of reference positions the hit spans.
func (h Hit) RefLen() int { return h.RefEnd - h.RefStart + 1 }

// QueryLen returns the number of query positions the hit spans.
func (h Hit) QueryLen() int { return h.QueryEnd - h.QueryStart + 1 }

// String renders the hit as <cigar>@[queryStart,queryEnd]->[refStart,refEnd].
func (h Hit) String() string {
	return fmt.Sprintf("%v@[%d,%d]->[%d,%d]",
		h.Cigar, h.QueryStart, h.QueryEnd, h.RefStart, h.RefEnd)
}

var hitExpr = regexp.MustCompile(`^(.+)@\[(-?\d+),(-?\d+)\]->\[(-?\d+),(-?\d+)\]$`)

// Parse returns the Hit described by s, the inverse of Hit.String.
// Failures to parse match cigar.ErrParse; a well-formed string whose
// ranges disagree with its alignment fails as New does.
func Parse(s string) (Hit, error) {
	m := hitExpr.FindStringSubmatch(s)
	if m == nil {
		return Hit{}, fmt.Errorf("%w: invalid hit %q", cigar.ErrParse, s)
	}
	c, err := cigar.Parse(m[1])
	if err != nil {
		return Hit{}, err
	}
	var v [4]int
	for i, f := range m[2:] {
		v[i], err = strconv.Atoi(f)
		if err != nil {
			return Hit{}, fmt.Errorf("%w: invalid coordinate %q in %q", cigar.ErrParse, f, s)
		}
	}
	qs, qe, rs, re := v[0], v[1], v[2], v[3]
	if qs > qe+1 {
		return Hit{}, fmt.Errorf("%w: query start %d after end %d in %q", cigar.ErrParse, qs, qe, s)
	}
	if rs > re+1 {
		return Hit{}, fmt.Errorf("%w: reference start %d after end %d in %q", cigar.ErrParse, rs, re, s)
	}
	return New(c, rs, re, qs, qe)
}

// Equal returns whether h and o are the same positioned alignment.
func (h Hit) Equal(o Hit) bool {
	return h.RefStart == o.RefStart && h.RefEnd == o.RefEnd &&
		h.QueryStart == o.QueryStart && h.QueryEnd == o.QueryEnd &&
		h.Cigar.Equal(o.Cigar)
}

// Translate returns h shifted by refDelta reference positions and
// queryDelta query positions.
func (h Hit) Translate(refDelta, queryDelta int) Hit {
	return Hit{
		Cigar:      h.Cigar,
		RefStart:   h.RefStart + refDelta,
		RefEnd:     h.RefEnd + refDelta,
		QueryStart: h.QueryStart + queryDelta,
		QueryEnd:   h.QueryEnd + queryDelta,
	}
}

// Mapping returns the coordinate mapping of the hit's alignment,
// translated into the hit's coordinate spaces.
func (h Hit) Mapping() *cigar.Mapping {
	return h.Cigar.Mapping().Translate(h.RefStart, h.QueryStart)
}

// OverlapsInReference returns whether the reference ranges of h and o
// share any position.
func (h Hit) OverlapsInReference(o Hit) bool {
	return h.RefStart <= o.RefEnd && h.RefEnd >= o.RefStart
}

// OverlapsInQuery returns whether the query ranges of h and o share any
// position.
func (h Hit) OverlapsInQuery(o Hit) bool {
	return h.QueryStart <= o.QueryEnd && h.QueryEnd >= o.QueryStart
}

// TouchesInReference returns whether o starts on the reference
// immediately after h ends.
func (h Hit) TouchesInReference(o Hit) bool { return h.RefEnd+1 == o.RefStart }

// TouchesInQuery returns whether o starts on the query immediately
// after h ends.
func (h Hit) TouchesInQuery(o Hit) bool { return h.QueryEnd+1 == o.QueryStart }

// Add concatenates two hits that touch on both axes into one, failing
// with an error matching ErrNotAdjacent otherwise. The result's
// alignment is the concatenation of the two alignments and its ranges
// span both hits.
func (h Hit) Add(o Hit) (Hit, error) {
	if !h.TouchesInReference(o) || !h.TouchesInQuery(o) {
		return Hit{}, fmt.Errorf("%w: %v does not touch %v on both axes", ErrNotAdjacent, h, o)
	}
	return Hit{
		Cigar:      h.Cigar.Concat(o.Cigar),
		RefStart:   h.RefStart,
		RefEnd:     o.RefEnd,
		QueryStart: h.QueryStart,
		QueryEnd:   o.QueryEnd,
	}, nil
}

// Connect joins two hits that are adjacent on one axis and leave a gap
// on the other by inserting a synthetic deletion or insertion run of
// exactly the gap length. It fails with an error matching ErrNonColinear
// when the hits overlap or cross on either axis, or when both axes have
// gaps simultaneously.
func (h Hit) Connect(o Hit) (Hit, error) {
	refGap := o.RefStart - h.RefEnd - 1
	queryGap := o.QueryStart - h.QueryEnd - 1
	switch {
	case refGap < 0 || queryGap < 0:
		return Hit{}, fmt.Errorf("%w: %v and %v overlap or cross", ErrNonColinear, h, o)
	case refGap > 0 && queryGap > 0:
		return Hit{}, fmt.Errorf("%w: %v and %v leave gaps on both axes", ErrNonColinear, h, o)
	case refGap == 0 && queryGap == 0:
		return h.Add(o)
	}
	joined, err := h.Add(bridge(h.RefEnd+1, o.RefStart-1, h.QueryEnd+1, o.QueryStart-1))
	if err != nil {
		return Hit{}, err
	}
	return joined.Add(o)
}

// bridge returns the default alignment spanning the given inclusive
// ranges: every reference position deleted, every query position
// inserted. Either range may be empty.
func bridge(refStart, refEnd, queryStart, queryEnd int) Hit {
	c, _ := cigar.New([]cigar.CigarOp{
		cigar.NewCigarOp(cigar.CigarDeletion, refEnd-refStart+1),
		cigar.NewCigarOp(cigar.CigarInsertion, queryEnd-queryStart+1),
	})
	return Hit{
		Cigar:      c,
		RefStart:   refStart,
		RefEnd:     refEnd,
		QueryStart: queryStart,
		QueryEnd:   queryEnd,
	}
}

// LstripQuery returns a copy of h with unaligned query positions before
// the first aligned pair removed. The hit stays anchored at its end
// coordinates. Stripping an already stripped hit is a no-op.
func (h Hit) LstripQuery() Hit {
	c := h.Cigar.LstripQuery()
	ref, query := c.Lengths()
	return Hit{
		Cigar:      c,
		RefStart:   h.RefEnd - ref + 1,
		RefEnd:     h.RefEnd,
		QueryStart: h.QueryEnd - query + 1,
		QueryEnd:   h.QueryEnd,
	}
}

// RstripQuery returns a copy of h with unaligned query positions after
// the last aligned pair removed. The hit stays anchored at its start
// coordinates.
func (h Hit) RstripQuery() Hit {
	c := h.Cigar.RstripQuery()
	ref, query := c.Lengths()
	return Hit{
		Cigar:      c,
		RefStart:   h.RefStart,
		RefEnd:     h.RefStart + ref - 1,
		QueryStart: h.QueryStart,
		QueryEnd:   h.QueryStart + query - 1,
	}
}

// LstripReference returns a copy of h with unaligned reference
// positions before the first aligned pair removed. The hit stays
// anchored at its end coordinates.
func (h Hit) LstripReference() Hit {
	c := h.Cigar.LstripReference()
	ref, query := c.Lengths()
	return Hit{
		Cigar:      c,
		RefStart:   h.RefEnd - ref + 1,
		RefEnd:     h.RefEnd,
		QueryStart: h.QueryEnd - query + 1,
		QueryEnd:   h.QueryEnd,
	}
}

// RstripReference returns a copy of h with unaligned reference
// positions after the last aligned pair removed. The hit stays anchored
// at its start coordinates.
func (h Hit) RstripReference() Hit {
	c := h.Cigar.RstripReference()
	ref, query := c.Lengths()
	return Hit{
		Cigar:      c,
		RefStart:   h.RefStart,
		RefEnd:     h.RefStart + ref - 1,
		QueryStart: h.QueryStart,
		QueryEnd:   h.QueryStart + query - 1,
	}
}

// Deletions returns the maximal reference-only blocks of h (deletions
// and skips) as positioned sub-hits. Each has an empty query range
// placed immediately after the last query position consumed before it.
func (h Hit) Deletions() []Hit { return h.gaps(true) }

// Insertions returns the maximal query-only blocks of h (insertions and
// soft clips) as positioned sub-hits. Each has an empty reference range
// placed immediately after the last reference position consumed before
// it.
func (h Hit) Insertions() []Hit { return h.gaps(false) }

func (h Hit) gaps(deletions bool) []Hit {
	var (
		out                []Hit
		start              = -1
		startRef, startQry int
		nextRef            = h.RefStart
		nextQry            = h.QueryStart
	)
	flush := func(end int) {
		c := h.Cigar.Slice(start, end)
		ref, query := c.Lengths()
		out = append(out, Hit{
			Cigar:      c,
			RefStart:   startRef,
			RefEnd:     startRef + ref - 1,
			QueryStart: startQry,
			QueryEnd:   startQry + query - 1,
		})
		start = -1
	}
	i := 0
	for it := h.Cigar.Steps(); it.Next(); i++ {
		s := it.Step()
		var inGap bool
		if deletions {
			inGap = s.Ref >= 0 && s.Query < 0
		} else {
			inGap = s.Query >= 0 && s.Ref < 0
		}
		switch {
		case inGap && start < 0:
			start = i
			if deletions {
				startRef, startQry = h.RefStart+s.Ref, nextQry
			} else {
				startRef, startQry = nextRef, h.QueryStart+s.Query
			}
		case !inGap && start >= 0:
			flush(i)
		}
		if s.Ref >= 0 {
			nextRef = h.RefStart + s.Ref + 1
		}
		if s.Query >= 0 {
			nextQry = h.QueryStart + s.Query + 1
		}
	}
	if start >= 0 {
		flush(i)
	}
	return out
}
