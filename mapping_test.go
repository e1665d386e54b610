// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"github.com/kortschak/utter"
	"gopkg.in/check.v1"
)

// noQuery marks a reference position with no query image.
const noQuery = -1

var mappingTests = []struct {
	cigar string

	// refToQuery is the exact query image per reference position.
	refToQuery map[int]int

	// leftMax is the greatest query position aligned at or left of each
	// reference position, noQuery where there is none.
	leftMax map[int]int
}{
	{
		cigar:      "3M",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 2},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 2},
	},
	{
		cigar:      "1M1D1M",
		refToQuery: map[int]int{0: 0, 2: 1},
		leftMax:    map[int]int{0: 0, 1: 0, 2: 1},
	},
	{
		cigar:      "1M1I1M",
		refToQuery: map[int]int{0: 0, 1: 2},
		leftMax:    map[int]int{0: 0, 1: 2},
	},
	{
		cigar:      "2M2D2M",
		refToQuery: map[int]int{0: 0, 1: 1, 4: 2, 5: 3},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 5: 3},
	},
	{
		cigar:      "2M2I2M",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 4, 3: 5},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 4, 3: 5},
	},
	{
		cigar:      "3M1D3M",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 2, 4: 3, 5: 4, 6: 5},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 5: 4, 6: 5},
	},
	{
		cigar:      "3M1I3M",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 2, 3: 4, 4: 5, 5: 6},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 2, 3: 4, 4: 5, 5: 6},
	},
	{
		cigar:      "7M1I3M",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6, 7: 8, 8: 9, 9: 10},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6, 7: 8, 8: 9, 9: 10},
	},
	{
		cigar:      "5M2D4M",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 7: 5, 8: 6, 9: 7, 10: 8},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 4, 6: 4, 7: 5, 8: 6, 9: 7, 10: 8},
	},
	{
		cigar:      "5M3I4M",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 8, 6: 9, 7: 10, 8: 11},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 8, 6: 9, 7: 10, 8: 11},
	},
	{
		cigar:      "1M1D",
		refToQuery: map[int]int{0: 0},
		leftMax:    map[int]int{0: 0, 1: 0},
	},
	{
		cigar:      "1M1I",
		refToQuery: map[int]int{0: 0},
		leftMax:    map[int]int{0: 0},
	},
	{
		cigar:      "1I1M",
		refToQuery: map[int]int{0: 1},
		leftMax:    map[int]int{0: 1},
	},
	{
		cigar:      "1D1M",
		refToQuery: map[int]int{1: 0},
		leftMax:    map[int]int{0: noQuery, 1: 0},
	},
	{
		cigar:      "2M2D2M2I2M",
		refToQuery: map[int]int{0: 0, 1: 1, 4: 2, 5: 3, 6: 6, 7: 7},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 5: 3, 6: 6, 7: 7},
	},
	{
		cigar:      "2M2I2M2D2M",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 4, 3: 5, 6: 6, 7: 7},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 4, 3: 5, 4: 5, 5: 5, 6: 6, 7: 7},
	},
	{
		cigar:      "2=1X2N1N2=1H2S",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 2, 6: 3, 7: 4},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 2, 5: 2, 6: 3, 7: 4},
	},
	{
		cigar:      "3=1X2N1N2=1H2S",
		refToQuery: map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 7: 4, 8: 5},
		leftMax:    map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 3, 5: 3, 6: 3, 7: 4, 8: 5},
	},
	{
		cigar:      "*",
		refToQuery: map[int]int{},
		leftMax:    map[int]int{},
	},
	{
		cigar:      "3I3D",
		refToQuery: map[int]int{},
		leftMax:    map[int]int{0: noQuery, 1: noQuery, 2: noQuery},
	},
	{
		cigar:      "3D3I",
		refToQuery: map[int]int{},
		leftMax:    map[int]int{0: noQuery, 1: noQuery, 2: noQuery},
	},
	{
		cigar:      "12I",
		refToQuery: map[int]int{},
		leftMax:    map[int]int{},
	},
	{
		cigar: "12D",
		refToQuery: map[int]int{},
		leftMax: map[int]int{
			0: noQuery, 1: noQuery, 2: noQuery, 3: noQuery,
			4: noQuery, 5: noQuery, 6: noQuery, 7: noQuery,
			8: noQuery, 9: noQuery, 10: noQuery, 11: noQuery,
		},
	},
}

func (s *S) TestMappingRefToQuery(c *check.C) {
	for _, test := range mappingTests {
		cg, err := Parse(test.cigar)
		c.Assert(err, check.Equals, nil)
		m := cg.Mapping()

		got := make(map[int]int)
		for r := 0; r < m.RefLen(); r++ {
			if q, ok := m.RefToQuery(r); ok {
				got[r] = q
			}
		}
		c.Check(got, check.DeepEquals, test.refToQuery,
			check.Commentf("mapping of %q:\n%s", test.cigar, utter.Sdump(m)))
	}
}

func (s *S) TestMappingBijection(c *check.C) {
	for _, test := range mappingTests {
		cg, err := Parse(test.cigar)
		c.Assert(err, check.Equals, nil)
		m := cg.Mapping()

		for r := 0; r < m.RefLen(); r++ {
			q, ok := m.RefToQuery(r)
			if !ok {
				continue
			}
			back, ok := m.QueryToRef(q)
			c.Check(ok, check.Equals, true)
			c.Check(back, check.Equals, r, check.Commentf("round trip through %q at ref %d", test.cigar, r))
		}
		for q := 0; q < m.QueryLen(); q++ {
			r, ok := m.QueryToRef(q)
			if !ok {
				continue
			}
			back, ok := m.RefToQuery(r)
			c.Check(ok, check.Equals, true)
			c.Check(back, check.Equals, q, check.Commentf("round trip through %q at query %d", test.cigar, q))
		}
	}
}

func (s *S) TestMappingLeftMax(c *check.C) {
	for _, test := range mappingTests {
		cg, err := Parse(test.cigar)
		c.Assert(err, check.Equals, nil)
		m := cg.Mapping()

		got := make(map[int]int)
		for r := 0; r < m.RefLen(); r++ {
			if q, ok := m.RefLeftMax(r); ok {
				got[r] = q
			} else {
				got[r] = noQuery
			}
		}
		c.Check(got, check.DeepEquals, test.leftMax,
			check.Commentf("left max mapping of %q", test.cigar))
	}
}

func (s *S) TestMappingMonotonic(c *check.C) {
	for _, test := range mappingTests {
		cg, err := Parse(test.cigar)
		c.Assert(err, check.Equals, nil)
		m := cg.Mapping()

		prev := -1
		for r := 0; r < m.RefLen(); r++ {
			q, ok := m.RefToQuery(r)
			if !ok {
				continue
			}
			c.Check(q > prev, check.Equals, true,
				check.Commentf("mapping of %q not increasing at ref %d", test.cigar, r))
			prev = q
		}
	}
}

func (s *S) TestMappingTranslate(c *check.C) {
	for _, test := range mappingTests {
		cg, err := Parse(test.cigar)
		c.Assert(err, check.Equals, nil)
		m := cg.Mapping().Translate(5, 7)

		c.Check(m.RefStart(), check.Equals, 5)
		c.Check(m.QueryStart(), check.Equals, 7)

		_, ok := m.RefToQuery(0)
		c.Check(ok, check.Equals, false)
		_, ok = m.QueryToRef(0)
		c.Check(ok, check.Equals, false)

		got := make(map[int]int)
		for r := m.RefStart(); r < m.RefStart()+m.RefLen(); r++ {
			if q, ok := m.RefToQuery(r); ok {
				got[r] = q
			}
		}
		want := make(map[int]int)
		for r, q := range test.refToQuery {
			want[r+5] = q + 7
		}
		c.Check(got, check.DeepEquals, want, check.Commentf("translated mapping of %q", test.cigar))
	}
}

func (s *S) TestMappingRightMin(c *check.C) {
	cg, err := Parse("2M2D2M")
	c.Assert(err, check.Equals, nil)
	m := cg.Mapping()

	for _, test := range []struct {
		ref  int
		want int
		ok   bool
	}{
		{ref: -4, want: 0, ok: true},
		{ref: 0, want: 0, ok: true},
		{ref: 1, want: 1, ok: true},
		{ref: 2, want: 2, ok: true},
		{ref: 3, want: 2, ok: true},
		{ref: 4, want: 2, ok: true},
		{ref: 5, want: 3, ok: true},
		{ref: 6, ok: false},
	} {
		got, ok := m.RefRightMin(test.ref)
		c.Check(ok, check.Equals, test.ok, check.Commentf("right min at %d", test.ref))
		if ok {
			c.Check(got, check.Equals, test.want, check.Commentf("right min at %d", test.ref))
		}
	}

	for _, test := range []struct {
		query int
		want  int
		ok    bool
	}{
		{query: 0, want: 0, ok: true},
		{query: 1, want: 1, ok: true},
		{query: 2, want: 4, ok: true},
		{query: 3, want: 5, ok: true},
		{query: 4, ok: false},
	} {
		got, ok := m.QueryRightMin(test.query)
		c.Check(ok, check.Equals, test.ok, check.Commentf("query right min at %d", test.query))
		if ok {
			c.Check(got, check.Equals, test.want, check.Commentf("query right min at %d", test.query))
		}
	}

	got, ok := m.QueryLeftMax(10)
	c.Check(ok, check.Equals, true)
	c.Check(got, check.Equals, 5)
	_, ok = m.QueryLeftMax(-1)
	c.Check(ok, check.Equals, false)
}
