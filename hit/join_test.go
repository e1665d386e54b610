// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hit

import (
	"gopkg.in/check.v1"
)

func (s *S) TestConnectAll(c *check.C) {
	for _, test := range []struct {
		hits []string
		want []string
	}{
		// Non-overlapping hits are connected with deletions and insertions.
		{
			hits: []string{"4M@1->1", "4M@8->10"},
			want: []string{"4M5D3I4M@1->1"},
		},
		// Overlapping hits are passed through, not discarded.
		{
			hits: []string{"4M@1->1", "5M@3->3"},
			want: []string{"4M@1->1", "5M@3->3"},
		},
		// Touching hits are simply concatenated.
		{
			hits: []string{"4M@1->1", "4M@5->5"},
			want: []string{"8M@1->1"},
		},
		// Hits touching on one axis only still combine.
		{
			hits: []string{"3M@1->1", "6M@6->4"},
			want: []string{"3M2I6M@1->1"},
		},
		// Hits contained in earlier hits are not discarded.
		{
			hits: []string{"8M@1->1", "3M@3->3"},
			want: []string{"8M@1->1", "3M@3->3"},
		},
		// Out of order hits are connected when they do not overlap.
		{
			hits: []string{"3M@6->10", "3M@1->1"},
			want: []string{"3M6D2I3M@1->1"},
		},
		// A single base of overlap is enough to keep hits separate.
		{
			hits: []string{"3M@1->1", "3M@3->3"},
			want: []string{"3M@1->1", "3M@3->3"},
		},
		// Overlapping in reference space only.
		{
			hits: []string{"5M@1->1", "1M@10->3"},
			want: []string{"5M@1->1", "1M@10->3"},
		},
		// More than two hits chain together.
		{
			hits: []string{"3M@1->1", "3M@7->7", "3M@16->12"},
			want: []string{"3M3D3I3M2D6I3M@1->1"},
		},
		// Hard clips ride along unchanged.
		{
			hits: []string{"2H5M1H@3->1", "2H5M1H@13->11"},
			want: []string{"2H5M1H5D5I2H5M1H@3->1"},
		},
		// An empty input is fine.
		{
			hits: nil,
			want: nil,
		},
		// Before by reference but after by query cannot chain.
		{
			hits: []string{"4M@8->1", "4M@1->10"},
			want: []string{"4M@8->1", "4M@1->10"},
		},
	} {
		hits := make([]Hit, len(test.hits))
		for i, in := range test.hits {
			hits[i] = mustHit(c, in)
		}
		got, err := ConnectAll(hits)
		c.Assert(err, check.Equals, nil, check.Commentf("connecting %v", test.hits))
		c.Assert(got, check.HasLen, len(test.want), check.Commentf("connecting %v got %v", test.hits, got))
		for i, want := range test.want {
			c.Check(got[i].Equal(mustHit(c, want)), check.Equals, true,
				check.Commentf("connecting %v got %v at %d", test.hits, got[i], i))
		}
	}
}

func (s *S) TestDropOverlapping(c *check.C) {
	refLen := func(h Hit) float64 { return float64(h.RefLen()) }
	constant := func(h Hit) float64 { return 1 }
	refStart := func(h Hit) float64 { return float64(h.RefStart) }

	for _, test := range []struct {
		hits    []string
		quality func(Hit) float64
		want    []string
	}{
		// Non-overlapping hits all survive.
		{
			hits:    []string{"5M@0->0", "5M@10->10"},
			quality: refLen,
			want:    []string{"5M@0->0", "5M@10->10"},
		},
		// The higher quality hit of an overlapping pair wins.
		{
			hits:    []string{"3M@0->0", "5M@2->2"},
			quality: refLen,
			want:    []string{"5M@2->2"},
		},
		// Equal quality keeps the earlier input.
		{
			hits:    []string{"5M@0->0", "5M@2->2"},
			quality: constant,
			want:    []string{"5M@0->0"},
		},
		// Custom quality orderings are respected.
		{
			hits:    []string{"5M@0->0", "5M@2->2"},
			quality: refStart,
			want:    []string{"5M@2->2"},
		},
		{
			hits:    nil,
			quality: refLen,
			want:    nil,
		},
	} {
		hits := make([]Hit, len(test.hits))
		for i, in := range test.hits {
			hits[i] = mustHit(c, in)
		}
		got := DropOverlapping(hits, test.quality)
		c.Assert(got, check.HasLen, len(test.want), check.Commentf("dropping from %v got %v", test.hits, got))
		for i, want := range test.want {
			c.Check(got[i].Equal(mustHit(c, want)), check.Equals, true,
				check.Commentf("dropping from %v got %v at %d", test.hits, got[i], i))
		}
	}
}

func (s *S) TestTrimOverlap(c *check.C) {
	for _, test := range []struct {
		left, right string

		wantLeft, wantRight string
	}{
		// Disjoint hits are unchanged.
		{
			left: "5M@0->0", right: "5M@10->10",
			wantLeft: "5M@0->0", wantRight: "5M@10->10",
		},
		// The right hit loses the overlapped prefix.
		{
			left: "8M@0->0", right: "8M@4->4",
			wantLeft: "8M@0->0", wantRight: "4M@8->8",
		},
		// A right hit inside the left span is trimmed to nothing.
		{
			left: "10M@0->0", right: "4M@3->3",
			wantLeft: "10M@0->0", wantRight: "@7->7",
		},
	} {
		left, right, err := TrimOverlap(mustHit(c, test.left), mustHit(c, test.right))
		c.Assert(err, check.Equals, nil, check.Commentf("trimming %s against %s", test.left, test.right))
		c.Check(left.Equal(mustHit(c, test.wantLeft)), check.Equals, true,
			check.Commentf("trimming %s against %s got left %v", test.left, test.right, left))
		c.Check(right.Equal(mustHit(c, test.wantRight)), check.Equals, true,
			check.Commentf("trimming %s against %s got right %v", test.left, test.right, right))
	}
}
