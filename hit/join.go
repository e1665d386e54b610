// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hit

import (
	"golang.org/x/exp/slices"
)

// ConnectAll merges fragmentary hits of the same query against the same
// reference into the fewest possible combined hits. Hits are considered
// in order of reference start; a hit extends an existing chain when it
// advances past the chain's query end without overlapping any chain
// member on the reference, and starts a new chain otherwise. Chain
// members are joined by bridging the intervening reference positions
// with deletions and the intervening query positions with insertions.
//
// Aligners frequently report the two sides of a long gap as separate
// hits; ConnectAll reassembles them.
func ConnectAll(hits []Hit) ([]Hit, error) {
	sorted := make([]Hit, len(hits))
	copy(sorted, hits)
	slices.SortStableFunc(sorted, func(a, b Hit) bool {
		return a.RefStart < b.RefStart
	})

	var chains [][]Hit
next:
	for _, h := range sorted {
		for i, chain := range chains {
			if h.QueryStart <= chain[len(chain)-1].QueryEnd {
				continue
			}
			colliding := false
			for _, member := range chain {
				if h.OverlapsInReference(member) {
					colliding = true
					break
				}
			}
			if !colliding {
				chains[i] = append(chain, h)
				continue next
			}
		}
		chains = append(chains, []Hit{h})
	}

	out := make([]Hit, 0, len(chains))
	for _, chain := range chains {
		joined := chain[0]
		for _, h := range chain[1:] {
			var err error
			joined, err = joined.Add(bridge(joined.RefEnd+1, h.RefStart-1, joined.QueryEnd+1, h.QueryStart-1))
			if err != nil {
				return nil, err
			}
			joined, err = joined.Add(h)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, joined)
	}
	return out, nil
}

// DropOverlapping discards hits that overlap a better hit on either
// axis. Hits are considered in descending quality (ties keep input
// order); a hit is kept when it overlaps no previously kept hit. The
// survivors are returned in input order.
func DropOverlapping(hits []Hit, quality func(Hit) float64) []Hit {
	order := make([]int, len(hits))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) bool {
		return quality(hits[a]) > quality(hits[b])
	})

	kept := make([]bool, len(hits))
	for _, i := range order {
		ok := true
		for j, k := range kept {
			if k && (hits[i].OverlapsInReference(hits[j]) || hits[i].OverlapsInQuery(hits[j])) {
				ok = false
				break
			}
		}
		kept[i] = ok
	}

	var out []Hit
	for i, k := range kept {
		if k {
			out = append(out, hits[i])
		}
	}
	return out
}

// TrimOverlap resolves a reference overlap between two hits
// deterministically: left keeps the overlapped region, and right is cut
// at the boundary after the overlap with its overlapped prefix
// discarded. A right hit lying entirely within left's reference span is
// trimmed to an empty hit positioned after its own span. Hits whose
// reference ranges are disjoint are returned unchanged.
func TrimOverlap(left, right Hit) (Hit, Hit, error) {
	if !left.OverlapsInReference(right) {
		return left, right, nil
	}
	boundary := left.RefEnd
	if right.RefEnd < boundary {
		boundary = right.RefEnd
	}
	_, trimmed, err := right.CutReference(Between(boundary))
	if err != nil {
		return Hit{}, Hit{}, err
	}
	return left, trimmed, nil
}
