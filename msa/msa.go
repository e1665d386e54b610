// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msa renders parsed alignments and raw sequences as gapped
// multiple-sequence-alignment strings, and recovers alignments from
// such strings. It consumes only the public step sequence of package
// cigar and the coordinate ranges of package hit.
package msa

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/biogo/cigar"
	"github.com/biogo/cigar/hit"
)

// Gap is the character used for a position absent from one sequence.
const Gap = '-'

// ErrShortSeq reports a supplied sequence shorter than the length the
// alignment implies for it.
var ErrShortSeq = errors.New("msa: sequence shorter than alignment")

// Render returns gapped renderings of ref and query of equal length,
// aligned according to c. Operations consuming neither axis are
// skipped. It fails with an error matching ErrShortSeq when either
// sequence is shorter than the length c implies for it.
func Render(c cigar.Cigar, ref, query string) (refMSA, queryMSA string, err error) {
	var rb, qb bytes.Buffer
	for it := c.Steps(); it.Next(); {
		s := it.Step()
		if s.Ref < 0 && s.Query < 0 {
			continue
		}
		switch {
		case s.Ref < 0:
			rb.WriteByte(Gap)
		case s.Ref >= len(ref):
			return "", "", fmt.Errorf("%w: reference has %d positions, alignment needs more", ErrShortSeq, len(ref))
		default:
			rb.WriteByte(ref[s.Ref])
		}
		switch {
		case s.Query < 0:
			qb.WriteByte(Gap)
		case s.Query >= len(query):
			return "", "", fmt.Errorf("%w: query has %d positions, alignment needs more", ErrShortSeq, len(query))
		default:
			qb.WriteByte(query[s.Query])
		}
	}
	return rb.String(), qb.String(), nil
}

// RenderHit is Render for a positioned hit: the hit's coordinate ranges
// index zero-based into the supplied full-length sequences.
func RenderHit(h hit.Hit, ref, query string) (refMSA, queryMSA string, err error) {
	if h.RefStart < 0 || h.RefEnd+1 > len(ref) {
		return "", "", fmt.Errorf("%w: reference has %d positions, hit spans [%d,%d]", ErrShortSeq, len(ref), h.RefStart, h.RefEnd)
	}
	if h.QueryStart < 0 || h.QueryEnd+1 > len(query) {
		return "", "", fmt.Errorf("%w: query has %d positions, hit spans [%d,%d]", ErrShortSeq, len(query), h.QueryStart, h.QueryEnd)
	}
	return Render(h.Cigar, ref[h.RefStart:h.RefEnd+1], query[h.QueryStart:h.QueryEnd+1])
}

// ToCigar recovers the alignment from a gapped rendering of a reference
// and a query sequence. The inputs must have equal length; positions
// gapped in both inputs are ignored, and aligned mismatching characters
// are treated as matches. Length disagreement is an error matching
// cigar.ErrParse.
func ToCigar(refMSA, queryMSA string) (cigar.Cigar, error) {
	if len(refMSA) != len(queryMSA) {
		return nil, fmt.Errorf("%w: gapped sequences differ in length, %d != %d", cigar.ErrParse, len(refMSA), len(queryMSA))
	}
	ops := make([]cigar.CigarOp, 0, len(refMSA))
	for i := 0; i < len(refMSA); i++ {
		var t cigar.CigarOpType
		switch {
		case refMSA[i] == Gap && queryMSA[i] == Gap:
			continue
		case refMSA[i] == Gap:
			t = cigar.CigarInsertion
		case queryMSA[i] == Gap:
			t = cigar.CigarDeletion
		default:
			t = cigar.CigarMatch
		}
		ops = append(ops, cigar.NewCigarOp(t, 1))
	}
	return cigar.New(ops)
}
