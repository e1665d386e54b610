// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cigar provides an exact, invertible model of CIGAR alignments:
// run-length encoded sequences of alignment operations relating a query
// sequence to a reference sequence, together with the coordinate mapping
// the operations induce between the two.
//
// CIGAR strings are defined in the SAM specification.
//
// http://samtools.github.io/hts-specs/SAMv1.pdf
package cigar

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrParse is the kind of all failures to interpret text or structured
// input as a CIGAR. Errors returned by Parse, New and Coerce match it
// under errors.Is.
var ErrParse = errors.New("cigar: invalid cigar")

// Cigar is an alignment between a reference and a query sequence,
// held as a normalized sequence of CIGAR operations: no operation has
// zero length and no two adjacent operations share a type. All Cigar
// transformations return new values; a Cigar is never mutated and so
// may be freely shared between goroutines.
//
// The nil Cigar is the empty alignment.
type Cigar []CigarOp

// String returns the CIGAR string for c. It is the inverse of Parse for
// normalized non-empty alignments. The empty alignment renders as "*".
func (c Cigar) String() string {
	if len(c) == 0 {
		return "*"
	}
	var b bytes.Buffer
	for _, co := range c {
		fmt.Fprint(&b, co)
	}
	return b.String()
}

// Lengths returns the number of reference and query positions spanned
// by the Cigar.
func (c Cigar) Lengths() (ref, query int) {
	var con Consume
	for _, co := range c {
		con = co.Type().Consumes()
		ref += co.Len() * con.Reference
		query += co.Len() * con.Query
	}
	return ref, query
}

// NumSteps returns the total number of single-position operations in c,
// that is the sum of all operation lengths.
func (c Cigar) NumSteps() int {
	var n int
	for _, co := range c {
		n += co.Len()
	}
	return n
}

// Slice returns the sub-alignment covering the single-position
// operations with indices in [start, end). Indices outside the
// alignment are clipped to it. The result is normalized.
func (c Cigar) Slice(start, end int) Cigar {
	var (
		n   Cigar
		off int
	)
	for _, co := range c {
		lo, hi := start-off, end-off
		if lo < 0 {
			lo = 0
		}
		if hi > co.Len() {
			hi = co.Len()
		}
		if lo < hi {
			n = append(n, NewCigarOp(co.Type(), hi-lo))
		}
		off += co.Len()
	}
	return normalize(n)
}

// Concat returns the concatenation of c and d, merging the boundary
// operations when they share a type. Concat is associative and never
// fails for well-formed inputs.
func (c Cigar) Concat(d Cigar) Cigar {
	n := make(Cigar, 0, len(c)+len(d))
	n = append(append(n, c...), d...)
	return normalize(n)
}

// Relax returns a copy of c with sequence match and mismatch operations
// replaced by plain alignment matches, re-normalized.
func (c Cigar) Relax() Cigar {
	n := make(Cigar, 0, len(c))
	for _, co := range c {
		t := co.Type()
		if t == CigarEqual || t == CigarMismatch {
			t = CigarMatch
		}
		n = append(n, NewCigarOp(t, co.Len()))
	}
	return normalize(n)
}

// Equal returns whether c and d describe the same alignment.
func (c Cigar) Equal(d Cigar) bool {
	if len(c) != len(d) {
		return false
	}
	for i, co := range c {
		if co != d[i] {
			return false
		}
	}
	return true
}

// normalize merges adjacent equal-type operations and drops zero-length
// operations. It does not modify c, and returns nil for an empty result.
func normalize(c Cigar) Cigar {
	var n Cigar
	for _, co := range c {
		if co.Len() == 0 {
			continue
		}
		if len(n) != 0 && n[len(n)-1].Type() == co.Type() {
			n[len(n)-1] = NewCigarOp(co.Type(), n[len(n)-1].Len()+co.Len())
			continue
		}
		n = append(n, co)
	}
	return n
}

// New returns a normalized Cigar built from the given operations.
// Zero-length operations are dropped; an operation of unknown type or
// out-of-range length is an error matching ErrParse.
func New(ops []CigarOp) (Cigar, error) {
	for _, co := range ops {
		if co.Type() >= lastCigar {
			return nil, fmt.Errorf("%w: unknown operation type %d", ErrParse, co.Type())
		}
		if co.Len() >= 1<<28 {
			return nil, fmt.Errorf("%w: operation length %d out of range", ErrParse, co.Len())
		}
	}
	return normalize(Cigar(ops)), nil
}

// Coerce converts v to a normalized Cigar. It accepts a Cigar, a CIGAR
// string as string or []byte, a []CigarOp run list, or a []CigarOpType
// sequence of unit-length operation tokens. Any other value, and any
// malformed input, is an error matching ErrParse.
func Coerce(v any) (Cigar, error) {
	switch v := v.(type) {
	case Cigar:
		return v, nil
	case []CigarOp:
		return New(v)
	case string:
		return Parse(v)
	case []byte:
		return Parse(string(v))
	case []CigarOpType:
		ops := make([]CigarOp, len(v))
		for i, t := range v {
			ops[i] = NewCigarOp(t, 1)
		}
		return New(ops)
	}
	return nil, fmt.Errorf("%w: cannot coerce %T to a cigar", ErrParse, v)
}

// CigarOp is a single CIGAR operation including the operation type and
// the length of the operation.
type CigarOp uint32

// NewCigarOp returns a CIGAR operation of the specified type with length n.
func NewCigarOp(t CigarOpType, n int) CigarOp {
	return CigarOp(t) | (CigarOp(n) << 4)
}

// Type returns the type of the CIGAR operation for the CigarOp.
func (co CigarOp) Type() CigarOpType { return CigarOpType(co & 0xf) }

// Len returns the number of positions affected by the CigarOp CIGAR operation.
func (co CigarOp) Len() int { return int(co >> 4) }

// String returns the string representation of the CigarOp.
func (co CigarOp) String() string { return fmt.Sprintf("%d%s", co.Len(), co.Type().String()) }

// A CigarOpType represents the type of operation described by a CigarOp.
type CigarOpType byte

const (
	CigarMatch       CigarOpType = iota // Alignment match (can be a sequence match or mismatch).
	CigarInsertion                      // Insertion to the reference.
	CigarDeletion                       // Deletion from the reference.
	CigarSkipped                        // Skipped region from the reference.
	CigarSoftClipped                    // Soft clipping (clipped sequences present in SEQ).
	CigarHardClipped                    // Hard clipping (clipped sequences NOT present in SEQ).
	CigarPadded                         // Padding (silent deletion from padded reference).
	CigarEqual                          // Sequence match.
	CigarMismatch                       // Sequence mismatch.
	lastCigar
)

var cigarOps = []string{"M", "I", "D", "N", "S", "H", "P", "=", "X", "?"}

// Consumes returns the CIGAR operation alignment consumption characteristics
// for the CigarOpType.
//
// The Consume values for each of the CigarOpTypes is as follows:
//
//	                  Query  Reference
//	CigarMatch          1        1
//	CigarInsertion      1        0
//	CigarDeletion       0        1
//	CigarSkipped        0        1
//	CigarSoftClipped    1        0
//	CigarHardClipped    0        0
//	CigarPadded         0        0
//	CigarEqual          1        1
//	CigarMismatch       1        1
func (ct CigarOpType) Consumes() Consume { return consume[ct] }

// String returns the string representation of a CigarOpType.
func (ct CigarOpType) String() string {
	if ct < 0 || ct > lastCigar {
		ct = lastCigar
	}
	return cigarOps[ct]
}

// Consume describes how CIGAR operations consume alignment bases.
type Consume struct {
	Query, Reference int
}

var consume = []Consume{
	CigarMatch:       {Query: 1, Reference: 1},
	CigarInsertion:   {Query: 1, Reference: 0},
	CigarDeletion:    {Query: 0, Reference: 1},
	CigarSkipped:     {Query: 0, Reference: 1},
	CigarSoftClipped: {Query: 1, Reference: 0},
	CigarHardClipped: {Query: 0, Reference: 0},
	CigarPadded:      {Query: 0, Reference: 0},
	CigarEqual:       {Query: 1, Reference: 1},
	CigarMismatch:    {Query: 1, Reference: 1},
	lastCigar:        {},
}

var cigarOpTypeLookup [256]CigarOpType

func init() {
	for i := range cigarOpTypeLookup {
		cigarOpTypeLookup[i] = lastCigar
	}
	for op, c := range []byte{'M', 'I', 'D', 'N', 'S', 'H', 'P', '=', 'X'} {
		cigarOpTypeLookup[c] = CigarOpType(op)
	}
}

var powers = []int{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8}

// atoi returns the integer interpretation of s which must be an ASCII
// decimal number representation.
func atoi(s string, i int) (int, error) {
	if len(s) > len(powers) {
		return 0, fmt.Errorf("%w: operation length %q at %d out of range", ErrParse, s, i)
	}
	n := 0
	k := len(s) - 1
	for i, v := range []byte(s) {
		n += int(v-'0') * powers[k-i]
	}
	if n < 0 || 1<<28 <= n {
		return n, fmt.Errorf("%w: operation length %q at %d out of range", ErrParse, s, i)
	}
	return n, nil
}

// Parse returns the normalized Cigar described by the CIGAR string s.
// The grammar is one or more <positive integer><operation code> pairs
// with no separators; "*" denotes the empty alignment. Empty text, a
// missing or zero length, an unknown operation code and trailing input
// are all errors matching ErrParse.
func Parse(s string) (Cigar, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty cigar text", ErrParse)
	}
	if s == "*" {
		return nil, nil
	}
	var c Cigar
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && '0' <= s[j] && s[j] <= '9' {
			j++
		}
		if j == i {
			return nil, fmt.Errorf("%w: expected operation length at %d in %q", ErrParse, i, s)
		}
		if j == len(s) {
			return nil, fmt.Errorf("%w: missing operation after %q in %q", ErrParse, s[i:j], s)
		}
		n, err := atoi(s[i:j], i)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: zero length operation at %d in %q", ErrParse, i, s)
		}
		op := cigarOpTypeLookup[s[j]]
		if op == lastCigar {
			return nil, fmt.Errorf("%w: unknown operation %q in %q", ErrParse, s[j], s)
		}
		c = append(c, NewCigarOp(op, n))
		i = j + 1
	}
	return normalize(c), nil
}
