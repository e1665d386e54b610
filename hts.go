// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"fmt"

	"github.com/biogo/hts/sam"
)

// FromHTS returns the normalized Cigar equivalent to the given
// biogo/hts sam.Cigar. The operation vocabularies coincide except for
// the CigarBack operation, which has no place in a monotone alignment
// model and is reported as an error matching ErrParse.
func FromHTS(c sam.Cigar) (Cigar, error) {
	n := make(Cigar, 0, len(c))
	for _, co := range c {
		if co.Type() >= sam.CigarBack {
			return nil, fmt.Errorf("%w: unsupported operation %q", ErrParse, co.Type())
		}
		n = append(n, NewCigarOp(CigarOpType(co.Type()), co.Len()))
	}
	return normalize(n), nil
}

// ToHTS returns the biogo/hts sam.Cigar equivalent to c.
func ToHTS(c Cigar) sam.Cigar {
	n := make(sam.Cigar, 0, len(c))
	for _, co := range c {
		n = append(n, sam.NewCigarOp(sam.CigarOpType(co.Type()), co.Len()))
	}
	return n
}
