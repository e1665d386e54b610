// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// firstAligned returns the index of the first single-position operation
// that consumes both axes, or -1 when no operation does.
func (c Cigar) firstAligned() int {
	m := c.Mapping()
	for i, q := range m.refToQuery {
		if q >= 0 {
			return m.refToStep[i]
		}
	}
	return -1
}

// lastAligned returns the index of the last single-position operation
// that consumes both axes, or -1 when no operation does.
func (c Cigar) lastAligned() int {
	m := c.Mapping()
	for i := len(m.refToQuery) - 1; i >= 0; i-- {
		if m.refToQuery[i] >= 0 {
			return m.refToStep[i]
		}
	}
	return -1
}

// strip rebuilds c from its single-position operations, keeping those
// for which keep returns true, and re-normalizes.
func (c Cigar) strip(keep func(i int, s Step) bool) Cigar {
	var n Cigar
	i := 0
	for it := c.Steps(); it.Next(); i++ {
		if keep(i, it.Step()) {
			n = append(n, NewCigarOp(it.Step().Type, 1))
		}
	}
	return normalize(n)
}

// LstripQuery returns a copy of c with query positions that precede the
// first aligned pair removed. Operations that do not consume the query
// are retained.
func (c Cigar) LstripQuery() Cigar {
	first := c.firstAligned()
	return c.strip(func(i int, s Step) bool {
		return s.Query < 0 || (first >= 0 && i >= first)
	})
}

// RstripQuery returns a copy of c with query positions that follow the
// last aligned pair removed. Operations that do not consume the query
// are retained.
func (c Cigar) RstripQuery() Cigar {
	last := c.lastAligned()
	return c.strip(func(i int, s Step) bool {
		return s.Query < 0 || i <= last
	})
}

// LstripReference returns a copy of c with reference positions that
// precede the first aligned pair removed. Operations that do not
// consume the reference are retained.
func (c Cigar) LstripReference() Cigar {
	first := c.firstAligned()
	return c.strip(func(i int, s Step) bool {
		return s.Ref < 0 || (first >= 0 && i >= first)
	})
}

// RstripReference returns a copy of c with reference positions that
// follow the last aligned pair removed. Operations that do not consume
// the reference are retained.
func (c Cigar) RstripReference() Cigar {
	last := c.lastAligned()
	return c.strip(func(i int, s Step) bool {
		return s.Ref < 0 || i <= last
	})
}
