// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cigartool inspects and transforms CIGAR alignments and positioned
// alignment hits from the command line.
package main

func main() {
	Execute()
}
