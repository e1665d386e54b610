// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biogo/cigar"
	"github.com/biogo/cigar/hit"
)

var statsInfile string
var statsOutfile string

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsInfile, "infile", "i", "stdin", "CIGAR or hit strings to summarise, one per line")
	statsCmd.Flags().StringVarP(&statsOutfile, "outfile", "o", "stdout", "Output to write")
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise CIGAR alignments",
	Long: `Summarise CIGAR alignments.

Example usage:
	cigartool stats -i alignments.txt -o stats.tsv

Each input line is a CIGAR string ("10M5I10M") or a positioned hit
("10M5I10M@[0,24]->[0,19]"). The output is a tsv-format file with one
line per input and columns for the normalized cigar, the reference and
query lengths spanned, and the number of deletion and insertion blocks.

If input and output files are not specified, the behaviour is to read
from stdin and write to stdout.`,

	RunE: func(cmd *cobra.Command, args []string) (err error) {
		in, err := openIn(*cmd.Flags().Lookup("infile"))
		if err != nil {
			return err
		}
		defer closeIn(in)

		out, err := openOut(*cmd.Flags().Lookup("outfile"))
		if err != nil {
			return err
		}
		defer closeOut(out)

		w := bufio.NewWriter(out)
		defer w.Flush()
		fmt.Fprintln(w, "cigar\tref_len\tquery_len\tdeletions\tinsertions")

		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			h, err := parseAlignment(line)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%v\t%d\t%d\t%d\t%d\n",
				h.Cigar, h.RefLen(), h.QueryLen(), len(h.Deletions()), len(h.Insertions()))
		}
		return sc.Err()
	},
}

// parseAlignment interprets line as a positioned hit, falling back to a
// bare CIGAR string anchored at the origin.
func parseAlignment(line string) (hit.Hit, error) {
	if strings.Contains(line, "@") {
		return hit.Parse(line)
	}
	c, err := cigar.Parse(line)
	if err != nil {
		return hit.Hit{}, err
	}
	ref, query := c.Lengths()
	return hit.New(c, 0, ref-1, 0, query-1)
}
