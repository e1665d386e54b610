// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/hts/sam"
	"github.com/spf13/cobra"

	"github.com/biogo/cigar"
	"github.com/biogo/cigar/hit"
)

var samInfile string
var samOutfile string
var samRelax bool

func init() {
	rootCmd.AddCommand(samCmd)

	samCmd.Flags().StringVarP(&samInfile, "infile", "i", "stdin", "SAM file to read alignments from")
	samCmd.Flags().StringVarP(&samOutfile, "outfile", "o", "stdout", "Output to write")
	samCmd.Flags().BoolVar(&samRelax, "relax", false, "Replace sequence match and mismatch operations with plain matches")
}

var samCmd = &cobra.Command{
	Use:   "sam",
	Short: "Extract positioned hits from a SAM file",
	Long: `Extract positioned hits from a SAM file.

Example usage:
	cigartool sam -i aligned.sam -o hits.txt

The output is a tsv-format file with one line per mapped record and two
columns: the record name and the record's alignment as a positioned
hit, anchored at the record's mapping position on the reference and at
zero on the query. Unmapped records and records without a CIGAR are
skipped.

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

		r, err := sam.NewReader(in)
		if err != nil {
			return err
		}

		w := bufio.NewWriter(out)
		defer w.Flush()

		for {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if rec.Flags&sam.Unmapped != 0 || len(rec.Cigar) == 0 {
				continue
			}
			c, err := cigar.FromHTS(rec.Cigar)
			if err != nil {
				return err
			}
			if samRelax {
				c = c.Relax()
			}
			refLen, queryLen := c.Lengths()
			h, err := hit.New(c, rec.Pos, rec.Pos+refLen-1, 0, queryLen-1)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%v\n", rec.Name, h)
		}
		return nil
	},
}
