// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biogo/cigar/hit"
)

var connectInfile string
var connectOutfile string
var connectDropOverlaps bool

func init() {
	rootCmd.AddCommand(connectCmd)

	connectCmd.Flags().StringVarP(&connectInfile, "infile", "i", "stdin", "Positioned hits to connect, one per line")
	connectCmd.Flags().StringVarP(&connectOutfile, "outfile", "o", "stdout", "Output to write")
	connectCmd.Flags().BoolVar(&connectDropOverlaps, "drop-overlaps", false, "First discard hits overlapping a longer hit on either axis")
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect colinear positioned hits into maximal chains",
	Long: `Connect colinear positioned hits into maximal chains.

Example usage:
	cigartool connect -i hits.txt -o chains.txt

Hits that follow one another on both the reference and the query are
joined into single hits, bridging the coordinate gaps with deletion and
insertion operations. Hits that cannot be chained are passed through
unchanged. With --drop-overlaps, hits overlapping a longer hit on
either axis are first discarded.

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

		var hits []hit.Hit
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			h, err := hit.Parse(line)
			if err != nil {
				return err
			}
			hits = append(hits, h)
		}
		if err := sc.Err(); err != nil {
			return err
		}

		if connectDropOverlaps {
			hits = hit.DropOverlapping(hits, func(h hit.Hit) float64 {
				return float64(h.RefLen())
			})
		}
		joined, err := hit.ConnectAll(hits)
		if err != nil {
			return err
		}

		w := bufio.NewWriter(out)
		defer w.Flush()
		for _, h := range joined {
			fmt.Fprintln(w, h)
		}
		return nil
	},
}
