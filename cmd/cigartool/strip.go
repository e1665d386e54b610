// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biogo/cigar/hit"
)

var stripAxis string
var stripSide string

func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().StringVarP(&stripAxis, "axis", "a", "query", "Axis to strip clips from: ref or query")
	stripCmd.Flags().StringVarP(&stripSide, "side", "s", "both", "Side to strip: left, right or both")
}

var stripCmd = &cobra.Command{
	Use:   "strip <hit>",
	Short: "Strip flanking unaligned operations from a positioned hit",
	Long: `Strip flanking unaligned operations from a positioned hit.

Example usage:
	cigartool strip -a query -s both '5S10M5S@[0,19]->[0,9]'

Operations not consuming the chosen axis are removed from the chosen
flank up to the first dual-consuming operation, and the result is
written to stdout. Coordinate ranges are preserved.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) (err error) {
		h, err := hit.Parse(args[0])
		if err != nil {
			return err
		}
		var left, right func(hit.Hit) hit.Hit
		switch stripAxis {
		case "ref":
			left, right = hit.Hit.LstripReference, hit.Hit.RstripReference
		case "query":
			left, right = hit.Hit.LstripQuery, hit.Hit.RstripQuery
		default:
			return fmt.Errorf("invalid axis %q: must be ref or query", stripAxis)
		}
		switch stripSide {
		case "left":
			h = left(h)
		case "right":
			h = right(h)
		case "both":
			h = right(left(h))
		default:
			return fmt.Errorf("invalid side %q: must be left, right or both", stripSide)
		}
		fmt.Println(h)
		return nil
	},
}
