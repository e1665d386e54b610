// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/biogo/cigar/hit"
)

var cutPoint string
var cutAxis string

func init() {
	rootCmd.AddCommand(cutCmd)

	cutCmd.Flags().StringVarP(&cutPoint, "point", "p", "", "Cut point, a half-integer such as 9.5")
	cutCmd.Flags().StringVarP(&cutAxis, "axis", "a", "ref", "Axis to cut on: ref or query")
	cutCmd.MarkFlagRequired("point")
}

var cutCmd = &cobra.Command{
	Use:   "cut <hit>",
	Short: "Cut a positioned hit at a half-integer coordinate",
	Long: `Cut a positioned hit at a half-integer coordinate.

Example usage:
	cigartool cut -p 10.5 '10M5I10M@[0,24]->[0,19]'

The two parts of the cut are written to stdout, one per line, left part
first. The cut point must fall strictly between two integer positions
within or immediately around the hit's range on the chosen axis.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) (err error) {
		h, err := hit.Parse(args[0])
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(cutPoint, 64)
		if err != nil {
			return fmt.Errorf("invalid cut point %q: %v", cutPoint, err)
		}
		p, err := hit.At(v)
		if err != nil {
			return err
		}
		var left, right hit.Hit
		switch cutAxis {
		case "ref":
			left, right, err = h.CutReference(p)
		case "query":
			left, right, err = h.CutQuery(p)
		default:
			return fmt.Errorf("invalid axis %q: must be ref or query", cutAxis)
		}
		if err != nil {
			return err
		}
		fmt.Println(left)
		fmt.Println(right)
		return nil
	},
}
