// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biogo/cigar"
	"github.com/biogo/cigar/msa"
)

var msaFromMSA bool

func init() {
	rootCmd.AddCommand(msaCmd)

	msaCmd.Flags().BoolVar(&msaFromMSA, "from-msa", false, "Recover a CIGAR from two gapped sequences instead")
}

var msaCmd = &cobra.Command{
	Use:   "msa <cigar> <ref> <query>",
	Short: "Render an alignment as gapped sequences, or recover one",
	Long: `Render an alignment as gapped sequences, or recover one.

Example usage:
	cigartool msa 2M2D2M ACGTAC ACAC
	cigartool msa --from-msa 'GG--C' 'GGTT-'

In the first form the reference and query renderings are written to
stdout, one per line, reference first. With --from-msa the two
arguments are gapped sequences of equal length and the recovered CIGAR
string is written instead.`,

	Args: func(cmd *cobra.Command, args []string) error {
		if msaFromMSA {
			return cobra.ExactArgs(2)(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},

	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if msaFromMSA {
			c, err := msa.ToCigar(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(c)
			return nil
		}

		c, err := cigar.Parse(args[0])
		if err != nil {
			return err
		}
		ref, query, err := msa.Render(c, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(ref)
		fmt.Println(query)
		return nil
	},
}
