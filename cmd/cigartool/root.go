// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var cpuProfileDir string

var prof interface{ Stop() }

var rootCmd = &cobra.Command{
	Use:     "cigartool",
	Short:   "inspect and transform CIGAR alignments and positioned hits",
	Long:    `inspect and transform CIGAR alignments and positioned hits`,
	Version: "1.0.0",

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cpuProfileDir != "" {
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfileDir))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if prof != nil {
			prof.Stop()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cpuProfileDir, "cpuprofile", "", "Write a CPU profile to this directory")
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
