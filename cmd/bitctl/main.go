// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bitctl is a small command-line front end over the bitstring
// package: it packs, reads, and pretty-prints bit-level data from files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var verbose bool
	var noColor bool

	rootCmd := &cobra.Command{
		Use:           "bitctl",
		Short:         "bitctl manipulates bitstring-encoded data from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			SetLogger(l)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newPackCmd(),
		newReadCmd(),
		newPPCmd(&noColor),
		newArrayCmd(&noColor),
	)

	if err := rootCmd.Execute(); err != nil {
		st := newStyler(noColor)
		fmt.Fprintln(os.Stderr, st.render(errorStyle, "error: "+err.Error()))
		os.Exit(1)
	}
}
