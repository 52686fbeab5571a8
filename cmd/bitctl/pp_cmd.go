// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitpack/bitstring/bitstring"
	"github.com/spf13/cobra"
)

func newPPCmd(noColor *bool) *cobra.Command {
	var format string
	var groupSize int
	var groupsPerLine int
	var showOffset bool

	cmd := &cobra.Command{
		Use:   "pp <file>",
		Short: "Pretty-print a file's bits as grouped bin/hex/oct symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			b, err := bitstring.New(bitstring.BytesValue(data))
			if err != nil {
				return err
			}
			st := newStyler(*noColor)
			title := st.render(titleStyle, fmt.Sprintf(" %s (%d bits) ", args[0], b.Len()))
			fmt.Fprintln(cmd.OutOrStdout(), title)
			opts := bitstring.PPOptions{
				Format:        format,
				GroupSize:     groupSize,
				Separator:     " ",
				GroupsPerLine: groupsPerLine,
				ShowOffset:    showOffset,
			}
			return b.PrettyPrint(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "Symbol alphabet: bin, hex, or oct")
	cmd.Flags().IntVar(&groupSize, "group-size", 2, "Symbols per group")
	cmd.Flags().IntVar(&groupsPerLine, "groups-per-line", 8, "Groups per line before wrapping")
	cmd.Flags().BoolVar(&showOffset, "offset", true, "Prefix each line with its starting bit offset")
	return cmd
}
